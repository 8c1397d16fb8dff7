package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBPath string

	UploadDir string

	CaptchaSecret    string
	CaptchaVerifyURL string

	CORSAllowedOrigins []string
	RateLimitPerMinute int

	LogLevel string
	LogJSON  bool

	GmailCredentialsFile string
	GmailTokenFile       string
	MailFrom             string

	RabbitMQURL string
	NotifyQueue string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "5000"),
		DBPath:               getEnv("DB_PATH", "./alumni_job_form.db"),
		UploadDir:            getEnv("UPLOAD_DIR", "uploads"),
		CaptchaSecret:        getEnv("CAPTCHA_SECRET_KEY", os.Getenv("SECRET_KEY")),
		CaptchaVerifyURL:     os.Getenv("CAPTCHA_VERIFY_URL"),
		CORSAllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		GmailCredentialsFile: os.Getenv("GMAIL_CREDENTIALS_FILE"),
		GmailTokenFile:       getEnv("GMAIL_TOKEN_FILE", "token.json"),
		MailFrom:             os.Getenv("MAIL_FROM"),
		RabbitMQURL:          os.Getenv("RABBITMQ_URL"),
		NotifyQueue:          getEnv("NOTIFY_QUEUE", "acknowledgement_queue"),
	}

	var err error
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = getBool("LOG_JSON", true); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
