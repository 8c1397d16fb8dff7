// @title           Alumni Job Form API
// @version         1.0
// @description     Referral form intake for alumni job requests.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "AlumniJobForm_Backend/docs"
	"AlumniJobForm_Backend/internal/captcha"
	"AlumniJobForm_Backend/internal/config"
	"AlumniJobForm_Backend/internal/handler"
	"AlumniJobForm_Backend/internal/middleware"
	"AlumniJobForm_Backend/internal/notify"
	"AlumniJobForm_Backend/internal/queue"
	"AlumniJobForm_Backend/internal/storage"
	"AlumniJobForm_Backend/internal/uploads"
)

const rateLimitBurst = 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := middleware.NewLogger(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer store.Close()

	uploadStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	if cfg.CaptchaSecret == "" {
		log.Warn().Msg("CAPTCHA_SECRET_KEY is not set, captcha verification will fail")
	}
	captchaClient := captcha.NewClient(cfg.CaptchaSecret, cfg.CaptchaVerifyURL)

	mailer := newMailer(ctx, cfg, log)
	var notifier notify.Notifier = mailer
	if cfg.RabbitMQURL != "" {
		mq, err := queue.Dial(cfg.RabbitMQURL, cfg.NotifyQueue, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer mq.Close()
		if err := mq.Consume(ctx, mailer); err != nil {
			log.Fatal().Err(err).Msg("failed to start acknowledgement consumer")
		}
		notifier = mq
		log.Info().Str("queue", cfg.NotifyQueue).Msg("acknowledgements are delivered through RabbitMQ")
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSAllowedOrigins))

	h := handler.New(store, uploadStore, captchaClient, notifier)
	h.RegisterRoutes(router, middleware.RateLimit(cfg.RateLimitPerMinute, rateLimitBurst))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newMailer returns the Gmail sender when credentials are configured and
// falls back to logging the acknowledgement otherwise.
func newMailer(ctx context.Context, cfg *config.Config, log zerolog.Logger) notify.Notifier {
	if cfg.GmailCredentialsFile == "" {
		log.Warn().Msg("GMAIL_CREDENTIALS_FILE is not set, acknowledgements are only logged")
		return notify.LogNotifier{Logger: log}
	}
	mailer, err := notify.NewGmailNotifier(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile, cfg.MailFrom)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Gmail client")
	}
	return mailer
}
