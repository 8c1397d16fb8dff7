/**
* Name: 			client.go
* Description: 		reCAPTCHA siteverify client
* Workflow: 		secret + client response (form-encoded) -> verifier -> success flag
 */
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

var ErrMissingSecret = errors.New("captcha secret key is not configured")

type VerifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

func NewClient(secret, verifyURL string) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify forwards the client's challenge response to the verifier. A false
// result with a nil error means the verifier rejected the response; an error
// means the verifier could not be asked.
func (c *Client) Verify(ctx context.Context, response string) (bool, error) {
	if c.secret == "" {
		return false, ErrMissingSecret
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("Verify(): failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("Verify(): request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.New("Verify(): verifier responded with status: " + resp.Status)
	}

	var verifyResp VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verifyResp); err != nil {
		return false, fmt.Errorf("Verify(): invalid verifier response: %w", err)
	}
	return verifyResp.Success, nil
}
