package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/logging"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioSender delivers SMS through the Twilio REST API.
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	client     *http.Client
}

// Ensure TwilioSender implements Sender
var _ Sender = (*TwilioSender)(nil)

// NewTwilioSender creates a Twilio-backed sender from the configured credentials.
func NewTwilioSender(cfg *config.Config) *TwilioSender {
	return &TwilioSender{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		fromNumber: cfg.TwilioFromNumber,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewSender picks the Twilio sender when all credentials are present and
// the no-op sender otherwise.
func NewSender(cfg *config.Config) Sender {
	if cfg.TwilioEnabled() {
		return NewTwilioSender(cfg)
	}
	logging.Info("messaging credentials not configured, notifications disabled")
	return NoopSender{}
}

// Send posts a message to the Twilio Messages endpoint.
func (s *TwilioSender) Send(ctx context.Context, toNumber, body string) error {
	if toNumber == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", s.fromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
