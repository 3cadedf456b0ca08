package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendSender relays mail through the Resend REST API.
type ResendSender struct {
	apiKey string
	from   string
	client *http.Client
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(resendPayload{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, string(detail))
	}

	log.Printf("Email sent successfully via Resend to %s", to)
	return nil
}

// LogSender simulates delivery by logging the message. Used when no
// RESEND_API_KEY is configured so development works without credentials.
type LogSender struct {
	from string
}

func NewLogSender(from string) *LogSender {
	return &LogSender{from: from}
}

func (s *LogSender) Send(_ context.Context, to, subject, htmlBody string) error {
	log.Printf("[Email Simulation] FROM: %s | TO: %s | SUBJECT: %s", s.from, to, subject)
	log.Printf("[Email Simulation] BODY: %s", htmlBody)
	return nil
}

// NewSenderFromEnv picks the Resend relay when an API key is present and
// falls back to log-only simulation otherwise.
func NewSenderFromEnv(from string) Sender {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("RESEND_API_KEY not configured. Simulating email sends.")
		return NewLogSender(from)
	}
	return NewResendSender(apiKey, from)
}
