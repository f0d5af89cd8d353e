package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	resendEndpoint = "https://api.resend.com/emails"

	// Single attempt with a bounded wait: a stalled provider must not pin
	// the calling request beyond this ceiling.
	defaultTimeout = 15 * time.Second

	// Provider error bodies are read for server-side diagnostics only.
	maxErrorBody = 4 << 10
)

// ResendClient sends mail through the Resend REST API.
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ResendOption configures a ResendClient.
type ResendOption func(*ResendClient)

// WithBaseURL points the client at another endpoint. Used by tests to target
// a local stub server.
func WithBaseURL(url string) ResendOption {
	return func(c *ResendClient) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ResendOption {
	return func(c *ResendClient) {
		c.httpClient = hc
	}
}

func NewResendClient(apiKey string, opts ...ResendOption) *ResendClient {
	c := &ResendClient{
		apiKey:     apiKey,
		baseURL:    resendEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resendRequest mirrors the provider's send-email payload.
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

// Send delivers msg in a single attempt, no retries. A non-2xx provider
// response comes back as an error carrying the provider status and body;
// callers log it and must not forward it to end users.
func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	payload := resendRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("resend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("resend: unexpected status %d: %s", resp.StatusCode, detail)
	}

	// The success body only carries the provider message id; drain it so the
	// connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
