package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.resend.com"
	DefaultFrom    = "claude-alertr <onboarding@resend.dev>"
)

var (
	ErrAPIKeyRequired    = errors.New("resend: api key is required")
	ErrRecipientRequired = errors.New("resend: at least one recipient is required")
)

// Config captures what is needed to call the Resend emails endpoint.
type Config struct {
	APIKey  string
	From    string
	Timeout time.Duration
	Client  *http.Client
	// BaseURL overrides https://api.resend.com (tests).
	BaseURL string
}

// Email is one outbound message.
type Email struct {
	To      []string
	Subject string
	HTML    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Client sends transactional email through Resend.
type Client struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:  apiKey,
		from:    fallbackString(strings.TrimSpace(cfg.From), DefaultFrom),
		baseURL: strings.TrimSuffix(fallbackString(cfg.BaseURL, defaultBaseURL), "/"),
		client:  hc,
	}, nil
}

// Send posts the email. Any non-2xx answer is an error.
func (c *Client) Send(ctx context.Context, email Email) error {
	to := ParseRecipients(strings.Join(email.To, ","))
	if len(to) == 0 {
		return ErrRecipientRequired
	}

	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      to,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("encode resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("resend %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ParseRecipients splits a comma-separated address list, dropping blanks.
func ParseRecipients(list string) []string {
	var out []string
	for _, addr := range strings.Split(list, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
