package discord

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"alertr-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

// NewWebhook validates id and token.
func NewWebhook(id, token string) (Webhook, error) {
	id, token = strings.TrimSpace(id), strings.TrimSpace(token)
	if id == "" || token == "" {
		return Webhook{}, errWebhookRequired
	}
	return Webhook{ID: id, Token: token}, nil
}

// New creates a webhook client. The logger may be nil.
func New(l log.Logger, webhook Webhook, cfg Config) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	if l == nil {
		l = log.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DefaultUsername == "" {
		cfg.DefaultUsername = DefaultUsername
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  client,
	}, nil
}
