package usecase

import (
	"context"
	"net/http"
	"time"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/log"
	"alertr-srv/pkg/resend"
)

// EmailSender delivers one email. *resend.Client satisfies it.
type EmailSender interface {
	Send(ctx context.Context, email resend.Email) error
}

// Options wires the channels. Zero-value fields disable their channel.
type Options struct {
	// Client carries every outbound request. Defaults to a 10s timeout client.
	Client     *http.Client
	WebhookURL string
	Email      EmailSender
	EmailTo    []string
	URLs       []string
}

type implUseCase struct {
	logger     log.Logger
	client     *http.Client
	webhookURL string
	email      EmailSender
	emailTo    []string
	urls       []string
}

func New(logger log.Logger, opts Options) alert.UseCase {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &implUseCase{
		logger:     logger,
		client:     client,
		webhookURL: opts.WebhookURL,
		email:      opts.Email,
		emailTo:    opts.EmailTo,
		urls:       opts.URLs,
	}
}
