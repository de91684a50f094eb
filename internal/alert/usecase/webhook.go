package usecase

import (
	"context"

	"alertr-srv/internal/alert"
)

type webhookMessage struct {
	alert.Payload
	// Title shadows Payload.Title and falls back to the rendered title.
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (uc *implUseCase) sendWebhook(ctx context.Context, p alert.Payload) error {
	msg := formatMessage(p)
	title := p.Title
	if title == "" {
		title = msg.Title
	}
	return uc.postJSON(ctx, uc.webhookURL, webhookMessage{Payload: p, Title: title, Body: msg.Body})
}
