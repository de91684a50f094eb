package usecase

import (
	"context"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/shoutrrr"
)

type genericMessage struct {
	Title            string `json:"title"`
	Message          string `json:"message"`
	SessionID        string `json:"session_id"`
	NotificationType string `json:"notification_type"`
	Details          string `json:"details"`
	Project          string `json:"project"`
	Hostname         string `json:"hostname"`
	WaitingSince     string `json:"waiting_since"`
}

// sendGeneric handles generic://[user:pass@]host[:port][/path].
func (uc *implUseCase) sendGeneric(ctx context.Context, u shoutrrr.URL, msg message, p alert.Payload) error {
	if u.Host == "" {
		return errMissingFields
	}
	return uc.postJSON(ctx, "https://"+u.HostPort()+u.Path, genericMessage{
		Title:            msg.Title,
		Message:          msg.Body,
		SessionID:        p.SessionID,
		NotificationType: p.NotificationType,
		Details:          p.Details,
		Project:          p.Cwd,
		Hostname:         p.Hostname,
		WaitingSince:     p.Timestamp,
	}, withBasicAuth(u.User, u.Password))
}
