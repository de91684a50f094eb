package usecase

import (
	"context"

	"alertr-srv/pkg/shoutrrr"
)

// sendNtfy handles ntfy://[user:pass@]host[:port]/topic.
func (uc *implUseCase) sendNtfy(ctx context.Context, u shoutrrr.URL, msg message) error {
	topic := firstPathSegment(u.Path)
	if u.Host == "" || topic == "" {
		return errMissingFields
	}
	return uc.post(ctx, "https://"+u.HostPort()+"/"+topic, []byte(msg.Body),
		withHeader("Title", msg.Title),
		withBasicAuth(u.User, u.Password),
	)
}
