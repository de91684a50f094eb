package usecase

import (
	"context"
	"net/url"

	"alertr-srv/pkg/shoutrrr"
)

const gotifyPriority = 5

type gotifyMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// sendGotify handles gotify://host[:port]/token.
func (uc *implUseCase) sendGotify(ctx context.Context, u shoutrrr.URL, msg message) error {
	token := firstPathSegment(u.Path)
	if u.Host == "" || token == "" {
		return errMissingFields
	}
	target := "https://" + u.HostPort() + "/message?token=" + url.QueryEscape(token)
	return uc.postJSON(ctx, target, gotifyMessage{Title: msg.Title, Message: msg.Body, Priority: gotifyPriority})
}
