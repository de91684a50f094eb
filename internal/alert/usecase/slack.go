package usecase

import (
	"context"

	"alertr-srv/pkg/shoutrrr"
)

const slackBaseURL = "https://hooks.slack.com/services/"

// sendSlack handles slack://[botname@]tokenA/tokenB/tokenC.
func (uc *implUseCase) sendSlack(ctx context.Context, u shoutrrr.URL, msg message) error {
	if u.Host == "" || u.Path == "" {
		return errMissingFields
	}
	body := map[string]string{"text": "*" + msg.Title + "*\n" + msg.Body}
	return uc.postJSON(ctx, slackBaseURL+u.Host+u.Path, body)
}
