package usecase

import (
	"context"

	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/shoutrrr"
)

// sendDiscord handles discord://token@webhookID.
func (uc *implUseCase) sendDiscord(ctx context.Context, u shoutrrr.URL, msg message) error {
	if u.Host == "" || u.User == "" {
		return errMissingFields
	}
	d, err := discord.New(uc.logger, discord.Webhook{ID: u.Host, Token: u.User}, discord.Config{Client: uc.client})
	if err != nil {
		return err
	}
	return d.SendMessage(ctx, "**"+msg.Title+"**\n"+msg.Body)
}
