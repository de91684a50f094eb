package http

import (
	"alertr-srv/internal/alert"
	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/log"
)

type Handler struct {
	uc      alert.UseCase
	logger  log.Logger
	discord discord.IDiscord
	version string
}

// New creates the alert HTTP handler. discordClient may be nil.
func New(uc alert.UseCase, logger log.Logger, discordClient discord.IDiscord, version string) *Handler {
	return &Handler{
		uc:      uc,
		logger:  logger,
		discord: discordClient,
		version: version,
	}
}
