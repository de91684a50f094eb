package middleware

import (
	"alertr-srv/internal/auth"
	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/log"
)

type Middleware struct {
	logger     log.Logger
	authorizer auth.Authorizer
	limiter    auth.Limiter
	security   *auth.SecurityLogger
	discord    discord.IDiscord
}

// New builds the middleware set. limiter and discordClient may be nil.
func New(logger log.Logger, authorizer auth.Authorizer, limiter auth.Limiter, discordClient discord.IDiscord) Middleware {
	if authorizer == nil {
		authorizer = auth.PermissiveAuthorizer{}
	}
	return Middleware{
		logger:     logger,
		authorizer: authorizer,
		limiter:    limiter,
		security:   auth.NewSecurityLogger(logger),
		discord:    discordClient,
	}
}
