package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"alertr-srv/config"
	configRedis "alertr-srv/config/redis"
	"alertr-srv/internal/alert/usecase"
	"alertr-srv/internal/auth"
	"alertr-srv/internal/httpserver"
	"alertr-srv/internal/middleware"
	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/log"
	"alertr-srv/pkg/resend"
	"alertr-srv/pkg/shoutrrr"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}
	logger.Info(context.Background(), "Shutdown completed")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	outbound := &http.Client{Timeout: cfg.Channels.OutboundTimeout}

	// Initialize Discord (optional ops reporting)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		webhook, err := discord.NewWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			return fmt.Errorf("initialize Discord: %w", err)
		}
		d, err := discord.New(logger, webhook, discord.Config{Client: outbound})
		if err != nil {
			return fmt.Errorf("initialize Discord: %w", err)
		}
		defer d.Close()
		discordClient = d
		logger.Info(ctx, "Discord panic reporting enabled")
	}

	// Initialize Redis (optional shared rate limiter)
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		return err
	}

	rlCfg := auth.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.PerMinute,
		Burst:             cfg.RateLimit.Burst,
	}
	var limiter auth.Limiter
	if redisClient != nil {
		limiter = auth.NewRedisLimiter(redisClient, rlCfg, logger)
		logger.Infof(ctx, "Redis rate limiter connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	} else {
		limiter = auth.NewMemoryLimiter(rlCfg, logger)
	}
	defer limiter.Close()

	// Initialize email channel
	var email usecase.EmailSender
	var emailTo []string
	if cfg.Channels.EmailEnabled() {
		client, err := resend.NewClient(resend.Config{
			APIKey: cfg.Channels.ResendAPIKey,
			From:   cfg.Channels.EmailFrom,
			Client: outbound,
		})
		if err != nil {
			return fmt.Errorf("initialize Resend: %w", err)
		}
		email = client
		emailTo = resend.ParseRecipients(cfg.Channels.EmailTo)
	}

	alertUC := usecase.New(logger, usecase.Options{
		Client:     outbound,
		WebhookURL: cfg.Channels.WebhookURL,
		Email:      email,
		EmailTo:    emailTo,
		URLs:       shoutrrr.SplitURLs(cfg.Channels.ShoutrrrURLs),
	})

	channels := alertUC.Channels()
	logger.Infof(ctx, "Channels: webhook=%t email=%t shoutrrr=%v auth=%t",
		channels.Webhook, channels.Email, channels.Shoutrrr, cfg.Auth.Token != "")

	authorizer := auth.NewAuthorizer(cfg.Auth.Token)
	mw := middleware.New(logger, authorizer, limiter, discordClient)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		Version:      version,
		Environment:  cfg.Environment.Name,

		AlertUC:    alertUC,
		Middleware: mw,

		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	return httpServer.Run(ctx)
}
