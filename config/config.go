package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Security Configuration
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig

	// Notification Channels
	Channels ChannelsConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host         string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	Mode         string        `env:"HTTP_MODE" envDefault:"release"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// AuthConfig holds the bearer token. Empty disables authentication.
type AuthConfig struct {
	Token string `env:"AUTH_TOKEN"`
}

type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// RedisConfig is the optional shared rate-limit store. Empty Host disables it.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`
}

// ChannelsConfig configures alert delivery.
type ChannelsConfig struct {
	WebhookURL      string        `env:"WEBHOOK_URL"`
	ResendAPIKey    string        `env:"RESEND_API_KEY"`
	EmailTo         string        `env:"ALERT_EMAIL_TO"`
	EmailFrom       string        `env:"ALERT_EMAIL_FROM" envDefault:"claude-alertr <onboarding@resend.dev>"`
	ShoutrrrURLs    string        `env:"SHOUTRRR_URLS"`
	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"10s"`
}

// EmailEnabled reports whether both the API key and recipients are set.
func (c ChannelsConfig) EmailEnabled() bool {
	return strings.TrimSpace(c.ResendAPIKey) != "" && strings.TrimSpace(c.EmailTo) != ""
}

// DiscordConfig is the ops webhook for panic reports.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}
	return Parse()
}

// Parse builds the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.HTTPServer.Port < 1 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT must be in 1..65535, got %d", c.HTTPServer.Port))
	}
	if c.RateLimit.PerMinute <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimit.PerMinute))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimit.Burst))
	}
	if c.Channels.OutboundTimeout <= 0 {
		errs = append(errs, errors.New("OUTBOUND_TIMEOUT must be positive"))
	}
	if raw := c.Channels.WebhookURL; raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, errors.New("WEBHOOK_URL must be an absolute http(s) url"))
		}
	}
	if c.Redis.Host != "" && (c.Redis.Port < 1 || c.Redis.Port > 65535) {
		errs = append(errs, fmt.Errorf("REDIS_PORT must be in 1..65535, got %d", c.Redis.Port))
	}
	return errors.Join(errs...)
}
