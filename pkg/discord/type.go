package discord

import (
	"net/http"
	"time"

	"alertr-srv/pkg/log"
)

// Config tunes the webhook client. Zero values fall back to defaults.
type Config struct {
	Timeout          time.Duration
	DefaultUsername  string
	DefaultAvatarURL string

	// Client is used for every request when set; Timeout is ignored in that case.
	Client *http.Client
	// BaseURL overrides https://discord.com/api/webhooks (tests).
	BaseURL string
}

// Webhook identifies one Discord webhook.
type Webhook struct {
	ID    string
	Token string
}

type discordImpl struct {
	l       log.Logger
	webhook Webhook
	config  Config
	client  *http.Client
}

type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload is the JSON body accepted by the webhook execute endpoint.
type WebhookPayload struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Username    string
	AvatarURL   string
	Timestamp   time.Time
}
