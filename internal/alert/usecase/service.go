package usecase

import (
	"context"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/shoutrrr"
)

// Service is one of the supported Shoutrrr targets.
type Service string

const (
	ServiceSlack    Service = "slack"
	ServiceDiscord  Service = "discord"
	ServiceTelegram Service = "telegram"
	ServiceNtfy     Service = "ntfy"
	ServicePushover Service = "pushover"
	ServiceGotify   Service = "gotify"
	ServiceGeneric  Service = "generic"
)

// SupportedServices in registry order.
var SupportedServices = []Service{
	ServiceSlack,
	ServiceDiscord,
	ServiceTelegram,
	ServiceNtfy,
	ServicePushover,
	ServiceGotify,
	ServiceGeneric,
}

func lookupService(scheme string) (Service, bool) {
	for _, s := range SupportedServices {
		if string(s) == scheme {
			return s, true
		}
	}
	return "", false
}

func (uc *implUseCase) deliver(ctx context.Context, svc Service, u shoutrrr.URL, p alert.Payload) error {
	msg := formatMessage(p)
	switch svc {
	case ServiceSlack:
		return uc.sendSlack(ctx, u, msg)
	case ServiceDiscord:
		return uc.sendDiscord(ctx, u, msg)
	case ServiceTelegram:
		return uc.sendTelegram(ctx, u, msg)
	case ServiceNtfy:
		return uc.sendNtfy(ctx, u, msg)
	case ServicePushover:
		return uc.sendPushover(ctx, u, msg)
	case ServiceGotify:
		return uc.sendGotify(ctx, u, msg)
	case ServiceGeneric:
		return uc.sendGeneric(ctx, u, msg, p)
	default:
		return errUnsupportedService
	}
}
