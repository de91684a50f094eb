package alert

import "context"

// UseCase fans an alert out to every configured channel.
type UseCase interface {
	// Dispatch delivers payload to each Shoutrrr URL concurrently. The result
	// slice has one entry per URL in input order. It never fails as a whole.
	Dispatch(ctx context.Context, urls []string, payload Payload) []Result
	// Notify delivers payload to the webhook, email and Shoutrrr channels.
	Notify(ctx context.Context, payload Payload) (Report, error)
	Channels() ChannelStatus
}
