package alert

import "errors"

var (
	ErrNoChannels     = errors.New("no notification channels configured")
	ErrInvalidPayload = errors.New("invalid alert payload")
)
