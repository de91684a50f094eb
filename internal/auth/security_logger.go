package auth

import (
	"context"

	"alertr-srv/pkg/log"
)

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventAuthorizationFailure SecurityEventType = "authorization_failure"
	SecurityEventRateLimitExceeded    SecurityEventType = "rate_limit_exceeded"
	SecurityEventLimiterUnavailable   SecurityEventType = "limiter_unavailable"
)

// SecurityLogger logs security-relevant events
type SecurityLogger struct {
	logger log.Logger
}

func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger}
}

func (sl *SecurityLogger) LogAuthorizationFailure(ctx context.Context, clientIP, path, reason string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - ip=%s path=%s reason=%s",
		SecurityEventAuthorizationFailure, clientIP, path, reason)
}

func (sl *SecurityLogger) LogRateLimitExceeded(ctx context.Context, clientIP, path string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - ip=%s path=%s",
		SecurityEventRateLimitExceeded, clientIP, path)
}

// LogLimiterUnavailable records a fail-open decision.
func (sl *SecurityLogger) LogLimiterUnavailable(ctx context.Context, clientIP string, err error) {
	sl.logger.Warnf(ctx, "SECURITY: %s - ip=%s err=%v",
		SecurityEventLimiterUnavailable, clientIP, err)
}
