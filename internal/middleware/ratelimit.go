package middleware

import (
	"alertr-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateLimit limits requests per client IP. Limiter errors let the request
// through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		ip := c.ClientIP()

		ok, err := m.limiter.Allow(ctx, ip)
		if err != nil {
			m.security.LogLimiterUnavailable(ctx, ip, err)
		}
		if !ok {
			m.security.LogRateLimitExceeded(ctx, ip, c.Request.URL.Path)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
