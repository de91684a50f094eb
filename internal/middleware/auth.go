package middleware

import (
	"alertr-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth rejects requests whose bearer token does not match. It is a no-op
// when no token is configured.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorizer.Enabled() {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if !m.authorizer.Authorize(header) {
			reason := "invalid token"
			if header == "" {
				reason = "missing token"
			}
			m.security.LogAuthorizationFailure(c.Request.Context(), c.ClientIP(), c.Request.URL.Path, reason)
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
