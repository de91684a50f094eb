package http

import (
	"alertr-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert routes. Delivery routes are rate
// limited before authentication.
func (h *Handler) RegisterRoutes(r gin.IRoutes, mw middleware.Middleware) {
	r.GET("/", h.Status)
	r.POST("/alert", mw.RateLimit(), mw.Auth(), h.Alert)
	r.POST("/test", mw.RateLimit(), mw.Auth(), h.Test)
}
