package httpserver

import (
	"net/http"

	"alertr-srv/pkg/errors"
	"alertr-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "claude-alertr"

// healthCheck also pings Redis when the shared rate limiter is enabled.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	redisStatus := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(c.Request.Context()); err != nil {
			srv.logger.Warnf(c.Request.Context(), "internal.httpserver.healthCheck: redis ping: %v", err)
			response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable))
			return
		}
		redisStatus = "connected"
	}

	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     srv.version,
		"service":     serviceName,
		"environment": srv.environment,
		"redis":       redisStatus,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": srv.version,
		"service": serviceName,
	})
}
