package httpserver

import (
	alertHTTP "alertr-srv/internal/alert/delivery/http"
	"alertr-srv/internal/middleware"
	"alertr-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() {
	// Global middleware also runs for unmatched routes, so CORS answers
	// every preflight.
	srv.gin.Use(srv.mw.Recovery(), middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	alertHandler := alertHTTP.New(srv.alertUC, srv.logger, srv.discord, srv.version)
	alertHandler.RegisterRoutes(srv.gin, srv.mw)

	srv.gin.NoRoute(func(c *gin.Context) { response.NotFound(c) })
}
