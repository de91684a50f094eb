package httpserver

import (
	"errors"
	"time"

	"alertr-srv/internal/alert"
	"alertr-srv/internal/middleware"
	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/log"
	pkgRedis "alertr-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) starts serving and blocks until shutdown.
type HTTPServer struct {
	// Server configuration
	gin          *gin.Engine
	logger       log.Logger
	host         string
	port         int
	readTimeout  time.Duration
	writeTimeout time.Duration
	version      string
	environment  string

	// Alert core
	alertUC alert.UseCase
	mw      middleware.Middleware

	// External services
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host         string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string
	Environment  string

	AlertUC    alert.UseCase
	Middleware middleware.Middleware

	// External services, both optional
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:          gin.New(),
		logger:       logger,
		host:         cfg.Host,
		port:         cfg.Port,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		version:      cfg.Version,
		environment:  cfg.Environment,

		alertUC: cfg.AlertUC,
		mw:      cfg.Middleware,

		redis:   cfg.Redis,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.alertUC == nil {
		return errors.New("alert usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
