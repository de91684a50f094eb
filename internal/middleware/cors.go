package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins may contain "*" or "*.example.com" patterns.
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// DefaultCORSConfig allows any origin.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         86400,
	}
}

// CORS sets CORS headers and answers every OPTIONS request with 204, matched
// route or not.
func CORS(config CORSConfig) gin.HandlerFunc {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")

	return func(c *gin.Context) {
		if allow := allowOrigin(c.GetHeader("Origin"), config.AllowedOrigins); allow != "" {
			c.Header("Access-Control-Allow-Origin", allow)
		}
		setIfNotEmpty(c, "Access-Control-Expose-Headers", exposed)
		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		setIfNotEmpty(c, "Access-Control-Allow-Methods", methods)
		setIfNotEmpty(c, "Access-Control-Allow-Headers", headers)
		if config.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}

func setIfNotEmpty(c *gin.Context, key, value string) {
	if value != "" {
		c.Header(key, value)
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value, or "" when the
// origin is not allowed.
func allowOrigin(origin string, allowed []string) string {
	for _, a := range allowed {
		switch {
		case a == "*" && origin == "":
			return "*"
		case a == "*", a == origin && origin != "":
			return origin
		case strings.HasPrefix(a, "*.") && strings.HasSuffix(origin, a[1:]):
			return origin
		}
	}
	return ""
}
