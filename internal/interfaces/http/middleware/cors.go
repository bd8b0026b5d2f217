package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig returns the CORS defaults. AllowOrigins is empty:
// an unconfigured deployment rejects all cross-origin requests.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-ID", "Accept", "Origin"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// CORSWithConfig returns a CORS middleware with the given configuration
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowWildcard := false
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			allowWildcard = true
			break
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if c.Request.Method == http.MethodOptions {
			if allowed := resolveOrigin(cfg.AllowOrigins, allowWildcard, origin); allowed != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
				if cfg.AllowCredentials && allowed != "*" {
					c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				setCORSHeaders(c, cfg)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		allowed := resolveOrigin(cfg.AllowOrigins, allowWildcard, origin)
		if allowed != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
			if cfg.AllowCredentials && allowed != "*" {
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if len(cfg.ExposeHeaders) > 0 {
				c.Writer.Header().Set("Access-Control-Expose-Headers", strings.Join(cfg.ExposeHeaders, ", "))
			}
		}

		c.Next()
	}
}

func resolveOrigin(allowOrigins []string, allowWildcard bool, origin string) string {
	if len(allowOrigins) == 0 {
		return ""
	}
	if allowWildcard {
		return "*"
	}
	for _, o := range allowOrigins {
		if o == origin {
			return origin
		}
	}
	return ""
}

func setCORSHeaders(c *gin.Context, cfg CORSConfig) {
	c.Writer.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
	c.Writer.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
	if cfg.MaxAge > 0 {
		c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(int(cfg.MaxAge.Seconds())))
	}
}
