package middleware

import (
	"strconv"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/gin-gonic/gin"
)

// baseSecurityHeaders go out on every response regardless of environment.
var baseSecurityHeaders = [][2]string{
	{"X-Frame-Options", "DENY"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
}

// SecurityHeadersMiddleware sets the hardening headers. Strict-Transport-Security
// is only sent in production, with the max-age from cfg.Server, so local HTTP
// keeps working; a max-age of zero turns it off.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	hsts := hstsValue(cfg)

	return func(c *gin.Context) {
		for _, h := range baseSecurityHeaders {
			c.Header(h[0], h[1])
		}
		if hsts != "" {
			c.Header("Strict-Transport-Security", hsts)
		}
		c.Next()
	}
}

func hstsValue(cfg *config.Config) string {
	if !cfg.IsProduction() || cfg.Server.HSTSMaxAgeSeconds <= 0 {
		return ""
	}
	return "max-age=" + strconv.Itoa(cfg.Server.HSTSMaxAgeSeconds) + "; includeSubDomains"
}
