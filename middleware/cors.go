package middleware

import (
	"slices"
	"strings"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured origins. "*" or an empty list allows
// every origin; entries like "https://*.example.com" match subdomains.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Accept",
			"X-Requested-With",
			HeaderRequestID,
		},
		ExposeHeaders: []string{"Content-Length", HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
		return cors.New(corsConfig)
	}

	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	for _, origin := range cfg.AllowedOrigins {
		if strings.Contains(origin, "*") {
			corsConfig.AllowWildcard = true
			break
		}
	}
	return cors.New(corsConfig)
}
