package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// createCORSMiddleware builds the CORS middleware from CORS_ENABLED and
// CORS_ALLOW_ORIGINS. It returns nil, meaning no middleware, when CORS is off or
// the origin list is empty. A "*" entry allows every origin.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("cors enabled without any allowed origin, skipping")
		return nil
	}

	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        corsMaxAge,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	logger.Info("cors enabled", slog.Any("origins", origins))
	return cors.New(cfg)
}

// parseOrigins splits a comma separated list, dropping blanks.
func parseOrigins(raw string) []string {
	var origins []string
	for part := range strings.SplitSeq(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
