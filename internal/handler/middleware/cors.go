package middleware

import (
	"log/slog"
	"slices"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware accepts "*" in CORS_ALLOW_ORIGINS for a kiosk-style
// deployment. Cookies are never sent to wildcard origins.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := corsConfig(cfg)
	logger.Info("CORS middleware initialized",
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_origins", corsCfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		out.AllowAllOrigins = true
		out.AllowCredentials = false
		return out
	}
	out.AllowOrigins = cfg.AllowOrigins
	return out
}
