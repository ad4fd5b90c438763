package bootstrap

import (
	"log/slog"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/middleware"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"go.uber.org/fx"
)

// LoggerModule provides the one *slog.Logger shared by process and request logs.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *slog.Logger {
			return middleware.NewLogger(cfg.Log)
		},
	),
)
