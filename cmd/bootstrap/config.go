package bootstrap

import (
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
