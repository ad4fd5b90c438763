package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/scheduler"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewHandoverScheduler,
	),
	fx.Invoke(func(*scheduler.HandoverScheduler) {}),
)

func NewHandoverScheduler(lc fx.Lifecycle, cfg config.Config, handover usecase.HandoverUseCase, clk clock.Clock, logger *slog.Logger) (*scheduler.HandoverScheduler, error) {
	s, err := scheduler.NewHandoverScheduler(cfg.Scheduler.HandoverCron, handover, clk, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return s, nil
}
