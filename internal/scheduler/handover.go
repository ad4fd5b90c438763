// Package scheduler pre-generates the morning handover summary so it is
// ready in the cache when the shift starts.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

type HandoverScheduler struct {
	cron     *cron.Cron
	spec     string
	handover usecase.HandoverUseCase
	clock    clock.Clock
	logger   *slog.Logger
}

// NewHandoverScheduler validates spec up front. An empty spec yields a
// scheduler whose Start and Stop do nothing.
func NewHandoverScheduler(spec string, handover usecase.HandoverUseCase, clk clock.Clock, logger *slog.Logger) (*HandoverScheduler, error) {
	s := &HandoverScheduler{
		spec:     spec,
		handover: handover,
		clock:    clk,
		logger:   logger,
	}
	if spec == "" {
		return s, nil
	}

	s.cron = cron.New(cron.WithChain(cron.Recover(cronLogger{logger})))
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HandoverScheduler) Start() {
	if s.cron == nil {
		s.logger.Info("handover scheduler disabled")
		return
	}
	s.logger.Info("handover scheduler started", slog.String("schedule", s.spec))
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *HandoverScheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce generates and caches today's summary.
func (s *HandoverScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := clock.Today(s.clock)
	summary, err := s.handover.Generate(ctx, today, true)
	if err != nil {
		s.logger.Warn("scheduled handover summary failed",
			slog.String("day", today.Format("2006-01-02")),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Info("scheduled handover summary ready",
		slog.String("day", today.Format("2006-01-02")),
		slog.Int("boarders", summary.Boarders),
	)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}
