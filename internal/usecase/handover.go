package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/occupancy"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"
)

type HandoverSummary struct {
	Day         time.Time
	Text        string
	Boarders    int
	GeneratedAt time.Time
	Cached      bool
}

type HandoverUseCase interface {
	// Generate returns the summary for day, reusing a cached one unless refresh is set.
	Generate(ctx context.Context, day time.Time, refresh bool) (*HandoverSummary, error)
	ReservationsChanged()
}

type handoverUseCaseImpl struct {
	store     shared.ReservationStore
	generator shared.SummaryGenerator
	clock     clock.Clock
	logger    *slog.Logger

	mu    sync.Mutex
	cache map[string]HandoverSummary
	// epoch advances on every change so a generation that started before
	// the change is not cached.
	epoch uint64
}

func NewHandoverUseCase(
	store shared.ReservationStore,
	generator shared.SummaryGenerator,
	clk clock.Clock,
	logger *slog.Logger,
) HandoverUseCase {
	return &handoverUseCaseImpl{
		store:     store,
		generator: generator,
		clock:     clk,
		logger:    logger,
		cache:     make(map[string]HandoverSummary),
	}
}

func (h *handoverUseCaseImpl) Generate(ctx context.Context, day time.Time, refresh bool) (*HandoverSummary, error) {
	d := reservation.NormalizeDay(day)
	key := reservation.FormatDay(d)

	if !refresh {
		if cached, ok := h.cached(key); ok {
			cached.Cached = true
			return &cached, nil
		}
	}

	epoch := h.currentEpoch()
	all, err := h.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	boarders := occupancy.Present(all, d)

	text, err := h.generator.GenerateSummary(ctx, boarders, d, all)
	if err != nil {
		h.logger.Warn("handover summary generation failed", "day", key, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrSummaryGenerationFailed)
	}

	summary := HandoverSummary{
		Day:         d,
		Text:        text,
		Boarders:    len(boarders),
		GeneratedAt: h.clock.Now(),
	}
	h.mu.Lock()
	if h.epoch == epoch {
		h.cache[key] = summary
	}
	h.mu.Unlock()

	return &summary, nil
}

// ReservationsChanged drops every cached summary.
func (h *handoverUseCaseImpl) ReservationsChanged() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.epoch++
	if len(h.cache) > 0 {
		h.cache = make(map[string]HandoverSummary)
	}
}

func (h *handoverUseCaseImpl) currentEpoch() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.epoch
}

func (h *handoverUseCaseImpl) cached(key string) (HandoverSummary, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.cache[key]
	return s, ok
}
