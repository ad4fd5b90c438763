package usecase

import (
	"context"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/icsfeed"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"
)

type CalendarFeedUseCase interface {
	// ICS returns every active reservation as an iCalendar document.
	ICS(ctx context.Context) (string, error)
}

type calendarFeedUseCaseImpl struct {
	store shared.ReservationStore
	clock clock.Clock
}

func NewCalendarFeedUseCase(store shared.ReservationStore, clk clock.Clock) CalendarFeedUseCase {
	return &calendarFeedUseCaseImpl{store: store, clock: clk}
}

func (u *calendarFeedUseCaseImpl) ICS(ctx context.Context) (string, error) {
	all, err := u.store.List(ctx)
	if err != nil {
		return "", shared.StoreErr(err)
	}
	return icsfeed.Build(all, u.clock.Now()), nil
}
