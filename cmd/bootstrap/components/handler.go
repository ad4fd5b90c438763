package components

import (
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		api.NewHandoverHandler,
		api.NewDiagnosticsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Calendar    *api.CalendarHandler
	Handover    *api.HandoverHandler
	Diagnostics *api.DiagnosticsHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Reservation: p.Reservation,
		Calendar:    p.Calendar,
		Handover:    p.Handover,
		Diagnostics: p.Diagnostics,
	}
}
