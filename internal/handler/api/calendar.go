package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const icsContentType = "text/calendar; charset=utf-8"

type CalendarHandler struct {
	q    queries.ReservationQueries
	feed usecase.CalendarFeedUseCase
}

func NewCalendarHandler(q queries.ReservationQueries, feed usecase.CalendarFeedUseCase) *CalendarHandler {
	return &CalendarHandler{q: q, feed: feed}
}

// @Summary Daily breakdown
// @Description Arrivals, departures, overnight stays and a per-type count for one day
// @Tags calendar
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} resdto.DailyBreakdownResponse
// @Failure 400 {object} httperr.Response
// @Router /days/{date} [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	day, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	b, err := h.q.Daily(c.Request.Context(), day, c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailyBreakdown(b))
}

// @Summary Month grid
// @Description Six Sunday-first weeks covering the month, with the animals present each day
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid year", nil)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	cells, err := h.q.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthGrid(year, time.Month(month), cells))
}

// @Summary iCalendar feed
// @Description All active reservations as all-day events
// @Tags calendar
// @Produce text/calendar
// @Success 200 {string} string
// @Router /calendar.ics [get]
func (h *CalendarHandler) ICS(c *gin.Context) {
	body, err := h.feed.ICS(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="boarding.ics"`)
	c.Data(http.StatusOK, icsContentType, []byte(body))
}
