//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/occupancy"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/httptest"
	queriesmock "github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/mock/queries"
	usecasemock "github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	mockFeed    *usecasemock.MockCalendarFeedUseCase
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockFeed = usecasemock.NewMockCalendarFeedUseCase(s.mockCtrl)
	h := api.NewCalendarHandler(s.mockQueries, s.mockFeed)

	s.router.GET("/days/:date", h.Day)
	s.router.GET("/calendar/:year/:month", h.Month)
	s.router.GET("/calendar.ics", h.ICS)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestDay() {
	day := builder.Day("2025-03-11")
	mochi := builder.NewReservationBuilder().MustBuild()
	bandit := builder.NewReservationBuilder().WithAnimal("Bandit", reservation.AnimalFerret).WithStay("2025-03-11", "2025-03-11").MustBuild()

	s.Run("success: breakdown with type counts", func() {
		s.mockQueries.EXPECT().Daily(gomock.Any(), day, "").Return(&occupancy.DailyBreakdown{
			Day:              day,
			Arriving:         []*reservation.Reservation{bandit},
			Departing:        []*reservation.Reservation{bandit},
			StayingOvernight: []*reservation.Reservation{mochi},
			Boarding:         []*reservation.Reservation{mochi, bandit},
			Types: []occupancy.TypeCount{
				{Type: reservation.AnimalCat, Count: 1},
				{Type: reservation.AnimalFerret, Count: 1},
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/days/2025-03-11", nil, "")

		var response resdto.DailyBreakdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-03-11", response.Date)
		s.Len(response.Arriving, 1)
		s.Len(response.StayingOvernight, 1)
		s.Len(response.Boarding, 2)
		s.Equal([]resdto.TypeCountResponse{{Type: "Cat", Count: 1}, {Type: "Ferret", Count: 1}}, response.Types)
	})

	s.Run("success: filter is forwarded", func() {
		s.mockQueries.EXPECT().Daily(gomock.Any(), day, "silva").
			Return(&occupancy.DailyBreakdown{Day: day}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/days/2025-03-11?q=silva", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"date":"2025-03-11","arriving":[],"departing":[],"stayingOvernight":[],"boarding":[],"types":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/days/11-03-2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *CalendarHandlerTestSuite) TestMonth() {
	s.Run("success: 42 cells", func() {
		cells := make([]occupancy.Cell, 42)
		first := builder.Day("2025-02-23")
		for i := range cells {
			d := reservation.AddDays(first, i)
			cells[i] = occupancy.Cell{Day: d, InMonth: d.Month() == time.March}
		}
		s.mockQueries.EXPECT().Month(gomock.Any(), 2025, time.March).Return(cells, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2025/3", nil, "")

		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2025, response.Year)
		s.Equal(3, response.Month)
		s.Len(response.Cells, 42)
		s.Equal("2025-02-23", response.Cells[0].Date)
		s.False(response.Cells[0].InMonth)
		s.True(response.Cells[6].InMonth)
	})

	s.Run("error: 400 on month out of range", func() {
		s.mockQueries.EXPECT().Month(gomock.Any(), 2025, time.Month(13)).Return(nil, queries.ErrInvalidMonth).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2025/13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "month must be between 1 and 12")
	})

	s.Run("error: 400 on non-numeric path values", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/next/3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid year")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2025/march", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid month")
	})
}

func (s *CalendarHandlerTestSuite) TestICS() {
	s.Run("success: serves text/calendar", func() {
		body := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
		s.mockFeed.EXPECT().ICS(gomock.Any()).Return(body, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar.ics", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertContentType(s.T(), rec, "text/calendar")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Disposition": `inline; filename="boarding.ics"`})
		s.Equal(body, rec.Body.String())
	})

	s.Run("error: store unavailable", func() {
		s.mockFeed.EXPECT().ICS(gomock.Any()).Return("", errs.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar.ics", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
