//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/httptest"
	usecasemock "github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakePDF struct {
	enabled bool
	out     []byte
	err     error
	got     []byte
}

func (f *fakePDF) Enabled() bool { return f.enabled }

func (f *fakePDF) Render(_ context.Context, html []byte) ([]byte, error) {
	f.got = html
	return f.out, f.err
}

type HandoverHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockHandover *usecasemock.MockHandoverUseCase
	pdf          *fakePDF
}

func (s *HandoverHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHandover = usecasemock.NewMockHandoverUseCase(s.mockCtrl)
	s.pdf = &fakePDF{enabled: true, out: []byte("%PDF-1.4")}
	h := api.NewHandoverHandler(s.mockHandover, s.pdf)

	s.router.POST("/handover/:date", h.Generate)
	s.router.GET("/handover/:date/report", h.Report)
}

func (s *HandoverHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandoverHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandoverHandlerTestSuite))
}

func (s *HandoverHandlerTestSuite) summary() *usecase.HandoverSummary {
	return &usecase.HandoverSummary{
		Day:         builder.Day("2025-03-11"),
		Text:        "Good morning!\nMochi needs <b>insulin</b>.",
		Boarders:    2,
		GeneratedAt: time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
	}
}

func (s *HandoverHandlerTestSuite) TestGenerate() {
	day := builder.Day("2025-03-11")

	s.Run("success: uses the cache by default", func() {
		cached := s.summary()
		cached.Cached = true
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).Return(cached, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/handover/2025-03-11", nil, "")

		var response resdto.HandoverResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-03-11", response.Date)
		s.Equal(2, response.Boarders)
		s.True(response.Cached)
	})

	s.Run("success: refresh bypasses the cache", func() {
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, true).Return(s.summary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/handover/2025-03-11?refresh=true", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 502 with the generator's message", func() {
		err := errs.Mark(
			errs.WithUserMessage(errors.New("401 from model"), "The AI service rejected the API key."),
			errs.ErrSummaryGenerationFailed,
		)
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/handover/2025-03-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "The AI service rejected the API key.")
	})

	s.Run("error: 502 with the default message", func() {
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).
			Return(nil, errs.Mark(errors.New("eof"), errs.ErrSummaryGenerationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/handover/2025-03-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to communicate with the AI service.")
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/handover/today", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *HandoverHandlerTestSuite) TestReport() {
	day := builder.Day("2025-03-11")

	s.Run("success: html page with escaped summary", func() {
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).Return(s.summary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/handover/2025-03-11/report", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertContentType(s.T(), rec, "text/html")
		s.Contains(rec.Body.String(), "Handover Summary for Tuesday, March 11, 2025")
		s.Contains(rec.Body.String(), "Good morning!<br>Mochi needs &lt;b&gt;insulin&lt;/b&gt;.")
	})

	s.Run("success: pdf attachment", func() {
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).Return(s.summary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/handover/2025-03-11/report?format=pdf", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertContentType(s.T(), rec, "application/pdf")
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Disposition": `attachment; filename="handover-2025-03-11.pdf"`,
		})
		s.Equal("%PDF-1.4", rec.Body.String())
		s.Contains(string(s.pdf.got), "<title>Handover Summary for Tuesday, March 11, 2025</title>")
	})

	s.Run("error: 501 when pdf is disabled", func() {
		s.pdf.enabled = false

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/handover/2025-03-11/report?format=pdf", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotImplemented, "PDF reports are not enabled")
	})

	s.Run("error: 400 on unknown format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/handover/2025-03-11/report?format=docx", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "format must be html or pdf")
	})

	s.Run("error: 500 when chromium fails", func() {
		s.pdf.enabled = true
		s.pdf.err = errors.New("chrome not found")
		s.mockHandover.EXPECT().Generate(gomock.Any(), day, false).Return(s.summary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/handover/2025-03-11/report?format=pdf", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to render PDF report")
	})
}
