package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/report"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PDFRenderer turns report HTML into a PDF document.
type PDFRenderer interface {
	Enabled() bool
	Render(ctx context.Context, html []byte) ([]byte, error)
}

type HandoverHandler struct {
	handover usecase.HandoverUseCase
	pdf      PDFRenderer
}

func NewHandoverHandler(handover usecase.HandoverUseCase, pdf PDFRenderer) *HandoverHandler {
	return &HandoverHandler{handover: handover, pdf: pdf}
}

// @Summary Generate handover summary
// @Description AI summary of the animals present on a day. Cached per day until reservations change.
// @Tags handover
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.HandoverResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /handover/{date} [post]
func (h *HandoverHandler) Generate(c *gin.Context) {
	day, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	refresh, _ := strconv.ParseBool(c.Query("refresh"))

	summary, err := h.handover.Generate(c.Request.Context(), day, refresh)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHandoverSummary(summary))
}

// @Summary Printable handover report
// @Description HTML page for printing, or a PDF when format=pdf and PDF rendering is enabled
// @Tags handover
// @Produce html
// @Produce application/pdf
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param format query string false "html (default) or pdf"
// @Success 200 {string} string
// @Failure 400 {object} httperr.Response
// @Failure 501 {object} httperr.Response
// @Router /handover/{date}/report [get]
func (h *HandoverHandler) Report(c *gin.Context) {
	day, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	format := c.DefaultQuery("format", "html")
	if format != "html" && format != "pdf" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "format must be html or pdf", nil)
		return
	}
	if format == "pdf" && !h.pdf.Enabled() {
		httperr.AbortWithError(c, http.StatusNotImplemented, report.ErrPDFDisabled, "PDF reports are not enabled", nil)
		return
	}

	summary, err := h.handover.Generate(c.Request.Context(), day, false)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	page, err := report.RenderHTML(report.Handover{
		Day:         summary.Day,
		Summary:     summary.Text,
		Boarders:    summary.Boarders,
		GeneratedAt: summary.GeneratedAt,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render report", nil)
		return
	}

	if format == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	pdf, err := h.pdf.Render(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render PDF report", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="handover-%s.pdf"`, c.Param("date")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
