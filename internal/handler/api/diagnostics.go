package api

import (
	"net/http"

	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DiagnosticsHandler struct {
	diagnostics usecase.DiagnosticsUseCase
}

func NewDiagnosticsHandler(diagnostics usecase.DiagnosticsUseCase) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagnostics: diagnostics}
}

// @Summary Connection diagnostics
// @Description Checks database settings, connectivity and access to the reservations table, in that order
// @Tags diagnostics
// @Produce json
// @Success 200 {object} resdto.DiagnosticsResponse
// @Router /diagnostics [get]
func (h *DiagnosticsHandler) Run(c *gin.Context) {
	report := h.diagnostics.Run(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromDiagnosticReport(report))
}
