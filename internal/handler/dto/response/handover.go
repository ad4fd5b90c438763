package response

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
)

type HandoverResponse struct {
	Date        string    `json:"date"`
	Summary     string    `json:"summary"`
	Boarders    int       `json:"boarders"`
	GeneratedAt time.Time `json:"generatedAt"`
	Cached      bool      `json:"cached"`
}

type StepResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DiagnosticsResponse struct {
	Backend  string       `json:"backend"`
	DemoMode bool         `json:"demoMode"`
	Secrets  StepResponse `json:"secrets"`
	Network  StepResponse `json:"network"`
	Query    StepResponse `json:"query"`
}

func FromHandoverSummary(s *usecase.HandoverSummary) HandoverResponse {
	return HandoverResponse{
		Date:        reservation.FormatDay(s.Day),
		Summary:     s.Text,
		Boarders:    s.Boarders,
		GeneratedAt: s.GeneratedAt,
		Cached:      s.Cached,
	}
}

func FromDiagnosticReport(r usecase.DiagnosticReport) DiagnosticsResponse {
	step := func(s usecase.StepResult) StepResponse {
		return StepResponse{Status: string(s.Status), Message: s.Message}
	}
	return DiagnosticsResponse{
		Backend:  r.Backend,
		DemoMode: r.DemoMode,
		Secrets:  step(r.Secrets),
		Network:  step(r.Network),
		Query:    step(r.Query),
	}
}
