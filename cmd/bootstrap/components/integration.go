package components

import (
	"context"
	"log/slog"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/ai"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/report"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationModule wires the external services: Gemini and headless Chromium.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			NewSummarizer,
			fx.As(new(shared.SummaryGenerator)),
		),
		fx.Annotate(
			NewPDFRenderer,
			fx.As(new(api.PDFRenderer)),
		),
	),
)

func NewSummarizer(cfg config.Config, logger *slog.Logger) (*ai.Summarizer, error) {
	return ai.NewSummarizer(context.Background(), cfg.AI, logger)
}

func NewPDFRenderer(cfg config.Config) *report.PDFRenderer {
	return report.NewPDFRenderer(cfg.Report.PDFEnabled, cfg.Report.PDFTimeout)
}
