// Package ai produces the daily handover summary with Gemini.
package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"google.golang.org/genai"
)

var (
	ErrNotConfigured   = errs.New("AI summary is not configured")
	ErrServiceFailure  = errs.New("Failed to communicate with the AI service.")
	ErrEmptyAIResponse = errs.New("AI service returned an empty response")
)

// ContentGenerator is the part of *genai.Models the summarizer uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Summarizer struct {
	models      ContentGenerator
	model       string
	temperature float32
	topP        float32
	logger      *slog.Logger
}

// NewSummarizer returns a summarizer whose every call fails with
// ErrNotConfigured when no API key is set.
func NewSummarizer(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Summarizer, error) {
	s := &Summarizer{
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		logger:      logger,
	}
	key := cfg.Key()
	if key == "" {
		logger.Info("AI summary disabled: no GEMINI_API_KEY or API_KEY")
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	s.models = client.Models
	return s, nil
}

// NewSummarizerWith wires an existing generator.
func NewSummarizerWith(models ContentGenerator, cfg config.AIConfig, logger *slog.Logger) *Summarizer {
	return &Summarizer{
		models:      models,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		logger:      logger,
	}
}

func (s *Summarizer) Enabled() bool {
	return s.models != nil
}

func (s *Summarizer) GenerateSummary(ctx context.Context, boarders []*reservation.Reservation, day time.Time, all []*reservation.Reservation) (string, error) {
	if s.models == nil {
		err := errs.WithUserMessage(ErrNotConfigured, "AI summary is not configured. Set GEMINI_API_KEY to enable it.")
		return "", errs.Mark(err, errs.ErrSummaryGenerationFailed)
	}

	prompt := BuildPrompt(boarders, reservation.NormalizeDay(day), all)
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.temperature),
		TopP:        genai.Ptr(s.topP),
	})
	if err != nil {
		s.logger.Error("Error calling Gemini API", slog.String("error", err.Error()))
		wrapped := errs.WithUserMessage(errs.Wrap(ErrServiceFailure, err.Error()), ErrServiceFailure.Error())
		return "", errs.Mark(wrapped, errs.ErrSummaryGenerationFailed)
	}

	text := responseText(resp)
	if text == "" {
		wrapped := errs.WithUserMessage(errs.Mark(ErrEmptyAIResponse, ErrServiceFailure), ErrServiceFailure.Error())
		return "", errs.Mark(wrapped, errs.ErrSummaryGenerationFailed)
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
