//go:build unit

package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/ai"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records the last request and answers with a canned response.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = cfg
	return f.resp, f.err
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func aiConfig() config.AIConfig {
	return config.NewTestConfig().AI
}

func TestSummarizer_GenerateSummary(t *testing.T) {
	ctx := context.Background()
	day := builder.Day("2024-06-03")
	boarders := []*reservation.Reservation{builder.NewReservationBuilder().WithStay("2024-06-03", "2024-06-04").MustBuild()}

	t.Run("success: sends the prompt with the configured sampling", func(t *testing.T) {
		fake := &fakeModels{resp: textResponse(
			&genai.Part{Text: "thinking...", Thought: true},
			&genai.Part{Text: "Good morning team. "},
			&genai.Part{Text: "Mochi arrives today."},
		)}
		s := ai.NewSummarizerWith(fake, aiConfig(), testutil.DiscardLogger())
		require.True(t, s.Enabled())

		text, err := s.GenerateSummary(ctx, boarders, day, boarders)
		require.NoError(t, err)
		assert.Equal(t, "Good morning team. Mochi arrives today.", text)

		assert.Equal(t, aiConfig().Model, fake.model)
		require.Len(t, fake.contents, 1)
		require.Len(t, fake.contents[0].Parts, 1)
		assert.Equal(t, ai.BuildPrompt(boarders, day, boarders), fake.contents[0].Parts[0].Text)
		require.NotNil(t, fake.config.Temperature)
		assert.InDelta(t, 0.5, *fake.config.Temperature, 1e-6)
		assert.InDelta(t, 0.95, *fake.config.TopP, 1e-6)
	})

	t.Run("error: transport failure", func(t *testing.T) {
		fake := &fakeModels{err: errors.New("googleapi: 429")}
		s := ai.NewSummarizerWith(fake, aiConfig(), testutil.DiscardLogger())

		_, err := s.GenerateSummary(ctx, boarders, day, boarders)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSummaryGenerationFailed))
		assert.True(t, errs.Is(err, ai.ErrServiceFailure))
		assert.Equal(t, "Failed to communicate with the AI service.", errs.UserMessage(err, ""))
	})

	t.Run("error: empty response", func(t *testing.T) {
		for name, resp := range map[string]*genai.GenerateContentResponse{
			"nil response":  nil,
			"no candidates": {},
			"only thoughts": textResponse(&genai.Part{Text: "hmm", Thought: true}),
			"blank text":    textResponse(&genai.Part{Text: "  \n"}),
		} {
			t.Run(name, func(t *testing.T) {
				s := ai.NewSummarizerWith(&fakeModels{resp: resp}, aiConfig(), testutil.DiscardLogger())

				_, err := s.GenerateSummary(ctx, boarders, day, boarders)
				assert.True(t, errs.Is(err, ai.ErrEmptyAIResponse))
				assert.True(t, errs.Is(err, errs.ErrSummaryGenerationFailed))
			})
		}
	})

	t.Run("error: no API key", func(t *testing.T) {
		cfg := aiConfig()
		cfg.APIKey = ""
		cfg.FallbackAPIKey = ""

		s, err := ai.NewSummarizer(ctx, cfg, testutil.DiscardLogger())
		require.NoError(t, err)
		assert.False(t, s.Enabled())

		_, err = s.GenerateSummary(ctx, boarders, day, boarders)
		assert.True(t, errs.Is(err, ai.ErrNotConfigured))
		assert.Contains(t, errs.UserMessage(err, ""), "GEMINI_API_KEY")
	})
}
