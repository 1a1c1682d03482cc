package casegen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/extract"
	"github.com/edlume/caselab/internal/llm"
)

// Generator produces case scenarios from source text using the model
// provider pair.
//
// Unlike evaluation, generation has no heuristic fallback: when both
// providers fail the error propagates, because fabricating scenario
// content deterministically would be pedagogically meaningless.
type Generator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, config: cfg, log: log}
}

// Generate produces a batch of validated scenarios from source text.
// Unparseable model output yields an empty slice and a nil error;
// callers distinguish that from provider failure, which returns an error.
func (g *Generator) Generate(ctx context.Context, source string, opts Options) ([]Scenario, error) {
	ctx = llm.WithPurpose(ctx, "scenario-gen")

	req := llm.Request{
		System: systemPrompt(opts.IncludeFlaws),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(source, opts, g.config.MaxSourceChars)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("scenario generation: %w", err)
	}

	items := extract.Array(resp.Text)
	scenarios := make([]Scenario, 0, len(items))
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			g.log.Debug("dropping non-object scenario element", zap.Int("index", i))
			continue
		}
		s := scenarioFromRaw(raw, i)
		if s.Content == "" {
			// Content is the one field a scenario cannot exist without.
			// Drop it rather than surface a corrupt entry.
			g.log.Debug("dropping scenario with empty content", zap.String("id", s.ID))
			continue
		}
		scenarios = append(scenarios, s)
	}

	g.log.Info("scenario batch generated",
		zap.String("source", resp.Source),
		zap.Int("requested", opts.Count),
		zap.Int("kept", len(scenarios)),
		zap.Int("dropped", len(items)-len(scenarios)),
	)
	return scenarios, nil
}

// scenarioFromRaw maps one raw array element into a validated Scenario,
// defaulting missing id/title to positional placeholders and coercing the
// flaw fields onto their closed sets.
func scenarioFromRaw(raw map[string]any, index int) Scenario {
	s := Scenario{
		ID:      strings.TrimSpace(extract.Str(raw, "id")),
		Title:   strings.TrimSpace(extract.Str(raw, "title")),
		Content: strings.TrimSpace(extract.Str(raw, "content")),
		Domain:  strings.TrimSpace(extract.Str(raw, "domain")),
	}

	if s.ID == "" {
		s.ID = fmt.Sprintf("scenario-%d", index+1)
	}
	if s.Title == "" {
		s.Title = fmt.Sprintf("Scenario %d", index+1)
	}

	if flaw := strings.TrimSpace(extract.Str(raw, "embedded_flaw")); flaw != "" {
		s.EmbeddedFlaw = flaw
		s.FlawType = coerceFlawType(extract.Str(raw, "flaw_type"))
		s.Difficulty = coerceDifficulty(int(extract.Score(raw["difficulty"])))
		s.CorrectIdentification = strings.TrimSpace(extract.Str(raw, "correct_identification"))
		s.TeacherNotes = strings.TrimSpace(extract.Str(raw, "teacher_notes"))
	}

	return s
}
