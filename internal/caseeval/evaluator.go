package caseeval

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/extract"
	"github.com/edlume/caselab/internal/llm"
)

// Evaluator scores student responses against case scenarios.
//
// Evaluate is a total function: students must always receive some
// assessment outcome, even during a full provider outage, so total
// provider failure degrades to the length heuristic instead of erroring.
type Evaluator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates an Evaluator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{provider: provider, config: cfg, log: log}
}

// Evaluate scores one response against one scenario. It never returns an
// error.
func (e *Evaluator) Evaluate(ctx context.Context, scenario casegen.Scenario, resp StudentResponse, opts Options) Result {
	start := time.Now()
	ctx = llm.WithPurpose(ctx, "case-eval")

	req := llm.Request{
		System: evalSystemPrompt(scenario),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(scenario, resp, opts)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	out, err := e.provider.Complete(ctx, req)
	if err != nil {
		e.log.Warn("all providers failed, falling back to heuristic evaluation",
			zap.String("scenario_id", scenario.ID),
			zap.Error(err),
		)
		result := Heuristic(resp)
		result.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()
		return result
	}

	result := assembleResult(extract.Object(out.Text))
	result.Metadata = Metadata{
		Model:            modelLabel(out),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	return result
}

// assembleResult maps the extracted object into a Result, normalizing each
// dimension independently so a single malformed field degrades only itself.
func assembleResult(raw map[string]any) Result {
	r := Result{
		Understanding:        extract.Score(raw["understanding"]),
		Ingenuity:            extract.Score(raw["ingenuity"]),
		CriticalThinking:     extract.Score(raw["critical_thinking"]),
		RealWorldApplication: extract.Score(raw["real_world_application"]),
		FlawIdentified:       extract.Bool(raw, "flaw_identified"),
		FlawAnalysis:         extract.Str(raw, "flaw_analysis"),
		Feedback:             extract.Str(raw, "feedback"),
		Strengths:            extract.StringSlice(raw["strengths"]),
		Improvements:         extract.StringSlice(raw["improvements"]),
	}

	r.OverallScore = extract.Round1((r.Understanding + r.Ingenuity + r.CriticalThinking + r.RealWorldApplication) / 4)

	if r.Feedback == "" {
		r.Feedback = defaultFeedback
	}
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Improvements == nil {
		r.Improvements = []string{}
	}
	return r
}

// modelLabel prefers the failover source label; a bare provider (tests,
// probes) is identified by its model name.
func modelLabel(resp *llm.Response) string {
	if resp.Source != "" {
		return resp.Source
	}
	return resp.Model
}
