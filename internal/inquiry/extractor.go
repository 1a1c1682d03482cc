package inquiry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/extract"
	"github.com/edlume/caselab/internal/llm"
)

// Extractor pulls keyword pools out of source text using the model
// provider pair. Like scenario generation, total provider failure
// propagates: there is no meaningful deterministic substitute for
// extracted keywords.
type Extractor struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// NewExtractor creates an Extractor with the given provider and config.
func NewExtractor(provider llm.Provider, cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{provider: provider, config: cfg, log: log}
}

// Extract returns the two keyword pools for source text. Shape problems in
// the model output never error: an absent or wrong-typed pool field comes
// back as an empty slice, and callers treat empty pools as "extraction
// yielded nothing usable".
func (e *Extractor) Extract(ctx context.Context, source string, opts Options) (Pools, error) {
	ctx = llm.WithPurpose(ctx, "keyword-extract")

	req := llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(source, opts, e.config.MaxSourceChars)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Complete(ctx, req)
	if err != nil {
		return Pools{}, fmt.Errorf("keyword extraction: %w", err)
	}

	raw := extract.Object(resp.Text)
	pools := Pools{
		Concepts:    cleanPool(raw["concepts"]),
		ActionVerbs: cleanPool(raw["action_verbs"]),
	}

	e.log.Info("keyword pools extracted",
		zap.String("source", resp.Source),
		zap.Int("concepts", len(pools.Concepts)),
		zap.Int("action_verbs", len(pools.ActionVerbs)),
	)
	return pools, nil
}

// cleanPool trims, drops empties, and deduplicates while preserving the
// model's order. Non-array input yields an empty pool.
func cleanPool(v any) []string {
	items := extract.StringSlice(v)
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
