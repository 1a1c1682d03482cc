package caseeval

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/llm"
)

func batchScenarios(n int) []casegen.Scenario {
	out := make([]casegen.Scenario, n)
	for i := range out {
		out[i] = casegen.Scenario{
			ID:      fmt.Sprintf("s%d", i+1),
			Title:   fmt.Sprintf("Scenario %d", i+1),
			Content: "content",
		}
	}
	return out
}

func scoredJSON(score float64) string {
	return fmt.Sprintf(`{"understanding": %[1]v, "ingenuity": %[1]v, "critical_thinking": %[1]v, "real_world_application": %[1]v, "feedback": "ok"}`, score)
}

func TestEvaluateAll_OrderAndLength(t *testing.T) {
	// Providers answer in FIFO order; with one worker per scenario inside
	// a chunk, each result must still land at its scenario's index.
	scenarios := batchScenarios(7)
	responses := map[string]StudentResponse{}
	mock := llm.NewMockProvider()
	for range scenarios {
		mock.AddResponse(llm.MockResponse{Text: scoredJSON(8)})
	}

	ev := New(mock, DefaultConfig(), zap.NewNop())
	br := ev.EvaluateAll(context.Background(), scenarios, responses, Options{})

	if len(br.Results) != len(scenarios) {
		t.Fatalf("expected %d results, got %d", len(scenarios), len(br.Results))
	}
	for i, r := range br.Results {
		if r.OverallScore != 8 {
			t.Fatalf("result %d has score %v", i, r.OverallScore)
		}
	}
	if br.OverallScore != 8 || !br.Passed {
		t.Fatalf("unexpected aggregate: %+v", br)
	}
}

func TestEvaluateAll_MissingResponsesStillScored(t *testing.T) {
	// Empty response map: every scenario is evaluated against an empty
	// response; prompts carry explicit placeholders.
	scenarios := batchScenarios(2)
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: scoredJSON(4)},
		llm.MockResponse{Text: scoredJSON(4)},
	)
	ev := New(mock, DefaultConfig(), zap.NewNop())

	br := ev.EvaluateAll(context.Background(), scenarios, map[string]StudentResponse{}, Options{})
	if len(br.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(br.Results))
	}
	for _, call := range mock.Calls {
		if !strings.Contains(call.Messages[0].Content, noResponsePlaceholder) {
			t.Fatal("missing response not surfaced as placeholder")
		}
	}
	if br.Passed {
		t.Fatal("score 4 must not pass the 6.0 threshold")
	}
}

func TestEvaluateAll_AggregateMean(t *testing.T) {
	scenarios := batchScenarios(3)
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: scoredJSON(9)},
		llm.MockResponse{Text: scoredJSON(6)},
		llm.MockResponse{Text: scoredJSON(5)},
	)
	ev := New(mock, DefaultConfig(), zap.NewNop())

	br := ev.EvaluateAll(context.Background(), scenarios, map[string]StudentResponse{}, Options{})

	// Individual scores are assigned concurrently within a chunk, but the
	// mean is order-independent: (9+6+5)/3 = 6.666... → 6.7.
	if br.OverallScore != 6.7 {
		t.Fatalf("expected aggregate 6.7, got %v", br.OverallScore)
	}
	if !br.Passed {
		t.Fatal("6.7 passes the 6.0 threshold")
	}
}

func TestEvaluateAll_EmptyInput(t *testing.T) {
	ev := New(llm.NewMockProvider(), DefaultConfig(), zap.NewNop())
	br := ev.EvaluateAll(context.Background(), nil, nil, Options{})

	if br.Results == nil || len(br.Results) != 0 {
		t.Fatalf("expected empty results, got %v", br.Results)
	}
	if br.Passed {
		t.Fatal("empty batch cannot pass")
	}
}

func TestEvaluateAll_OutageProducesHeuristicResults(t *testing.T) {
	scenarios := batchScenarios(4)
	primary := llm.NewMockProvider()  // empty queue: always errors
	fallback := llm.NewMockProvider() // empty queue: always errors
	ev := New(llm.NewFailover(primary, fallback, zap.NewNop()), DefaultConfig(), zap.NewNop())

	br := ev.EvaluateAll(context.Background(), scenarios, map[string]StudentResponse{
		"s2": {Issues: strings.Repeat("a", 500)},
	}, Options{})

	if len(br.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(br.Results))
	}
	for i, r := range br.Results {
		if r.Metadata.Model != HeuristicModel {
			t.Fatalf("result %d not heuristic: %q", i, r.Metadata.Model)
		}
	}
	// s2 wrote 500 chars (6.5), the rest nothing (1.5 each).
	if br.Results[1].OverallScore != 6.5 {
		t.Fatalf("expected 6.5 for the detailed response, got %v", br.Results[1].OverallScore)
	}
	if br.Results[0].OverallScore != 1.5 {
		t.Fatalf("expected 1.5 for empty responses, got %v", br.Results[0].OverallScore)
	}
	// (6.5 + 3*1.5) / 4 = 2.75 → 2.8
	if br.OverallScore != 2.8 {
		t.Fatalf("expected aggregate 2.8, got %v", br.OverallScore)
	}
}
