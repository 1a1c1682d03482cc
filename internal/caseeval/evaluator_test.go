package caseeval

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/llm"
)

func testScenario() casegen.Scenario {
	return casegen.Scenario{
		ID:      "s1",
		Title:   "The Overbooked Clinic",
		Content: "A rural clinic schedules 40 patients for 20 slots.",
		Domain:  "healthcare",
	}
}

func testResponse() StudentResponse {
	return StudentResponse{
		Issues:   "Double-booking guarantees missed appointments.",
		Solution: "Introduce a triage line and stagger slot lengths.",
	}
}

func rubricJSON() string {
	return `{
		"understanding": 8,
		"ingenuity": 7.5,
		"critical_thinking": 6,
		"real_world_application": 7,
		"feedback": "Strong grasp of the scheduling conflict.",
		"strengths": ["identified the core issue", 42, "practical solution"],
		"improvements": ["quantify the impact"]
	}`
}

func TestEvaluate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: rubricJSON()})
	ev := New(mock, DefaultConfig(), zap.NewNop())

	r := ev.Evaluate(context.Background(), testScenario(), testResponse(), Options{})

	if r.Understanding != 8 || r.Ingenuity != 7.5 || r.CriticalThinking != 6 || r.RealWorldApplication != 7 {
		t.Fatalf("unexpected dimension scores: %+v", r)
	}
	// (8 + 7.5 + 6 + 7) / 4 = 7.125 → 7.1
	if r.OverallScore != 7.1 {
		t.Fatalf("expected overall 7.1, got %v", r.OverallScore)
	}
	if r.Feedback != "Strong grasp of the scheduling conflict." {
		t.Fatalf("unexpected feedback: %q", r.Feedback)
	}
	if len(r.Strengths) != 2 {
		t.Fatalf("non-string strengths not filtered: %v", r.Strengths)
	}
	if r.Metadata.Model != "mock" {
		t.Fatalf("unexpected model label: %q", r.Metadata.Model)
	}
	if r.Metadata.ProcessingTimeMs < 0 {
		t.Fatalf("negative processing time: %d", r.Metadata.ProcessingTimeMs)
	}
}

func TestEvaluate_FailoverLabelsResult(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	fallback := llm.NewMockProvider(llm.MockResponse{Text: rubricJSON()})
	ev := New(llm.NewFailover(primary, fallback, zap.NewNop()), DefaultConfig(), zap.NewNop())

	r := ev.Evaluate(context.Background(), testScenario(), testResponse(), Options{})
	if r.Metadata.Model != llm.SourceFallback {
		t.Fatalf("expected %q, got %q", llm.SourceFallback, r.Metadata.Model)
	}
}

func TestEvaluate_TotalOutageUsesHeuristic(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	fallback := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	ev := New(llm.NewFailover(primary, fallback, zap.NewNop()), DefaultConfig(), zap.NewNop())

	r := ev.Evaluate(context.Background(), testScenario(), testResponse(), Options{})

	if r.Metadata.Model != HeuristicModel {
		t.Fatalf("expected %q, got %q", HeuristicModel, r.Metadata.Model)
	}
	if r.Understanding != r.Ingenuity || r.Ingenuity != r.CriticalThinking || r.CriticalThinking != r.RealWorldApplication {
		t.Fatalf("heuristic dimensions must be equal: %+v", r)
	}
	if r.OverallScore != r.Understanding {
		t.Fatalf("heuristic overall must equal the dimension score: %+v", r)
	}
}

func TestEvaluate_MalformedOutputDegradesGracefully(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "The student did fine, I suppose."})
	ev := New(mock, DefaultConfig(), zap.NewNop())

	r := ev.Evaluate(context.Background(), testScenario(), testResponse(), Options{})

	// No usable signal: every dimension lands on the neutral default.
	for _, score := range []float64{r.Understanding, r.Ingenuity, r.CriticalThinking, r.RealWorldApplication, r.OverallScore} {
		if score != 5.0 {
			t.Fatalf("expected neutral 5.0, got %v in %+v", score, r)
		}
	}
	if r.Feedback == "" {
		t.Fatal("feedback must be defaulted, never empty")
	}
	if r.Strengths == nil || r.Improvements == nil {
		t.Fatal("strengths/improvements must be empty slices, not nil")
	}
}

func TestEvaluate_FlawStrictBool(t *testing.T) {
	scenario := testScenario()
	scenario.EmbeddedFlaw = "the clinic's math assumes 60-minute slots"
	scenario.FlawType = casegen.FlawFactual
	scenario.Difficulty = 2

	mock := llm.NewMockProvider(llm.MockResponse{Text: `{
		"understanding": 6, "ingenuity": 6, "critical_thinking": 6, "real_world_application": 6,
		"flaw_identified": "true",
		"flaw_analysis": "came close but never named it",
		"feedback": "ok"
	}`})
	ev := New(mock, DefaultConfig(), zap.NewNop())

	r := ev.Evaluate(context.Background(), scenario, testResponse(), Options{})
	if r.FlawIdentified {
		t.Fatal(`string "true" must not count as flaw identification`)
	}
	if r.FlawAnalysis != "came close but never named it" {
		t.Fatalf("unexpected flaw analysis: %q", r.FlawAnalysis)
	}
}

func TestEvaluate_PromptCarriesPlaceholders(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: rubricJSON()})
	ev := New(mock, DefaultConfig(), zap.NewNop())

	ev.Evaluate(context.Background(), testScenario(), StudentResponse{}, Options{})

	sent := mock.Calls[0].Messages[0].Content
	if got := strings.Count(sent, noResponsePlaceholder); got != 2 {
		t.Fatalf("expected 2 placeholders for empty fields, found %d in:\n%s", got, sent)
	}
}

func TestEvalSystemPrompt_FlawBlock(t *testing.T) {
	plain := evalSystemPrompt(testScenario())
	if strings.Contains(plain, "flaw_identified") {
		t.Fatal("flaw block present for flawless scenario")
	}

	flawed := testScenario()
	flawed.EmbeddedFlaw = "unit mix-up"
	withFlaw := evalSystemPrompt(flawed)
	if !strings.Contains(withFlaw, "unit mix-up") {
		t.Fatal("embedded flaw missing from prompt")
	}
	if !strings.Contains(withFlaw, "flaw_identified") {
		t.Fatal("flaw block missing")
	}
}
