package inquiry

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/llm"
)

func TestExtract_CleansPools(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{
		"concepts": ["  supply chain ", "inventory", "supply chain", "", "   ", "inventory"],
		"action_verbs": ["optimize", "audit"]
	}`})
	ex := NewExtractor(mock, DefaultConfig(), zap.NewNop())

	pools, err := ex.Extract(context.Background(), "chapter text", Options{Subject: "operations"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools.Concepts) != 2 || pools.Concepts[0] != "supply chain" || pools.Concepts[1] != "inventory" {
		t.Fatalf("pool not cleaned: %v", pools.Concepts)
	}
	if len(pools.ActionVerbs) != 2 {
		t.Fatalf("unexpected verbs: %v", pools.ActionVerbs)
	}
	if pools.Empty() {
		t.Fatal("pools should not be empty")
	}
}

func TestExtract_WrongShapeYieldsEmptyPools(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing fields", `{"something_else": true}`},
		{"wrong types", `{"concepts": "not an array", "action_verbs": 7}`},
		{"mixed elements dropped", `{"concepts": [1, true, null], "action_verbs": []}`},
		{"no json at all", "I couldn't find keywords."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			ex := NewExtractor(mock, DefaultConfig(), zap.NewNop())

			pools, err := ex.Extract(context.Background(), "chapter", Options{})
			if err != nil {
				t.Fatalf("shape problems must not error: %v", err)
			}
			if !pools.Empty() {
				t.Fatalf("expected empty pools, got %+v", pools)
			}
			if pools.Concepts == nil || pools.ActionVerbs == nil {
				t.Fatal("pools must be empty slices, not nil")
			}
		})
	}
}

func TestExtract_FencedOutputStillParsed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Here you go:\n```json\n{\"concepts\": [\"erosion\"], \"action_verbs\": [\"measure\"]}\n```"})
	ex := NewExtractor(mock, DefaultConfig(), zap.NewNop())

	pools, err := ex.Extract(context.Background(), "chapter", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools.Concepts) != 1 || pools.Concepts[0] != "erosion" {
		t.Fatalf("unexpected concepts: %v", pools.Concepts)
	}
}

func TestExtract_TotalProviderFailurePropagates(t *testing.T) {
	primary := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	fallback := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	ex := NewExtractor(llm.NewFailover(primary, fallback, zap.NewNop()), DefaultConfig(), zap.NewNop())

	_, err := ex.Extract(context.Background(), "chapter", Options{})
	if err == nil {
		t.Fatal("expected error when both providers fail")
	}
	var all *llm.ErrAllProvidersFailed
	if !errors.As(err, &all) {
		t.Fatalf("expected ErrAllProvidersFailed, got %T", err)
	}
}
