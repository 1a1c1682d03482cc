package casegen

import (
	"strings"
	"testing"

	"github.com/edlume/caselab/internal/prompt"
)

func TestSystemPrompt_FlawBlock(t *testing.T) {
	plain := systemPrompt(false)
	if strings.Contains(plain, "embedded_flaw") {
		t.Fatal("flaw instructions present without IncludeFlaws")
	}
	flawed := systemPrompt(true)
	if !strings.Contains(flawed, "embedded_flaw") {
		t.Fatal("flaw instructions missing with IncludeFlaws")
	}
	if !strings.Contains(flawed, `"factual", "logical", "ethical", "procedural"`) {
		t.Fatal("flaw taxonomy missing from instructions")
	}
}

func TestBuildUserMessage_TruncatesSource(t *testing.T) {
	source := strings.Repeat("x", 500)
	msg := buildUserMessage(source, Options{Count: 2}, 100)
	if !strings.Contains(msg, prompt.TruncationMarker) {
		t.Fatal("expected truncation marker")
	}
	if strings.Contains(msg, strings.Repeat("x", 101)) {
		t.Fatal("source not truncated")
	}
}

func TestBuildUserMessage_Context(t *testing.T) {
	msg := buildUserMessage("short chapter", Options{
		Count:          3,
		Subject:        "supply chain management",
		EducationLevel: "undergraduate",
		Domain:         "logistics",
	}, 9000)

	for _, want := range []string{
		"Generate 3 case scenario(s).",
		"Subject: supply chain management",
		"Education level: undergraduate",
		"Domain: logistics",
		"short chapter",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in message", want)
		}
	}
	if strings.Contains(msg, prompt.TruncationMarker) {
		t.Error("short source must not be marked truncated")
	}
}
