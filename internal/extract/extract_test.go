package extract

import "testing"

func TestObject_DirectJSON(t *testing.T) {
	m := Object(`{"understanding": 8, "feedback": "solid"}`)
	if m["feedback"] != "solid" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestObject_FencedBlock(t *testing.T) {
	text := "Here is your evaluation:\n```json\n{\"understanding\": 7.5}\n```\nLet me know if you need more."
	m := Object(text)
	if m["understanding"] != 7.5 {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestObject_FencedBlockNoLanguageTag(t *testing.T) {
	text := "```\n{\"a\": 1}\n```"
	m := Object(text)
	if m["a"] != 1.0 {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestObject_EmbeddedInProse(t *testing.T) {
	text := `Sure! Based on the rubric, {"understanding": 6, "note": "uses {braces} and \"quotes\""} is my assessment.`
	m := Object(text)
	if m["understanding"] != 6.0 {
		t.Fatalf("unexpected map: %v", m)
	}
	if m["note"] != `uses {braces} and "quotes"` {
		t.Fatalf("string tracking broke: %v", m["note"])
	}
}

func TestObject_NoJSONAtAll(t *testing.T) {
	for _, text := range []string{
		"",
		"I'm sorry, I can't help with that.",
		"{broken json",
		"``` not even json ```",
		"[1, 2, 3]", // array is not an object
	} {
		m := Object(text)
		if m == nil {
			t.Fatalf("Object(%q) returned nil, want empty map", text)
		}
		if len(m) != 0 {
			t.Fatalf("Object(%q) = %v, want empty map", text, m)
		}
	}
}

func TestArray_DirectJSON(t *testing.T) {
	a := Array(`[{"id":"s1"},{"id":"s2"}]`)
	if len(a) != 2 {
		t.Fatalf("expected 2 items, got %d", len(a))
	}
}

func TestArray_FencedBlock(t *testing.T) {
	text := "The scenarios you requested:\n```json\n[{\"title\": \"Case A\"}]\n```"
	a := Array(text)
	if len(a) != 1 {
		t.Fatalf("expected 1 item, got %d", len(a))
	}
}

func TestArray_EmbeddedInProse(t *testing.T) {
	text := `Here are 2 scenarios: [{"title":"A"},{"title":"B"}] — enjoy!`
	a := Array(text)
	if len(a) != 2 {
		t.Fatalf("expected 2 items, got %d", len(a))
	}
}

func TestArray_NoJSONAtAll(t *testing.T) {
	for _, text := range []string{
		"",
		"no scenarios today",
		"[unterminated",
		`{"an":"object"}`,
	} {
		a := Array(text)
		if a == nil {
			t.Fatalf("Array(%q) returned nil, want empty slice", text)
		}
		if len(a) != 0 {
			t.Fatalf("Array(%q) = %v, want empty slice", text, a)
		}
	}
}
