package extract

import (
	"encoding/json"
	"math"
)

// neutralScore is returned for absent or malformed dimension scores.
// An unscoreable dimension should not zero out a student's evaluation,
// so it lands in the middle of the scale instead.
const neutralScore = 5.0

// Score normalizes a raw value into the canonical 0-10 scale with one
// decimal of precision. Non-numeric values yield the neutral default.
func Score(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return neutralScore
		}
		f = parsed
	default:
		return neutralScore
	}

	if f < 0 {
		f = 0
	}
	if f > 10 {
		f = 10
	}
	return Round1(f)
}

// Round1 rounds to one decimal place. Applied before any caller compares
// scores, so exact equality on results is stable.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Str returns m[key] when it is a string, otherwise "".
func Str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Bool returns true only when m[key] is the JSON boolean true.
// No truthy coercion: "true", 1, and "yes" all read as false.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// StringSlice returns the string elements of v when v is an array,
// dropping every non-string element. Any other shape yields nil.
func StringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
