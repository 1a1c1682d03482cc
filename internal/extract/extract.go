// Package extract pulls structured data out of free-form model text.
//
// Models wrap JSON in prose or markdown fences despite explicit formatting
// instructions, and the failover pair spans backends with different habits,
// so a single json.Unmarshal is not enough. Object and Array run an ordered
// cascade of strategies and degrade to an empty structure instead of
// erroring: callers treat "nothing extracted" as a signal distinct from a
// failed provider call.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedBlock matches the first triple-backtick code block, with an
// optional language tag on the opening fence.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Object extracts the first JSON object found in text.
// Strategies, in order: parse the whole string; parse the interior of the
// first fenced code block; parse the first balanced {...} substring.
// Returns an empty map when no strategy yields an object.
func Object(text string) map[string]any {
	for _, candidate := range candidates(text, '{', '}') {
		var m map[string]any
		if err := json.Unmarshal([]byte(candidate), &m); err == nil && len(m) > 0 {
			return m
		}
	}
	return map[string]any{}
}

// Array extracts the first JSON array found in text, using the same
// cascade as Object with [...] delimiters. Returns an empty slice when
// no strategy yields a non-empty array.
func Array(text string) []any {
	for _, candidate := range candidates(text, '[', ']') {
		var a []any
		if err := json.Unmarshal([]byte(candidate), &a); err == nil && len(a) > 0 {
			return a
		}
	}
	return []any{}
}

// candidates returns the substrings each strategy proposes, in order.
func candidates(text string, open, close byte) []string {
	out := []string{strings.TrimSpace(text)}

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}

	if s := balanced(text, open, close); s != "" {
		out = append(out, s)
	}

	return out
}

// balanced returns the first balanced open...close substring of text,
// tracking JSON string literals so delimiters inside quotes don't count.
func balanced(text string, open, close byte) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case open:
			if start < 0 {
				start = i
			}
			depth++
		case close:
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
