// Package prompt holds helpers shared by the prompt builders.
package prompt

import (
	"fmt"
	"strings"
)

// TruncationMarker is appended whenever source text is cut, so the model
// is never silently handed a misleadingly-complete excerpt.
const TruncationMarker = "\n\n[content truncated]"

// Truncate bounds text to max bytes, appending TruncationMarker when a cut
// happened. Non-positive max disables truncation.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max] + TruncationMarker
}

// Section formats a labeled block for a user prompt, substituting a
// placeholder when the body is empty. Empty student fields must be visible
// to the model as explicit absence, not silently dropped.
func Section(label, body, placeholder string) string {
	if strings.TrimSpace(body) == "" {
		body = placeholder
	}
	return fmt.Sprintf("%s:\n%s\n", label, body)
}
