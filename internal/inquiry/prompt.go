package inquiry

import (
	"fmt"
	"strings"

	"github.com/edlume/caselab/internal/prompt"
)

const extractSystemPrompt = `You are a curriculum assistant extracting inquiry keywords from course material.

Rules:
- Extract two pools of keywords from the source text.
- "concepts": the most important domain concepts, as short noun phrases (1-3 words each).
- "action_verbs": verbs describing what a practitioner does with those concepts (e.g. "measure", "negotiate", "classify").
- Every keyword must actually appear in, or be directly implied by, the source text.
- No duplicates, no sentence fragments, no leading articles.
- Respond with a JSON object only: {"concepts": [...], "action_verbs": [...]}. No markdown fences, no commentary.`

// buildUserMessage constructs the extraction user message.
func buildUserMessage(source string, opts Options, maxSourceChars int) string {
	var b strings.Builder

	perPool := opts.MaxPerPool
	if perPool < 1 {
		perPool = 10
	}
	fmt.Fprintf(&b, "Extract up to %d keywords per pool.\n", perPool)
	if opts.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", opts.Subject)
	}

	b.WriteString("\nSource material:\n")
	b.WriteString(prompt.Truncate(source, maxSourceChars))

	return b.String()
}
