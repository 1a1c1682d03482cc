package casegen

import (
	"fmt"
	"strings"

	"github.com/edlume/caselab/internal/prompt"
)

const baseSystemPrompt = `You are an experienced case-study author for a learning platform.

Rules:
- Generate realistic, self-contained case scenarios grounded in the provided source material.
- Each scenario describes a concrete situation with named actors, a setting, and a decision or problem. No abstract summaries.
- Write scenario content as 2-4 paragraphs of plain prose. No headings, no bullet lists inside the content.
- Keep scenarios faithful to the source material; do not invent facts that contradict it.
- Respond with a JSON array only. Each element must have the fields: "id", "title", "content", "domain".
- Do not wrap the JSON in markdown fences or add commentary before or after it.`

const flawInstructions = `
Additionally, embed exactly one intentional flaw in each scenario for students to detect:
- Add the fields "embedded_flaw" (a one-sentence description of the flaw), "flaw_type" (one of "factual", "logical", "ethical", "procedural"), "difficulty" (1, 2, or 3), "correct_identification" (what a student should say to correctly identify the flaw), and "teacher_notes" (guidance for the reviewing teacher).
- The flaw must be subtle enough to require careful reading but detectable from the scenario text alone.
- Difficulty 1 flaws are near-explicit; difficulty 3 flaws require connecting multiple details.`

// systemPrompt assembles the generation system prompt.
func systemPrompt(includeFlaws bool) string {
	if includeFlaws {
		return baseSystemPrompt + flawInstructions
	}
	return baseSystemPrompt
}

// buildUserMessage constructs the user message from the source text and options.
func buildUserMessage(source string, opts Options, maxSourceChars int) string {
	var b strings.Builder

	count := opts.Count
	if count < 1 {
		count = 1
	}
	fmt.Fprintf(&b, "Generate %d case scenario(s).\n", count)
	if opts.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", opts.Subject)
	}
	if opts.EducationLevel != "" {
		fmt.Fprintf(&b, "Education level: %s\n", opts.EducationLevel)
	}
	if opts.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n", opts.Domain)
	}

	b.WriteString("\nSource material:\n")
	b.WriteString(prompt.Truncate(source, maxSourceChars))

	return b.String()
}
