package caseeval

import (
	"fmt"
	"strings"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/prompt"
)

// noResponsePlaceholder stands in for empty student fields so the model
// sees explicit absence rather than a silently empty section.
const noResponsePlaceholder = "(No response provided)"

const rubricSystemPrompt = `You are an experienced educator scoring a student's response to a case scenario.

Score the response on four dimensions, each from 0 to 10:
- Understanding: how well the student grasped the scenario's situation and stakes.
  0-2 missed the point entirely; 3-5 partial grasp with gaps; 6-8 solid grasp; 9-10 complete and nuanced.
- Ingenuity: originality and resourcefulness of the proposed solution.
  0-2 no solution or restates the problem; 3-5 conventional; 6-8 creative within constraints; 9-10 genuinely inventive and workable.
- Critical Thinking: quality of reasoning, evidence use, and trade-off awareness.
  0-2 assertions without reasoning; 3-5 some reasoning, weak support; 6-8 sound reasoning; 9-10 rigorous analysis of alternatives.
- Real-World Application: practicality of the solution under real constraints.
  0-2 unworkable; 3-5 plausible but incomplete; 6-8 practical; 9-10 implementation-ready with risks considered.

Respond with a JSON object only, no markdown fences, with the fields:
"understanding", "ingenuity", "critical_thinking", "real_world_application" (numbers 0-10),
"feedback" (2-3 sentences addressed to the student),
"strengths" (array of strings), "improvements" (array of strings).`

const flawDetectionPrompt = `

This scenario contains an intentional embedded flaw: %s
Also include in your JSON:
"flaw_identified" (boolean: did the student's response identify this flaw?),
"flaw_analysis" (1-2 sentences on how well the student addressed the flaw).
Set "flaw_identified" to true only if the student clearly called out the flaw, not for vague unease.`

// evalSystemPrompt assembles the rubric prompt, appending the
// flaw-detection block when the scenario carries an embedded flaw.
func evalSystemPrompt(scenario casegen.Scenario) string {
	if scenario.HasFlaw() {
		return rubricSystemPrompt + fmt.Sprintf(flawDetectionPrompt, scenario.EmbeddedFlaw)
	}
	return rubricSystemPrompt
}

// buildUserMessage embeds the scenario and the student's response.
func buildUserMessage(scenario casegen.Scenario, resp StudentResponse, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scenario: %s\n", scenario.Title)
	if scenario.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n", scenario.Domain)
	}
	b.WriteString(scenario.Content)
	b.WriteString("\n\n")

	b.WriteString(prompt.Section("Issues identified by the student", resp.Issues, noResponsePlaceholder))
	b.WriteString("\n")
	b.WriteString(prompt.Section("Proposed solution", resp.Solution, noResponsePlaceholder))

	if opts.Subject != "" {
		fmt.Fprintf(&b, "\nSubject: %s\n", opts.Subject)
	}
	if opts.EducationLevel != "" {
		fmt.Fprintf(&b, "Education level: %s\n", opts.EducationLevel)
	}

	return b.String()
}
