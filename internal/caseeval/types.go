package caseeval

// StudentResponse is the student's answer to a case scenario. Either field
// may be empty; absence is meaningful and drives lower heuristic scores.
type StudentResponse struct {
	Issues   string `json:"issues"`
	Solution string `json:"solution"`
}

// Metadata records how a result was produced.
type Metadata struct {
	// Model names what answered: "primary-model", "fallback-model", or
	// "fallback-heuristic". Never fabricated — it reflects exactly the
	// source whose output was parsed.
	Model string `json:"model"`

	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// Result is a scored evaluation of one student response.
//
// OverallScore is always the one-decimal arithmetic mean of the four
// dimensions. It is computed here, never read from model output, so it can
// never disagree with the dimensions it summarizes.
type Result struct {
	Understanding        float64 `json:"understanding"`
	Ingenuity            float64 `json:"ingenuity"`
	CriticalThinking     float64 `json:"critical_thinking"`
	RealWorldApplication float64 `json:"real_world_application"`
	OverallScore         float64 `json:"overall_score"`

	FlawIdentified bool   `json:"flaw_identified"`
	FlawAnalysis   string `json:"flaw_analysis,omitempty"`

	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`

	Metadata Metadata `json:"metadata"`
}

// Options carries evaluation context shared across a session.
type Options struct {
	Subject        string
	EducationLevel string
}

// BatchResult aggregates an ordered evaluation batch.
type BatchResult struct {
	// Results corresponds index-for-index with the input scenarios.
	Results []Result `json:"results"`

	// OverallScore is the one-decimal mean of per-scenario overall scores.
	OverallScore float64 `json:"overall_score"`

	// Passed reports whether OverallScore met the pass threshold.
	Passed bool `json:"passed"`
}
