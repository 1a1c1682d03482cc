package caseeval

// HeuristicModel labels results produced without any model call.
const HeuristicModel = "fallback-heuristic"

// heuristicFeedback discloses that no AI assessment was available.
const heuristicFeedback = "AI feedback is temporarily unavailable. Your response was scored with a basic completeness check; a full assessment will follow when the service recovers."

// Heuristic produces a deterministic evaluation from response length alone.
// It is a safety net for full provider outages, not a scoring model: with
// no qualitative signal available, all four dimensions get the same
// length-bucket score.
func Heuristic(resp StudentResponse) Result {
	length := len(resp.Issues) + len(resp.Solution)

	var score float64
	switch {
	case length > 400:
		score = 6.5
	case length > 200:
		score = 5.0
	case length > 50:
		score = 3.5
	default:
		score = 1.5
	}

	r := Result{
		Understanding:        score,
		Ingenuity:            score,
		CriticalThinking:     score,
		RealWorldApplication: score,
		OverallScore:         score,
		FlawIdentified:       false,
		Feedback:             heuristicFeedback,
		Strengths:            []string{},
		Improvements:         []string{},
		Metadata:             Metadata{Model: HeuristicModel},
	}

	if length > 200 {
		r.Strengths = append(r.Strengths, "Provided a detailed response")
	} else {
		r.Improvements = append(r.Improvements, "Consider describing the issues and your proposed solution in more detail")
	}

	return r
}
