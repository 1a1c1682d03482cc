package casegen

// FlawType classifies the intentional flaw embedded in a scenario.
type FlawType string

const (
	FlawFactual    FlawType = "factual"
	FlawLogical    FlawType = "logical"
	FlawEthical    FlawType = "ethical"
	FlawProcedural FlawType = "procedural"
)

// coerceFlawType maps raw model output onto the closed flaw-type set.
// Anything unrecognized becomes logical, the most common category.
func coerceFlawType(s string) FlawType {
	switch FlawType(s) {
	case FlawFactual, FlawLogical, FlawEthical, FlawProcedural:
		return FlawType(s)
	default:
		return FlawLogical
	}
}

// coerceDifficulty clamps raw model output onto the 1-3 difficulty scale,
// defaulting to the middle.
func coerceDifficulty(v int) int {
	if v < 1 || v > 3 {
		return 2
	}
	return v
}

// Scenario is a case-study prompt plus metadata, ready for the question UI
// and for response evaluation. Instances are value objects: the pipeline
// creates them and hands them off, it never stores them.
type Scenario struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Domain  string `json:"domain,omitempty"`

	// Flaw fields are populated only when generation ran with
	// Options.IncludeFlaws.
	EmbeddedFlaw          string   `json:"embedded_flaw,omitempty"`
	FlawType              FlawType `json:"flaw_type,omitempty"`
	Difficulty            int      `json:"difficulty,omitempty"`
	CorrectIdentification string   `json:"correct_identification,omitempty"`
	TeacherNotes          string   `json:"teacher_notes,omitempty"`
}

// HasFlaw reports whether this scenario carries an embedded flaw for
// students to detect.
func (s Scenario) HasFlaw() bool {
	return s.EmbeddedFlaw != ""
}

// Options holds all context needed to generate a scenario batch.
type Options struct {
	// Count is the number of scenarios to request.
	Count int

	// Subject and EducationLevel steer tone and complexity,
	// e.g. "business ethics" / "undergraduate".
	Subject        string
	EducationLevel string

	// Domain labels the scenarios' setting, e.g. "healthcare".
	Domain string

	// IncludeFlaws asks for an intentional flaw in each scenario.
	IncludeFlaws bool
}
