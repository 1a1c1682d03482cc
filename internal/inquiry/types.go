package inquiry

// Pools holds the two keyword pools that seed inquiry questions: concept
// nouns and action verbs. Both are trimmed and deduplicated; sizes are
// independent and either may be empty when extraction yielded nothing
// usable for that pool.
type Pools struct {
	Concepts    []string `json:"concepts"`
	ActionVerbs []string `json:"action_verbs"`
}

// Empty reports whether both pools came back without usable keywords.
func (p Pools) Empty() bool {
	return len(p.Concepts) == 0 && len(p.ActionVerbs) == 0
}

// Combination pairs one keyword from each pool for a single question slot.
type Combination struct {
	Keyword1 string `json:"keyword1"`
	Keyword2 string `json:"keyword2"`
}

// Options holds context for keyword extraction.
type Options struct {
	Subject string

	// MaxPerPool caps how many keywords the prompt requests per pool.
	MaxPerPool int
}
