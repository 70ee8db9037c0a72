package challenge

// Challenge is one multiple-choice question: four equation strings, exactly
// one of which evaluates to Target.
type Challenge struct {
	// Target is the value the correct equation evaluates to.
	Target int

	// Mode is the operator restriction the challenge was built under.
	Mode Mode

	// CorrectEquation is the canonical form of the right answer,
	// e.g. "5+7". It is always one of Options.
	CorrectEquation string

	// Options holds four distinct equation strings in shuffled order.
	Options []string

	// Degraded is set when random sampling could not find enough
	// distractors and deterministic ones were used instead.
	Degraded bool
}

// CorrectIndex returns the position of CorrectEquation in Options,
// or -1 if it is missing.
func (c Challenge) CorrectIndex() int {
	for i, o := range c.Options {
		if o == c.CorrectEquation {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether the option at index i is the right answer.
func (c Challenge) IsCorrect(i int) bool {
	return i >= 0 && i < len(c.Options) && c.Options[i] == c.CorrectEquation
}
