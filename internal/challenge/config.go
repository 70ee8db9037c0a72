package challenge

// Config controls how the Builder searches and samples.
type Config struct {
	// Length is the token length of the correct equation. Distractors are
	// always two-operand equations.
	Length int

	// CandidateCount caps how many equations the search collects before
	// one is picked at random.
	CandidateCount int

	// Distractors is the number of wrong options per challenge.
	Distractors int

	// MaxDistractorAttempts bounds random distractor sampling. When it
	// runs out, deterministic distractors fill the remaining slots.
	MaxDistractorAttempts int
}

// DefaultConfig returns the configuration used for tower challenges.
func DefaultConfig() Config {
	return Config{
		Length:                3,
		CandidateCount:        20,
		Distractors:           3,
		MaxDistractorAttempts: 200,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Length <= 2 || c.Length%2 == 0 {
		c.Length = d.Length
	}
	if c.CandidateCount <= 0 {
		c.CandidateCount = d.CandidateCount
	}
	if c.Distractors <= 0 {
		c.Distractors = d.Distractors
	}
	if c.MaxDistractorAttempts <= 0 {
		c.MaxDistractorAttempts = d.MaxDistractorAttempts
	}
	return c
}
