package equation

import "math/rand/v2"

// Rand is the subset of *rand.Rand the engine draws from. A seeded
// *rand.Rand makes generation reproducible; it is not safe for concurrent
// use, so a caller that injects one owns its goroutine.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// GlobalRand returns a Rand backed by the math/rand/v2 package functions,
// which are safe for concurrent use.
func GlobalRand() Rand {
	return globalRand{}
}

// NewSeededRand returns a deterministic source, handy for tests and the
// --seed CLI flag.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
