package challenge

import (
	"strconv"

	"github.com/abhisek/mathtower/internal/equation"
)

// Builder assembles multiple-choice challenges. It keeps no state between
// calls apart from its random source.
type Builder struct {
	cfg Config
	rng equation.Rand
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand injects the random source. A seeded *rand.Rand makes challenges
// reproducible but ties the Builder to a single goroutine.
func WithRand(r equation.Rand) Option {
	return func(b *Builder) {
		if r != nil {
			b.rng = r
		}
	}
}

// New creates a Builder. Zero or invalid Config fields fall back to
// DefaultConfig values.
func New(cfg Config, opts ...Option) *Builder {
	b := &Builder{
		cfg: cfg.withDefaults(),
		rng: equation.GlobalRand(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = New(DefaultConfig())

// Build creates a challenge with the default builder.
func Build(target int, mode Mode) Challenge {
	return defaultBuilder.Build(target, mode)
}

// GenerateEquationOptions returns the four shuffled options of a fresh
// challenge for target. Callers recognise the right one by evaluating it.
func GenerateEquationOptions(target int, mode Mode) []string {
	return defaultBuilder.Build(target, mode).Options
}

// Build creates a challenge whose correct option evaluates to target.
func (b *Builder) Build(target int, mode Mode) Challenge {
	ops := mode.Operators()

	correct := b.correctEquation(target, mode, ops)
	used := map[string]bool{correct: true}
	options := []string{correct}

	distractors, degraded := b.distractors(target, mode, ops, used)
	options = append(options, distractors...)

	b.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Challenge{
		Target:          target,
		Mode:            mode,
		CorrectEquation: correct,
		Options:         options,
		Degraded:        degraded,
	}
}

func (b *Builder) correctEquation(target int, mode Mode, ops []equation.Operator) string {
	found := equation.Generate(target, b.cfg.Length, b.cfg.CandidateCount, ops,
		equation.WithShuffle(b.rng))
	if len(found) > 0 {
		return found[b.rng.IntN(len(found))]
	}
	return b.fallback(target, mode)
}

// fallback builds a two-operand equation by inverting target. It is used
// when the search finds nothing, e.g. a prime past 9 under Multiplication.
func (b *Builder) fallback(target int, mode Mode) string {
	switch mode {
	case Subtraction:
		y := b.rng.IntN(10)
		return join(target+y, equation.Sub, y)
	case Multiplication:
		for d := 1; d <= equation.MaxDigit; d++ {
			if target%d == 0 && target/d <= equation.MaxDigit {
				return join(d, equation.Mul, target/d)
			}
		}
		return join(1, equation.Mul, target)
	case Division:
		y := 1 + b.rng.IntN(equation.MaxDigit)
		return join(target*y, equation.Div, y)
	default:
		if target <= 0 {
			return join(0, equation.Add, target)
		}
		x := b.rng.IntN(target)
		return join(x, equation.Add, target-x)
	}
}

// distractors collects wrong options by rejection sampling, then falls back
// to deterministic near misses once the attempt budget is spent.
func (b *Builder) distractors(target int, mode Mode, ops []equation.Operator, used map[string]bool) ([]string, bool) {
	want := b.cfg.Distractors
	out := make([]string, 0, want)

	for attempt := 0; attempt < b.cfg.MaxDistractorAttempts && len(out) < want; attempt++ {
		s := b.randomEquation(ops)
		if used[s] || equation.Evaluate(s) == float64(target) {
			continue
		}
		used[s] = true
		out = append(out, s)
	}
	if len(out) == want {
		return out, false
	}

	op := ops[0]
	if mode == Any {
		op = equation.Add
	}
	for v := target + 1; len(out) < want; v++ {
		s := nearMiss(v, op)
		if used[s] || equation.Evaluate(s) == float64(target) {
			continue
		}
		used[s] = true
		out = append(out, s)
	}
	return out, true
}

// randomEquation draws a two-operand equation with single-digit tiles.
// Subtraction keeps the larger operand first and division draws divisor
// and quotient so the result is whole.
func (b *Builder) randomEquation(ops []equation.Operator) string {
	op := ops[b.rng.IntN(len(ops))]
	x := b.digit()
	y := b.digit()

	switch op {
	case equation.Sub:
		if x < y {
			x, y = y, x
		}
	case equation.Div:
		x *= y
	}
	return join(x, op, y)
}

func (b *Builder) digit() int {
	return equation.MinDigit + b.rng.IntN(equation.MaxDigit-equation.MinDigit+1)
}

// nearMiss renders v as a trivial equation in op.
func nearMiss(v int, op equation.Operator) string {
	switch op {
	case equation.Sub:
		return join(v+1, equation.Sub, 1)
	case equation.Mul:
		return join(v, equation.Mul, 1)
	case equation.Div:
		return join(v, equation.Div, 1)
	default:
		return join(v-1, equation.Add, 1)
	}
}

func join(x int, op equation.Operator, y int) string {
	buf := strconv.AppendInt(nil, int64(x), 10)
	buf = append(buf, op.Glyph())
	buf = strconv.AppendInt(buf, int64(y), 10)
	return string(buf)
}
