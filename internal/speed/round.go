// Package speed implements the timed round: the player types the value of
// wide-range two-operand equations as fast as possible.
package speed

import (
	"strconv"
	"time"

	"github.com/abhisek/mathtower/internal/equation"
)

// DefaultDuration is the length of a round.
const DefaultDuration = 60 * time.Second

// Points awarded or deducted per answer.
const (
	CorrectPoints = 10
	WrongPenalty  = 5
)

// Question is a single typed-answer prompt.
type Question struct {
	A, B   int
	Op     equation.Operator
	Answer int
}

// Equation returns the canonical equation string, e.g. "12x4".
func (q Question) Equation() string {
	return strconv.Itoa(q.A) + string(q.Op.Glyph()) + strconv.Itoa(q.B)
}

// Text returns the question as shown to the player.
func (q Question) Text() string {
	return equation.Display(q.Equation()) + " = ?"
}

var speedOperators = []equation.Operator{equation.Add, equation.Sub, equation.Mul}

// Round tracks the score, clock and current question of one speed round.
// It is owned by the screen that drives it and is not safe for concurrent
// use.
type Round struct {
	duration  time.Duration
	remaining time.Duration
	score     int
	answered  int
	correct   int
	current   *Question
	rng       equation.Rand
}

// NewRound creates a round of the given duration. A nil rng uses the
// global source.
func NewRound(duration time.Duration, rng equation.Rand) *Round {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if rng == nil {
		rng = equation.GlobalRand()
	}
	return &Round{duration: duration, remaining: duration, rng: rng}
}

// Next draws a new question. The target is 1..100; the equation comes from
// the wide-range search, or a simple random question when the search or
// parse comes up empty.
func (r *Round) Next() Question {
	target := 1 + r.rng.IntN(100)

	found := equation.Generate(target, 3, 1, speedOperators,
		equation.WithDigitRange(1, 99), equation.WithShuffle(r.rng))

	var q Question
	var ok bool
	if len(found) > 0 {
		q, ok = Parse(found[0])
	}
	if !ok {
		q = r.simple()
	}
	r.current = &q
	return q
}

// Parse splits a two-operand equation into a Question.
func Parse(s string) (Question, bool) {
	for i := 1; i < len(s)-1; i++ {
		op, ok := equation.ParseOperator(s[i])
		if !ok {
			continue
		}
		a, errA := strconv.Atoi(s[:i])
		b, errB := strconv.Atoi(s[i+1:])
		if errA != nil || errB != nil {
			return Question{}, false
		}
		v := equation.Evaluate(s)
		if v != float64(int(v)) {
			return Question{}, false
		}
		return Question{A: a, B: b, Op: op, Answer: int(v)}, true
	}
	return Question{}, false
}

func (r *Round) simple() Question {
	op := speedOperators[r.rng.IntN(len(speedOperators))]
	var a, b int
	switch op {
	case equation.Add:
		a = 1 + r.rng.IntN(50)
		b = 1 + r.rng.IntN(50)
		return Question{A: a, B: b, Op: op, Answer: a + b}
	case equation.Sub:
		a = 10 + r.rng.IntN(50)
		b = r.rng.IntN(a)
		return Question{A: a, B: b, Op: op, Answer: a - b}
	default:
		a = 1 + r.rng.IntN(12)
		b = 1 + r.rng.IntN(12)
		return Question{A: a, B: b, Op: equation.Mul, Answer: a * b}
	}
}

// Current returns the question being answered, or nil before Next.
func (r *Round) Current() *Question {
	return r.current
}

// Check scores an answer to the current question and reports whether it
// was right.
func (r *Round) Check(answer int) bool {
	if r.current == nil {
		return false
	}
	r.answered++
	if answer == r.current.Answer {
		r.correct++
		r.AddScore(CorrectPoints)
		return true
	}
	r.DeductScore(WrongPenalty)
	return false
}

// AddScore adds points.
func (r *Round) AddScore(points int) {
	r.score += points
}

// DeductScore removes points without going below zero.
func (r *Round) DeductScore(points int) {
	r.score = max(0, r.score-points)
}

// Tick advances the clock by d and returns the time left, never negative.
func (r *Round) Tick(d time.Duration) time.Duration {
	r.remaining = max(0, r.remaining-d)
	return r.remaining
}

// Expired reports whether the clock has run out.
func (r *Round) Expired() bool {
	return r.remaining <= 0
}

// Reset rewinds the clock and clears the current question. The score is
// kept, matching how the round is restarted after a summary.
func (r *Round) Reset() {
	r.remaining = r.duration
	r.current = nil
}

func (r *Round) Score() int               { return r.score }
func (r *Round) Remaining() time.Duration { return r.remaining }
func (r *Round) Duration() time.Duration  { return r.duration }
func (r *Round) Answered() int            { return r.answered }
func (r *Round) CorrectCount() int        { return r.correct }
