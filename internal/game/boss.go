package game

import (
	"fmt"

	"github.com/abhisek/mathtower/internal/equation"
)

const (
	// BossPhases is how many equations it takes to defeat the boss.
	BossPhases = 4

	// BossTiles is the number of tiles (digits and operators) per equation.
	BossTiles = 5

	maxBossTarget = 50
	maxBossDraws  = 20
)

// Boss is fought by laying tiles: each phase shows a target and the player
// submits a five-tile equation that reaches it.
type Boss struct {
	phases   int
	target   int
	solution string
	rng      equation.Rand
}

// NewBoss creates a boss whose first target is reachable with BossTiles
// tiles.
func NewBoss(rng equation.Rand) *Boss {
	if rng == nil {
		rng = equation.GlobalRand()
	}
	b := &Boss{phases: BossPhases, rng: rng}
	b.draw()
	return b
}

// draw picks the next reachable target and remembers one solution for it.
func (b *Boss) draw() {
	ops := equation.AllOperators()
	for range maxBossDraws {
		target := 1 + b.rng.IntN(maxBossTarget)
		found := equation.Generate(target, BossTiles, 1, ops, equation.WithShuffle(b.rng))
		if len(found) > 0 {
			b.target, b.solution = target, found[0]
			return
		}
	}
	// Every target up to maxBossTarget is reachable, so this only runs
	// with a pathological random source.
	b.target, b.solution = 3, "1+1+1"
}

// Submit checks a tile equation against the current target. A correct
// equation removes a phase and, unless the boss falls, draws a new target.
// Malformed tiles return ErrInvalidTiles and cost nothing.
func (b *Boss) Submit(tiles string) (bool, error) {
	if b.Defeated() {
		return false, ErrBattleOver
	}
	if !equation.Validate(tiles) {
		return false, fmt.Errorf("%w: %q", ErrInvalidTiles, tiles)
	}
	if len(tiles) != BossTiles {
		return false, fmt.Errorf("%w: need %d tiles, got %d", ErrInvalidTiles, BossTiles, len(tiles))
	}

	if equation.Evaluate(tiles) != float64(b.target) {
		return false, nil
	}

	b.phases--
	if b.phases > 0 {
		b.draw()
	}
	return true, nil
}

// Target returns the value the current phase asks for.
func (b *Boss) Target() int { return b.target }

// Solution returns one equation that reaches the current target.
func (b *Boss) Solution() string { return b.solution }

// Phases returns the phases left.
func (b *Boss) Phases() int { return b.phases }

// Defeated reports whether every phase has been cleared.
func (b *Boss) Defeated() bool { return b.phases <= 0 }
