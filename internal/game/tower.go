package game

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
)

const (
	// TowerCount is the number of towers in the campaign.
	TowerCount = 4

	// LevelsPerTower is how many enemies guard each tower.
	LevelsPerTower = 10

	// MaxEnemyHealth bounds enemy health, which doubles as the target.
	MaxEnemyHealth = 99
)

var (
	ErrTowerLocked    = errors.New("tower is locked")
	ErrNoSuchTower    = errors.New("no such tower")
	ErrBattleOver     = errors.New("battle is over")
	ErrPlayerDefeated = errors.New("player is defeated")
	ErrInvalidTiles   = errors.New("tiles do not form a valid equation")
)

var towerModes = [TowerCount + 1]challenge.Mode{
	1: challenge.Addition,
	2: challenge.Subtraction,
	3: challenge.Multiplication,
	4: challenge.Division,
}

// TowerMode returns the operator mode of a tower (1-based).
func TowerMode(tower int) (challenge.Mode, error) {
	if tower < 1 || tower > TowerCount {
		return challenge.Any, fmt.Errorf("%w: %d", ErrNoSuchTower, tower)
	}
	return towerModes[tower], nil
}

// Enemy guards one level. Its health is the value the player must build.
type Enemy struct {
	Health int
	Damage int
}

func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// Slay drops the enemy's health to zero.
func (e *Enemy) Slay() {
	e.Health = 0
}

// SpawnEnemy creates an enemy with health in 1..MaxEnemyHealth. A zero
// health enemy would start out dead, so the draw skips it.
func SpawnEnemy(rng equation.Rand, damage int) *Enemy {
	if rng == nil {
		rng = equation.GlobalRand()
	}
	if damage <= 0 {
		damage = 1
	}
	return &Enemy{Health: 1 + rng.IntN(MaxEnemyHealth), Damage: damage}
}
