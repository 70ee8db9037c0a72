package game

import (
	"fmt"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
)

// Points for tower answers.
const (
	SlayPoints  = 10
	MissPenalty = 5
)

// Outcome describes what one answer did to the campaign.
type Outcome struct {
	Chosen         string
	Correct        bool
	EnemySlain     bool
	TowerCleared   bool
	UnlockedTower  int // 0 when nothing new was unlocked
	PlayerDefeated bool
}

// Campaign runs the levels of one tower: each level spawns an enemy whose
// health is the challenge target.
type Campaign struct {
	player  *Player
	builder *challenge.Builder
	rng     equation.Rand

	tower   int
	mode    challenge.Mode
	level   int
	enemy   *Enemy
	current challenge.Challenge
	done    bool
}

// NewCampaign creates a campaign for player. A nil builder uses the
// default configuration; a nil rng uses the global source.
func NewCampaign(player *Player, builder *challenge.Builder, rng equation.Rand) *Campaign {
	if rng == nil {
		rng = equation.GlobalRand()
	}
	if builder == nil {
		builder = challenge.New(challenge.DefaultConfig(), challenge.WithRand(rng))
	}
	return &Campaign{player: player, builder: builder, rng: rng}
}

// EnterTower starts tower from its first level.
func (c *Campaign) EnterTower(tower int) error {
	mode, err := TowerMode(tower)
	if err != nil {
		return err
	}
	if !c.player.IsTowerUnlocked(tower) {
		return fmt.Errorf("enter tower %d: %w", tower, ErrTowerLocked)
	}
	if !c.player.IsAlive() {
		return ErrPlayerDefeated
	}

	c.tower = tower
	c.mode = mode
	c.level = 0
	c.done = false
	c.spawn()
	return nil
}

func (c *Campaign) spawn() {
	c.enemy = SpawnEnemy(c.rng, 1)
	c.current = c.builder.Build(c.enemy.Health, c.mode)
}

// Answer submits the option at index i of the current challenge.
func (c *Campaign) Answer(i int) (Outcome, error) {
	if !c.player.IsAlive() {
		return Outcome{}, ErrPlayerDefeated
	}
	if c.done || c.enemy == nil {
		return Outcome{}, ErrBattleOver
	}
	if i < 0 || i >= len(c.current.Options) {
		return Outcome{}, fmt.Errorf("answer: option %d out of range", i)
	}

	out := Outcome{Chosen: c.current.Options[i]}
	if !c.current.IsCorrect(i) {
		c.player.TakeDamage(c.enemy.Damage)
		c.player.DecreaseScore(MissPenalty)
		if !c.player.IsAlive() {
			out.PlayerDefeated = true
			c.done = true
			return out, nil
		}
		c.current = c.builder.Build(c.enemy.Health, c.mode)
		return out, nil
	}

	out.Correct = true
	out.EnemySlain = true
	c.enemy.Slay()
	c.player.IncreaseScore(SlayPoints)
	c.level++

	if c.level < LevelsPerTower {
		c.spawn()
		return out, nil
	}

	out.TowerCleared = true
	c.done = true
	if c.tower == c.player.HighestTowerUnlocked && c.tower < TowerCount {
		c.player.UnlockNextTower()
		out.UnlockedTower = c.player.HighestTowerUnlocked
	}
	return out, nil
}

// Challenge returns the question currently guarding the level.
func (c *Campaign) Challenge() challenge.Challenge { return c.current }

// Enemy returns the enemy of the current level.
func (c *Campaign) Enemy() *Enemy { return c.enemy }

// Tower returns the tower being climbed (0 before EnterTower).
func (c *Campaign) Tower() int { return c.tower }

// Mode returns the operator mode of the current tower.
func (c *Campaign) Mode() challenge.Mode { return c.mode }

// Level returns how many levels of the tower have been cleared.
func (c *Campaign) Level() int { return c.level }

// Done reports whether the tower was cleared or the player fell.
func (c *Campaign) Done() bool { return c.done }

// Player returns the player the campaign is played by.
func (c *Campaign) Player() *Player { return c.player }
