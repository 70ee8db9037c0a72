package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
)

func wrongIndex(c challenge.Challenge) int {
	return (c.CorrectIndex() + 1) % len(c.Options)
}

func TestPlayer(t *testing.T) {
	p := NewPlayer("ada")
	assert.Equal(t, MaxHealth, p.Health)
	assert.True(t, p.IsAlive())
	assert.True(t, p.IsTowerUnlocked(1))
	assert.False(t, p.IsTowerUnlocked(2))
	assert.False(t, p.IsTowerUnlocked(0))

	assert.Equal(t, 10, p.IncreaseScore(10))
	assert.Equal(t, 0, p.DecreaseScore(25))

	p.TakeDamage(3)
	assert.False(t, p.IsAlive())
	p.ResetHealth()
	assert.True(t, p.IsAlive())

	for range 10 {
		p.UnlockNextTower()
	}
	assert.Equal(t, TowerCount, p.HighestTowerUnlocked)
}

func TestTowerMode(t *testing.T) {
	want := []challenge.Mode{challenge.Addition, challenge.Subtraction, challenge.Multiplication, challenge.Division}
	for i, m := range want {
		got, err := TowerMode(i + 1)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := TowerMode(5)
	assert.ErrorIs(t, err, ErrNoSuchTower)
}

func TestSpawnEnemy(t *testing.T) {
	rng := equation.NewSeededRand(2)
	for range 500 {
		e := SpawnEnemy(rng, 0)
		assert.True(t, e.Health >= 1 && e.Health <= MaxEnemyHealth)
		assert.Equal(t, 1, e.Damage)
	}
}

func TestCampaign_LockedTower(t *testing.T) {
	c := NewCampaign(NewPlayer(""), nil, equation.NewSeededRand(1))
	assert.ErrorIs(t, c.EnterTower(2), ErrTowerLocked)
	assert.ErrorIs(t, c.EnterTower(9), ErrNoSuchTower)

	_, err := c.Answer(0)
	assert.ErrorIs(t, err, ErrBattleOver)
}

func TestCampaign_ClearTower(t *testing.T) {
	p := NewPlayer("")
	c := NewCampaign(p, nil, equation.NewSeededRand(4))
	require.NoError(t, c.EnterTower(1))

	for level := 0; level < LevelsPerTower; level++ {
		ch := c.Challenge()
		assert.Equal(t, c.Enemy().Health, ch.Target)
		assert.Equal(t, challenge.Addition, ch.Mode)

		out, err := c.Answer(ch.CorrectIndex())
		require.NoError(t, err)
		assert.True(t, out.Correct)
		assert.True(t, out.EnemySlain)
		assert.Equal(t, level == LevelsPerTower-1, out.TowerCleared)
		if out.TowerCleared {
			assert.Equal(t, 2, out.UnlockedTower)
		}
	}

	assert.True(t, c.Done())
	assert.Equal(t, LevelsPerTower*SlayPoints, p.Score)
	assert.True(t, p.IsTowerUnlocked(2))

	_, err := c.Answer(0)
	assert.ErrorIs(t, err, ErrBattleOver)

	require.NoError(t, c.EnterTower(2))
	assert.Equal(t, challenge.Subtraction, c.Challenge().Mode)
}

func TestCampaign_WrongAnswers(t *testing.T) {
	p := NewPlayer("")
	c := NewCampaign(p, nil, equation.NewSeededRand(8))
	require.NoError(t, c.EnterTower(1))
	p.IncreaseScore(7)

	health := c.Enemy().Health
	out, err := c.Answer(wrongIndex(c.Challenge()))
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, MaxHealth-1, p.Health)
	assert.Equal(t, 2, p.Score)
	assert.Equal(t, health, c.Enemy().Health, "enemy survives a miss")
	assert.Equal(t, health, c.Challenge().Target)

	c.Answer(wrongIndex(c.Challenge()))
	out, err = c.Answer(wrongIndex(c.Challenge()))
	require.NoError(t, err)
	assert.True(t, out.PlayerDefeated)
	assert.Equal(t, 0, p.Score)

	_, err = c.Answer(0)
	assert.ErrorIs(t, err, ErrPlayerDefeated)
	assert.ErrorIs(t, c.EnterTower(1), ErrPlayerDefeated)
}

func TestCampaign_AnswerOutOfRange(t *testing.T) {
	c := NewCampaign(NewPlayer(""), nil, nil)
	require.NoError(t, c.EnterTower(1))
	_, err := c.Answer(4)
	assert.Error(t, err)
}

func TestBoss_Fight(t *testing.T) {
	b := NewBoss(equation.NewSeededRand(6))
	require.Equal(t, BossPhases, b.Phases())

	for b.Phases() > 0 {
		target := b.Target()
		sol := b.Solution()
		require.True(t, equation.Validate(sol))
		require.Equal(t, float64(target), equation.Evaluate(sol))

		hit, err := b.Submit(sol)
		require.NoError(t, err)
		assert.True(t, hit)
	}

	assert.True(t, b.Defeated())
	_, err := b.Submit("1+1+1")
	assert.ErrorIs(t, err, ErrBattleOver)
}

func TestBoss_RejectsBadTiles(t *testing.T) {
	b := NewBoss(equation.NewSeededRand(3))

	for _, tiles := range []string{"12+3", "1++23", "1 + 2", "1+2", "1+2+3+4"} {
		_, err := b.Submit(tiles)
		assert.ErrorIs(t, err, ErrInvalidTiles, "tiles %q", tiles)
	}
	assert.Equal(t, BossPhases, b.Phases())
}

func TestBoss_Miss(t *testing.T) {
	b := NewBoss(equation.NewSeededRand(3))
	hit, err := b.Submit("9x9x9")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, BossPhases, b.Phases())
}
