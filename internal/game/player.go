// Package game holds the campaign state that drives challenges: the
// player, the towers they climb, the enemies they fight, and the boss.
// All of it is owned by the screen or command running the game; the
// equation engine itself stays stateless.
package game

// MaxHealth is the player's starting health.
const MaxHealth = 3

// Player is the controller-owned progress of one player.
type Player struct {
	Name                 string
	Health               int
	Score                int
	HighestTowerUnlocked int
}

// NewPlayer creates a player at full health with the first tower open.
func NewPlayer(name string) *Player {
	return &Player{
		Name:                 name,
		Health:               MaxHealth,
		HighestTowerUnlocked: 1,
	}
}

func (p *Player) IsAlive() bool {
	return p.Health > 0
}

func (p *Player) TakeDamage(damage int) {
	p.Health -= damage
}

func (p *Player) ResetHealth() {
	p.Health = MaxHealth
}

// IncreaseScore adds points and returns the new score.
func (p *Player) IncreaseScore(points int) int {
	p.Score += points
	return p.Score
}

// DecreaseScore removes points, never dropping below zero.
func (p *Player) DecreaseScore(points int) int {
	p.Score = max(0, p.Score-points)
	return p.Score
}

// UnlockNextTower opens the next tower, up to the last one.
func (p *Player) UnlockNextTower() {
	if p.HighestTowerUnlocked < TowerCount {
		p.HighestTowerUnlocked++
	}
}

func (p *Player) IsTowerUnlocked(tower int) bool {
	return tower >= 1 && tower <= p.HighestTowerUnlocked
}
