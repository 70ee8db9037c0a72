package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

const arcadeTitleFull = `█▀▄▀█ ▄▀█ ▀█▀ █ █   ▀█▀ █▀█ █ █ █ █▀▀ █▀█
█ ▀ █ █▀█  █  █▀█    █  █▄█ ▀▄▀▄▀ ██▄ █▀▄`

const arcadeTitleCompact = "M A T H · T O W E R"

const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Gold).
		Bold(true).
		Render(title)
}

// renderStatsBar shows score, towers unlocked and the best speed round in
// a double-bordered box.
func renderStatsBar(p *game.Player, bestSpeed, cw int, compact bool) string {
	score := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	towers := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	speed := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	format := "%s  %s  %s"
	scoreText := fmt.Sprintf("★ %d POINTS", p.Score)
	towerText := fmt.Sprintf("▲ %d/%d TOWERS", p.HighestTowerUnlocked, game.TowerCount)
	speedText := fmt.Sprintf("⚡ BEST %d", bestSpeed)
	if compact {
		format = "%s %s %s"
		scoreText = fmt.Sprintf("★%d", p.Score)
		towerText = fmt.Sprintf("▲%d/%d", p.HighestTowerUnlocked, game.TowerCount)
		speedText = fmt.Sprintf("⚡%d", bestSpeed)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(fmt.Sprintf(format, score.Render(scoreText), towers.Render(towerText), speed.Render(speedText)))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
