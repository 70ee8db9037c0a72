// Package home is the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/screens/battle"
	"github.com/abhisek/mathtower/internal/screens/boss"
	"github.com/abhisek/mathtower/internal/screens/speedround"
	"github.com/abhisek/mathtower/internal/screens/stats"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/layout"
)

type bestScoreMsg struct {
	score int
}

// HomeScreen shows the player's standing and the game modes.
type HomeScreen struct {
	svc       screen.Services
	player    *game.Player
	menu      components.Menu
	bestSpeed int
	unlocked  int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Reentrant = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates the home screen. The player is shared with every screen
// pushed from here so progress survives across modes.
func New(svc screen.Services, player *game.Player) *HomeScreen {
	svc = svc.WithDefaults()
	if player == nil {
		player = game.NewPlayer("Player")
	}
	h := &HomeScreen{svc: svc, player: player, unlocked: player.HighestTowerUnlocked}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "TOWER CLIMB", Action: push(func() screen.Screen { return battle.NewTowers(h.svc, h.player) })},
		{Label: "SPEED ROUND", Action: push(func() screen.Screen { return speedround.New(h.svc) })},
		{Label: "BOSS FIGHT", Action: push(func() screen.Screen { return boss.New(h.svc) })},
		{Label: "STATS", Action: push(func() screen.Screen { return stats.New(h.svc) })},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) loadBest() tea.Cmd {
	repo := h.svc.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		score, err := repo.BestSpeedScore(context.Background())
		if err != nil {
			return nil
		}
		return bestScoreMsg{score: score}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadBest()
}

// Resume refreshes the best speed score after a game mode returns.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadBest()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() layout.Status {
	return layout.Status{Score: h.player.Score, Health: h.player.Health, MaxHealth: game.MaxHealth}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(bestScoreMsg); ok {
		h.bestSpeed = m.score
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 90
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderStatsBar(h.player, h.bestSpeed, cw, compact))
	sections = append(sections, h.menu.View(buttonWidth))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.player.Health <= 1:
		return MascotHurt
	case h.player.HighestTowerUnlocked > h.unlocked:
		return MascotCelebrating
	}
	return MascotIdle
}
