// Package boss is the tile-laying boss fight.
package boss

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/layout"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

// BossScreen fights a game.Boss one phase at a time.
type BossScreen struct {
	svc      screen.Services
	boss     *game.Boss
	input    components.TextInput
	attempts int
	message  string
	good     bool
	peek     bool
}

var _ screen.Screen = (*BossScreen)(nil)
var _ screen.KeyHintProvider = (*BossScreen)(nil)
var _ screen.StatusProvider = (*BossScreen)(nil)

// New creates a boss fight.
func New(svc screen.Services) *BossScreen {
	svc = svc.WithDefaults()
	return &BossScreen{
		svc:   svc,
		boss:  game.NewBoss(svc.Rand),
		input: components.NewTextInput("e.g. 1+2x3", components.Tiles, game.BossTiles),
	}
}

func (s *BossScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *BossScreen) Title() string {
	return "Boss Fight"
}

func (s *BossScreen) Status() layout.Status {
	return layout.Status{Score: (game.BossPhases - s.boss.Phases()) * game.SlayPoints}
}

func (s *BossScreen) KeyHints() []layout.KeyHint {
	if s.boss.Defeated() {
		return []layout.KeyHint{{Key: "any key", Description: "Home"}}
	}
	return []layout.KeyHint{
		{Key: "0-9 + - * /", Description: "Lay tiles"},
		{Key: "Enter", Description: "Strike"},
		{Key: "Tab", Description: "Peek"},
		{Key: "Esc", Description: "Flee"},
	}
}

func (s *BossScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if ok {
		if s.boss.Defeated() {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.peek = true
			return s, nil
		case "enter":
			return s, s.strike()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *BossScreen) strike() tea.Cmd {
	tiles := s.input.Value()
	if tiles == "" {
		return nil
	}
	target := s.boss.Target()
	hit, err := s.boss.Submit(tiles)
	if errors.Is(err, game.ErrInvalidTiles) {
		s.good = false
		s.message = fmt.Sprintf("Those tiles don't make an equation. Use %d single-digit tiles, like 4x3-2.", game.BossTiles)
		s.input.Submit(false)
		return nil
	}
	if err != nil {
		return nil
	}

	s.attempts++
	s.input.Submit(hit)
	if !hit {
		s.good = false
		s.message = fmt.Sprintf("%s makes %s, not %d.", equation.Display(tiles), formatValue(equation.Evaluate(tiles)), target)
		return nil
	}

	s.good = true
	s.peek = false
	s.input.Reset()
	if !s.boss.Defeated() {
		s.message = fmt.Sprintf("Hit! %d phases to go.", s.boss.Phases())
		return nil
	}
	s.message = "The boss is defeated!"
	return s.record()
}

func (s *BossScreen) record() tea.Cmd {
	data := store.BossEventData{
		SessionID:     s.svc.SessionID,
		PhasesCleared: game.BossPhases - s.boss.Phases(),
		Attempts:      s.attempts,
		Defeated:      s.boss.Defeated(),
	}
	return s.svc.Record(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendBoss(ctx, data)
	})
}

func (s *BossScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	boss := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("🐉 The Number Dragon")
	phases := strings.Repeat("◆", s.boss.Phases()) + strings.Repeat("◇", game.BossPhases-s.boss.Phases())
	sections := []string{boss, lipgloss.NewStyle().Foreground(theme.Gold).Render(phases)}

	if s.boss.Defeated() {
		sections = append(sections, components.Card(theme.Correct.Render(s.message)+"\n\n"+
			theme.Body.Render(fmt.Sprintf("Strikes: %d", s.attempts)), cw))
		return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
	}

	prompt := theme.Body.Render(fmt.Sprintf("Lay %d tiles that make", game.BossTiles)) + "\n" +
		theme.Equation.Render(fmt.Sprint(s.boss.Target()))
	sections = append(sections, components.Card(prompt+"\n\n"+s.input.View(), cw))

	if s.message != "" {
		style := theme.Incorrect
		if s.good {
			style = theme.Correct
		}
		sections = append(sections, style.Render(s.message))
	}
	if s.peek {
		sections = append(sections, theme.Hint.Render("One way: "+equation.Display(s.boss.Solution())))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprint(int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
