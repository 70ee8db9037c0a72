// Package battle is the tower climb: each level is an enemy whose health
// is the target of a multiple-choice challenge.
package battle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/layout"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

// hintMsg carries the round it was requested in so a hint that arrives
// after the challenge changed is dropped.
type hintMsg struct {
	round int
	text  string
}

// BattleScreen runs one tower of a campaign.
type BattleScreen struct {
	svc      screen.Services
	campaign *game.Campaign
	mc       components.MultiChoice
	shownAt  time.Time
	outcome  *game.Outcome
	hint     string
	hinting  bool
	round    int
	err      error
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ screen.StatusProvider = (*BattleScreen)(nil)

// New enters tower for player. Entry errors (locked tower, defeated
// player) are shown on the screen.
func New(svc screen.Services, player *game.Player, tower int) *BattleScreen {
	svc = svc.WithDefaults()
	b := &BattleScreen{
		svc:      svc,
		campaign: game.NewCampaign(player, svc.Builder, svc.Rand),
	}
	if err := b.campaign.EnterTower(tower); err != nil {
		b.err = err
		return b
	}
	b.present()
	return b
}

func (b *BattleScreen) present() {
	ch := b.campaign.Challenge()
	options := make([]string, len(ch.Options))
	for i, o := range ch.Options {
		options[i] = equation.Display(o)
	}
	b.mc = components.NewMultiChoice(
		fmt.Sprintf("Which equation makes %d?", ch.Target),
		options,
		ch.CorrectIndex(),
	)
	b.shownAt = time.Now()
	b.outcome = nil
	b.hint = ""
	b.hinting = false
	b.round++
}

func (b *BattleScreen) Init() tea.Cmd {
	return nil
}

func (b *BattleScreen) Title() string {
	if b.err != nil {
		return "Tower"
	}
	return fmt.Sprintf("Tower %d · %s", b.campaign.Tower(), strings.ToUpper(b.campaign.Mode().String()))
}

func (b *BattleScreen) Status() layout.Status {
	p := b.campaign.Player()
	return layout.Status{Score: p.Score, Health: p.Health, MaxHealth: game.MaxHealth}
}

func (b *BattleScreen) KeyHints() []layout.KeyHint {
	switch {
	case b.err != nil || b.campaign.Done():
		return []layout.KeyHint{{Key: "any key", Description: "Back to towers"}}
	case b.outcome != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Next enemy"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓/A-D", Description: "Choose"},
		{Key: "Enter", Description: "Attack"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Retreat"},
	}
}

func (b *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintMsg:
		if b.outcome == nil && msg.round == b.round {
			b.hint = msg.text
			b.hinting = false
		}
		return b, nil

	case tea.KeyMsg:
		if b.err != nil || b.campaign.Done() {
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if b.outcome != nil {
			b.present()
			return b, nil
		}
		if msg.String() == "h" {
			return b, b.requestHint()
		}

		var cmd tea.Cmd
		b.mc, cmd = b.mc.Update(msg)
		if b.mc.Submitted {
			return b, tea.Batch(cmd, b.answer())
		}
		return b, cmd
	}
	return b, nil
}

func (b *BattleScreen) requestHint() tea.Cmd {
	if b.hinting || b.hint != "" {
		return nil
	}
	b.hinting = true
	ch := b.campaign.Challenge()
	hints := b.svc.Hints
	round := b.round
	return func() tea.Msg {
		text, _ := hints.Hint(context.Background(), ch)
		return hintMsg{round: round, text: text}
	}
}

func (b *BattleScreen) answer() tea.Cmd {
	ch := b.campaign.Challenge()
	out, err := b.campaign.Answer(b.mc.ChosenIndex)
	if err != nil {
		b.err = err
		return nil
	}
	b.outcome = &out
	b.hinting = false
	return b.record(ch, out)
}

func (b *BattleScreen) record(ch challenge.Challenge, out game.Outcome) tea.Cmd {
	data := store.AnswerEventData{
		SessionID:       b.svc.SessionID,
		Source:          "tower",
		Mode:            ch.Mode.String(),
		Target:          ch.Target,
		CorrectEquation: ch.CorrectEquation,
		Chosen:          out.Chosen,
		Correct:         out.Correct,
		Degraded:        ch.Degraded,
		TimeMs:          time.Since(b.shownAt).Milliseconds(),
	}
	return b.svc.Record(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendAnswer(ctx, data)
	})
}

func (b *BattleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if b.err != nil {
		return components.CabinetFrame(components.Card(errorText(b.err), cw), width, height)
	}

	var sections []string
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("Level %s", components.Fraction(min(b.campaign.Level()+1, game.LevelsPerTower), game.LevelsPerTower))))
	sections = append(sections, renderEnemy(b.campaign.Enemy(), cw))
	sections = append(sections, components.Card(b.mc.View(), cw))

	switch {
	case b.outcome != nil:
		sections = append(sections, renderOutcome(*b.outcome))
	case b.hinting:
		sections = append(sections, theme.Hint.Render("The wizard is thinking..."))
	case b.hint != "":
		sections = append(sections, theme.Hint.Render("💡 "+b.hint))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderEnemy(e *game.Enemy, cw int) string {
	health := 0
	if e != nil {
		health = e.Health
	}
	name := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("👾 Tower Guard")
	bar := components.Bar{
		Label:   "HP",
		Percent: float64(health) / float64(game.MaxEnemyHealth),
		Caption: fmt.Sprint(health),
		Width:   cw - 4,
	}
	return name + "\n" + bar.View()
}

func renderOutcome(out game.Outcome) string {
	switch {
	case out.PlayerDefeated:
		return theme.Incorrect.Render("You ran out of hearts! Rest up and try again.")
	case out.TowerCleared && out.UnlockedTower > 0:
		return theme.Correct.Render(fmt.Sprintf("Tower cleared! Tower %d is now open.", out.UnlockedTower))
	case out.TowerCleared:
		return theme.Correct.Render("Tower cleared!")
	case out.Correct:
		return theme.Correct.Render(fmt.Sprintf("Direct hit! +%d", game.SlayPoints))
	}
	return theme.Incorrect.Render(fmt.Sprintf("%s = %s. The guard strikes back! -%d",
		equation.Display(out.Chosen), formatValue(equation.Evaluate(out.Chosen)), game.MissPenalty))
}

func errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrTowerLocked):
		return "This tower is still locked.\nClear the one before it first."
	case errors.Is(err, game.ErrPlayerDefeated):
		return "You have no hearts left.\nHead home to rest."
	}
	return "Something went wrong: " + err.Error()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprint(int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
