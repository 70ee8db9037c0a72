// Package speedround is the timed speed round screen.
package speedround

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/speed"
	"github.com/abhisek/mathtower/internal/store"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/layout"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

const tickInterval = time.Second

// tickMsg carries the generation it was scheduled for so ticks from a
// previous round are dropped after a restart.
type tickMsg struct {
	gen int
}

// SpeedScreen drives one speed.Round.
type SpeedScreen struct {
	svc      screen.Services
	round    *speed.Round
	input    components.TextInput
	gen      int
	feedback string
	correct  bool
}

var _ screen.Screen = (*SpeedScreen)(nil)
var _ screen.KeyHintProvider = (*SpeedScreen)(nil)
var _ screen.StatusProvider = (*SpeedScreen)(nil)

// New creates a speed round using the configured duration.
func New(svc screen.Services) *SpeedScreen {
	svc = svc.WithDefaults()
	s := &SpeedScreen{
		svc:   svc,
		round: speed.NewRound(svc.SpeedDuration, svc.Rand),
	}
	s.start()
	return s
}

func (s *SpeedScreen) start() {
	s.gen++
	s.round.Reset()
	s.round.Next()
	s.input = components.NewTextInput("answer", components.Numeric, 6)
	s.feedback = ""
}

func (s *SpeedScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *SpeedScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.tick())
}

func (s *SpeedScreen) Title() string {
	return "Speed Round"
}

func (s *SpeedScreen) Status() layout.Status {
	return layout.Status{Score: s.round.Score()}
}

func (s *SpeedScreen) KeyHints() []layout.KeyHint {
	if s.round.Expired() {
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit round"},
	}
}

func (s *SpeedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen || s.round.Expired() {
			return s, nil
		}
		s.round.Tick(tickInterval)
		if s.round.Expired() {
			return s, s.record()
		}
		return s, s.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if !s.round.Expired() {
				s.submit()
			}
			return s, nil
		case "r":
			if s.round.Expired() {
				s.start()
				return s, tea.Batch(s.input.Init(), s.tick())
			}
		}
		if s.round.Expired() {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SpeedScreen) submit() {
	answer, err := s.input.NumericValue()
	if err != nil {
		return
	}
	q := s.round.Current()
	s.correct = s.round.Check(answer)
	if s.correct {
		s.feedback = fmt.Sprintf("Correct! +%d", speed.CorrectPoints)
	} else {
		s.feedback = fmt.Sprintf("%s = %d  (-%d)", equation.Display(q.Equation()), q.Answer, speed.WrongPenalty)
	}
	s.round.Next()
	s.input.Reset()
}

func (s *SpeedScreen) record() tea.Cmd {
	data := store.SpeedRoundEventData{
		SessionID:    s.svc.SessionID,
		Score:        s.round.Score(),
		Answered:     s.round.Answered(),
		Correct:      s.round.CorrectCount(),
		DurationSecs: int(s.round.Duration() / time.Second),
	}
	return s.svc.Record(func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendSpeedRound(ctx, data)
	})
}

func (s *SpeedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	remaining := s.round.Remaining()
	clock := components.Bar{
		Label:   "⏱",
		Percent: float64(remaining) / float64(s.round.Duration()),
		Caption: fmt.Sprintf("%ds", int(remaining/time.Second)),
		Width:   cw - 4,
	}

	if s.round.Expired() {
		summary := theme.Title.Render("Time's up!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Score: %d", s.round.Score())) + "\n" +
			theme.Body.Render(fmt.Sprintf("Correct: %s", components.Fraction(s.round.CorrectCount(), s.round.Answered())))
		return components.CabinetFrame(clock.View()+"\n\n"+components.Card(summary, cw), width, height)
	}

	q := s.round.Current()
	body := theme.Equation.Render(q.Text()) + "\n\n" + s.input.View()
	content := clock.View() + "\n\n" + components.Card(body, cw)
	if s.feedback != "" {
		style := theme.Incorrect
		if s.correct {
			style = theme.Correct
		}
		content += "\n\n" + style.Render(s.feedback)
	}
	return components.CabinetFrame(content, width, height)
}
