// Package stats shows accuracy per mode, the best speed round and recent
// answers.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/stats"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

type loadedMsg struct {
	report stats.Report
	err    error
}

// StatsScreen loads a stats.Report when pushed.
type StatsScreen struct {
	svc     screen.Services
	report  stats.Report
	loading bool
	err     error
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen.
func New(svc screen.Services) *StatsScreen {
	return &StatsScreen{svc: svc, loading: svc.Repo != nil}
}

func (s *StatsScreen) Init() tea.Cmd {
	repo := s.svc.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		r, err := stats.Load(context.Background(), repo)
		return loadedMsg{report: r, err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.report, s.err = msg.report, msg.err
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	switch {
	case s.svc.Repo == nil:
		return components.CabinetFrame(theme.Hint.Render("Stats are off: no database."), width, height)
	case s.loading:
		return components.CabinetFrame(theme.Hint.Render("Loading..."), width, height)
	case s.err != nil:
		return components.CabinetFrame(theme.Incorrect.Render("Could not load stats: "+s.err.Error()), width, height)
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Your Progress"))

	if len(s.report.Modes) == 0 {
		sections = append(sections, theme.Hint.Render("No answers yet. Go climb a tower!"))
	} else {
		var bars []string
		for _, m := range s.report.Modes {
			bars = append(bars, components.Bar{
				Label:   fmt.Sprintf("%-14s", m.Mode),
				Percent: m.Accuracy(),
				Caption: components.Fraction(m.Correct, m.Answered),
				Width:   cw - 4,
			}.View())
		}
		sections = append(sections, components.Card(strings.Join(bars, "\n"), cw))
	}

	sections = append(sections, theme.Body.Render(fmt.Sprintf("Best speed round: %d", s.report.BestSpeedScore)))

	if len(s.report.Recent) > 0 {
		var lines []string
		for _, a := range s.report.Recent {
			mark := theme.Correct.Render("✓")
			if !a.Correct {
				mark = theme.Incorrect.Render("✗")
			}
			lines = append(lines, fmt.Sprintf("%s %3d  %s", mark, a.Target, equation.Display(a.Chosen)))
		}
		sections = append(sections, theme.Subtitle.Render("Recent")+"\n"+strings.Join(lines, "\n"))
	}

	if cost := s.report.TotalCost(); cost > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("Hint wizard cost: $%.4f", cost)))
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
