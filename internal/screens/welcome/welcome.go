// Package welcome is the splash screen: a tower rises floor by floor, then
// the banner appears.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	floorEvery   = 300 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const towerRoof = `   /\
  /  \
 /____\`

// One floor per operator, from the ground up.
var towerFloors = []string{
	" | ÷  |",
	" | ×  |",
	" | −  |",
	" | +  |",
}

const towerBase = "_|____|_"

var flagFrames = []string{"  ~", " ~ "}

type tickMsg time.Time

// WelcomeScreen plays the splash and replaces itself with the screen
// produced by next on the first keypress.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash screen.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// floorsBuilt returns how many floors the animation has raised.
func (w *WelcomeScreen) floorsBuilt() int {
	return min(int(w.elapsed/floorEvery), len(towerFloors))
}

func (w *WelcomeScreen) renderTower() string {
	built := w.floorsBuilt()
	var lines []string
	if built == len(towerFloors) {
		lines = append(lines, flagFrames[w.tickCount%len(flagFrames)]+"  ", towerRoof)
	}
	lines = append(lines, towerFloors[len(towerFloors)-built:]...)
	lines = append(lines, towerBase)

	return lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(lines, "\n"))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderTower()}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Climb the towers, one equation at a time!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
