// Package app hosts the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/screens/home"
	"github.com/abhisek/mathtower/internal/screens/welcome"
	"github.com/abhisek/mathtower/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. Screens handle their own Esc;
// the model only owns Ctrl+C and the frame.
type AppModel struct {
	router  *router.Router
	width   int
	height  int
	warning string
}

func newAppModel(svc screen.Services, player *game.Player) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(svc, player)
	})
	return AppModel{router: router.New(splash)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.RecordedMsg:
		if msg.Err != nil {
			m.warning = "progress not saved: " + msg.Err.Error()
		} else {
			m.warning = ""
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	if m.warning != "" {
		hints = append(hints, layout.KeyHint{Key: "!", Description: m.warning})
	}
	return hints
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	if active == nil {
		return v
	}

	// The splash screen draws without chrome.
	if _, ok := active.(*welcome.WelcomeScreen); ok {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	var status layout.Status
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}

	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI with the given services. The player lives for the
// whole program so tower progress carries across modes.
func Run(svc screen.Services) error {
	p := tea.NewProgram(newAppModel(svc.WithDefaults(), game.NewPlayer("Player")))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
