package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns the command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area (excluding header/footer).
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen show score and health in the header.
type StatusProvider interface {
	Status() layout.Status
}

// Reentrant screens are told when they become active again after the
// screen above them is popped, so they can refresh.
type Reentrant interface {
	Resume() tea.Cmd
}
