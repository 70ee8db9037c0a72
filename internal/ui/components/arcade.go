package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every boxed section so
// they line up, capped at 60 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double border, centered in the area.
func CabinetFrame(content string, width, height int) string {
	return theme.Cabinet.
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded card of the given width.
func Card(content string, width int) string {
	return theme.Card.
		Width(width - 2).
		Align(lipgloss.Center).
		Render(content)
}

// Button renders a fixed-width button. Unselected buttons use the given
// text style.
func Button(label string, selected bool, width int, text lipgloss.Style) string {
	base := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if selected {
		return base.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Gold).
			BorderForeground(theme.Gold).
			Render("▸ " + label)
	}
	return base.
		Inherit(text).
		BorderForeground(theme.Border).
		Render(label)
}
