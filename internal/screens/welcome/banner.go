package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/ui/theme"
)

const bannerArt = `█▀▄▀█ ▄▀█ ▀█▀ █ █   ▀█▀ █▀█ █ █ █ █▀▀ █▀█
█ ▀ █ █▀█  █  █▀█    █  █▄█ ▀▄▀▄▀ ██▄ █▀▄`

const bannerCompact = "M A T H · T O W E R"

// RenderBanner returns the MATH TOWER banner, or a one-line version for
// terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
