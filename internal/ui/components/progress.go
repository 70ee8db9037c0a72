package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/ui/theme"
)

// Bar is a horizontal meter used for enemy health and the speed round
// clock. Below 25% it switches to the danger color.
type Bar struct {
	Label   string
	Percent float64
	Caption string
	Width   int
}

// View renders the bar.
func (p Bar) View() string {
	var result string
	if p.Label != "" {
		result = theme.Body.Render(p.Label) + "  "
	}
	caption := ""
	if p.Caption != "" {
		caption = "  " + theme.Hint.Render(p.Caption)
	}

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(caption), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := theme.BarFilled
	if p.Percent < 0.25 {
		fill = theme.BarDanger
	}

	return result +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.BarEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		caption
}

// Fraction formats n of total as "n/total".
func Fraction(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}
