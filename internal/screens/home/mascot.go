package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtower/internal/ui/theme"
)

// MascotVariant selects the tower guide's mood.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // a tower was unlocked this session
	MascotHurt                      // one heart or less
)

const mascotIdle = `  /\
 /  \
| ◉◉ |
|+-×÷|
|____|`

const mascotCelebrating = ` \/\/
 /  \
| ★★ |
|+-×÷|
|____|`

const mascotHurt = `  /\
 /  \ !
| ×× |
|+-×÷|
|____|`

// RenderMascot returns the styled art for variant.
func RenderMascot(variant MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch variant {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Gold
	case MascotHurt:
		art, fg = mascotHurt, theme.Error
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
