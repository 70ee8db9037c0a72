package battle

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/ui/components"
	"github.com/abhisek/mathtower/internal/ui/layout"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

// TowersScreen lists the towers. Locked towers are shown but cannot be
// entered.
type TowersScreen struct {
	svc    screen.Services
	player *game.Player
	menu   components.Menu
}

var _ screen.Screen = (*TowersScreen)(nil)
var _ screen.Reentrant = (*TowersScreen)(nil)
var _ screen.StatusProvider = (*TowersScreen)(nil)

// NewTowers creates the tower select screen for player.
func NewTowers(svc screen.Services, player *game.Player) *TowersScreen {
	t := &TowersScreen{svc: svc.WithDefaults(), player: player}
	t.buildMenu()
	return t
}

func (t *TowersScreen) buildMenu() {
	items := make([]components.MenuItem, 0, game.TowerCount)
	for tower := 1; tower <= game.TowerCount; tower++ {
		mode, _ := game.TowerMode(tower)
		op := mode.Operators()[0]
		item := components.MenuItem{
			Label:  fmt.Sprintf("Tower %d  %s", tower, op.Symbol()),
			Detail: strings.ToUpper(mode.String()),
		}
		if !t.player.IsTowerUnlocked(tower) {
			item.Disabled = true
			item.Detail = "🔒 LOCKED"
		} else {
			item.Action = t.enter(tower)
		}
		items = append(items, item)
	}

	selected := t.menu.Selected
	t.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		t.menu.Selected = selected
	}
}

func (t *TowersScreen) enter(tower int) func() tea.Cmd {
	return func() tea.Cmd {
		if !t.player.IsAlive() {
			t.player.ResetHealth()
		}
		b := New(t.svc, t.player, tower)
		return func() tea.Msg { return router.PushScreenMsg{Screen: b} }
	}
}

func (t *TowersScreen) Init() tea.Cmd {
	return nil
}

func (t *TowersScreen) Title() string {
	return "Tower Climb"
}

func (t *TowersScreen) Status() layout.Status {
	return layout.Status{Score: t.player.Score, Health: t.player.Health, MaxHealth: game.MaxHealth}
}

// Resume rebuilds the menu so towers unlocked in battle become selectable.
func (t *TowersScreen) Resume() tea.Cmd {
	t.buildMenu()
	return nil
}

func (t *TowersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TowersScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	header := theme.Title.Render("Choose your tower")
	sub := theme.Hint.Render("Clear all ten levels to open the next one.")
	return components.CabinetFrame(header+"\n"+sub+"\n\n"+t.menu.View(cw), width, height)
}
