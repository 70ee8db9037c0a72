package app

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/screens/home"
)

func newTestModel() AppModel {
	return newAppModel(screen.Services{}.WithDefaults(), game.NewPlayer("p"))
}

func TestSplashThenHome(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)

	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRecordFailureShowsWarning(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(screen.RecordedMsg{Err: errors.New("disk full")})
	m = updated.(AppModel)
	assert.Contains(t, m.warning, "disk full")

	hints := m.footerHints(m.router.Active())
	assert.Equal(t, "!", hints[len(hints)-1].Key)

	updated, _ = m.Update(screen.RecordedMsg{})
	m = updated.(AppModel)
	assert.Empty(t, m.warning)
}

func TestTooSmall(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = updated.(AppModel)
	assert.NotPanics(t, func() { m.View() })
}
