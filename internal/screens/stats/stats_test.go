package stats

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
)

func TestStatsWithoutRepo(t *testing.T) {
	s := New(screen.Services{})
	assert.Nil(t, s.Init())
	assert.Contains(t, s.View(80, 30), "no database")
}

func TestStatsLoads(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	defer st.Close()

	repo := st.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendAnswer(ctx, store.AnswerEventData{
		Source: "tower", Mode: "addition", Target: 9, CorrectEquation: "4+5", Chosen: "4+5", Correct: true,
	}))
	require.NoError(t, repo.AppendSpeedRound(ctx, store.SpeedRoundEventData{Score: 70}))

	s := New(screen.Services{Repo: repo})
	assert.Contains(t, s.View(80, 30), "Loading")

	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.NoError(t, s.err)
	view := s.View(100, 40)
	assert.Contains(t, view, "addition")
	assert.Contains(t, view, "Best speed round: 70")
	assert.Contains(t, view, "Recent")
}

func TestStatsEscapePops(t *testing.T) {
	s := New(screen.Services{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
