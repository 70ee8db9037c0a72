package speedround

import (
	"context"
	"strconv"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/router"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/speed"
	"github.com/abhisek/mathtower/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	rounds []store.SpeedRoundEventData
}

func (r *recordingRepo) AppendSpeedRound(_ context.Context, e store.SpeedRoundEventData) error {
	r.rounds = append(r.rounds, e)
	return nil
}

func newScreen(repo store.EventRepo, d time.Duration) *SpeedScreen {
	return New(screen.Services{
		Repo:          repo,
		Rand:          equation.NewSeededRand(3),
		SessionID:     "s1",
		SpeedDuration: d,
	})
}

func typeAnswer(s *SpeedScreen, n int) {
	for _, r := range strconv.Itoa(n) {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestCorrectAnswerScores(t *testing.T) {
	s := newScreen(nil, 10*time.Second)
	q := s.round.Current()
	require.NotNil(t, q)

	typeAnswer(s, q.Answer)
	assert.Equal(t, speed.CorrectPoints, s.round.Score())
	assert.True(t, s.correct)
	assert.Equal(t, "", s.input.Value())
}

func TestWrongAnswerShowsSolution(t *testing.T) {
	s := newScreen(nil, 10*time.Second)
	q := *s.round.Current()

	typeAnswer(s, q.Answer+1)
	assert.Equal(t, 0, s.round.Score())
	assert.False(t, s.correct)
	assert.Contains(t, s.feedback, strconv.Itoa(q.Answer))
}

func TestLettersRejected(t *testing.T) {
	s := newScreen(nil, 10*time.Second)
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, "", s.input.Value())
}

func TestClockExpiresAndRecords(t *testing.T) {
	repo := &recordingRepo{}
	s := newScreen(repo, 2*time.Second)
	q := s.round.Current()
	typeAnswer(s, q.Answer)

	_, cmd := s.Update(tickMsg{gen: s.gen})
	require.NotNil(t, cmd)
	assert.False(t, s.round.Expired())

	_, cmd = s.Update(tickMsg{gen: s.gen})
	require.True(t, s.round.Expired())
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, repo.rounds, 1)
	assert.Equal(t, store.SpeedRoundEventData{
		SessionID:    "s1",
		Score:        speed.CorrectPoints,
		Answered:     1,
		Correct:      1,
		DurationSecs: 2,
	}, repo.rounds[0])
	assert.Contains(t, s.View(80, 30), "Time's up!")

	// Answers are ignored once the clock has stopped.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, s.round.Answered())
}

func TestStaleTickIgnored(t *testing.T) {
	s := newScreen(nil, 2*time.Second)
	old := s.gen
	s.Update(tickMsg{gen: s.gen})
	s.round.Tick(time.Hour)

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.False(t, s.round.Expired())
	require.NotEqual(t, old, s.gen)

	_, cmd := s.Update(tickMsg{gen: old})
	assert.Nil(t, cmd)
	assert.Equal(t, 2*time.Second, s.round.Remaining())
}

func TestEscapePops(t *testing.T) {
	s := newScreen(nil, 0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, s.round.Duration())
}
