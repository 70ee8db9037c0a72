package screen

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/hint"
	"github.com/abhisek/mathtower/internal/store"
)

// Services bundles what gameplay screens need. Zero fields get working
// defaults from WithDefaults; a nil Repo disables recording.
type Services struct {
	Repo          store.EventRepo
	Builder       *challenge.Builder
	Hints         *hint.Service
	Rand          equation.Rand
	SessionID     string
	SpeedDuration time.Duration
}

// WithDefaults fills unset fields.
func (s Services) WithDefaults() Services {
	if s.Rand == nil {
		s.Rand = equation.GlobalRand()
	}
	if s.Builder == nil {
		s.Builder = challenge.New(challenge.DefaultConfig(), challenge.WithRand(s.Rand))
	}
	if s.Hints == nil {
		s.Hints = hint.New(nil)
	}
	if s.SpeedDuration <= 0 {
		s.SpeedDuration = time.Minute
	}
	return s
}

// RecordedMsg reports the result of a Record command.
type RecordedMsg struct {
	Err error
}

// Record returns a command that runs write against the repo off the UI
// loop. With no repo it does nothing.
func (s Services) Record(write func(ctx context.Context, repo store.EventRepo) error) tea.Cmd {
	if s.Repo == nil {
		return nil
	}
	repo := s.Repo
	return func() tea.Msg {
		return RecordedMsg{Err: write(context.Background(), repo)}
	}
}
