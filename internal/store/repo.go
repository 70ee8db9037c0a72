package store

import (
	"context"
	"time"
)

// AnswerEventData records one answered multiple-choice challenge.
type AnswerEventData struct {
	SessionID       string
	Source          string // "tower" or "cli"
	Mode            string
	Target          int
	CorrectEquation string
	Chosen          string
	Correct         bool
	Degraded        bool
	TimeMs          int64
}

// AnswerEvent is a stored AnswerEventData.
type AnswerEvent struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// SpeedRoundEventData records a finished speed round.
type SpeedRoundEventData struct {
	SessionID    string
	Score        int
	Answered     int
	Correct      int
	DurationSecs int
}

// BossEventData records a finished boss fight.
type BossEventData struct {
	SessionID     string
	PhasesCleared int
	Attempts      int
	Defeated      bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ModeStats aggregates answers of one mode.
type ModeStats struct {
	Mode     string
	Answered int
	Correct  int
}

// Accuracy returns the fraction of correct answers, 0 when none.
func (m ModeStats) Accuracy() float64 {
	if m.Answered == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.Answered)
}

// LLMUsage aggregates LLM requests of one model.
type LLMUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to gameplay events.
type EventRepo interface {
	// AppendAnswer records an answered challenge.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSpeedRound records a finished speed round.
	AppendSpeedRound(ctx context.Context, data SpeedRoundEventData) error

	// AppendBoss records a finished boss fight.
	AppendBoss(ctx context.Context, data BossEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ModeAccuracy returns answer totals grouped by mode, sorted by mode.
	ModeAccuracy(ctx context.Context) ([]ModeStats, error)

	// RecentAnswers returns up to limit answers, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerEvent, error)

	// BestSpeedScore returns the highest speed round score, 0 if none.
	BestSpeedScore(ctx context.Context) (int, error)

	// LLMUsage returns request and token totals grouped by model.
	LLMUsage(ctx context.Context) ([]LLMUsage, error)
}
