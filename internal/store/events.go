package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of ent's dialect SQL builder and
// the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	sql *entsql.DialectBuilder
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	return r.insert(ctx, answerEventsTable.Name,
		[]string{"session_id", "source", "mode", "target", "correct_equation", "chosen", "correct", "degraded", "time_ms"},
		data.SessionID, data.Source, data.Mode, data.Target, data.CorrectEquation, data.Chosen,
		boolInt(data.Correct), boolInt(data.Degraded), data.TimeMs,
	)
}

func (r *eventRepo) AppendSpeedRound(ctx context.Context, data SpeedRoundEventData) error {
	return r.insert(ctx, speedRoundEventsTable.Name,
		[]string{"session_id", "score", "answered", "correct", "duration_secs"},
		data.SessionID, data.Score, data.Answered, data.Correct, data.DurationSecs,
	)
}

func (r *eventRepo) AppendBoss(ctx context.Context, data BossEventData) error {
	return r.insert(ctx, bossEventsTable.Name,
		[]string{"session_id", "phases_cleared", "attempts", "defeated"},
		data.SessionID, data.PhasesCleared, data.Attempts, boolInt(data.Defeated),
	)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.insert(ctx, llmRequestEventsTable.Name,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message"},
		data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, boolInt(data.Success), data.ErrorMessage,
	)
}

// insert writes one row, prefixing columns with the shared sequence and
// timestamp.
func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.sql.Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, columns...)...).
		Values(append([]any{seqNum, time.Now().UnixMilli()}, values...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) ModeAccuracy(ctx context.Context) ([]ModeStats, error) {
	query, args := r.sql.Select(
		"mode",
		entsql.As(entsql.Count("*"), "answered"),
		entsql.As(entsql.Sum("correct"), "correct"),
	).
		From(entsql.Table(answerEventsTable.Name)).
		GroupBy("mode").
		OrderBy("mode").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mode accuracy: %w", err)
	}
	defer rows.Close()

	var stats []ModeStats
	for rows.Next() {
		var s ModeStats
		if err := rows.Scan(&s.Mode, &s.Answered, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan mode accuracy: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerEvent, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args := r.sql.Select(
		"sequence", "timestamp", "session_id", "source", "mode", "target",
		"correct_equation", "chosen", "correct", "degraded", "time_ms",
	).
		From(entsql.Table(answerEventsTable.Name)).
		OrderBy(entsql.Desc("sequence")).
		Limit(limit).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var (
			e                 AnswerEvent
			ts                int64
			correct, degraded int
		)
		err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Source, &e.Mode, &e.Target,
			&e.CorrectEquation, &e.Chosen, &correct, &degraded, &e.TimeMs)
		if err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		e.Correct = correct != 0
		e.Degraded = degraded != 0
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) BestSpeedScore(ctx context.Context) (int, error) {
	query, args := r.sql.Select(entsql.Max("score")).
		From(entsql.Table(speedRoundEventsTable.Name)).
		Query()

	var best sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&best); err != nil {
		return 0, fmt.Errorf("query best speed score: %w", err)
	}
	return int(best.Int64), nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsage, error) {
	query, args := r.sql.Select(
		"model",
		entsql.As(entsql.Count("*"), "requests"),
		entsql.As("SUM(1 - success)", "failures"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
	).
		From(entsql.Table(llmRequestEventsTable.Name)).
		GroupBy("model").
		OrderBy("model").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var usage []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
