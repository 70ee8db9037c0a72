package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesTables(t *testing.T) {
	s := openTestStore(t)

	names := []string{"global_sequence"}
	for _, table := range eventTables {
		names = append(names, table.Name)
	}
	for _, table := range names {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestOpenCreatesIndexes(t *testing.T) {
	s := openTestStore(t)

	for _, index := range []string{"answer_events_mode", "answer_events_timestamp", "llm_request_events_timestamp"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'index' AND name = ?`, index,
		).Scan(&name)
		if err != nil {
			t.Errorf("index %s missing: %v", index, err)
		}
	}
}

func TestSequenceColumnUnique(t *testing.T) {
	s := openTestStore(t)

	insert := `INSERT INTO boss_events (sequence, timestamp, session_id, phases_cleared, attempts, defeated) VALUES (1, 0, 's', 0, 1, 0)`
	if _, err := s.DB().Exec(insert); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := s.DB().Exec(insert); err == nil {
		t.Error("duplicate sequence accepted")
	}
}

func TestJournalModeWAL(t *testing.T) {
	s := openTestStore(t)

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendSpeedRound(ctx, SpeedRoundEventData{SessionID: "a", Score: 40}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	best, err := s.EventRepo().BestSpeedScore(ctx)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 40 {
		t.Errorf("best = %d, want 40", best)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}

func TestAnswersAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Source: "tower", Mode: "add", Target: 12, CorrectEquation: "5+7", Chosen: "5+7", Correct: true},
		{SessionID: "s1", Source: "tower", Mode: "add", Target: 9, CorrectEquation: "4+5", Chosen: "2+3", Correct: false},
		{SessionID: "s1", Source: "cli", Mode: "mul", Target: 8, CorrectEquation: "2x4", Chosen: "2x4", Correct: true, Degraded: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.ModeAccuracy(ctx)
	if err != nil {
		t.Fatalf("mode accuracy: %v", err)
	}
	want := []ModeStats{
		{Mode: "add", Answered: 2, Correct: 1},
		{Mode: "mul", Answered: 1, Correct: 1},
	}
	if len(stats) != len(want) {
		t.Fatalf("got %d modes, want %d", len(stats), len(want))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
	if got := stats[0].Accuracy(); got != 0.5 {
		t.Errorf("add accuracy = %v, want 0.5", got)
	}

	recent, err := repo.RecentAnswers(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d recent answers, want 2", len(recent))
	}
	if recent[0].Mode != "mul" || !recent[0].Degraded || !recent[0].Correct {
		t.Errorf("newest answer = %+v, want the degraded mul answer", recent[0])
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Error("recent answers not ordered newest first")
	}
	if recent[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestBestSpeedScoreEmpty(t *testing.T) {
	s := openTestStore(t)

	best, err := s.EventRepo().BestSpeedScore(context.Background())
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 0 {
		t.Errorf("best = %d, want 0", best)
	}
}

func TestAppendBossAndLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendBoss(ctx, BossEventData{SessionID: "s", PhasesCleared: 4, Attempts: 6, Defeated: true}); err != nil {
		t.Fatalf("append boss: %v", err)
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "hint", InputTokens: 10, OutputTokens: 5, LatencyMs: 30, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	var defeated int
	if err := s.DB().QueryRow(`SELECT defeated FROM boss_events`).Scan(&defeated); err != nil {
		t.Fatalf("query boss: %v", err)
	}
	if defeated != 1 {
		t.Errorf("defeated = %d, want 1", defeated)
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(usage) != 1 || usage[0] != (LLMUsage{Model: "m", Requests: 1, InputTokens: 10, OutputTokens: 5}) {
		t.Errorf("usage = %+v", usage)
	}

	var purpose string
	if err := s.DB().QueryRow(`SELECT purpose FROM llm_request_events`).Scan(&purpose); err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if purpose != "hint" {
		t.Errorf("purpose = %q, want %q", purpose, "hint")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	repo.AppendAnswer(ctx, AnswerEventData{SessionID: "s", Source: "cli", Mode: "any", Target: 3, CorrectEquation: "1+2", Chosen: "1+2", Correct: true})
	repo.AppendSpeedRound(ctx, SpeedRoundEventData{SessionID: "s", Score: 10})
	before, _ := s.seq.Next(ctx)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for _, table := range eventTables {
		var n int
		if err := s.DB().QueryRow("SELECT COUNT(*) FROM " + table.Name).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table.Name, err)
		}
		if n != 0 {
			t.Errorf("%s has %d rows after reset", table.Name, n)
		}
	}

	after, _ := s.seq.Next(ctx)
	if after <= before {
		t.Errorf("sequence restarted: %d after %d", after, before)
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("MATHTOWER_DB", path)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
}
