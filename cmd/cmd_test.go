package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"3+2x2", "7"},
		{"3 + 2 * 2", "7"},
		{"14-3/2", "12.5"},
		{"7/2", "3.5"},
		{"8÷4×3", "6"},
	}
	for _, tt := range tests {
		got, err := run(t, "eval", tt.expr)
		require.NoError(t, err)
		assert.Equal(t, tt.want, strings.TrimSpace(got), tt.expr)
	}
}

func TestValidateCommand(t *testing.T) {
	got, err := run(t, "validate", "1+2x3")
	require.NoError(t, err)
	assert.Equal(t, "valid", strings.TrimSpace(got))

	// Tiles are single digits.
	got, err = run(t, "validate", "12+3")
	require.Error(t, err)
	assert.True(t, Silent(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t, "invalid", strings.TrimSpace(got))

	// Validation is strict about glyphs; only eval accepts '*'.
	got, err = run(t, "validate", "2*3")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t, "invalid", strings.TrimSpace(got))

	got, err = run(t, "validate", "2", "x", " 3")
	require.NoError(t, err)
	assert.Equal(t, "valid", strings.TrimSpace(got))
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"v2", "v2.0.0"},
		{"v1.0.0-rc.1+build.5", "v1.0.0-rc.1"},
		{"(devel)", "(devel)"},
		{"", "(devel)"},
		{"main-abc123", "(devel)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.in), tt.in)
	}
}

func TestVersionCommand(t *testing.T) {
	old := version
	version = "1.4.0"
	t.Cleanup(func() { version = old })

	got, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mathtower v1.4.0", strings.TrimSpace(got))
}

func TestGenerateCommand(t *testing.T) {
	got, err := run(t, "generate", "--target", "12", "--length", "3", "--count", "5", "--mode", "x")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 5)
	for _, eq := range lines {
		assert.Equal(t, 12.0, equation.Evaluate(eq), eq)
		assert.Contains(t, eq, "x")
	}
}

func TestChallengeCommand(t *testing.T) {
	t.Setenv("MATHTOWER_HINTS", "false")
	got, err := run(t, "challenge", "--target", "9", "--mode", "addition", "--seed", "4", "--hint", "--answer")
	require.NoError(t, err)
	assert.Contains(t, got, "Which equation makes 9?")
	for _, l := range []string{"A)", "B)", "C)", "D)", "Hint:", "Answer:"} {
		assert.Contains(t, got, l)
	}
}

func TestStatsAndReset(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.EventRepo().AppendAnswer(context.Background(), store.AnswerEventData{
		Source: "cli", Mode: "addition", Target: 5, CorrectEquation: "2+3", Chosen: "2+3", Correct: true,
	}))
	require.NoError(t, st.Close())

	got, err := run(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, got, "addition")
	assert.Contains(t, got, "100%")

	_, err = run(t, "reset", "--db", dbPath, "--yes")
	require.NoError(t, err)

	got, err = run(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, got, "No answers recorded yet.")
}

func TestPlayLoop(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "play.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	rng := equation.NewSeededRand(1)
	svc := screen.Services{
		Repo:      st.EventRepo(),
		Rand:      rng,
		Builder:   challenge.New(challenge.DefaultConfig(), challenge.WithRand(rng)),
		SessionID: "cli-test",
	}.WithDefaults()

	// hint, nonsense, an answer, a skip, then input closes.
	in := strings.NewReader("h\nzz\na\n\n")
	var out bytes.Buffer
	require.NoError(t, playLoop(context.Background(), svc, challenge.Addition, 3, in, &out))

	text := out.String()
	assert.Contains(t, text, "Hint:")
	assert.Contains(t, text, "Type a-d or 1-4")
	assert.Contains(t, text, "(skipped)")
	assert.Contains(t, text, "(input closed)")
	assert.Contains(t, text, "Score: ")

	recent, err := st.EventRepo().RecentAnswers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "cli", recent[0].Source)
	assert.Equal(t, "cli-test", recent[0].SessionID)
	assert.Equal(t, "addition", recent[0].Mode)
}

func TestChoiceIndex(t *testing.T) {
	tests := map[string]int{"a": 0, "d": 3, "1": 0, "4": 3, "e": -1, "5": -1, "ab": -1}
	for in, want := range tests {
		assert.Equal(t, want, choiceIndex(in), in)
	}
}

func TestNormalizeExpr(t *testing.T) {
	assert.Equal(t, "3x4-1/2", normalizeExpr(" 3 × 4 − 1 ÷ 2 "))
	assert.Equal(t, "2x2", normalizeExpr("2*2"))
}
