package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/game"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Answer challenges in the terminal without the full-screen UI",
	Long: `Answer multiple-choice challenges on stdin. Type a letter (a-d) or a
number (1-4) to answer, 'h' for a hint, or an empty line to skip.

Answers are recorded and count toward 'mathtower stats'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := challenge.ParseMode(modeName)
		if err != nil {
			return err
		}

		svc, closeFn, err := buildServices(cmd, seededRand(cmd))
		if err != nil {
			return err
		}
		defer closeFn()

		return playLoop(cmd.Context(), svc.WithDefaults(), mode, count, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	playCmd.Flags().IntP("count", "n", 5, "Number of challenges")
	playCmd.Flags().String("mode", "any", "Operator mode: any, addition, subtraction, multiplication, division")
	playCmd.Flags().Uint64("seed", 0, "Seed for reproducible challenges")
}

// playLoop asks count challenges. It stops early when input closes.
func playLoop(ctx context.Context, svc screen.Services, mode challenge.Mode, count int, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var correct, answered int

	for i := 1; i <= count; i++ {
		ch := svc.Builder.Build(1+svc.Rand.IntN(game.MaxEnemyHealth), mode)

		fmt.Fprintf(out, "── Challenge %d/%d ──\n", i, count)
		fmt.Fprintf(out, "Which equation makes %d?\n", ch.Target)
		for j, opt := range ch.Options {
			fmt.Fprintf(out, "  %s) %s\n", choiceLetters[j], opt)
		}

		shown := time.Now()
		choice, ok := readChoice(ctx, svc, ch, scanner, out)
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		if choice < 0 {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}

		answered++
		right := ch.IsCorrect(choice)
		if right {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s) %s\n", choiceLetters[ch.CorrectIndex()], ch.CorrectEquation)
		}
		fmt.Fprintln(out)

		if svc.Repo != nil {
			err := svc.Repo.AppendAnswer(ctx, store.AnswerEventData{
				SessionID:       svc.SessionID,
				Source:          "cli",
				Mode:            ch.Mode.String(),
				Target:          ch.Target,
				CorrectEquation: ch.CorrectEquation,
				Chosen:          ch.Options[choice],
				Correct:         right,
				Degraded:        ch.Degraded,
				TimeMs:          time.Since(shown).Milliseconds(),
			})
			if err != nil {
				return fmt.Errorf("record answer: %w", err)
			}
		}
	}

	fmt.Fprintf(out, "Score: %d/%d\n", correct, answered)
	return nil
}

// readChoice reads lines until one selects an option. It returns -1 for a
// skipped challenge and false when input is exhausted.
func readChoice(ctx context.Context, svc screen.Services, ch challenge.Challenge, scanner *bufio.Scanner, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return 0, false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch {
		case answer == "":
			return -1, true
		case answer == "h":
			text, _ := svc.Hints.Hint(ctx, ch)
			fmt.Fprintf(out, "Hint: %s\n", text)
			continue
		}
		if i := choiceIndex(answer); i >= 0 && i < len(ch.Options) {
			return i, true
		}
		fmt.Fprintln(out, "Type a-d or 1-4, 'h' for a hint.")
	}
}

func choiceIndex(answer string) int {
	if len(answer) != 1 {
		return -1
	}
	c := answer[0]
	switch {
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	case c >= '1' && c <= '4':
		return int(c - '1')
	}
	return -1
}
