package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/challenge"
)

var choiceLetters = []string{"A", "B", "C", "D"}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Build a multiple-choice challenge for a target",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetInt("target")
		modeName, _ := cmd.Flags().GetString("mode")
		withHint, _ := cmd.Flags().GetBool("hint")
		showAnswer, _ := cmd.Flags().GetBool("answer")

		mode, err := challenge.ParseMode(modeName)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := challenge.New(cfg.Challenge(), challenge.WithRand(seededRand(cmd)))
		ch := b.Build(target, mode)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Which equation makes %d? (%s)\n", ch.Target, ch.Mode)
		for i, opt := range ch.Options {
			fmt.Fprintf(out, "  %s) %s\n", choiceLetters[i%len(choiceLetters)], opt)
		}
		if ch.Degraded {
			fmt.Fprintln(out, "(some distractors were filled in deterministically)")
		}

		if withHint {
			// Without a store the LLM calls are not logged.
			svc := newHintService(cmd.Context(), cfg, nil)
			text, _ := svc.Hint(cmd.Context(), ch)
			fmt.Fprintf(out, "Hint: %s\n", text)
		}
		if showAnswer {
			fmt.Fprintf(out, "Answer: %s) %s\n", choiceLetters[ch.CorrectIndex()], ch.CorrectEquation)
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().Int("target", 0, "Target value (required)")
	challengeCmd.Flags().String("mode", "any", "Operator mode: any, addition, subtraction, multiplication, division")
	challengeCmd.Flags().Uint64("seed", 0, "Seed for a reproducible challenge")
	challengeCmd.Flags().Bool("hint", false, "Ask for a hint")
	challengeCmd.Flags().Bool("answer", false, "Reveal the correct option")
	_ = challengeCmd.MarkFlagRequired("target")
}
