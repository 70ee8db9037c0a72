package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "List equations that make a target",
	Example: `  mathtower generate --target 12 --length 3
  mathtower generate --target 24 --length 5 --mode x --count 5
  mathtower generate --target 90 --wide --shuffle --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetInt("target")
		length, _ := cmd.Flags().GetInt("length")
		count, _ := cmd.Flags().GetInt("count")
		modeName, _ := cmd.Flags().GetString("mode")
		wide, _ := cmd.Flags().GetBool("wide")
		shuffle, _ := cmd.Flags().GetBool("shuffle")

		mode, err := challenge.ParseMode(modeName)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("count") {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			count = cfg.Candidates
		}

		var opts []equation.Option
		if wide {
			opts = append(opts, equation.WithDigitRange(1, 99))
		}
		if shuffle {
			opts = append(opts, equation.WithShuffle(seededRand(cmd)))
		}

		found := equation.Generate(target, length, count, mode.Operators(), opts...)
		out := cmd.OutOrStdout()
		if len(found) == 0 {
			fmt.Fprintf(out, "no %d-token %s equations make %d\n", length, mode, target)
			return nil
		}
		for _, eq := range found {
			fmt.Fprintln(out, eq)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("target", 0, "Value the equations must make (required)")
	generateCmd.Flags().Int("length", 3, "Tokens per equation (odd, at least 3)")
	generateCmd.Flags().Int("count", 20, "Maximum equations to list (default MATHTOWER_CANDIDATES)")
	generateCmd.Flags().String("mode", "any", "Operator mode: any, addition, subtraction, multiplication, division")
	generateCmd.Flags().Bool("wide", false, "Use operands 1..99 instead of single digits")
	generateCmd.Flags().Bool("shuffle", false, "Shuffle operands so different equations come first")
	generateCmd.Flags().Uint64("seed", 0, "Seed for --shuffle")
	_ = generateCmd.MarkFlagRequired("target")
}
