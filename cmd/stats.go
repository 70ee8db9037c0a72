package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy per mode, the best speed round and recent answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := stats.Load(cmd.Context(), st.EventRepo())
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func printReport(out io.Writer, r stats.Report) {
	rule := strings.Repeat("─", 48)

	if len(r.Modes) == 0 {
		fmt.Fprintln(out, "No answers recorded yet.")
	} else {
		fmt.Fprintln(out, "Accuracy by Mode")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-16s  %8s  %8s  %8s\n", "Mode", "Answered", "Correct", "Accuracy")
		fmt.Fprintln(out, rule)
		for _, m := range append(r.Modes, r.Totals()) {
			fmt.Fprintf(out, "%-16s  %8d  %8d  %7.0f%%\n", m.Mode, m.Answered, m.Correct, 100*m.Accuracy())
		}
	}

	fmt.Fprintf(out, "\nBest speed round: %d\n", r.BestSpeedScore)

	if len(r.Recent) > 0 {
		fmt.Fprintln(out, "\nRecent Answers")
		fmt.Fprintln(out, rule)
		for _, a := range r.Recent {
			mark := "✓"
			if !a.Correct {
				mark = "✗"
			}
			fmt.Fprintf(out, "%s  %-19s  %-6s  %3d  %-10s  (%s)\n",
				mark, a.Timestamp.Local().Format("2006-01-02 15:04:05"), a.Source, a.Target, a.Chosen, a.CorrectEquation)
		}
	}

	if len(r.LLM) > 0 {
		fmt.Fprintln(out, "\nHint Requests")
		fmt.Fprintln(out, rule)
		for _, u := range r.LLM {
			cost := "?"
			if u.Cost >= 0 {
				cost = formatCost(u.Cost)
			}
			fmt.Fprintf(out, "%-28s  %4d calls  %4d failed  %9s\n", truncate(u.Model, 28), u.Requests, u.Failures, cost)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
