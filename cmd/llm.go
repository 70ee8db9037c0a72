package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/llm"
	"github.com/abhisek/mathtower/internal/stats"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the hint provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the resolved provider and send one test request",
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		out := cmd.OutOrStdout()

		cfg, err := llm.Resolve()
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		appCfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(appCfg)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Provider:  %s\n", cfg.Provider)
		fmt.Fprintf(out, "Model:     %s\n", provider.ModelID())
		if c := llm.LookupCost(provider.ModelID()); c != nil {
			fmt.Fprintf(out, "Pricing:   $%.2f / $%.2f per MTok in/out\n", c.InputPerMTok, c.OutputPerMTok)
		}
		if offline {
			return nil
		}

		req := llm.UserPrompt("Reply with the single word: ok", "ping")
		req.MaxTokens = 16
		start := time.Now()
		resp, err := provider.Generate(llm.WithPurpose(cmd.Context(), "check"), req)
		if err != nil {
			return fmt.Errorf("test request: %w", err)
		}
		fmt.Fprintf(out, "Reply:     %s\n", strings.TrimSpace(string(resp.Content)))
		fmt.Fprintf(out, "Latency:   %dms\n", time.Since(start).Milliseconds())
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show recorded LLM requests and estimated cost by model",
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

		out := cmd.OutOrStdout()
		if len(report.LLM) == 0 {
			fmt.Fprintln(out, "No LLM requests recorded yet.")
			return nil
		}

		rule := strings.Repeat("─", 72)
		fmt.Fprintln(out, "Estimated Cost (USD)")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-28s  %6s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "Failed", "Input", "Output", "Cost")
		fmt.Fprintln(out, rule)

		var unknown []string
		for _, u := range report.LLM {
			cost := "?"
			if u.Cost >= 0 {
				cost = formatCost(u.Cost)
			} else {
				unknown = append(unknown, u.Model)
			}
			fmt.Fprintf(out, "%-28s  %6d  %6d  %10d  %10d  %9s\n",
				truncate(u.Model, 28), u.Requests, u.Failures, u.InputTokens, u.OutputTokens, cost)
		}

		fmt.Fprintln(out, rule)
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, "%-28s  %6s  %6s  %10s  %10s  %9s\n", label, "", "", "", "", formatCost(report.TotalCost()))
		if len(unknown) > 0 {
			fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func init() {
	llmCheckCmd.Flags().Bool("offline", false, "Only resolve the configuration, send nothing")

	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
