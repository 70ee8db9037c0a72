package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/app"
	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/config"
	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/hint"
	"github.com/abhisek/mathtower/internal/llm"
	"github.com/abhisek/mathtower/internal/screen"
	"github.com/abhisek/mathtower/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "mathtower",
	Short:         "Equation challenges and a tower-climbing math game",
	Long:          "Math Tower builds arithmetic equation challenges and lets you climb towers by picking the equation that makes each target.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := buildServices(cmd, equation.GlobalRand())
		if err != nil {
			return err
		}
		defer closeFn()
		return app.Run(svc)
	},
}

// Execute runs the root command.
func Execute() error {
	log.SetFlags(0)
	log.SetPrefix("mathtower: ")
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHTOWER_DB env var)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
}

// loadConfig reads the MATHTOWER_ settings, applying --db on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db (highest priority),
// then MATHTOWER_DB, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newHintService builds an LLM-backed hint service, or a fallback-only one
// when hints are off or no provider is configured.
func newHintService(ctx context.Context, cfg config.Config, repo store.EventRepo) *hint.Service {
	if !cfg.Hints {
		return hint.New(nil)
	}
	llmCfg, err := llm.Resolve()
	if err != nil {
		log.Printf("hints use built-in tips: %v", err)
		return hint.New(nil)
	}
	provider, err := llm.NewProvider(ctx, llmCfg, repo)
	if err != nil {
		log.Printf("hints use built-in tips: %v", err)
		return hint.New(nil)
	}
	return hint.New(provider)
}

// buildServices opens the store and assembles everything the game screens
// and the play command share around rng. The returned func closes the store.
func buildServices(cmd *cobra.Command, rng equation.Rand) (screen.Services, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return screen.Services{}, nil, err
	}
	st, err := openStore(cfg)
	if err != nil {
		return screen.Services{}, nil, err
	}

	repo := st.EventRepo()
	svc := screen.Services{
		Repo:          repo,
		Builder:       challenge.New(cfg.Challenge(), challenge.WithRand(rng)),
		Hints:         newHintService(cmd.Context(), cfg, repo),
		Rand:          rng,
		SessionID:     uuid.NewString(),
		SpeedDuration: cfg.SpeedDuration(),
	}
	return svc, func() { st.Close() }, nil
}

// seededRand returns a seeded source when --seed was given, else the
// global one.
func seededRand(cmd *cobra.Command) equation.Rand {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return equation.NewSeededRand(seed)
	}
	return equation.GlobalRand()
}
