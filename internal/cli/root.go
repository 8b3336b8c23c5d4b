// Package cli defines Cobra command definitions for the mandator CLI.
// This file contains the root command, version flag, and TUI launch.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mandator-dev/mandator/internal/config"
	"github.com/mandator-dev/mandator/internal/history"
	"github.com/mandator-dev/mandator/internal/llm"
	"github.com/mandator-dev/mandator/internal/log"
	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/internal/share"
	"github.com/mandator-dev/mandator/internal/tui"
	"github.com/mandator-dev/mandator/internal/tui/app"
)

var (
	shareFlag string
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "mandator",
	Short: "Election calculator for the Czech parliamentary election",
	Long: `Mandator generates a set of yes/no political questions, lets you
answer them in the terminal, and has an LLM score your answers against
the running parties. Results are saved locally and can be shared as a
compact token.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		env, err := buildEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		source := share.NewFlagSource(shareFlag)
		token := source.ReadToken()
		source.ClearToken()

		tuiApp := app.New(env.model, token)
		return tui.Run(tuiApp)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&shareFlag, "share", "", "Open a shared results token instead of the welcome screen")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(shareCmd)
}

// env bundles everything a command needs to talk to the quiz machinery.
type env struct {
	cfg    *config.Config
	store  *history.Store
	kv     *history.SQLiteStore
	model  *tui.Model
	logger *log.Logger
}

func (e *env) close() {
	if e.kv != nil {
		_ = e.kv.Close()
	}
}

// buildEnv wires config, storage, logging, the party roster, and the LLM
// client into a ready TUI model. The LLM client needs GEMINI_API_KEY.
func buildEnv(ctx context.Context) (*env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	cfg, err := config.ReadConfig(home)
	if err != nil {
		// Config not found or invalid, use defaults
		cfg = config.DefaultConfig()
	}

	baseDir := filepath.Join(home, config.Dir)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", baseDir, err)
	}

	// Logging is best-effort; a nil logger is a no-op.
	logger, err := log.NewLogger(baseDir)
	if err != nil {
		logger = nil
	}

	roster, err := party.Load()
	if err != nil {
		return nil, fmt.Errorf("loading party roster: %w", err)
	}
	enricher := quiz.NewEnricher(roster)

	kv, err := history.NewSQLiteStore(filepath.Join(baseDir, cfg.Storage.HistoryDB))
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	store := history.NewStore(kv, enricher, logger)
	store.Load()

	client, err := llm.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Model, cfg.Quiz.QuestionCount)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("creating Gemini client (is GEMINI_API_KEY set?): %w", err)
	}

	session := quiz.NewSession(cfg.Quiz.MinAnswers, enricher, store, logger)
	model := tui.NewModel(cfg, session, store, client, client, roster, logger)

	return &env{cfg: cfg, store: store, kv: kv, model: model, logger: logger}, nil
}

// buildHistoryEnv wires only what the offline subcommands need: config,
// roster, and the history store. No LLM client, no API key required.
func buildHistoryEnv() (*env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	cfg, err := config.ReadConfig(home)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	baseDir := filepath.Join(home, config.Dir)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", baseDir, err)
	}

	logger, err := log.NewLogger(baseDir)
	if err != nil {
		logger = nil
	}

	roster, err := party.Load()
	if err != nil {
		return nil, fmt.Errorf("loading party roster: %w", err)
	}

	kv, err := history.NewSQLiteStore(filepath.Join(baseDir, cfg.Storage.HistoryDB))
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	store := history.NewStore(kv, quiz.NewEnricher(roster), logger)
	store.Load()

	return &env{cfg: cfg, store: store, kv: kv, logger: logger}, nil
}
