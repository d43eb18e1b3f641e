package cmd

import (
	"fmt"
	"os"

	"github.com/hamid/juzjourney/internal/app"
	"github.com/hamid/juzjourney/internal/config"
	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	config.LoadEnvFile()

	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	tracker, err := progress.NewTracker(ctx, st.DocumentRepo(progress.StorageKey))
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	opts := app.Options{
		Tracker: tracker,
		Events:  eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Recitation scoring will be unavailable.")
	} else {
		opts.Scorer = recite.NewScorer(provider)
	}

	return app.Run(opts)
}
