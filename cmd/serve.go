package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hamid/juzjourney/internal/api"
	"github.com/hamid/juzjourney/internal/config"
	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recitation scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnvFile()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

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

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("scoring requires an LLM provider: %w", err)
		}
		scorer := recite.NewScorer(provider)

		srv := api.NewServer(api.Config{
			Addr:          cfg.Server.Addr,
			RateLimit:     cfg.Server.RateLimit,
			RateBurst:     cfg.Server.RateBurst,
			MaxAudioBytes: cfg.Server.MaxAudioBytes,
		}, scorer, eventRepo, logger)

		logger.Info("starting scoring server", "addr", cfg.Server.Addr, "env", cfg.Env)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
