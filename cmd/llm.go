package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamid/juzjourney/internal/config"
	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and usage",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnvFile()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println("Set JUZJOURNEY_GEMINI_API_KEY or JUZJOURNEY_OPENAI_API_KEY (or GEMINI_API_KEY / OPENAI_API_KEY).")
				return nil
			}
			cfg = discovered
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
			fmt.Printf("API key:   %s\n", maskKey(cfg.Gemini.APIKey))
		case "openai":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
			fmt.Printf("API key:   %s\n", maskKey(cfg.OpenAI.APIKey))
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", cfg.OpenAI.BaseURL)
			}
		}
		return nil
	},
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		usage, err := s.EventRepo().LLMUsage(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-28s  %-8s  %-8s  %-10s  %-10s  %s\n",
			"Model", "Reqs", "Failed", "In", "Out", "Est. cost")
		fmt.Println(strings.Repeat("─", 80))

		var total float64
		for _, u := range usage {
			costStr := "n/a"
			if mc := llm.LookupCost(u.Model); mc != nil {
				cost := mc.Cost(u.InputTokens, u.OutputTokens)
				total += cost
				costStr = fmt.Sprintf("$%.4f", cost)
			}
			model := u.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-28s  %-8d  %-8d  %-10d  %-10d  %s\n",
				model, u.Requests, u.Failures, u.InputTokens, u.OutputTokens, costStr)
		}
		fmt.Printf("\nTotal estimated cost: $%.4f\n", total)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
