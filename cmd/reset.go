package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases your name, XP, hearts, and completed surahs. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		tracker, err := progress.NewTracker(ctx, st.DocumentRepo(progress.StorageKey))
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if err := tracker.Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress erased. Bismillah, start fresh with `juzjourney play`.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
