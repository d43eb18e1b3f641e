package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz and recitation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		repo := st.EventRepo()

		quiz, err := repo.QuizStats(ctx)
		if err != nil {
			return fmt.Errorf("quiz stats: %w", err)
		}
		rec, err := repo.RecitationStats(ctx)
		if err != nil {
			return fmt.Errorf("recitation stats: %w", err)
		}

		fmt.Println("Quizzes")
		if quiz.Total == 0 {
			fmt.Println("  no answers recorded yet")
		} else {
			pct := float64(quiz.Correct) / float64(quiz.Total) * 100
			fmt.Printf("  answers:  %d\n", quiz.Total)
			fmt.Printf("  correct:  %d (%.0f%%)\n", quiz.Correct, pct)
		}

		fmt.Println("Recitations")
		if rec.Total == 0 {
			fmt.Println("  no recitations scored yet")
		} else {
			fmt.Printf("  scored:   %d\n", rec.Total)
			fmt.Printf("  best:     %d\n", rec.BestScore)
			fmt.Printf("  average:  %.1f\n", rec.AvgScore)
		}

		recent, err := repo.RecentRecitations(ctx, 10)
		if err != nil {
			return fmt.Errorf("recent recitations: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent recitations")
			fmt.Printf("%-19s  %-16s  %s\n", "Time", "Verse", "Score")
			fmt.Println(strings.Repeat("─", 45))
			for _, r := range recent {
				fmt.Printf("%-19s  %-16s  %d\n",
					r.Timestamp.Local().Format("2006-01-02 15:04:05"),
					r.VerseID,
					r.Score)
			}
		}
		return nil
	},
}
