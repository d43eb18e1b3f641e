package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hamid/juzjourney/internal/config"
	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a recitation clip from the command line",
	Long:  "Score a recorded clip against an ayah. The ayah text comes from --surah/--ayah, or pass it directly with --text.",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnvFile()

		audioPath, _ := cmd.Flags().GetString("audio")
		if audioPath == "" {
			return fmt.Errorf("--audio is required")
		}
		correct, err := resolveAyahText(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(audioPath)
		if err != nil {
			return fmt.Errorf("read audio: %w", err)
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

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("scoring requires an LLM provider: %w", err)
		}

		scorer := recite.NewScorer(provider)
		result, err := scorer.Score(ctx, llm.Audio{
			Data:     data,
			MIMEType: clipMIMEType(audioPath),
		}, correct)
		if err != nil {
			return fmt.Errorf("score recitation: %w", err)
		}

		fmt.Printf("Heard:  %s\n", result.Transcript)
		fmt.Printf("Score:  %d / 100\n", result.Score)
		if result.Score >= recite.UnlockScore {
			fmt.Println("MashaAllah! This would unlock the quiz.")
		}
		return nil
	},
}

// resolveAyahText picks the reference text from --text or a --surah/--ayah
// lookup in the curriculum.
func resolveAyahText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}
	surah, _ := cmd.Flags().GetInt("surah")
	ayah, _ := cmd.Flags().GetInt("ayah")
	if surah == 0 || ayah == 0 {
		return "", fmt.Errorf("pass --surah and --ayah, or --text")
	}
	v, ok := content.VerseByRef(surah, ayah)
	if !ok {
		return "", fmt.Errorf("verse %d:%d is not in the curriculum", surah, ayah)
	}
	return v.ArabicFull, nil
}

func clipMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	default:
		return "audio/webm"
	}
}

func init() {
	scoreCmd.Flags().String("audio", "", "Path to the recorded clip")
	scoreCmd.Flags().Int("surah", 0, "Surah number of the ayah to score against")
	scoreCmd.Flags().Int("ayah", 0, "Ayah number within the surah")
	scoreCmd.Flags().String("text", "", "Reference ayah text (overrides --surah/--ayah)")
}
