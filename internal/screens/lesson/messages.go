package lesson

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/store"
)

// Scorer grades a recitation clip against the correct ayah text.
// *recite.Scorer satisfies it.
type Scorer interface {
	Score(ctx context.Context, audio llm.Audio, correctAyah string) (*recite.Result, error)
}

// scoredMsg carries the outcome of a recitation scoring request.
// Token identifies the attempt; stale tokens are discarded by the gate.
type scoredMsg struct {
	token  string
	result *recite.Result
	err    error
}

// scoreCmd reads the recorded clip and asks the scorer to grade it.
func scoreCmd(scorer Scorer, token, path, correctAyah string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return scoredMsg{token: token, err: fmt.Errorf("read clip: %w", err)}
		}

		audio := llm.Audio{Data: data, MIMEType: mimeFromPath(path)}
		result, err := scorer.Score(context.Background(), audio, correctAyah)
		if err != nil {
			return scoredMsg{token: token, err: err}
		}
		return scoredMsg{token: token, result: result}
	}
}

// mimeFromPath guesses the audio MIME type from the file extension.
func mimeFromPath(path string) string {
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

// appendRecitationCmd records a scored recitation. Failures are dropped,
// the event log never blocks the lesson.
func appendRecitationCmd(events store.EventRepo, verseID string, result *recite.Result) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_ = events.AppendRecitation(context.Background(), store.RecitationEventData{
			VerseID:    verseID,
			Score:      result.Score,
			Transcript: result.Transcript,
		})
		return nil
	}
}

// appendQuizAnswerCmd records a quiz check outcome.
func appendQuizAnswerCmd(events store.EventRepo, verseID, attempt string, correct bool) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_ = events.AppendQuizAnswer(context.Background(), store.QuizAnswerEventData{
			VerseID: verseID,
			Attempt: attempt,
			Correct: correct,
		})
		return nil
	}
}
