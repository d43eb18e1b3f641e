// Package recite scores spoken recitations of an ayah against its text
// and gates quiz access on recitation accuracy.
package recite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hamid/juzjourney/internal/llm"
)

const scoreSystemPrompt = "You are an expert Quran recitation evaluator."

// scoreSchema is the structured output contract for recitation scoring.
var scoreSchema = &llm.Schema{
	Name:        "recitation-score",
	Description: "Transcript and accuracy score for a recited ayah",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"userRecitation": map[string]any{
				"type":        "string",
				"description": "The Arabic text of what the user said",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Word-for-word accuracy score from 0 to 100",
			},
		},
		"required": []any{"userRecitation", "score"},
	},
}

// Result is a scored recitation.
type Result struct {
	Transcript string `json:"userRecitation"`
	Score      int    `json:"score"`
}

// Scorer evaluates recitation audio with an LLM provider.
type Scorer struct {
	provider llm.Provider
}

// NewScorer creates a Scorer backed by the given provider.
func NewScorer(p llm.Provider) *Scorer {
	return &Scorer{provider: p}
}

// Score transcribes the audio and grades it against the correct ayah text.
// The returned score is clamped to [0, 100].
func (s *Scorer) Score(ctx context.Context, audio llm.Audio, correctAyah string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "recitation-score")

	prompt := fmt.Sprintf(
		"The user is trying to recite the following Ayah: %q\n\n"+
			"Listen to the provided audio.\n"+
			"1. Transcribe exactly what the user said in Arabic text.\n"+
			"2. Compare their recitation to the correct Ayah.\n"+
			"3. Give them a score from 0 to 100 based strictly on word-for-word accuracy.",
		correctAyah,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: scoreSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Audio:     &audio,
		Schema:    scoreSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("score recitation: %w", err)
	}

	var result Result
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("parse score response: %w", err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	return &result, nil
}
