package store

import (
	"context"
	"time"
)

// QuizAnswerEventData captures one quiz check outcome.
type QuizAnswerEventData struct {
	VerseID string
	Attempt string // concatenated tile text as submitted
	Correct bool
}

// RecitationEventData captures one scored recitation.
type RecitationEventData struct {
	VerseID    string
	Score      int
	Transcript string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QuizStats aggregates quiz answer events.
type QuizStats struct {
	Total   int
	Correct int
}

// RecitationStats aggregates recitation score events.
type RecitationStats struct {
	Total     int
	BestScore int
	AvgScore  float64
}

// LLMModelUsage aggregates LLM request events per model.
type LLMModelUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// RecitationRecord is one scored recitation from the history.
type RecitationRecord struct {
	Timestamp  time.Time
	VerseID    string
	Score      int
	Transcript string
}

// EventRepo provides append and aggregate access to domain events. Events
// are append-only; nothing updates or deletes them.
type EventRepo interface {
	// AppendQuizAnswer records a quiz check outcome.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendRecitation records a scored recitation.
	AppendRecitation(ctx context.Context, data RecitationEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuizStats aggregates all quiz answer events.
	QuizStats(ctx context.Context) (QuizStats, error)

	// RecitationStats aggregates all recitation events.
	RecitationStats(ctx context.Context) (RecitationStats, error)

	// RecentRecitations returns the newest recitation events, newest first.
	RecentRecitations(ctx context.Context, limit int) ([]RecitationRecord, error)

	// LLMUsage aggregates LLM request events grouped by model.
	LLMUsage(ctx context.Context) ([]LLMModelUsage, error)
}
