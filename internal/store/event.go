package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event tables. Per-table auto-increment IDs can't establish cross-type
// ordering (did the recitation come before or after the quiz answer?), so a
// single increasing sequence is assigned to every event regardless of type.
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo over the raw tables.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_answer_events (sequence, timestamp, verse_id, attempt, correct)
		 VALUES (?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.VerseID, data.Attempt, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("append quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRecitation(ctx context.Context, data RecitationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO recitation_events (sequence, timestamp, verse_id, score, transcript)
		 VALUES (?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.VerseID, data.Score, data.Transcript,
	)
	if err != nil {
		return fmt.Errorf("append recitation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (sequence, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStats(ctx context.Context) (QuizStats, error) {
	var stats QuizStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM quiz_answer_events`,
	).Scan(&stats.Total, &stats.Correct)
	if err != nil {
		return QuizStats{}, fmt.Errorf("quiz stats: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) RecitationStats(ctx context.Context) (RecitationStats, error) {
	var stats RecitationStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0) FROM recitation_events`,
	).Scan(&stats.Total, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return RecitationStats{}, fmt.Errorf("recitation stats: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) RecentRecitations(ctx context.Context, limit int) ([]RecitationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT timestamp, verse_id, score, transcript FROM recitation_events
		 ORDER BY sequence DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent recitations: %w", err)
	}
	defer rows.Close()

	var out []RecitationRecord
	for rows.Next() {
		var rec RecitationRecord
		if err := rows.Scan(&rec.Timestamp, &rec.VerseID, &rec.Score, &rec.Transcript); err != nil {
			return nil, fmt.Errorf("scan recitation: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), COALESCE(SUM(NOT success), 0),
		        COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_request_events GROUP BY model ORDER BY model`,
	)
	if err != nil {
		return nil, fmt.Errorf("llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
