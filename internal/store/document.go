package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DocumentRepo reads and writes one keyed JSON document. The progress
// tracker persists its whole state through this, mirroring the
// single-document layout the app has always used.
type DocumentRepo struct {
	db  *sql.DB
	key string
}

// LoadDocument returns the raw document, or nil if none is saved.
func (r *DocumentRepo) LoadDocument(ctx context.Context) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, r.key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", r.key, err)
	}
	return []byte(value), nil
}

// SaveDocument replaces the document in full.
func (r *DocumentRepo) SaveDocument(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save document %q: %w", r.key, err)
	}
	return nil
}

// DeleteDocument discards the document. Deleting a missing document is not
// an error.
func (r *DocumentRepo) DeleteDocument(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, r.key)
	if err != nil {
		return fmt.Errorf("delete document %q: %w", r.key, err)
	}
	return nil
}
