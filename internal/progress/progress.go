// Package progress holds the learner's persistent state: XP, streak, hearts,
// completed surahs, and the onboarding flag. All mutation funnels through a
// Tracker so the single-writer invariant holds for every screen reading it.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// StorageKey is the document key the progress state persists under.
const StorageKey = "juz-journey-data"

const (
	// MaxHearts is the attempt budget restored by the dhikr ritual.
	MaxHearts = 5

	// SurahXP is awarded once per completed surah.
	SurahXP = 100
)

// State is the persisted progress document. The JSON field names are the
// storage contract; changing them orphans existing saves.
type State struct {
	Name            string   `json:"name"`
	XP              int      `json:"xp"`
	Streak          int      `json:"streak"`
	Hearts          int      `json:"hearts"`
	CompletedSurahs []string `json:"completedSurahs"`
	HasOnboarded    bool     `json:"hasOnboarded"`
}

// Defaults returns the first-run state.
func Defaults() State {
	return State{
		Streak:          1,
		Hearts:          MaxHearts,
		CompletedSurahs: []string{},
	}
}

// Completed reports whether the surah is in the completed set.
func (s State) Completed(surahID string) bool {
	return slices.Contains(s.CompletedSurahs, surahID)
}

// Merge overlays a persisted document onto the defaults field-by-field.
// A field absent from the document keeps its default; a document that does
// not parse at all yields pure defaults. Load never fails on bad data.
func Merge(raw []byte) State {
	state := Defaults()
	if len(raw) == 0 {
		return state
	}

	// Pointer fields distinguish "absent" from zero values.
	var doc struct {
		Name            *string   `json:"name"`
		XP              *int      `json:"xp"`
		Streak          *int      `json:"streak"`
		Hearts          *int      `json:"hearts"`
		CompletedSurahs *[]string `json:"completedSurahs"`
		HasOnboarded    *bool     `json:"hasOnboarded"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return state
	}

	if doc.Name != nil {
		state.Name = *doc.Name
	}
	if doc.XP != nil {
		state.XP = *doc.XP
	}
	if doc.Streak != nil {
		state.Streak = *doc.Streak
	}
	if doc.Hearts != nil {
		state.Hearts = *doc.Hearts
	}
	if doc.CompletedSurahs != nil {
		state.CompletedSurahs = *doc.CompletedSurahs
	}
	if doc.HasOnboarded != nil {
		state.HasOnboarded = *doc.HasOnboarded
	}
	return state
}

// Repo persists the progress document.
type Repo interface {
	// LoadDocument returns the raw document, or nil if none is saved.
	LoadDocument(ctx context.Context) ([]byte, error)

	// SaveDocument replaces the document in full.
	SaveDocument(ctx context.Context, raw []byte) error

	// DeleteDocument discards the document.
	DeleteDocument(ctx context.Context) error
}

// Tracker is the process-wide progress record. Mutations are serialized and
// each one writes the full document through the repo before returning.
type Tracker struct {
	mu    sync.Mutex
	repo  Repo
	state State
}

// NewTracker loads the persisted state merged over defaults. Unreadable
// documents fall back to defaults; only repo I/O errors propagate.
func NewTracker(ctx context.Context, repo Repo) (*Tracker, error) {
	raw, err := repo.LoadDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return &Tracker{repo: repo, state: Merge(raw)}, nil
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.state
	out.CompletedSurahs = slices.Clone(t.state.CompletedSurahs)
	return out
}

// SetName records the learner's name and completes onboarding. Onboarding
// is one-way; nothing but Reset clears it.
func (t *Tracker) SetName(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Name = name
	t.state.HasOnboarded = true
	return t.persist(ctx)
}

// CompleteSurah marks the surah completed and awards the fixed XP, once.
// Repeat calls for an already-completed surah are no-ops.
func (t *Tracker) CompleteSurah(ctx context.Context, surahID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if slices.Contains(t.state.CompletedSurahs, surahID) {
		return nil
	}
	t.state.CompletedSurahs = append(t.state.CompletedSurahs, surahID)
	t.state.XP += SurahXP
	return t.persist(ctx)
}

// AddXP awards experience points unconditionally.
func (t *Tracker) AddXP(ctx context.Context, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.XP += amount
	return t.persist(ctx)
}

// LoseHeart spends one heart, floored at zero.
func (t *Tracker) LoseHeart(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Hearts > 0 {
		t.state.Hearts--
	}
	return t.persist(ctx)
}

// RefillHearts restores the full budget regardless of the current value.
func (t *Tracker) RefillHearts(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Hearts = MaxHearts
	return t.persist(ctx)
}

// Reset restores defaults and discards the persisted document.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Defaults()
	if err := t.repo.DeleteDocument(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (t *Tracker) persist(ctx context.Context) error {
	raw, err := json.Marshal(t.state)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := t.repo.SaveDocument(ctx, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
