// Package quiz implements the word-ordering exercise: a shuffled bank of
// tiles the learner arranges back into the verse, with an exact-match check
// and a playing/success/error attempt state machine.
package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/hamid/juzjourney/internal/content"
)

// Status is the state of one quiz attempt.
type Status int

const (
	StatusPlaying Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Tile is a selectable bank entry wrapping a word or distractor. Instance
// ids are fresh per shuffle, so a tile is distinct from the authored word
// it represents (the same word can appear twice in a verse).
type Tile struct {
	InstanceID      string
	WordID          string
	Arabic          string
	Transliteration string
	// ColorIndex is the tile's position in the pre-shuffle concatenation
	// (correct words first, then distractors). It survives shuffling so a
	// given word keeps its accent color across renders.
	ColorIndex int
	Distractor bool
	Placed     bool
}

// Attempt holds the state of one quiz entry for a verse. The bank order is
// fixed at construction; retry clears placements but never reshuffles.
type Attempt struct {
	verse  content.Verse
	bank   []*Tile
	placed []*Tile
	status Status
}

// NewAttempt shuffles the verse's words and distractors into a fresh bank.
func NewAttempt(v content.Verse) *Attempt {
	return &Attempt{
		verse: v,
		bank:  shuffleBank(v),
	}
}

// shuffleBank builds the combined tile list and applies an unbiased
// Fisher-Yates permutation. Color indexes are assigned before shuffling.
func shuffleBank(v content.Verse) []*Tile {
	tiles := make([]*Tile, 0, len(v.Words)+len(v.Distractors))
	for i, w := range v.Words {
		tiles = append(tiles, &Tile{
			WordID:          w.ID,
			Arabic:          w.Arabic,
			Transliteration: w.Transliteration,
			ColorIndex:      i,
		})
	}
	for i, d := range v.Distractors {
		tiles = append(tiles, &Tile{
			WordID:          d.ID,
			Arabic:          d.Arabic,
			Transliteration: d.Transliteration,
			ColorIndex:      len(v.Words) + i,
			Distractor:      true,
		})
	}

	for i := len(tiles) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}

	for _, t := range tiles {
		t.InstanceID = uuid.NewString()
	}
	return tiles
}

// Verse returns the verse this attempt is for.
func (a *Attempt) Verse() content.Verse { return a.verse }

// Bank returns the tiles in shuffled bank order, placed ones included.
func (a *Attempt) Bank() []*Tile { return a.bank }

// Placed returns the attempt sequence in selection order.
func (a *Attempt) Placed() []*Tile { return a.placed }

// Status returns the current attempt status.
func (a *Attempt) Status() Status { return a.status }

// Select appends the bank tile with the given instance id to the attempt
// sequence. No-op unless the attempt is playing and the tile is unplaced.
func (a *Attempt) Select(instanceID string) {
	if a.status != StatusPlaying {
		return
	}
	for _, t := range a.bank {
		if t.InstanceID == instanceID && !t.Placed {
			t.Placed = true
			a.placed = append(a.placed, t)
			return
		}
	}
}

// Remove takes the tile with the given instance id out of the attempt
// sequence and restores it to the bank. No-op unless playing.
func (a *Attempt) Remove(instanceID string) {
	if a.status != StatusPlaying {
		return
	}
	for i, t := range a.placed {
		if t.InstanceID == instanceID {
			t.Placed = false
			a.placed = append(a.placed[:i], a.placed[i+1:]...)
			return
		}
	}
}

// Reset clears the attempt sequence and unplaces every bank tile. The
// shuffle order is kept.
func (a *Attempt) Reset() {
	for _, t := range a.bank {
		t.Placed = false
	}
	a.placed = nil
}

// Check validates the attempt. The comparison is the exact concatenation of
// tile text against the authored word text: any missing, extra, reordered,
// or substituted tile fails. No normalization is applied; the dataset's
// load-time validation guarantees the authored side is consistent.
func (a *Attempt) Check() Status {
	if a.status != StatusPlaying {
		return a.status
	}

	var want, got strings.Builder
	for _, w := range a.verse.Words {
		want.WriteString(w.Arabic)
	}
	for _, t := range a.placed {
		got.WriteString(t.Arabic)
	}

	if want.String() == got.String() {
		a.status = StatusSuccess
	} else {
		a.status = StatusError
	}
	return a.status
}

// Retry returns an errored attempt to playing, clearing placements only.
// No-op unless the attempt is in the error state.
func (a *Attempt) Retry() {
	if a.status != StatusError {
		return
	}
	a.Reset()
	a.status = StatusPlaying
}
