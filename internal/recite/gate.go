package recite

import (
	"errors"

	"github.com/google/uuid"
)

// UnlockScore is the minimum recitation score that unlocks the quiz.
const UnlockScore = 80

// ErrRecitationInFlight is returned by Begin while an earlier recording
// is still being scored.
var ErrRecitationInFlight = errors.New("a recitation is already being scored")

// Gate tracks the best recitation score for the current verse and decides
// when the quiz unlocks. The best score only ratchets upward; once the
// quiz is unlocked a later poor attempt cannot re-lock it.
//
// Gate is not safe for concurrent use. It is owned by a single update
// loop, which resolves in-flight requests via the tokens Begin hands out.
type Gate struct {
	verseID string
	best    int
	scored  bool
	pending string
}

// NewGate creates a Gate for the given verse.
func NewGate(verseID string) *Gate {
	return &Gate{verseID: verseID}
}

// VerseID returns the verse this gate is tracking.
func (g *Gate) VerseID() string { return g.verseID }

// SetVerse switches the gate to a new verse. Progress and any in-flight
// attempt are discarded when the verse actually changes.
func (g *Gate) SetVerse(verseID string) {
	if verseID == g.verseID {
		return
	}
	g.verseID = verseID
	g.best = 0
	g.scored = false
	g.pending = ""
}

// Begin starts a scoring attempt and returns its token. Only one attempt
// may be in flight at a time.
func (g *Gate) Begin() (string, error) {
	if g.pending != "" {
		return "", ErrRecitationInFlight
	}
	g.pending = uuid.NewString()
	return g.pending, nil
}

// Finish records the score for the attempt identified by token.
// It reports whether the result was accepted; results carrying a stale
// token (from before a verse switch or a newer attempt) are dropped.
func (g *Gate) Finish(token string, score int) bool {
	if token == "" || token != g.pending {
		return false
	}
	g.pending = ""
	if !g.scored || score > g.best {
		g.best = score
		g.scored = true
	}
	return true
}

// Abort cancels the attempt identified by token, for scoring errors.
func (g *Gate) Abort(token string) {
	if token != "" && token == g.pending {
		g.pending = ""
	}
}

// InFlight reports whether a scoring attempt is pending.
func (g *Gate) InFlight() bool { return g.pending != "" }

// Best returns the best score so far and whether any attempt has scored.
func (g *Gate) Best() (int, bool) { return g.best, g.scored }

// Unlocked reports whether the quiz is available for this verse.
func (g *Gate) Unlocked() bool {
	return g.scored && g.best >= UnlockScore
}
