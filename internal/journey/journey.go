// Package journey derives the unlock state of the surah chain from the
// learner's progress. The chain is strictly linear: a surah opens when the
// one before it is completed. No independent state lives here.
package journey

import (
	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/progress"
)

// Standing is a surah's place on the journey map.
type Standing int

const (
	Locked Standing = iota
	Available
	Completed
)

func (s Standing) String() string {
	switch s {
	case Locked:
		return "locked"
	case Available:
		return "available"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// IsUnlocked reports whether the surah at index i can be entered: the first
// surah always, any other iff its predecessor is completed.
func IsUnlocked(surahs []content.Surah, state progress.State, i int) bool {
	if i < 0 || i >= len(surahs) {
		return false
	}
	if i == 0 {
		return true
	}
	return state.Completed(surahs[i-1].ID)
}

// StandingOf classifies the surah at index i.
func StandingOf(surahs []content.Surah, state progress.State, i int) Standing {
	if i < 0 || i >= len(surahs) {
		return Locked
	}
	if state.Completed(surahs[i].ID) {
		return Completed
	}
	if IsUnlocked(surahs, state, i) {
		return Available
	}
	return Locked
}

// Remaining counts surahs not yet completed.
func Remaining(surahs []content.Surah, state progress.State) int {
	n := len(surahs)
	for _, s := range surahs {
		if state.Completed(s.ID) {
			n--
		}
	}
	return n
}

// CertificateUnlocked reports whether the completion certificate is earned,
// which requires every surah on the journey to be completed.
func CertificateUnlocked(surahs []content.Surah, state progress.State) bool {
	return Remaining(surahs, state) == 0
}
