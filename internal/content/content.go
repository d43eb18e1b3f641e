// Package content holds the authored curriculum: surahs broken into verses,
// each verse broken into ordered word tiles with transliteration and meaning.
// The dataset is read-only input to the rest of the app.
package content

import "fmt"

// Word is one tile of a verse. Immutable once authored.
type Word struct {
	ID              string
	Arabic          string
	Transliteration string
	Meaning         string
}

// Distractor is a decoy tile for the quiz word bank. It carries no meaning
// label because it is never shown in the word analysis view.
type Distractor struct {
	ID              string
	Arabic          string
	Transliteration string
}

// Verse is the smallest teachable item: one ayah's text, audio, translation,
// and word breakdown. Words in order must concatenate to ArabicFull exactly;
// Validate enforces this at load time.
type Verse struct {
	ID           string
	Surah        int
	Ayah         int
	ArabicFull   string
	Translation  string
	Visual       string
	TeachingNote string
	Words        []Word
	Distractors  []Distractor
}

// Surah is a top-level content grouping: an ordered list of verses plus the
// narrative shown before the first lesson.
type Surah struct {
	ID          string
	Number      int
	Title       string
	Meaning     string
	Story       string
	Color       string
	TotalVerses int
	Verses      []Verse
}

// AudioURL returns the recitation audio locator for one ayah.
func AudioURL(surah, ayah int) string {
	return fmt.Sprintf("https://everyayah.com/data/Alafasy_128kbps/%03d%03d.mp3", surah, ayah)
}

// Surahs returns the full curriculum in journey order.
func Surahs() []Surah {
	return surahs
}

// SurahByID returns the surah with the given id, or false if unknown.
func SurahByID(id string) (Surah, bool) {
	for _, s := range surahs {
		if s.ID == id {
			return s, true
		}
	}
	return Surah{}, false
}

// VerseByRef returns the verse for a surah number and ayah number.
func VerseByRef(surah, ayah int) (Verse, bool) {
	for _, s := range surahs {
		if s.Number != surah {
			continue
		}
		for _, v := range s.Verses {
			if v.Ayah == ayah {
				return v, true
			}
		}
	}
	return Verse{}, false
}

// AudioReference returns the audio locator for a verse.
func (v Verse) AudioReference() string {
	return AudioURL(v.Surah, v.Ayah)
}
