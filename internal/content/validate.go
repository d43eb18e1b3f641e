package content

import (
	"fmt"
	"strings"
)

// Validate checks the authored dataset's invariants. Callers run it once at
// startup; the quiz answer validator relies on these holding and never
// compensates for authoring mistakes.
func Validate() error {
	seenSurah := make(map[string]bool)
	for _, s := range surahs {
		if s.ID == "" {
			return fmt.Errorf("surah %d: empty id", s.Number)
		}
		if seenSurah[s.ID] {
			return fmt.Errorf("surah %q: duplicate id", s.ID)
		}
		seenSurah[s.ID] = true

		if len(s.Verses) == 0 {
			return fmt.Errorf("surah %q: no verses", s.ID)
		}
		if s.TotalVerses != len(s.Verses) {
			return fmt.Errorf("surah %q: TotalVerses = %d, have %d verses", s.ID, s.TotalVerses, len(s.Verses))
		}

		for _, v := range s.Verses {
			if err := validateVerse(s, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateVerse(s Surah, v Verse) error {
	if v.Surah != s.Number {
		return fmt.Errorf("verse %q: surah number %d under surah %d", v.ID, v.Surah, s.Number)
	}
	if len(v.Words) == 0 {
		return fmt.Errorf("verse %q: no words", v.ID)
	}

	seen := make(map[string]bool)
	var concat strings.Builder
	for _, w := range v.Words {
		if w.Arabic == "" {
			return fmt.Errorf("verse %q: word %q has empty text", v.ID, w.ID)
		}
		if seen[w.ID] {
			return fmt.Errorf("verse %q: duplicate word id %q", v.ID, w.ID)
		}
		seen[w.ID] = true
		concat.WriteString(w.Arabic)
	}
	for _, d := range v.Distractors {
		if seen[d.ID] {
			return fmt.Errorf("verse %q: distractor id %q collides with a word id", v.ID, d.ID)
		}
		seen[d.ID] = true
	}

	// The word tiles must reconstruct the full verse text. Authored text
	// joins words with spaces and may carry Quranic annotation signs that
	// no individual tile owns, so both sides are compared in skeleton form.
	if skeleton(concat.String()) != skeleton(v.ArabicFull) {
		return fmt.Errorf("verse %q: words do not concatenate to the full text", v.ID)
	}
	return nil
}

// skeleton strips spaces and Quranic annotation signs (U+06D6..U+06ED),
// leaving letters and diacritics untouched.
func skeleton(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || (r >= 0x06D6 && r <= 0x06ED) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
