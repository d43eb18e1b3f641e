package journey

import (
	"testing"

	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/progress"
)

func chain(ids ...string) []content.Surah {
	out := make([]content.Surah, len(ids))
	for i, id := range ids {
		out[i] = content.Surah{ID: id}
	}
	return out
}

func withCompleted(ids ...string) progress.State {
	s := progress.Defaults()
	s.CompletedSurahs = ids
	return s
}

func TestIsUnlocked(t *testing.T) {
	surahs := chain("a", "b", "c")

	tests := []struct {
		name      string
		completed []string
		index     int
		want      bool
	}{
		{"first always unlocked", nil, 0, true},
		{"second locked initially", nil, 1, false},
		{"second after first", []string{"a"}, 1, true},
		{"third needs second, not first", []string{"a"}, 2, false},
		{"third after second", []string{"b"}, 2, true},
		{"negative index", nil, -1, false},
		{"out of range", []string{"a", "b", "c"}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnlocked(surahs, withCompleted(tt.completed...), tt.index); got != tt.want {
				t.Errorf("IsUnlocked(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestStandingOf(t *testing.T) {
	surahs := chain("a", "b", "c")
	state := withCompleted("a")

	want := []Standing{Completed, Available, Locked}
	for i, w := range want {
		if got := StandingOf(surahs, state, i); got != w {
			t.Errorf("StandingOf(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestRemainingAndCertificate(t *testing.T) {
	surahs := chain("a", "b", "c")

	if got := Remaining(surahs, withCompleted()); got != 3 {
		t.Errorf("remaining = %d, want 3", got)
	}
	if got := Remaining(surahs, withCompleted("a", "c")); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}
	if CertificateUnlocked(surahs, withCompleted("a", "b")) {
		t.Error("certificate unlocked with one surah left")
	}
	if !CertificateUnlocked(surahs, withCompleted("a", "b", "c")) {
		t.Error("certificate locked with all completed")
	}
}

func TestFullCurriculumChain(t *testing.T) {
	surahs := content.Surahs()
	state := progress.Defaults()

	if !IsUnlocked(surahs, state, 0) {
		t.Error("first surah locked on fresh state")
	}
	for i := 1; i < len(surahs); i++ {
		if IsUnlocked(surahs, state, i) {
			t.Errorf("surah %d unlocked on fresh state", i)
		}
	}
}
