package content

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("dataset invalid: %v", err)
	}
}

func TestWordsReconstructFullText(t *testing.T) {
	for _, s := range Surahs() {
		for _, v := range s.Verses {
			var concat strings.Builder
			for _, w := range v.Words {
				concat.WriteString(w.Arabic)
			}
			if skeleton(concat.String()) != skeleton(v.ArabicFull) {
				t.Errorf("verse %s: word concatenation does not match full text", v.ID)
			}
		}
	}
}

func TestAudioURL(t *testing.T) {
	tests := []struct {
		surah, ayah int
		want        string
	}{
		{114, 1, "https://everyayah.com/data/Alafasy_128kbps/114001.mp3"},
		{109, 6, "https://everyayah.com/data/Alafasy_128kbps/109006.mp3"},
		{2, 255, "https://everyayah.com/data/Alafasy_128kbps/002255.mp3"},
	}
	for _, tt := range tests {
		if got := AudioURL(tt.surah, tt.ayah); got != tt.want {
			t.Errorf("AudioURL(%d, %d) = %q, want %q", tt.surah, tt.ayah, got, tt.want)
		}
	}
}

func TestSurahByID(t *testing.T) {
	s, ok := SurahByID("ikhlas")
	if !ok {
		t.Fatal("ikhlas not found")
	}
	if s.Number != 112 {
		t.Errorf("number = %d, want 112", s.Number)
	}
	if len(s.Verses) != 4 {
		t.Errorf("verses = %d, want 4", len(s.Verses))
	}

	if _, ok := SurahByID("fatiha"); ok {
		t.Error("expected miss for unknown surah id")
	}
}

func TestVerseByRef(t *testing.T) {
	v, ok := VerseByRef(114, 4)
	if !ok {
		t.Fatal("114:4 not found")
	}
	if v.ID != "114-4" {
		t.Errorf("id = %q, want 114-4", v.ID)
	}
	if len(v.Words) != 4 {
		t.Errorf("words = %d, want 4", len(v.Words))
	}

	if _, ok := VerseByRef(114, 7); ok {
		t.Error("expected miss for out-of-range ayah")
	}
}

func TestJourneyOrder(t *testing.T) {
	want := []string{"nas", "falaq", "ikhlas", "masad", "nasr", "kafirun"}
	got := Surahs()
	if len(got) != len(want) {
		t.Fatalf("surah count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("surah[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}
