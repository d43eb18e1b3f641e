package quiz

import (
	"testing"

	"github.com/hamid/juzjourney/internal/content"
)

func testVerse() content.Verse {
	return content.Verse{
		ID:         "t-1",
		ArabicFull: "ا ب ج",
		Words: []content.Word{
			{ID: "w1", Arabic: "ا"},
			{ID: "w2", Arabic: "ب"},
			{ID: "w3", Arabic: "ج"},
		},
		Distractors: []content.Distractor{
			{ID: "d1", Arabic: "د"},
		},
	}
}

// selectWord places the first unplaced bank tile carrying the given word id.
func selectWord(t *testing.T, a *Attempt, wordID string) {
	t.Helper()
	for _, tile := range a.Bank() {
		if tile.WordID == wordID && !tile.Placed {
			a.Select(tile.InstanceID)
			return
		}
	}
	t.Fatalf("no unplaced tile for word %q", wordID)
}

func TestShufflePreservesMultiset(t *testing.T) {
	v := testVerse()
	for range 20 {
		a := NewAttempt(v)
		bank := a.Bank()
		if len(bank) != 4 {
			t.Fatalf("bank size = %d, want 4", len(bank))
		}
		counts := make(map[string]int)
		ids := make(map[string]bool)
		for _, tile := range bank {
			counts[tile.WordID]++
			if tile.InstanceID == "" {
				t.Fatal("tile missing instance id")
			}
			if ids[tile.InstanceID] {
				t.Fatalf("duplicate instance id %q", tile.InstanceID)
			}
			ids[tile.InstanceID] = true
			if tile.Placed {
				t.Fatal("fresh tile already placed")
			}
		}
		for _, id := range []string{"w1", "w2", "w3", "d1"} {
			if counts[id] != 1 {
				t.Fatalf("word %q appears %d times", id, counts[id])
			}
		}
	}
}

func TestColorIndexStableAcrossShuffles(t *testing.T) {
	v := testVerse()
	want := map[string]int{"w1": 0, "w2": 1, "w3": 2, "d1": 3}
	for range 20 {
		a := NewAttempt(v)
		for _, tile := range a.Bank() {
			if tile.ColorIndex != want[tile.WordID] {
				t.Fatalf("word %q color index = %d, want %d", tile.WordID, tile.ColorIndex, want[tile.WordID])
			}
		}
	}
}

func TestCheckExactOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []string
		want  Status
	}{
		{"correct order", []string{"w1", "w2", "w3"}, StatusSuccess},
		{"swapped", []string{"w1", "w3", "w2"}, StatusError},
		{"missing word", []string{"w1", "w2"}, StatusError},
		{"with distractor", []string{"w1", "w2", "w3", "d1"}, StatusError},
		{"distractor substituted", []string{"w1", "w2", "d1"}, StatusError},
		{"empty attempt", nil, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttempt(testVerse())
			for _, id := range tt.order {
				selectWord(t, a, id)
			}
			if got := a.Check(); got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectRemove(t *testing.T) {
	a := NewAttempt(testVerse())
	selectWord(t, a, "w2")
	selectWord(t, a, "w1")
	if len(a.Placed()) != 2 {
		t.Fatalf("placed = %d, want 2", len(a.Placed()))
	}
	// Insertion order, not bank order.
	if a.Placed()[0].WordID != "w2" || a.Placed()[1].WordID != "w1" {
		t.Errorf("placed order = [%s %s], want [w2 w1]", a.Placed()[0].WordID, a.Placed()[1].WordID)
	}

	first := a.Placed()[0]
	a.Remove(first.InstanceID)
	if len(a.Placed()) != 1 {
		t.Fatalf("placed after remove = %d, want 1", len(a.Placed()))
	}
	if a.Placed()[0].WordID != "w1" {
		t.Errorf("remaining word = %q, want w1", a.Placed()[0].WordID)
	}
	if first.Placed {
		t.Error("removed tile still marked placed")
	}
}

func TestSelectIgnoredAfterTerminalStatus(t *testing.T) {
	a := NewAttempt(testVerse())
	selectWord(t, a, "w1")
	a.Check() // error
	if a.Status() != StatusError {
		t.Fatalf("status = %v, want error", a.Status())
	}

	before := len(a.Placed())
	for _, tile := range a.Bank() {
		a.Select(tile.InstanceID)
	}
	if len(a.Placed()) != before {
		t.Error("Select mutated a non-playing attempt")
	}
}

func TestRetryClearsPlacementKeepsShuffle(t *testing.T) {
	a := NewAttempt(testVerse())
	var order []string
	for _, tile := range a.Bank() {
		order = append(order, tile.InstanceID)
	}

	selectWord(t, a, "w3")
	selectWord(t, a, "w1")
	a.Check()
	a.Retry()

	if a.Status() != StatusPlaying {
		t.Errorf("status after retry = %v, want playing", a.Status())
	}
	if len(a.Placed()) != 0 {
		t.Errorf("placed after retry = %d, want 0", len(a.Placed()))
	}
	for i, tile := range a.Bank() {
		if tile.Placed {
			t.Error("bank tile still placed after retry")
		}
		if tile.InstanceID != order[i] {
			t.Error("retry reshuffled the bank")
		}
	}
}

func TestRetryOnlyFromError(t *testing.T) {
	a := NewAttempt(testVerse())
	selectWord(t, a, "w1")
	a.Retry() // playing, should be a no-op
	if len(a.Placed()) != 1 {
		t.Error("Retry reset a playing attempt")
	}

	selectWord(t, a, "w2")
	selectWord(t, a, "w3")
	if a.Check() != StatusSuccess {
		t.Fatal("expected success")
	}
	a.Retry()
	if a.Status() != StatusSuccess {
		t.Error("Retry left the success state")
	}
}

func TestCheckSuccessPath(t *testing.T) {
	a := NewAttempt(testVerse())
	for _, id := range []string{"w1", "w2", "w3"} {
		selectWord(t, a, id)
	}
	if got := a.Check(); got != StatusSuccess {
		t.Fatalf("Check() = %v, want success", got)
	}
	// Terminal: a second check does not flip the status.
	if got := a.Check(); got != StatusSuccess {
		t.Errorf("second Check() = %v, want success", got)
	}
}
