package recite

import (
	"errors"
	"testing"
)

func finish(t *testing.T, g *Gate, score int) {
	t.Helper()
	token, err := g.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !g.Finish(token, score) {
		t.Fatalf("Finish(%d) rejected", score)
	}
}

func TestGate_UnlockThreshold(t *testing.T) {
	g := NewGate("ikhlas-1")

	if g.Unlocked() {
		t.Fatal("unlocked before any attempt")
	}
	if _, ok := g.Best(); ok {
		t.Fatal("expected no best score before scoring")
	}

	finish(t, g, 79)
	if g.Unlocked() {
		t.Fatal("79 should not unlock")
	}

	finish(t, g, 80)
	if !g.Unlocked() {
		t.Fatal("80 should unlock")
	}
}

func TestGate_BestScoreRatchets(t *testing.T) {
	g := NewGate("ikhlas-1")

	finish(t, g, 85)
	finish(t, g, 50)

	best, ok := g.Best()
	if !ok || best != 85 {
		t.Fatalf("best = %d, %v; want 85, true", best, ok)
	}
	if !g.Unlocked() {
		t.Fatal("a later poor attempt must not re-lock the quiz")
	}
}

func TestGate_ZeroScoreCounts(t *testing.T) {
	g := NewGate("ikhlas-1")

	finish(t, g, 0)
	best, ok := g.Best()
	if !ok || best != 0 {
		t.Fatalf("best = %d, %v; want 0, true", best, ok)
	}
	if g.Unlocked() {
		t.Fatal("score 0 should not unlock")
	}
}

func TestGate_SingleInFlight(t *testing.T) {
	g := NewGate("ikhlas-1")

	token, err := g.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !g.InFlight() {
		t.Fatal("expected in-flight attempt")
	}

	if _, err := g.Begin(); !errors.Is(err, ErrRecitationInFlight) {
		t.Fatalf("expected ErrRecitationInFlight, got %v", err)
	}

	if !g.Finish(token, 90) {
		t.Fatal("Finish rejected valid token")
	}
	if g.InFlight() {
		t.Fatal("attempt still pending after Finish")
	}
}

func TestGate_StaleTokenDropped(t *testing.T) {
	g := NewGate("ikhlas-1")

	token, err := g.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	g.Abort(token)

	if g.Finish(token, 95) {
		t.Fatal("aborted token should be rejected")
	}
	if _, ok := g.Best(); ok {
		t.Fatal("stale result must not record a score")
	}
	if g.Finish("", 95) {
		t.Fatal("empty token should be rejected")
	}
}

func TestGate_VerseSwitchResets(t *testing.T) {
	g := NewGate("ikhlas-1")
	finish(t, g, 90)

	token, err := g.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	g.SetVerse("ikhlas-2")
	if g.Unlocked() {
		t.Fatal("unlock must not carry over to the next verse")
	}
	if g.InFlight() {
		t.Fatal("verse switch should drop the pending attempt")
	}
	if g.Finish(token, 99) {
		t.Fatal("result from the previous verse should be dropped")
	}

	// Re-setting the same verse is a no-op.
	finish(t, g, 88)
	g.SetVerse("ikhlas-2")
	if best, _ := g.Best(); best != 88 {
		t.Fatalf("best = %d after same-verse SetVerse, want 88", best)
	}
}
