package dhikr

import "testing"

func TestStages(t *testing.T) {
	stages := Stages()
	if len(stages) != 3 {
		t.Fatalf("stage count = %d, want 3", len(stages))
	}
	wantTargets := []int{33, 33, 34}
	wantLabels := []string{"SubhanAllah", "Alhamdulillah", "Allahu Akbar"}
	for i, s := range stages {
		if s.Target != wantTargets[i] {
			t.Errorf("stage %d target = %d, want %d", i, s.Target, wantTargets[i])
		}
		if s.Label != wantLabels[i] {
			t.Errorf("stage %d label = %q, want %q", i, s.Label, wantLabels[i])
		}
	}
}

func TestStageAdvance(t *testing.T) {
	c := NewCounter()

	for range 32 {
		c.Tap()
	}
	if c.StageIndex() != 0 || c.Count() != 32 {
		t.Fatalf("stage=%d count=%d, want stage 0 count 32", c.StageIndex(), c.Count())
	}

	c.Tap() // 33rd: advances
	if c.StageIndex() != 1 {
		t.Errorf("stage = %d, want 1", c.StageIndex())
	}
	if c.Count() != 0 {
		t.Errorf("count = %d, want 0 at stage start", c.Count())
	}
}

func TestFullRitualCompletes(t *testing.T) {
	c := NewCounter()
	for range 33 + 33 + 34 {
		if c.Completed() {
			t.Fatal("completed before final tap")
		}
		c.Tap()
	}
	if !c.Completed() {
		t.Fatal("not completed after 100 taps")
	}
	if c.StageIndex() != 2 {
		t.Errorf("final stage = %d, want 2", c.StageIndex())
	}
	if c.Count() != 34 {
		t.Errorf("final count = %d, want frozen at 34", c.Count())
	}

	// Extra taps are ignored.
	c.Tap()
	if c.Count() != 34 || !c.Completed() {
		t.Error("tap after completion mutated the counter")
	}
}

func TestReset(t *testing.T) {
	c := NewCounter()
	for range 50 {
		c.Tap()
	}
	c.Reset()
	if c.StageIndex() != 0 || c.Count() != 0 || c.Completed() {
		t.Errorf("after reset: stage=%d count=%d done=%v", c.StageIndex(), c.Count(), c.Completed())
	}
}

func TestProgress(t *testing.T) {
	c := NewCounter()
	if c.Progress() != 0 {
		t.Errorf("fresh progress = %v, want 0", c.Progress())
	}
	for range 11 {
		c.Tap()
	}
	if got := c.Progress(); got <= 0.33 || got >= 0.34 {
		t.Errorf("progress after 11/33 = %v", got)
	}
}
