// Package dhikr implements the staged tasbih counter. Completing all three
// stages is the ritual that restores the learner's hearts.
package dhikr

// Stage is one phrase of the tasbih with its repetition target.
type Stage struct {
	Label   string
	Meaning string
	Target  int
}

// Stages returns the tasbih sequence: 33, 33, and 34 repetitions.
func Stages() []Stage {
	return []Stage{
		{Label: "SubhanAllah", Meaning: "Glory be to Allah", Target: 33},
		{Label: "Alhamdulillah", Meaning: "All praise is due to Allah", Target: 33},
		{Label: "Allahu Akbar", Meaning: "Allah is the Greatest", Target: 34},
	}
}

// Counter tracks progress through the stages. Taps past completion are
// ignored.
type Counter struct {
	stages []Stage
	stage  int
	count  int
	done   bool
}

// NewCounter starts a fresh tasbih.
func NewCounter() *Counter {
	return &Counter{stages: Stages()}
}

// Tap records one repetition. Reaching a stage's target moves to the next
// stage with the count cleared; reaching the final target completes the
// ritual and freezes the counter at the target.
func (c *Counter) Tap() {
	if c.done {
		return
	}
	c.count++
	if c.count < c.stages[c.stage].Target {
		return
	}
	if c.stage < len(c.stages)-1 {
		c.stage++
		c.count = 0
		return
	}
	c.count = c.stages[c.stage].Target
	c.done = true
}

// Stage returns the active stage.
func (c *Counter) Stage() Stage { return c.stages[c.stage] }

// StageIndex returns the zero-based index of the active stage.
func (c *Counter) StageIndex() int { return c.stage }

// Count returns repetitions recorded in the active stage.
func (c *Counter) Count() int { return c.count }

// Completed reports whether every stage has reached its target.
func (c *Counter) Completed() bool { return c.done }

// Progress returns the active stage's completion fraction in [0, 1].
func (c *Counter) Progress() float64 {
	return float64(c.count) / float64(c.stages[c.stage].Target)
}

// Reset starts the ritual over from the first stage.
func (c *Counter) Reset() {
	c.stage = 0
	c.count = 0
	c.done = false
}
