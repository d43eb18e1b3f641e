// Package dhikr is the tasbih counter screen. Completing all three
// stages refills hearts.
package dhikr

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/dhikr"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/ui/components"
	"github.com/hamid/juzjourney/internal/ui/layout"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

// DhikrScreen drives the staged counter with the space bar.
type DhikrScreen struct {
	tracker  *progress.Tracker
	counter  *dhikr.Counter
	refilled bool
}

var _ screen.Screen = (*DhikrScreen)(nil)
var _ screen.KeyHintProvider = (*DhikrScreen)(nil)

// New creates the dhikr screen.
func New(tracker *progress.Tracker) *DhikrScreen {
	return &DhikrScreen{
		tracker: tracker,
		counter: dhikr.NewCounter(),
	}
}

func (d *DhikrScreen) Title() string { return "Dhikr" }
func (d *DhikrScreen) Init() tea.Cmd { return nil }

func (d *DhikrScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "space", " ", "enter":
		if d.counter.Completed() {
			return d, nil
		}
		d.counter.Tap()
		if d.counter.Completed() && !d.refilled {
			d.refilled = true
			_ = d.tracker.RefillHearts(context.Background())
		}
	case "r":
		d.counter.Reset()
		d.refilled = false
	}

	return d, nil
}

func (d *DhikrScreen) View(width, height int) string {
	stage := d.counter.Stage()

	var sections []string
	sections = append(sections, theme.Title.Render("Tasbih"))
	sections = append(sections, "")

	for i, s := range dhikr.Stages() {
		marker := "  "
		style := theme.Body
		if i == d.counter.StageIndex() && !d.counter.Completed() {
			marker = "▸ "
			style = theme.Selected
		}
		if i < d.counter.StageIndex() || d.counter.Completed() {
			style = theme.Correct
		}
		sections = append(sections, style.Render(
			fmt.Sprintf("%s%s ×%d  (%s)", marker, s.Label, s.Target, s.Meaning)))
	}

	sections = append(sections, "")
	bar := components.NewProgressBar(stage.Label, d.counter.Progress(), false, 40)
	sections = append(sections, bar.View())
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%d / %d", d.counter.Count(), stage.Target)))

	if d.counter.Completed() {
		sections = append(sections, "")
		sections = append(sections, theme.Correct.Render("MashaAllah! Your hearts are restored ♥♥♥♥♥"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DhikrScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Count"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}
