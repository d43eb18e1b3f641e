// Package names is the browser for the Names of Allah. Reflecting on a
// name awards a little XP, once per opened name per visit.
package names

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/names"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/ui/layout"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

// NamesScreen pages through the names one at a time.
type NamesScreen struct {
	tracker *progress.Tracker
	all     []names.Name
	visit   *names.Visit
	index   int
}

var _ screen.Screen = (*NamesScreen)(nil)
var _ screen.KeyHintProvider = (*NamesScreen)(nil)

// New creates the names screen with a fresh visit.
func New(tracker *progress.Tracker) *NamesScreen {
	return &NamesScreen{
		tracker: tracker,
		all:     names.All(),
		visit:   names.NewVisit(),
	}
}

func (n *NamesScreen) Title() string { return "99 Names" }
func (n *NamesScreen) Init() tea.Cmd { return nil }

func (n *NamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return n, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		if n.index > 0 {
			n.index--
		}
	case "right", "l", "down", "j":
		if n.index < len(n.all)-1 {
			n.index++
		}
	case "enter", "space", " ":
		current := n.all[n.index]
		if n.visit.Reflect(current.Number) {
			_ = n.tracker.AddXP(context.Background(), names.ReflectionXP)
		}
	}

	return n, nil
}

func (n *NamesScreen) View(width, height int) string {
	if len(n.all) == 0 {
		return ""
	}
	current := n.all[n.index]

	card := theme.Card.Render(strings.Join([]string{
		theme.Subtitle.Render(fmt.Sprintf("%d / %d", current.Number, len(n.all))),
		"",
		theme.Arabic.Render(current.Arabic),
		theme.Title.Render(current.Transliteration),
		theme.Subtitle.Render(current.Meaning),
		"",
		theme.Body.Render(current.Reflection),
	}, "\n"))

	var footer string
	if n.visit.Reflected(current.Number) {
		footer = theme.Correct.Render(fmt.Sprintf("✓ reflected (+%d XP)", names.ReflectionXP))
	} else {
		footer = theme.Hint.Render("press enter when you have sat with this name")
	}

	content := card + "\n\n" + footer
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (n *NamesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Browse"},
		{Key: "Enter", Description: "Reflect"},
		{Key: "Esc", Description: "Back"},
	}
}
