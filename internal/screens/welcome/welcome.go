// Package welcome shows the splash animation and first-run name entry.
package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/router"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/ui/components"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const crescentArt = `        ▄████▄
      ▄██▀
     ███        ★
     ███
      ▀██▄
        ▀████▀`

// sparkle frames cycle beside the crescent
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen plays a splash animation, asks for the learner's name on
// first run, then hands over to the journey map.
type WelcomeScreen struct {
	tracker     *progress.Tracker
	homeFactory func() screen.Screen

	elapsed      time.Duration
	tickCount    int
	naming       bool
	nameInput    components.TextInput
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once onboarding is done.
func New(tracker *progress.Tracker, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		tracker:     tracker,
		homeFactory: homeFactory,
		nameInput:   components.NewTextInput("your name", 24),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if w.naming {
			return w.updateNaming(msg)
		}
		// Only move on once the full animation has played.
		if w.elapsed < totalDur {
			return w, nil
		}
		if w.tracker != nil && !w.tracker.State().HasOnboarded {
			w.naming = true
			return w, w.nameInput.Init()
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) updateNaming(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			w.nameInput.Submit(false)
			return w, nil
		}
		if err := w.tracker.SetName(context.Background(), name); err != nil {
			w.nameInput.Submit(false)
			return w, nil
		}
		return w, w.transition()
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	if w.naming {
		return w.viewNaming(width, height)
	}

	var sections []string

	crescentStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	// Phase 1+: crescent
	rendered := crescentStyle.Render(crescentArt)

	// Phase 2+: sparkles beside the crescent
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		primaryStyle := lipgloss.NewStyle().Foreground(theme.Primary)

		s1 := accentStyle.Render(sparkle)
		s2 := primaryStyle.Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Memorize Juz 'Amma, one ayah at a time")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := theme.Hint.Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewNaming(width, height int) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("As-salamu alaykum! What should we call you?")

	content := strings.Join([]string{
		prompt,
		"",
		w.nameInput.View(),
		"",
		theme.Hint.Render("enter to confirm"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
