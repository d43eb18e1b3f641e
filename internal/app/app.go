// Package app wires the screens, router, and chrome into the root
// Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/router"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/screens/journeymap"
	"github.com/hamid/juzjourney/internal/screens/lesson"
	"github.com/hamid/juzjourney/internal/screens/welcome"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/hamid/juzjourney/internal/ui/layout"
)

// Options carries the app's dependencies. Scorer may be nil when no LLM
// provider is configured; recitation then stays unavailable but the rest
// of the app works.
type Options struct {
	Tracker *progress.Tracker
	Scorer  lesson.Scorer
	Events  store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the welcome splash, which replaces itself with
// the journey map once the learner is through.
func newAppModel(opts Options) AppModel {
	journeyFactory := func() screen.Screen {
		return journeymap.New(opts.Tracker, opts.Scorer, opts.Events)
	}
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(opts.Tracker, journeyFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.opts.Tracker.State()
	header := layout.RenderHeader(title, layout.HeaderStats{
		XP:     state.XP,
		Streak: state.Streak,
		Hearts: state.Hearts,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints lets the active screen supply its own key hints, with a
// stack-aware fallback.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
