// Package journeymap is the home screen: the ordered surah list with
// unlock standings, plus entries for dhikr, the names browser, and the
// certificate.
package journeymap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/journey"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/router"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/screens/dhikr"
	"github.com/hamid/juzjourney/internal/screens/lesson"
	"github.com/hamid/juzjourney/internal/screens/names"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/hamid/juzjourney/internal/ui/components"
	"github.com/hamid/juzjourney/internal/ui/layout"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

// JourneyScreen lists the curriculum and routes to the other screens.
type JourneyScreen struct {
	tracker *progress.Tracker
	scorer  lesson.Scorer
	events  store.EventRepo
	surahs  []content.Surah

	menu components.Menu
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)

// New creates the journey map.
func New(tracker *progress.Tracker, scorer lesson.Scorer, events store.EventRepo) *JourneyScreen {
	j := &JourneyScreen{
		tracker: tracker,
		scorer:  scorer,
		events:  events,
		surahs:  content.Surahs(),
	}
	j.menu = components.NewMenu(j.buildItems())
	return j
}

func (j *JourneyScreen) Title() string {
	name := j.tracker.State().Name
	if name == "" {
		return "Journey"
	}
	return fmt.Sprintf("%s's Journey", name)
}

func (j *JourneyScreen) Init() tea.Cmd {
	return nil
}

func (j *JourneyScreen) buildItems() []components.MenuItem {
	state := j.tracker.State()

	items := make([]components.MenuItem, 0, len(j.surahs)+3)
	for i, s := range j.surahs {
		s := s
		standing := journey.StandingOf(j.surahs, state, i)

		var note string
		switch standing {
		case journey.Completed:
			note = "✔ completed"
		case journey.Available:
			note = fmt.Sprintf("%d verses", s.TotalVerses)
		default:
			note = "locked"
		}

		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s · %s", s.Title, s.Meaning),
			Note:     note,
			Disabled: standing == journey.Locked,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lesson.New(s, j.tracker, j.scorer, j.events),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Dhikr Counter",
		Note:  "refill your hearts",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dhikr.New(j.tracker)}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "99 Names of Allah",
		Note:  "reflect and learn",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: names.New(j.tracker)}
			}
		},
	})

	certNote := "locked"
	if journey.CertificateUnlocked(j.surahs, state) {
		certNote = "unlocked!"
	} else {
		remaining := journey.Remaining(j.surahs, state)
		certNote = fmt.Sprintf("%d surah(s) remaining", remaining)
	}
	items = append(items, components.MenuItem{
		Label: "Certificate",
		Note:  certNote,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newCertificate(j.surahs, j.tracker)}
			}
		},
	})

	return items
}

func (j *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Standings change underneath this screen when a lesson completes,
	// so rebuild the items before handling navigation.
	if _, ok := msg.(tea.KeyMsg); ok {
		selected := j.menu.Selected
		j.menu.Items = j.buildItems()
		if selected < len(j.menu.Items) {
			j.menu.Selected = selected
		}
	}

	var cmd tea.Cmd
	j.menu, cmd = j.menu.Update(msg)
	return j, cmd
}

func (j *JourneyScreen) View(width, height int) string {
	state := j.tracker.State()

	greeting := theme.Title.Render("Juz 'Amma Journey")
	sub := theme.Subtitle.Render(fmt.Sprintf(
		"%d of %d surahs memorized", len(state.CompletedSurahs), len(j.surahs)))

	content := strings.Join([]string{
		greeting,
		sub,
		"",
		j.menu.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (j *JourneyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
