package journeymap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/journey"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

// certificateScreen shows the completion certificate, or how far away it is.
type certificateScreen struct {
	surahs  []content.Surah
	tracker *progress.Tracker
}

var _ screen.Screen = (*certificateScreen)(nil)

func newCertificate(surahs []content.Surah, tracker *progress.Tracker) *certificateScreen {
	return &certificateScreen{surahs: surahs, tracker: tracker}
}

func (c *certificateScreen) Title() string { return "Certificate" }
func (c *certificateScreen) Init() tea.Cmd { return nil }

func (c *certificateScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return c, nil
}

func (c *certificateScreen) View(width, height int) string {
	state := c.tracker.State()

	var body string
	if journey.CertificateUnlocked(c.surahs, state) {
		name := state.Name
		if name == "" {
			name = "Student"
		}
		body = theme.Card.Render(strings.Join([]string{
			theme.Title.Render("✦ Certificate of Completion ✦"),
			"",
			theme.Body.Render(fmt.Sprintf("Awarded to %s", name)),
			theme.Body.Render(fmt.Sprintf("for memorizing all %d surahs", len(c.surahs))),
			theme.Subtitle.Render("of this Juz 'Amma journey"),
		}, "\n"))
	} else {
		remaining := journey.Remaining(c.surahs, state)
		body = strings.Join([]string{
			theme.Title.Render("Certificate"),
			"",
			theme.Body.Render(fmt.Sprintf("Memorize %d more surah(s) to earn it.", remaining)),
			"",
			theme.Hint.Render("keep going, you are closer than you think"),
		}, "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
