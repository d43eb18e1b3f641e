package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/quiz"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/ui/components"
	"github.com/hamid/juzjourney/internal/ui/theme"
)

func (l *LessonScreen) View(width, height int) string {
	var content string
	switch l.phase {
	case phaseStory:
		content = l.viewStory(width)
	case phaseMemorize:
		content = l.viewMemorize(width)
	case phaseQuiz:
		content = l.viewQuiz(width)
	case phaseNoHearts:
		content = l.viewNoHearts()
	case phaseComplete:
		content = l.viewComplete()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LessonScreen) viewStory(width int) string {
	story := theme.Body.Width(min(width-8, 64)).Render(l.surah.Story)

	return strings.Join([]string{
		theme.Title.Render(l.surah.Title),
		theme.Subtitle.Render(l.surah.Meaning),
		"",
		story,
		"",
		theme.Hint.Render("Press Enter to start the first verse"),
	}, "\n")
}

func (l *LessonScreen) viewMemorize(width int) string {
	v := l.verse()

	var sections []string
	sections = append(sections,
		theme.Subtitle.Render(fmt.Sprintf("Verse %d of %d", l.verseIdx+1, len(l.surah.Verses))),
		"",
		theme.Arabic.Render(v.ArabicFull),
		theme.Body.Render(v.Translation),
	)
	if v.Visual != "" {
		sections = append(sections, theme.Subtitle.Render(v.Visual))
	}
	sections = append(sections, "")

	for _, w := range v.Words {
		sections = append(sections, fmt.Sprintf("  %s  %s  %s",
			theme.Arabic.Render(w.Arabic),
			theme.Body.Render(w.Transliteration),
			theme.Hint.Render(w.Meaning)))
	}

	if v.TeachingNote != "" {
		sections = append(sections, "",
			theme.Body.Width(min(width-8, 64)).Render(v.TeachingNote))
	}

	sections = append(sections, "",
		theme.Hint.Render("Listen: "+v.AudioReference()),
		"",
		l.viewReciteStatus(),
	)

	if l.prompting {
		sections = append(sections, "",
			theme.Body.Render("Path to your recording:"),
			l.pathInput.View())
	}
	if l.lastErr != "" {
		sections = append(sections, "", theme.Incorrect.Render(l.lastErr))
	}

	return strings.Join(sections, "\n")
}

func (l *LessonScreen) viewReciteStatus() string {
	if l.scoring {
		return theme.Hint.Render("Scoring your recitation...")
	}

	best, scored := l.gate.Best()
	switch {
	case !scored:
		return theme.Hint.Render("Recite this verse to unlock the quiz (press R)")
	case l.gate.Unlocked():
		return theme.Correct.Render(
			fmt.Sprintf("Best score %d. Quiz unlocked, press Q", best))
	default:
		return theme.Body.Render(
			fmt.Sprintf("Best score %d. Reach %d to unlock the quiz", best, recite.UnlockScore))
	}
}

func (l *LessonScreen) viewQuiz(width int) string {
	v := l.attempt.Verse()

	var sections []string
	sections = append(sections,
		theme.Subtitle.Render("Arrange the words in order"),
		theme.Body.Render(v.Translation),
		"",
		theme.Body.Render("Your answer:"),
		components.TileRow(l.attempt.Placed(), -1, width-4),
		"",
		theme.Body.Render("Word bank:"),
		components.TileRow(l.attempt.Bank(), l.cursor, width-4),
		"",
	)

	switch l.attempt.Status() {
	case quiz.StatusSuccess:
		sections = append(sections, theme.Correct.Render("✓ Correct! MashaAllah"))
	case quiz.StatusError:
		sections = append(sections,
			theme.Incorrect.Render("✗ Not quite. The order matters"),
			theme.Subtitle.Render(fmt.Sprintf("Hearts left: %d", l.tracker.State().Hearts)))
	}

	return strings.Join(sections, "\n")
}

func (l *LessonScreen) viewNoHearts() string {
	return strings.Join([]string{
		theme.Incorrect.Render("You are out of hearts"),
		"",
		theme.Body.Render("Take a moment of dhikr to restore them."),
		"",
		theme.Hint.Render("Press D to open the tasbih counter"),
	}, "\n")
}

func (l *LessonScreen) viewComplete() string {
	card := strings.Join([]string{
		theme.Title.Render("Surah " + l.surah.Title + " complete!"),
		"",
		theme.Correct.Render(fmt.Sprintf("+%d XP", progress.SurahXP)),
		theme.Subtitle.Render(fmt.Sprintf("Total: %d XP", l.tracker.State().XP)),
	}, "\n")
	return theme.Card.Render(card)
}
