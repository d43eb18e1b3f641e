// Package lesson is the core learning flow for one surah: the opening
// story, a per-verse memorization view with recitation scoring, and the
// word-ordering quiz that must be passed to advance.
package lesson

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hamid/juzjourney/internal/content"
	"github.com/hamid/juzjourney/internal/progress"
	"github.com/hamid/juzjourney/internal/quiz"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/router"
	"github.com/hamid/juzjourney/internal/screen"
	"github.com/hamid/juzjourney/internal/screens/dhikr"
	"github.com/hamid/juzjourney/internal/store"
	"github.com/hamid/juzjourney/internal/ui/components"
	"github.com/hamid/juzjourney/internal/ui/layout"
)

type phase int

const (
	phaseStory phase = iota
	phaseMemorize
	phaseQuiz
	phaseNoHearts
	phaseComplete
)

// LessonScreen walks through a surah verse by verse. Each verse must be
// recited well enough to unlock its quiz, and the quiz must be passed to
// move on. Running out of hearts pauses the lesson until dhikr restores
// them.
type LessonScreen struct {
	surah   content.Surah
	tracker *progress.Tracker
	scorer  Scorer
	events  store.EventRepo

	phase    phase
	verseIdx int
	gate     *recite.Gate
	attempt  *quiz.Attempt
	cursor   int

	prompting bool
	pathInput components.TextInput
	scoring   bool
	lastErr   string

	completed bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson for the given surah, starting at its story.
func New(s content.Surah, tracker *progress.Tracker, scorer Scorer, events store.EventRepo) *LessonScreen {
	l := &LessonScreen{
		surah:     s,
		tracker:   tracker,
		scorer:    scorer,
		events:    events,
		phase:     phaseStory,
		pathInput: components.NewTextInput("path/to/recording.webm", 0),
	}
	if len(s.Verses) > 0 {
		l.gate = recite.NewGate(s.Verses[0].ID)
	} else {
		l.gate = recite.NewGate("")
	}
	return l
}

func (l *LessonScreen) Title() string { return l.surah.Title }
func (l *LessonScreen) Init() tea.Cmd { return nil }

func (l *LessonScreen) verse() content.Verse {
	return l.surah.Verses[l.verseIdx]
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoredMsg:
		return l.handleScored(msg)
	case tea.KeyPressMsg:
		switch l.phase {
		case phaseStory:
			return l.updateStory(msg)
		case phaseMemorize:
			return l.updateMemorize(msg)
		case phaseQuiz:
			return l.updateQuiz(msg)
		case phaseNoHearts:
			return l.updateNoHearts(msg)
		case phaseComplete:
			return l.updateComplete(msg)
		}
	}
	return l, nil
}

func (l *LessonScreen) updateStory(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
		if len(l.surah.Verses) == 0 {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		l.phase = phaseMemorize
	}
	return l, nil
}

func (l *LessonScreen) updateMemorize(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if l.prompting {
		return l.updatePrompt(msg)
	}

	switch msg.String() {
	case "r":
		if l.scoring {
			return l, nil
		}
		if l.scorer == nil {
			l.lastErr = "recitation scoring is not configured; set an API key to enable it"
			return l, nil
		}
		l.prompting = true
		l.lastErr = ""
		return l, l.pathInput.Init()
	case "q", "enter":
		if !l.gate.Unlocked() {
			return l, nil
		}
		l.startQuiz()
	}
	return l, nil
}

// updatePrompt handles the clip-path input. Submitting an empty path
// cancels the prompt.
func (l *LessonScreen) updatePrompt(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		path := strings.TrimSpace(l.pathInput.Value())
		l.prompting = false
		l.pathInput.SetValue("")
		if path == "" {
			return l, nil
		}
		token, err := l.gate.Begin()
		if err != nil {
			l.lastErr = err.Error()
			return l, nil
		}
		l.scoring = true
		return l, scoreCmd(l.scorer, token, path, l.verse().ArabicFull)
	}

	var cmd tea.Cmd
	l.pathInput, cmd = l.pathInput.Update(msg)
	return l, cmd
}

func (l *LessonScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	l.scoring = false
	if msg.err != nil {
		l.gate.Abort(msg.token)
		l.lastErr = "scoring failed: " + msg.err.Error()
		return l, nil
	}
	if !l.gate.Finish(msg.token, msg.result.Score) {
		return l, nil
	}
	l.lastErr = ""
	return l, appendRecitationCmd(l.events, l.gate.VerseID(), msg.result)
}

func (l *LessonScreen) startQuiz() {
	l.attempt = quiz.NewAttempt(l.verse())
	l.cursor = 0
	l.phase = phaseQuiz
}

func (l *LessonScreen) updateQuiz(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch l.attempt.Status() {
	case quiz.StatusSuccess:
		if msg.String() == "enter" || msg.String() == "space" || msg.String() == " " {
			return l.advanceVerse()
		}
		return l, nil
	case quiz.StatusError:
		if msg.String() == "r" || msg.String() == "enter" {
			l.attempt.Retry()
			l.cursor = l.nearestFree(l.cursor)
		}
		return l, nil
	}

	switch msg.String() {
	case "left", "h":
		l.moveCursor(-1)
	case "right", "l":
		l.moveCursor(1)
	case "enter", "space", " ":
		bank := l.attempt.Bank()
		if l.cursor < len(bank) && !bank[l.cursor].Placed {
			l.attempt.Select(bank[l.cursor].InstanceID)
			l.cursor = l.nearestFree(l.cursor)
		}
	case "backspace":
		placed := l.attempt.Placed()
		if len(placed) > 0 {
			l.attempt.Remove(placed[len(placed)-1].InstanceID)
		}
	case "x":
		l.attempt.Reset()
		l.cursor = 0
	case "c":
		return l.checkAnswer()
	}
	return l, nil
}

func (l *LessonScreen) checkAnswer() (screen.Screen, tea.Cmd) {
	placed := l.attempt.Placed()
	if len(placed) == 0 {
		return l, nil
	}

	parts := make([]string, len(placed))
	for i, t := range placed {
		parts[i] = t.Arabic
	}
	submitted := strings.Join(parts, "")

	status := l.attempt.Check()
	correct := status == quiz.StatusSuccess
	cmd := appendQuizAnswerCmd(l.events, l.verse().ID, submitted, correct)

	if !correct {
		_ = l.tracker.LoseHeart(context.Background())
		if l.tracker.State().Hearts == 0 {
			l.phase = phaseNoHearts
		}
	}
	return l, cmd
}

func (l *LessonScreen) advanceVerse() (screen.Screen, tea.Cmd) {
	l.verseIdx++
	if l.verseIdx >= len(l.surah.Verses) {
		l.verseIdx = len(l.surah.Verses) - 1
		return l.finishSurah()
	}
	l.gate.SetVerse(l.verse().ID)
	l.attempt = nil
	l.lastErr = ""
	l.phase = phaseMemorize
	return l, nil
}

func (l *LessonScreen) finishSurah() (screen.Screen, tea.Cmd) {
	if !l.completed {
		l.completed = true
		_ = l.tracker.CompleteSurah(context.Background(), l.surah.ID)
	}
	l.phase = phaseComplete
	return l, nil
}

func (l *LessonScreen) updateNoHearts(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "d", "enter":
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: dhikr.New(l.tracker)}
		}
	default:
		// Returning from dhikr with hearts restored resumes the quiz.
		if l.tracker.State().Hearts > 0 {
			if l.attempt != nil && l.attempt.Status() == quiz.StatusError {
				l.attempt.Retry()
			}
			l.phase = phaseQuiz
		}
	}
	return l, nil
}

func (l *LessonScreen) updateComplete(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return l, nil
}

// moveCursor shifts the bank cursor by delta, skipping placed tiles.
func (l *LessonScreen) moveCursor(delta int) {
	bank := l.attempt.Bank()
	i := l.cursor
	for {
		i += delta
		if i < 0 || i >= len(bank) {
			return
		}
		if !bank[i].Placed {
			l.cursor = i
			return
		}
	}
}

// nearestFree returns the index of the closest unplaced tile to from,
// preferring later tiles. Falls back to from when everything is placed.
func (l *LessonScreen) nearestFree(from int) int {
	bank := l.attempt.Bank()
	for i := from; i < len(bank); i++ {
		if !bank[i].Placed {
			return i
		}
	}
	for i := from - 1; i >= 0; i-- {
		if !bank[i].Placed {
			return i
		}
	}
	return from
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	switch l.phase {
	case phaseStory:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseMemorize:
		if l.prompting {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Score clip"},
			}
		}
		hints := []layout.KeyHint{
			{Key: "R", Description: "Recite"},
		}
		if l.gate.Unlocked() {
			hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quiz"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case phaseQuiz:
		switch l.attempt.Status() {
		case quiz.StatusSuccess:
			return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		case quiz.StatusError:
			return []layout.KeyHint{{Key: "R", Description: "Try again"}}
		}
		return []layout.KeyHint{
			{Key: "←/→", Description: "Move"},
			{Key: "Enter", Description: "Place"},
			{Key: "Bksp", Description: "Undo"},
			{Key: "C", Description: "Check"},
		}
	case phaseNoHearts:
		return []layout.KeyHint{{Key: "D", Description: "Dhikr"}}
	case phaseComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "Finish"}}
	}
	return nil
}
