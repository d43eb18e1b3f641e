package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hamid/juzjourney/internal/screen"
)

type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	r := New(a)

	if r.Depth() != 1 || r.Active() != a {
		t.Fatal("initial stack wrong")
	}

	r.Update(PushScreenMsg{Screen: b})
	if r.Depth() != 2 || r.Active() != b {
		t.Fatal("push failed")
	}
	if !b.inited {
		t.Fatal("pushed screen not initialized")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != a {
		t.Fatal("pop failed")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	a := &stubScreen{name: "a"}
	r := New(a)

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != a {
		t.Fatal("pop should be a no-op at depth 1")
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	c := &stubScreen{name: "c"}
	r := New(a)
	r.Push(b)

	r.Update(ReplaceScreenMsg{Screen: c})
	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != c {
		t.Fatal("replace did not swap the top screen")
	}
	if !c.inited {
		t.Fatal("replacement screen not initialized")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != a {
		t.Fatal("replaced screen should not remain on the stack")
	}
}
