package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingodrill/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name     string
	inited   bool
	lastMsg  tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	child := &stubScreen{name: "child"}
	r.Push(child)
	if !child.inited {
		t.Error("Push should call Init on the new screen")
	}
	if r.Active() != screen.Screen(child) {
		t.Error("Active should be the pushed screen")
	}

	r.Pop()
	if r.Active() != screen.Screen(root) {
		t.Error("Pop should return to the root")
	}
}

func TestPopNeverRemovesRoot(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1 (root must survive)", r.Depth())
	}
}

func TestPopN(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Push(&stubScreen{name: "a"})
	r.Push(&stubScreen{name: "b"})
	r.Push(&stubScreen{name: "c"})

	r.PopN(2)
	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "a" {
		t.Errorf("Active = %s, want a", r.Active().Title())
	}

	r.PopN(10)
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 (PopN clamps at the root)", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Push(&stubScreen{name: "a"})
	r.Push(&stubScreen{name: "b"})

	r.PopToRoot()
	if r.Depth() != 1 || r.Active() != screen.Screen(root) {
		t.Errorf("PopToRoot left depth %d, active %s", r.Depth(), r.Active().Title())
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "root"})

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "b"}})
	if r.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 2 {
		t.Fatalf("Depth = %d after pop, want 2", r.Depth())
	}

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "c"}})
	r.Update(PopScreensMsg{Count: 2})
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d after PopScreensMsg, want 1", r.Depth())
	}

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "d"}})
	r.Update(PopToRootMsg{})
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d after PopToRootMsg, want 1", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{name: "root"}
	top := &stubScreen{name: "top"}
	r := New(root)
	r.Push(top)

	type customMsg struct{ n int }
	r.Update(customMsg{n: 7})

	if top.lastMsg == nil {
		t.Fatal("active screen did not receive the message")
	}
	if root.lastMsg != nil {
		t.Error("inactive screen received the message")
	}
}
