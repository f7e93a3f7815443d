package session

import (
	"testing"

	"github.com/pokearena/arena/internal/menu"
)

type stubPayload struct{ resets int }

func (p *stubPayload) Reset() { p.resets++ }

type overridePayload struct {
	stubPayload
	items []menu.Item
}

func (p *overridePayload) CurrentMenu() (menu.Menu, bool) {
	return menu.Menu{Title: "Override", Items: p.items}, true
}

func testPayloads() map[menu.State]Payload {
	payloads := make(map[menu.State]Payload, len(menu.All()))
	for _, state := range menu.All() {
		payloads[state] = &stubPayload{}
	}
	return payloads
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(menu.StateMainMenu, testPayloads())
}

func TestNewStartsAtInitialStateWithCursorZero(t *testing.T) {
	s := newTestSession(t)
	if s.Current() != menu.StateMainMenu {
		t.Fatalf("expected main menu, got %q", s.Current())
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor())
	}
	if !s.AtRoot() {
		t.Fatalf("expected fresh session at root")
	}
}

func TestNewPanicsOnMissingPayload(t *testing.T) {
	payloads := testPayloads()
	delete(payloads, menu.StateHelp)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing payload")
		}
	}()
	New(menu.StateMainMenu, payloads)
}

func TestMoveWrapsBothWays(t *testing.T) {
	s := newTestSession(t)
	size := s.Size()
	s.MoveUp()
	if s.Cursor() != size-1 {
		t.Fatalf("expected wrap to %d, got %d", size-1, s.Cursor())
	}
	s.MoveDown()
	if s.Cursor() != 0 {
		t.Fatalf("expected wrap back to 0, got %d", s.Cursor())
	}
}

func TestSwitchToResetsCursorAndPushesHistory(t *testing.T) {
	s := newTestSession(t)
	s.SetCursor(3)
	s.SwitchTo(menu.StateHelp)
	if s.Current() != menu.StateHelp {
		t.Fatalf("expected help state, got %q", s.Current())
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor reset, got %d", s.Cursor())
	}
	if !s.GoBack() {
		t.Fatalf("expected back to succeed")
	}
	if s.Current() != menu.StateMainMenu {
		t.Fatalf("expected main menu, got %q", s.Current())
	}
	if s.Cursor() != 3 {
		t.Fatalf("expected cursor restored to 3, got %d", s.Cursor())
	}
}

func TestSwitchToResetsTargetPayloadOnly(t *testing.T) {
	payloads := testPayloads()
	s := New(menu.StateMainMenu, payloads)
	s.SwitchTo(menu.StateHelp)
	if got := payloads[menu.StateHelp].(*stubPayload).resets; got != 1 {
		t.Fatalf("expected help payload reset once, got %d", got)
	}
	if got := payloads[menu.StateMainMenu].(*stubPayload).resets; got != 0 {
		t.Fatalf("expected main menu payload untouched, got %d resets", got)
	}
	s.GoBack()
	if got := payloads[menu.StateMainMenu].(*stubPayload).resets; got != 0 {
		t.Fatalf("expected back navigation to preserve payload, got %d resets", got)
	}
}

func TestSwitchToSameStateIsNoOp(t *testing.T) {
	s := newTestSession(t)
	s.SetCursor(2)
	s.SwitchTo(menu.StateMainMenu)
	if s.Cursor() != 2 {
		t.Fatalf("expected cursor unchanged, got %d", s.Cursor())
	}
	if !s.AtRoot() {
		t.Fatalf("expected no history entry")
	}
}

func TestGoBackAtRootFails(t *testing.T) {
	s := newTestSession(t)
	if s.GoBack() {
		t.Fatalf("expected back at root to fail")
	}
}

func TestGoBackReclampsCursorAgainstShrunkenMenu(t *testing.T) {
	payloads := testPayloads()
	override := &overridePayload{items: []menu.Item{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
		{ID: "c", Label: "C"},
		{ID: "d", Label: "D"},
		{ID: "e", Label: "E"},
		{ID: "f", Label: "F"},
	}}
	payloads[menu.StateAuth] = override
	s := New(menu.StateAuth, payloads)
	s.SetCursor(5)
	s.SwitchTo(menu.StateHelp)

	// The auth menu shrinks while we are away.
	override.items = override.items[:2]

	if !s.GoBack() {
		t.Fatalf("expected back to succeed")
	}
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor re-clamped to 1, got %d", s.Cursor())
	}
}

func TestPayloadMenuOverride(t *testing.T) {
	payloads := testPayloads()
	payloads[menu.StateAuth] = &overridePayload{items: []menu.Item{{ID: "only", Label: "Only"}}}
	s := New(menu.StateAuth, payloads)
	if got := s.Menu().Title; got != "Override" {
		t.Fatalf("expected override menu, got %q", got)
	}
	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}
}

func TestSelectedItem(t *testing.T) {
	s := newTestSession(t)
	s.SetCursor(4)
	item, ok := s.SelectedItem()
	if !ok {
		t.Fatalf("expected selected item")
	}
	if item.ID != "quit" {
		t.Fatalf("expected quit, got %q", item.ID)
	}
}
