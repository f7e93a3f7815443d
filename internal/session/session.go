// Package session owns the single application session: the current state,
// the selection index validated against that state's menu, and each state's
// private payload. The session is threaded explicitly through the UI and the
// screen handlers; there is no ambient shared state.
package session

import (
	"fmt"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/nav"
)

// Payload is the per-state private data owned by the session.
type Payload interface {
	Reset()
}

// MenuProvider lets a payload supply its own item list instead of the static
// definition table, e.g. the auth screen's per-phase menus.
type MenuProvider interface {
	CurrentMenu() (menu.Menu, bool)
}

// Capturer marks a payload that is currently consuming raw key input (text
// entry); while capturing, menu navigation keys are routed to the screen.
type Capturer interface {
	CapturingInput() bool
}

type frame struct {
	state  menu.State
	cursor int
}

// Session is the single navigation session. The (state, cursor, payload)
// triple is only mutated between render passes, inside the event loop.
type Session struct {
	current  menu.State
	cursor   int
	back     []frame
	payloads map[menu.State]Payload
}

// New creates a session positioned at the initial state with cursor 0.
// The payload map must cover every declared state; a missing payload is a
// registry/table desynchronization defect.
func New(initial menu.State, payloads map[menu.State]Payload) *Session {
	if !menu.Valid(initial) {
		panic(fmt.Sprintf("session: unknown initial state %q", initial))
	}
	for _, state := range menu.All() {
		if payloads[state] == nil {
			panic(fmt.Sprintf("session: state %q has no payload", state))
		}
	}
	return &Session{current: initial, payloads: payloads}
}

// Current returns the active state.
func (s *Session) Current() menu.State {
	return s.current
}

// Cursor returns the selection index, valid for the current state's menu.
func (s *Session) Cursor() int {
	return s.cursor
}

// Menu returns the active state's menu, preferring a payload-provided item
// list over the static definition table.
func (s *Session) Menu() menu.Menu {
	if provider, ok := s.CurrentPayload().(MenuProvider); ok {
		if m, ok := provider.CurrentMenu(); ok {
			return m
		}
	}
	return menu.MustLookup(s.current)
}

// Size returns the active menu's item count.
func (s *Session) Size() int {
	return s.Menu().Size()
}

// SelectedItem returns the item under the cursor.
func (s *Session) SelectedItem() (menu.Item, bool) {
	m := s.Menu()
	if m.Size() == 0 {
		return menu.Item{}, false
	}
	return m.Items[nav.Clamp(s.cursor, m.Size())], true
}

// MoveUp moves the cursor one item up, wrapping at the top.
func (s *Session) MoveUp() {
	s.cursor = nav.Up(nav.Clamp(s.cursor, s.Size()), s.Size())
	events.Nav.Cursor(string(s.current), s.cursor)
}

// MoveDown moves the cursor one item down, wrapping at the bottom.
func (s *Session) MoveDown() {
	s.cursor = nav.Down(nav.Clamp(s.cursor, s.Size()), s.Size())
	events.Nav.Cursor(string(s.current), s.cursor)
}

// ClampCursor re-validates the cursor against the active menu. Called before
// every activation so handlers always receive a valid (state, index) pair,
// and after payload-driven menus change size.
func (s *Session) ClampCursor() {
	s.cursor = nav.Clamp(s.cursor, s.Size())
}

// SetCursor positions the cursor, clamped to the active menu.
func (s *Session) SetCursor(index int) {
	s.cursor = nav.Clamp(index, s.Size())
}

// SwitchTo transitions to another state, remembering where we came from and
// resetting both the cursor and the target's payload. Neither is ever carried
// into a fresh entry; GoBack is the only path that preserves them.
func (s *Session) SwitchTo(next menu.State) {
	if !menu.Valid(next) {
		panic(fmt.Sprintf("session: transition to unknown state %q", next))
	}
	if next == s.current {
		return
	}
	events.Nav.Switch(string(s.current), string(next))
	s.back = append(s.back, frame{state: s.current, cursor: s.cursor})
	s.payloads[next].Reset()
	s.current = next
	s.cursor = 0
}

// GoBack returns to the previous state, restoring its cursor re-clamped
// against that menu. Returns false at the root of the history.
func (s *Session) GoBack() bool {
	if len(s.back) == 0 {
		return false
	}
	top := s.back[len(s.back)-1]
	s.back = s.back[:len(s.back)-1]
	s.current = top.state
	s.cursor = nav.Clamp(top.cursor, s.Size())
	events.Nav.Back(string(s.current))
	return true
}

// AtRoot reports whether there is no previous state to return to.
func (s *Session) AtRoot() bool {
	return len(s.back) == 0
}

// Payload returns the private data owned by the given state.
func (s *Session) Payload(state menu.State) Payload {
	return s.payloads[state]
}

// CurrentPayload returns the active state's private data.
func (s *Session) CurrentPayload() Payload {
	return s.payloads[s.current]
}

// Capturing reports whether the active screen is consuming raw key input.
func (s *Session) Capturing() bool {
	if c, ok := s.CurrentPayload().(Capturer); ok {
		return c.CapturingInput()
	}
	return false
}
