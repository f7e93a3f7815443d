// Package screen holds the per-state handlers: a render function producing
// the body lines below the menu, an input function consuming key presses, and
// the payload each state owns. The registry guarantees every declared state
// has exactly one of each.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/mailer"
	"github.com/pokearena/arena/internal/session"
)

// Context carries everything a handler may touch. It is rebuilt per dispatch
// so handlers never hold references across events.
type Context struct {
	Session *session.Session
	Mailer  *mailer.Mailer
	Width   int
	Height  int
}

// RenderFunc produces the body lines shown below the active menu.
type RenderFunc func(Context) []string

// InputFunc consumes a key press for the active state. A non-nil command is
// handed to the runtime for asynchronous work.
type InputFunc func(Context, tea.KeyMsg) tea.Cmd

// EffectResult reports the outcome of an asynchronous effect back to the
// event loop. Exactly one of Info and Err is meaningful.
type EffectResult struct {
	Info string
	Err  error
}

// CodeSentMsg reports a successfully delivered verification code.
type CodeSentMsg struct {
	Email string
	Code  string
}
