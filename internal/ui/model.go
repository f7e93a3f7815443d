// Package ui is the Bubble Tea runtime: one Model owning the session, the
// screen registry, and the shared message plumbing. Screens never see raw
// terminal state; the model routes keys and effect results to them.
package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/mailer"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/screen"
	"github.com/pokearena/arena/internal/session"
	"github.com/pokearena/arena/internal/theme"
)

const infoDisplayTime = 5 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Model implements tea.Model for the arena menu system.
type Model struct {
	session     *session.Session
	registry    *screen.Registry
	mailer      *mailer.Mailer
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the session, registry, and display configuration together.
// A zero width or height follows the terminal.
func NewModel(initial menu.State, m *mailer.Mailer, width, height int, showFooter bool) *Model {
	model := &Model{
		session:    session.New(initial, screen.Payloads()),
		registry:   screen.BuildRegistry(),
		mailer:     m,
		showFooter: showFooter,
	}
	if width > 0 {
		model.width = width
		model.fixedWidth = true
	}
	if height > 0 {
		model.height = height
		model.fixedHeight = true
	}
	model.registerHandlers()
	return model
}

// Session exposes the navigation session, used by tests and the harness.
func (m *Model) Session() *session.Session {
	return m.session
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(screen.EffectResult{}): m.handleEffectResultMsg,
		reflect.TypeOf(screen.CodeSentMsg{}):  m.handleCodeSentMsg,
		reflect.TypeOf(tickMsg{}):             m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) handleEffectResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(screen.EffectResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		events.Effect.Error(result.Err)
		m.errMsg = result.Err.Error()
		return nil
	}
	m.setInfo(result.Info)
	return nil
}

func (m *Model) handleCodeSentMsg(msg tea.Msg) tea.Cmd {
	sent, ok := msg.(screen.CodeSentMsg)
	if !ok {
		return nil
	}
	if p, ok := m.session.Payload(menu.StateAuth).(*screen.AuthPayload); ok {
		p.ApplyCodeSent(sent)
	}
	m.session.ClampCursor()
	m.setInfo("Verification code sent to " + sent.Email)
	return nil
}

// handleTickMsg expires stale info messages and re-arms the timer at the
// configured refresh rate. Ticking stops while animations are off.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	m.clearExpiredInfo()
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	settings := m.settings()
	if !settings.Animations {
		return nil
	}
	interval := time.Duration(settings.RefreshMS) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) settings() *screen.SettingsPayload {
	return m.session.Payload(menu.StateSettings).(*screen.SettingsPayload)
}

func (m *Model) styles() theme.Styles {
	return theme.Lookup(m.settings().Theme)
}

func (m *Model) screenContext() screen.Context {
	return screen.Context{
		Session: m.session,
		Mailer:  m.mailer,
		Width:   m.width,
		Height:  m.height,
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDisplayTime)
}

func (m *Model) clearExpiredInfo() {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
}

func (m *Model) currentInfo() string {
	m.clearExpiredInfo()
	return m.infoMsg
}
