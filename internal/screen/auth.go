package screen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/mailer"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/session"
)

// AuthPhase is the stage of the email verification flow. Each phase presents
// its own menu, supplied to the session through CurrentMenu.
type AuthPhase int

const (
	PhaseEmail AuthPhase = iota
	PhaseCode
	PhaseLoggedIn
)

const sendTimeout = 15 * time.Second

// AuthPayload drives the three-phase verification flow: collect an address,
// await the mailed code, then hold the logged-in session.
type AuthPayload struct {
	Phase    AuthPhase
	Email    string
	expected string
	typing   bool
	email    textinput.Model
	code     textinput.Model
}

func NewAuthPayload() *AuthPayload {
	email := textinput.New()
	email.Placeholder = "trainer@example.com"
	email.Prompt = "Email: "
	email.CharLimit = 254
	code := textinput.New()
	code.Placeholder = "123456"
	code.Prompt = "Code: "
	code.CharLimit = 6
	return &AuthPayload{email: email, code: code}
}

func (p *AuthPayload) Reset() {
	p.Phase = PhaseEmail
	p.Email = ""
	p.expected = ""
	p.typing = false
	p.email.SetValue("")
	p.email.Blur()
	p.code.SetValue("")
	p.code.Blur()
}

// CurrentMenu supplies the phase-specific menu instead of the static table
// entry.
func (p *AuthPayload) CurrentMenu() (menu.Menu, bool) {
	switch p.Phase {
	case PhaseCode:
		return menu.Menu{
			Title: "Verify Email",
			Items: []menu.Item{
				{ID: "verify", Label: "Verify Code"},
				{ID: "resend", Label: "Resend Email"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		}, true
	case PhaseLoggedIn:
		return menu.Menu{
			Title: "Logged In",
			Items: []menu.Item{
				{ID: "logout", Label: "Log Out"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		}, true
	default:
		return menu.Menu{}, false
	}
}

// CapturingInput reports whether a text field owns the keyboard.
func (p *AuthPayload) CapturingInput() bool {
	return p.typing
}

// ApplyCodeSent records the delivered code and advances to the verify phase.
func (p *AuthPayload) ApplyCodeSent(msg CodeSentMsg) {
	p.Email = msg.Email
	p.expected = msg.Code
	p.Phase = PhaseCode
	p.typing = false
	p.code.SetValue("")
	p.code.Blur()
}

func (p *AuthPayload) activeField() *textinput.Model {
	if p.Phase == PhaseCode {
		return &p.code
	}
	return &p.email
}

func renderAuth(ctx Context) []string {
	p := ctx.Session.Payload(menu.StateAuth).(*AuthPayload)
	switch p.Phase {
	case PhaseCode:
		return []string{
			fmt.Sprintf("A verification code was sent to %s.", p.Email),
			p.code.View(),
			"tab type/navigate",
		}
	case PhaseLoggedIn:
		return []string{fmt.Sprintf("Logged in as %s.", p.Email)}
	default:
		return []string{
			"Enter your email address to receive a verification code.",
			p.email.View(),
			"tab type/navigate",
		}
	}
}

func inputAuth(ctx Context, msg tea.KeyMsg) tea.Cmd {
	p := ctx.Session.Payload(menu.StateAuth).(*AuthPayload)
	if p.typing {
		return typeAuth(ctx.Session, p, msg)
	}
	switch msg.String() {
	case "tab":
		if p.Phase != PhaseLoggedIn {
			p.typing = true
			p.activeField().Focus()
		}
	case "enter":
		item, ok := ctx.Session.SelectedItem()
		if !ok {
			return nil
		}
		events.Nav.Activate(string(menu.StateAuth), item.ID, item.Label)
		switch item.ID {
		case "send", "resend":
			return sendCode(ctx.Mailer, p.email.Value())
		case "verify":
			return p.verify(ctx.Session)
		case "logout":
			p.Reset()
			ctx.Session.ClampCursor()
		}
	}
	return nil
}

// typeAuth feeds keys to the focused field until tab or esc hands the
// keyboard back to the menu. Enter submits the field's natural action.
func typeAuth(s *session.Session, p *AuthPayload, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "esc":
		p.typing = false
		p.activeField().Blur()
		return nil
	case "enter":
		p.typing = false
		p.activeField().Blur()
		if p.Phase == PhaseCode {
			return p.verify(s)
		}
		return nil
	}
	field := p.activeField()
	var cmd tea.Cmd
	*field, cmd = field.Update(msg)
	return cmd
}

func (p *AuthPayload) verify(s *session.Session) tea.Cmd {
	if mailer.Verify(p.expected, p.code.Value()) {
		p.Phase = PhaseLoggedIn
		p.typing = false
		s.ClampCursor()
		return report(EffectResult{Info: "Email verified. Welcome!"})
	}
	return report(EffectResult{Err: errors.New("verification code does not match")})
}

// sendCode generates a fresh code and mails it off the event loop. The
// outcome arrives as a CodeSentMsg or an EffectResult.
func sendCode(m *mailer.Mailer, email string) tea.Cmd {
	if !m.Configured() {
		return report(EffectResult{Err: errors.New("no SMTP account configured; see --smtp-host")})
	}
	if !mailer.ValidAddress(email) {
		return report(EffectResult{Err: fmt.Errorf("invalid email address %q", email)})
	}
	return func() tea.Msg {
		code, err := mailer.GenerateCode()
		if err != nil {
			return EffectResult{Err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := m.SendCode(ctx, email, code); err != nil {
			events.Effect.Error(err)
			return EffectResult{Err: err}
		}
		return CodeSentMsg{Email: email, Code: code}
	}
}

func report(result EffectResult) tea.Cmd {
	return func() tea.Msg { return result }
}
