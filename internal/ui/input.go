package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/menu"
)

// handleKeyMsg routes a key press. Global shortcuts win, then a capturing
// screen gets everything, then the navigation keys, then the active screen.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	m.errMsg = ""

	if m.session.Capturing() {
		return m.registry.DispatchInput(m.screenContext(), key)
	}

	switch key.String() {
	case "q":
		return tea.Quit
	case "esc":
		if !m.session.GoBack() {
			return tea.Quit
		}
	case "f1":
		if m.session.Current() != menu.StateHelp {
			m.session.SwitchTo(menu.StateHelp)
		}
	case "up", "k":
		m.session.MoveUp()
	case "down", "j":
		m.session.MoveDown()
	case "enter":
		m.session.ClampCursor()
		if item, ok := m.session.SelectedItem(); ok && item.Back {
			m.session.GoBack()
			return nil
		}
		return m.registry.DispatchInput(m.screenContext(), key)
	default:
		return m.registry.DispatchInput(m.screenContext(), key)
	}
	return nil
}
