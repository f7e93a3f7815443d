package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/theme"
)

const (
	refreshStepMS = 50
	refreshMinMS  = 50
	refreshMaxMS  = 1000
)

// SettingsPayload holds the adjustable preferences. The theme name is read by
// the view on every render, so changes take effect immediately.
type SettingsPayload struct {
	Theme      theme.Name
	Animations bool
	RefreshMS  int
}

func (p *SettingsPayload) Reset() {
	if p.Theme == "" {
		p.Theme = theme.Default
	}
	if p.RefreshMS == 0 {
		p.Animations = true
		p.RefreshMS = 200
	}
}

func renderSettings(ctx Context) []string {
	p := ctx.Session.Payload(menu.StateSettings).(*SettingsPayload)
	animations := "off"
	if p.Animations {
		animations = "on"
	}
	return []string{
		fmt.Sprintf("Theme: %s (enter to cycle)", p.Theme),
		fmt.Sprintf("Animations: %s (enter to toggle)", animations),
		fmt.Sprintf("Refresh rate: %dms (+/- to adjust)", p.RefreshMS),
	}
}

func inputSettings(ctx Context, msg tea.KeyMsg) tea.Cmd {
	p := ctx.Session.Payload(menu.StateSettings).(*SettingsPayload)
	item, ok := ctx.Session.SelectedItem()
	if !ok {
		return nil
	}
	switch msg.String() {
	case "enter":
		events.Nav.Activate(string(menu.StateSettings), item.ID, item.Label)
		switch item.ID {
		case "theme":
			p.Theme = theme.Next(p.Theme)
			events.Screen.ThemeChange(string(p.Theme))
		case "animations":
			p.Animations = !p.Animations
		}
	case "+":
		if item.ID == "refresh" && p.RefreshMS+refreshStepMS <= refreshMaxMS {
			p.RefreshMS += refreshStepMS
		}
	case "-":
		if item.ID == "refresh" && p.RefreshMS-refreshStepMS >= refreshMinMS {
			p.RefreshMS -= refreshStepMS
		}
	}
	return nil
}
