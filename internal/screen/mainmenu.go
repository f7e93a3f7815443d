package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/pokedex"
)

// MainMenuPayload is the root screen's private data: a session counter and
// the featured entry shown in the banner.
type MainMenuPayload struct {
	Counter  int
	Featured int
}

func (p *MainMenuPayload) Reset() {
	p.Counter = 0
	p.Featured = pokedex.Random()
}

func renderMainMenu(ctx Context) []string {
	p := ctx.Session.Payload(menu.StateMainMenu).(*MainMenuPayload)
	return []string{
		"Welcome to Pokemon Arena!",
		fmt.Sprintf("Featured: %s (#%d)", pokedex.NameByNumber(p.Featured), p.Featured),
		fmt.Sprintf("Counter: %d  (+/- to adjust)", p.Counter),
	}
}

// inputMainMenu activates the selected item. Item IDs on the root menu are
// state names by construction, so any non-quit activation that does not name
// a declared state means the definition table is broken.
func inputMainMenu(ctx Context, msg tea.KeyMsg) tea.Cmd {
	p := ctx.Session.Payload(menu.StateMainMenu).(*MainMenuPayload)
	switch msg.String() {
	case "+":
		p.Counter++
	case "-":
		p.Counter--
	case "enter":
		item, ok := ctx.Session.SelectedItem()
		if !ok {
			return nil
		}
		events.Nav.Activate(string(menu.StateMainMenu), item.ID, item.Label)
		switch item.ID {
		case "quit":
			return tea.Quit
		default:
			next := menu.State(item.ID)
			if !menu.Valid(next) {
				panic(fmt.Sprintf("screen: main menu item %q names no declared state", item.ID))
			}
			ctx.Session.SwitchTo(next)
		}
	}
	return nil
}
