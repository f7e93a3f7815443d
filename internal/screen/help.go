package screen

import tea "github.com/charmbracelet/bubbletea"

// HelpPayload has no state of its own; the body follows the cursor.
type HelpPayload struct{}

func (p *HelpPayload) Reset() {}

var helpSections = map[string][]string{
	"navigation": {
		"Move with the arrow keys or j/k; the cursor wraps at both ends.",
		"Enter activates the selected item, esc returns to the previous menu.",
	},
	"mainmenu": {
		"The main menu is the root of the application.",
		"Quit exits; every other item opens the screen it names.",
	},
	"pokedex": {
		"Browse all 151 entries with Next and Previous.",
		"Press / (or activate Search) to jump to an entry by name fragment.",
	},
	"settings": {
		"Enter cycles the theme or toggles animations.",
		"On the refresh row, + and - adjust the rate in 50ms steps.",
	},
	"shortcuts": {
		"q or ctrl+c quits from anywhere.",
		"f1 opens this help screen.",
	},
}

func renderHelp(ctx Context) []string {
	item, ok := ctx.Session.SelectedItem()
	if !ok || item.Back {
		return []string{"Select a topic to read about it."}
	}
	section, ok := helpSections[item.ID]
	if !ok {
		return []string{"Select a topic to read about it."}
	}
	return section
}

func inputHelp(ctx Context, msg tea.KeyMsg) tea.Cmd {
	// The body tracks the cursor, so there is nothing to activate.
	return nil
}
