package menu

import "fmt"

// Definitions returns the menu definition table: one Menu per declared state.
// menugen inserts a generated state's Menu immediately before the StateHelp
// entry, and its main-menu item immediately before the Help item.
func Definitions() map[State]Menu {
	return map[State]Menu{
		StateMainMenu: {
			Title: "Main Menu",
			Items: []Item{
				{ID: "settings", Label: "Settings"},
				{ID: "pokedex", Label: "Pokedex"},
				{ID: "auth", Label: "Auth"},
				{ID: "help", Label: "Help"},
				{ID: "quit", Label: "Quit"},
			},
		},
		StateSettings: {
			Title: "Settings",
			Items: []Item{
				{ID: "theme", Label: "Theme"},
				{ID: "animations", Label: "Animations"},
				{ID: "refresh", Label: "Refresh Rate"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		},
		StatePokedex: {
			Title: "Pokedex",
			Items: []Item{
				{ID: "next", Label: "Next Pokemon"},
				{ID: "previous", Label: "Previous Pokemon"},
				{ID: "search", Label: "Search Pokemon"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		},
		StateAuth: {
			Title: "Email Input",
			Items: []Item{
				{ID: "send", Label: "Send Verification Email"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		},
		StateHelp: {
			Title: "Help",
			Items: []Item{
				{ID: "navigation", Label: "Navigation"},
				{ID: "mainmenu", Label: "Main Menu"},
				{ID: "pokedex", Label: "Pokedex"},
				{ID: "settings", Label: "Settings"},
				{ID: "shortcuts", Label: "Keyboard Shortcuts"},
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		},
	}
}

// MustLookup returns the Menu for a state. A missing entry means the state
// set and the definition table have drifted apart, which is a defect in the
// table (or in menugen), so it panics rather than returning an error.
func MustLookup(s State) Menu {
	m, ok := Definitions()[s]
	if !ok {
		panic(fmt.Sprintf("menu: state %q has no menu definition", s))
	}
	return m
}

// Size returns the item count of the state's menu.
func Size(s State) int {
	return MustLookup(s).Size()
}
