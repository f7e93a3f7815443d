package menu

// State identifies one screen in the application's closed set of screens.
// Every State has exactly one Menu definition and exactly one render/input
// handler pair; menugen preserves that correspondence when it adds entries.
type State string

// Declared states. menugen inserts generated states immediately before
// StateHelp so Help and Quit keep their position at the menu tail.
const (
	StateMainMenu State = "main"
	StateSettings State = "settings"
	StatePokedex  State = "pokedex"
	StateAuth     State = "auth"
	StateHelp     State = "help"
)

// All returns every declared state in display order.
func All() []State {
	return []State{
		StateMainMenu,
		StateSettings,
		StatePokedex,
		StateAuth,
		StateHelp,
	}
}

// Valid reports whether s names a declared state.
func Valid(s State) bool {
	for _, candidate := range All() {
		if candidate == s {
			return true
		}
	}
	return false
}
