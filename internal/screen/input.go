package screen

import "github.com/pokearena/arena/internal/menu"

// inputFuncs is one of the tables menugen extends: a generated state's entry
// is inserted immediately before the StateHelp line.
func inputFuncs() map[menu.State]InputFunc {
	return map[menu.State]InputFunc{
		menu.StateMainMenu: inputMainMenu,
		menu.StateSettings: inputSettings,
		menu.StatePokedex:  inputPokedex,
		menu.StateAuth:     inputAuth,
		menu.StateHelp:     inputHelp,
	}
}
