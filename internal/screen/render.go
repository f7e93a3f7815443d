package screen

import "github.com/pokearena/arena/internal/menu"

// renderFuncs is one of the tables menugen extends: a generated state's entry
// is inserted immediately before the StateHelp line.
func renderFuncs() map[menu.State]RenderFunc {
	return map[menu.State]RenderFunc{
		menu.StateMainMenu: renderMainMenu,
		menu.StateSettings: renderSettings,
		menu.StatePokedex:  renderPokedex,
		menu.StateAuth:     renderAuth,
		menu.StateHelp:     renderHelp,
	}
}
