package screen

import (
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/session"
)

// payloadFuncs is one of the tables menugen extends: a generated state's
// entry is inserted immediately before the StateHelp line.
func payloadFuncs() map[menu.State]func() session.Payload {
	return map[menu.State]func() session.Payload{
		menu.StateMainMenu: func() session.Payload { return &MainMenuPayload{} },
		menu.StateSettings: func() session.Payload { return &SettingsPayload{} },
		menu.StatePokedex:  func() session.Payload { return NewPokedexPayload() },
		menu.StateAuth:     func() session.Payload { return NewAuthPayload() },
		menu.StateHelp:     func() session.Payload { return &HelpPayload{} },
	}
}
