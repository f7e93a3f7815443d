package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/mailer"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Screen     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	SMTP       mailer.Config
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	initial := menu.StateMainMenu
	if cfg.Screen != "" {
		initial = menu.State(cfg.Screen)
		if !menu.Valid(initial) {
			return fmt.Errorf("unknown screen %q (declared: %v)", cfg.Screen, menu.All())
		}
	}
	m, err := mailer.New(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	model := ui.NewModel(initial, m, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
