package app

import (
	"errors"
	"fmt"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/desktop"
	"deskfolio/internal/logging/events"
	"deskfolio/internal/registry"
	"deskfolio/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ProfilePath string
	ShowFooter  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	reg := registry.New()
	reg.SetDiagnostic(events.Registry.UnknownID)

	ctrl := desktop.NewController(reg)
	defer ctrl.Close()

	model := ui.NewModel(reg, ctrl, prof, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
