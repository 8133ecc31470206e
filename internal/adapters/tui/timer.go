package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/veldrin/prisma-cli/internal/config"
	"github.com/veldrin/prisma-cli/internal/ports"
	"github.com/veldrin/prisma-cli/internal/services"
)

// minWideLayout is the terminal width below which the alt screen is skipped.
const minWideLayout = 40

// Run starts the timer interface and blocks until the user quits.
// The controller must have been created with the same gate.
func Run(ctx context.Context, controller *services.Controller, gate *TickGate, cfg *config.Config, gitInfo *ports.GitInfo) error {
	model := NewModel(controller, gate, cfg)
	if gitInfo != nil {
		model.SetGitContext(gitInfo.Branch, gitInfo.Commit)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w >= minWideLayout {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Unmount discipline: never leave a clock running behind us.
	controller.Teardown()
	return nil
}
