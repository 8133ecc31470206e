// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/veldrin/prisma-cli/internal/config"
	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/services"
)

// tickMsg is sent once per second while the program runs.
type tickMsg time.Time

// Model represents the TUI state. All session mutations go through
// the controller; the model only routes key presses and renders.
type Model struct {
	controller *services.Controller
	gate       *TickGate

	progress progress.Model
	theme    config.ThemeConfig
	presets  []config.Preset

	gitBranch string
	gitCommit string

	width  int
	height int

	quitting bool
}

// NewModel creates a new TUI model.
func NewModel(controller *services.Controller, gate *TickGate, cfg *config.Config) Model {
	theme := config.DefaultThemeConfig()
	var presets []config.Preset
	if cfg != nil {
		theme = cfg.Theme
		presets = cfg.Presets.GetPresets()
	}
	return Model{
		controller: controller,
		gate:       gate,
		progress:   progress.New(progress.WithDefaultGradient()),
		theme:      theme,
		presets:    presets,
	}
}

// SetGitContext sets the git info shown in the header.
func (m *Model) SetGitContext(branch, commit string) {
	m.gitBranch = branch
	m.gitCommit = commit
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next one-second tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// The gate is only open while a ticking phase is active, and
		// the transition itself no-ops on ticks for any other phase.
		if m.gate.Active() {
			m.controller.Tick()
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m.quit()
	}

	session := m.controller.Snapshot()
	switch session.Phase {
	case domain.PhaseSetup:
		return m.handleSetupKey(key)
	case domain.PhaseRunning:
		return m.handleRunningKey(key)
	case domain.PhasePaused:
		return m.handlePausedKey(key)
	case domain.PhaseFlow:
		return m.handleFlowKey(key)
	case domain.PhaseSummary:
		return m.handleSummaryKey(key)
	case domain.PhaseBreak:
		return m.handleBreakKey(key)
	case domain.PhaseBreakEnd:
		return m.handleBreakEndKey(key)
	}
	return m, nil
}

func (m Model) handleSetupKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "+", "=":
		_ = m.controller.AdjustTarget(1)
	case "down", "-":
		_ = m.controller.AdjustTarget(-1)
	case "right":
		_ = m.controller.AdjustTarget(5)
	case "left":
		_ = m.controller.AdjustTarget(-5)
	case "1", "2", "3":
		idx := int(key[0] - '1')
		if idx < len(m.presets) {
			_ = m.controller.SetTarget(m.presets[idx].Minutes)
		}
	case "m", "tab":
		_ = m.controller.ToggleMode()
	case "enter", "s":
		m.controller.Dispatch(domain.EventStart)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleRunningKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "p", " ":
		m.controller.Dispatch(domain.EventPause)
	case "s":
		m.controller.Dispatch(domain.EventStop)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handlePausedKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "p", "r", " ":
		m.controller.Dispatch(domain.EventResume)
	case "s":
		m.controller.Dispatch(domain.EventStop)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleFlowKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "s", "enter", " ":
		m.controller.Dispatch(domain.EventStop)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleSummaryKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "b":
		m.controller.Dispatch(domain.EventBreak)
	case "enter", "f":
		m.controller.Dispatch(domain.EventFinish)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleBreakKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "s":
		m.controller.Dispatch(domain.EventSkipBreak)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleBreakEndKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "c", "enter":
		m.controller.Dispatch(domain.EventContinue)
	case "n":
		m.controller.Dispatch(domain.EventNewSession)
	case "q":
		return m.quit()
	}
	return m, nil
}

// quit cancels any active clock before leaving so no tick fires after
// teardown.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.controller.Teardown()
	m.quitting = true
	return m, tea.Quit
}
