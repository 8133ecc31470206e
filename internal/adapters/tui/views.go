package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/veldrin/prisma-cli/internal/domain"
)

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	session := m.controller.Snapshot()

	var body string
	switch session.Phase {
	case domain.PhaseSetup:
		body = m.viewSetup(session)
	case domain.PhaseRunning:
		body = m.viewRunning(session)
	case domain.PhasePaused:
		body = m.viewPaused(session)
	case domain.PhaseFlow:
		body = m.viewFlow(session)
	case domain.PhaseSummary:
		body = m.viewSummary(session)
	case domain.PhaseBreak:
		body = m.viewBreak(session)
	case domain.PhaseBreakEnd:
		body = m.viewBreakEnd(session)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(session), body)
}

// viewHeader renders the title line with mode, cycle count and git context.
func (m Model) viewHeader(s domain.Session) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorTitle)).
		Bold(true).
		Padding(1, 2, 0, 2)

	title := fmt.Sprintf("◆ Prisma · %s", domain.GetModeLabel(s.Mode))
	if s.CycleCount > 0 {
		title += fmt.Sprintf(" · cycle %d", s.CycleCount)
	}
	if m.gitBranch != "" {
		title += fmt.Sprintf("  [%s %s]", m.gitBranch, m.gitCommit)
	}
	return titleStyle.Render(title)
}

func (m Model) viewSetup(s domain.Session) string {
	focusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorFocus)).
		Bold(true)

	minutes := s.TargetSeconds / 60
	lines := []string{
		"",
		focusStyle.Render(fmt.Sprintf("   %d minutes", minutes)),
		"",
		fmt.Sprintf("   Mode: %s", domain.GetModeLabel(s.Mode)),
		"",
	}

	if len(m.presets) > 0 {
		var parts []string
		for i, p := range m.presets {
			parts = append(parts, fmt.Sprintf("[%d] %s %dm", i+1, p.Name, p.Minutes))
		}
		lines = append(lines, "   "+strings.Join(parts, "  "), "")
	}

	lines = append(lines, m.helpLine("↑/↓ ±1m · ←/→ ±5m · m mode · enter start · q quit"))
	return strings.Join(lines, "\n")
}

func (m Model) viewRunning(s domain.Session) string {
	timerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorFocus)).
		Bold(true).
		Padding(1, 4)

	return strings.Join([]string{
		timerStyle.Render(formatSeconds(s.RemainingSeconds)),
		"   " + m.progress.ViewAs(s.Progress()),
		"",
		m.helpLine("p pause · s stop · q quit"),
	}, "\n")
}

func (m Model) viewPaused(s domain.Session) string {
	pausedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorPaused)).
		Bold(true).
		Padding(1, 4)

	return strings.Join([]string{
		pausedStyle.Render("⏸ " + formatSeconds(s.RemainingSeconds)),
		"   " + m.progress.ViewAs(s.Progress()),
		"",
		m.helpLine("p resume · s stop · q quit"),
	}, "\n")
}

func (m Model) viewFlow(s domain.Session) string {
	flowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorFlow)).
		Bold(true).
		Padding(1, 4)

	return strings.Join([]string{
		flowStyle.Render("flow +" + formatSeconds(s.OvertimeSeconds)),
		"   target reached, overtime is yours",
		"",
		m.helpLine("s stop · q quit"),
	}, "\n")
}

func (m Model) viewSummary(s domain.Session) string {
	focusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorFocus)).
		Bold(true).
		Padding(1, 4)

	total := time.Duration(s.TotalFocusSeconds) * time.Second
	lines := []string{
		focusStyle.Render(fmt.Sprintf("Focused for %s", formatClock(total))),
		fmt.Sprintf("   Cycles this run: %d", s.CycleCount),
	}

	breakMin := domain.BreakSeconds(s.CycleCount, s.TargetSeconds) / 60
	if s.CycleCount >= domain.LongBreakCycles {
		lines = append(lines, fmt.Sprintf("   Long break earned: %d minutes", breakMin))
	} else {
		lines = append(lines, fmt.Sprintf("   Break available: %d minutes", breakMin))
	}

	lines = append(lines, "", m.helpLine("b break · enter finish · q quit"))
	return strings.Join(lines, "\n")
}

func (m Model) viewBreak(s domain.Session) string {
	breakStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorBreak)).
		Bold(true).
		Padding(1, 4)

	return strings.Join([]string{
		breakStyle.Render("☕ " + formatSeconds(s.BreakRemainingSeconds)),
		"   " + m.progress.ViewAs(s.BreakProgress()),
		"",
		m.helpLine("s skip · q quit"),
	}, "\n")
}

func (m Model) viewBreakEnd(s domain.Session) string {
	breakStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorBreak)).
		Bold(true).
		Padding(1, 4)

	next := formatSeconds(s.SavedTargetSeconds)
	return strings.Join([]string{
		breakStyle.Render("Break over"),
		fmt.Sprintf("   Continue with another %s session?", next),
		"",
		m.helpLine("c continue · n new session · q quit"),
	}, "\n")
}

// helpLine renders a dimmed help string.
func (m Model) helpLine(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ColorHelp)).
		Padding(0, 4, 1, 4).
		Render(text)
}

// formatSeconds renders a second count as mm:ss.
func formatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatClock renders a duration as mm:ss.
func formatClock(d time.Duration) string {
	return formatSeconds(int(d.Seconds()))
}
