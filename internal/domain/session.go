package domain

import (
	"errors"
	"time"
)

// Phase represents the current phase of the focus session.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseRunning  Phase = "running"
	PhasePaused   Phase = "paused"
	PhaseFlow     Phase = "flow"
	PhaseSummary  Phase = "summary"
	PhaseBreak    Phase = "break"
	PhaseBreakEnd Phase = "break_end"
)

// Mode determines what happens when the countdown reaches zero.
type Mode string

const (
	// ModeClassic ends the session immediately at zero.
	ModeClassic Mode = "classic"
	// ModePrisma rolls into untracked flow overtime at zero.
	ModePrisma Mode = "prisma"
)

const (
	// MinTargetSeconds and MaxTargetSeconds bound the focus duration (1-120 minutes).
	MinTargetSeconds = 60
	MaxTargetSeconds = 7200

	// DefaultTargetMinutes is the initial target before any customization.
	DefaultTargetMinutes = 25

	// LongBreakCycles is the cycle count at which a break becomes a long break.
	LongBreakCycles = 4
)

var (
	ErrInvalidTarget = errors.New("target duration out of range")
	ErrInvalidMode   = errors.New("invalid mode")
	ErrNotInPhase    = errors.New("action not valid in current phase")
)

// Session is the single mutable record owned by the session controller.
// It lives for the process lifetime only and is never persisted.
type Session struct {
	Phase Phase
	Mode  Mode

	// TargetSeconds is frozen once the session starts.
	TargetSeconds    int
	RemainingSeconds int
	OvertimeSeconds  int

	// TotalFocusSeconds is computed when the session ends: elapsed
	// countdown time plus any overtime.
	TotalFocusSeconds int

	// CycleCount tracks qualifying completions within this process.
	// It resets only on process start and after a long break is consumed.
	CycleCount int

	BreakDurationSeconds  int
	BreakRemainingSeconds int

	// SavedTargetSeconds and SavedMode are snapshotted at break entry
	// and restored when the user continues after the break.
	SavedTargetSeconds int
	SavedMode          Mode
}

// NewSession creates a fresh session in the Setup phase.
func NewSession(defaultMinutes int, mode Mode) Session {
	if mode != ModeClassic && mode != ModePrisma {
		mode = ModePrisma
	}
	return Session{
		Phase:         PhaseSetup,
		Mode:          mode,
		TargetSeconds: ClampTarget(defaultMinutes * 60),
	}
}

// ClampTarget forces a target duration into the valid [60, 7200] range.
func ClampTarget(seconds int) int {
	if seconds < MinTargetSeconds {
		return MinTargetSeconds
	}
	if seconds > MaxTargetSeconds {
		return MaxTargetSeconds
	}
	return seconds
}

// ValidateMode checks if a string is a valid session mode.
func ValidateMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClassic, ModePrisma:
		return Mode(s), nil
	}
	return "", ErrInvalidMode
}

// ElapsedSeconds returns the countdown time spent so far.
func (s Session) ElapsedSeconds() int {
	return s.TargetSeconds - s.RemainingSeconds
}

// Progress returns the countdown completion percentage (0.0 to 1.0).
func (s Session) Progress() float64 {
	if s.TargetSeconds == 0 {
		return 0
	}
	p := float64(s.ElapsedSeconds()) / float64(s.TargetSeconds)
	if p > 1 {
		return 1
	}
	return p
}

// BreakProgress returns the break completion percentage (0.0 to 1.0).
func (s Session) BreakProgress() float64 {
	if s.BreakDurationSeconds == 0 {
		return 0
	}
	elapsed := s.BreakDurationSeconds - s.BreakRemainingSeconds
	p := float64(elapsed) / float64(s.BreakDurationSeconds)
	if p > 1 {
		return 1
	}
	return p
}

// Ticking reports whether this phase drives a one-second clock.
// At most one clock is ever active: Running counts down, Flow counts
// up, Break counts its own remainder down.
func (s Session) Ticking() bool {
	switch s.Phase {
	case PhaseRunning, PhaseFlow, PhaseBreak:
		return true
	}
	return false
}

// Qualifies reports whether the given focus total counts as a cycle
// (at least 80% of the target elapsed).
func Qualifies(totalFocusSeconds, targetSeconds int) bool {
	return totalFocusSeconds*5 >= targetSeconds*4
}

// TotalFocusMinutes returns the completed focus time rounded up to
// whole minutes, as reported to the host completion callback.
func (s Session) TotalFocusMinutes() int {
	return (s.TotalFocusSeconds + 59) / 60
}

// TargetDuration returns the target as a time.Duration.
func (s Session) TargetDuration() time.Duration {
	return time.Duration(s.TargetSeconds) * time.Second
}

// GetPhaseLabel returns a human-readable label for the phase.
func GetPhaseLabel(p Phase) string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseFlow:
		return "Flow"
	case PhaseSummary:
		return "Summary"
	case PhaseBreak:
		return "Break"
	case PhaseBreakEnd:
		return "Break Over"
	default:
		return "Unknown"
	}
}

// GetModeLabel returns a human-readable label for the mode.
func GetModeLabel(m Mode) string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModePrisma:
		return "Prisma"
	default:
		return "Unknown"
	}
}
