// Package services contains the application use cases wired between
// the domain core and the adapter layer.
package services

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// Controller owns the single mutable session record. Every mutation
// goes through Dispatch: the pure domain transition produces the next
// state plus an effect list, and the controller executes the effects
// in order. This keeps the machine testable without a terminal, and
// makes the one-active-clock rule an explicit output of the
// transitions rather than something inferred from state diffing.
type Controller struct {
	mu        sync.Mutex
	session   domain.Session
	startedAt time.Time

	driver   ports.TickDriver
	signaler ports.CompletionSignaler

	// onFinished is the host completion callback, invoked once per
	// finished session with the total focus minutes.
	onFinished func(totalMinutes int)

	// onSummary is invoked whenever a focus session ends (entry into
	// the Summary phase), with the final session state and its start
	// time. The host uses it to log focus history.
	onSummary func(final domain.Session, startedAt time.Time)
}

// ControllerConfig holds the collaborators and initial settings for a
// controller.
type ControllerConfig struct {
	DefaultMinutes int
	Mode           domain.Mode
	Driver         ports.TickDriver
	Signaler       ports.CompletionSignaler
	OnFinished     func(totalMinutes int)
	OnSummary      func(final domain.Session, startedAt time.Time)
}

// NewController creates a controller with a fresh session in Setup.
// The cycle count starts at zero on every process start.
func NewController(cfg ControllerConfig) *Controller {
	minutes := cfg.DefaultMinutes
	if minutes == 0 {
		minutes = domain.DefaultTargetMinutes
	}
	return &Controller{
		session:    domain.NewSession(minutes, cfg.Mode),
		driver:     cfg.Driver,
		signaler:   cfg.Signaler,
		onFinished: cfg.OnFinished,
		onSummary:  cfg.OnSummary,
	}
}

// Dispatch feeds an event to the state machine and executes the
// resulting effects. It returns the session state after the
// transition. Events that do not apply to the current phase are
// no-ops, so a stale tick arriving after a phase change is harmless.
func (c *Controller) Dispatch(ev domain.Event) domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.session
	next, effects := domain.Apply(c.session, ev)
	c.session = next

	if prev.Phase != domain.PhaseRunning && next.Phase == domain.PhaseRunning && prev.Phase != domain.PhasePaused {
		c.startedAt = time.Now()
	}
	if prev.Phase != domain.PhaseSummary && next.Phase == domain.PhaseSummary && c.onSummary != nil {
		c.onSummary(next, c.startedAt)
	}

	for _, e := range effects {
		c.execute(e, next)
	}
	return next
}

// Tick advances whichever clock is active by one second.
func (c *Controller) Tick() domain.Session {
	return c.Dispatch(domain.EventTick)
}

// execute performs a single effect. Called with the mutex held; the
// stop-tick effect always comes first in a transition's effect list,
// so the clock is dead before any signal or callback fires.
func (c *Controller) execute(e domain.Effect, s domain.Session) {
	switch e.Kind {
	case domain.EffectStartTick:
		if c.driver != nil {
			c.driver.Start()
		}
	case domain.EffectStopTick:
		if c.driver != nil {
			c.driver.Stop()
		}
	case domain.EffectSignalCompletion:
		if c.signaler != nil {
			if err := c.signaler.SessionComplete(s); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: completion signal failed: %v\n", err)
			}
		}
	case domain.EffectSignalBreakOver:
		if c.signaler != nil {
			if err := c.signaler.BreakOver(s); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: break signal failed: %v\n", err)
			}
		}
	case domain.EffectReportFinished:
		if c.onFinished != nil {
			c.onFinished(e.Minutes)
		}
	}
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// AdjustTarget shifts the setup target by the given number of
// minutes, clamped to the valid range. Outside Setup it is rejected:
// the target is frozen once the session starts.
func (c *Controller) AdjustTarget(deltaMinutes int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Phase != domain.PhaseSetup {
		return domain.ErrNotInPhase
	}
	c.session.TargetSeconds = domain.ClampTarget(c.session.TargetSeconds + deltaMinutes*60)
	return nil
}

// SetTarget sets the setup target to an exact number of minutes.
func (c *Controller) SetTarget(minutes int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Phase != domain.PhaseSetup {
		return domain.ErrNotInPhase
	}
	c.session.TargetSeconds = domain.ClampTarget(minutes * 60)
	return nil
}

// SetMode switches between Classic and Prisma during Setup.
func (c *Controller) SetMode(m domain.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Phase != domain.PhaseSetup {
		return domain.ErrNotInPhase
	}
	if m != domain.ModeClassic && m != domain.ModePrisma {
		return domain.ErrInvalidMode
	}
	c.session.Mode = m
	return nil
}

// ToggleMode flips the mode during Setup.
func (c *Controller) ToggleMode() error {
	c.mu.Lock()
	mode := c.session.Mode
	c.mu.Unlock()
	if mode == domain.ModeClassic {
		return c.SetMode(domain.ModePrisma)
	}
	return c.SetMode(domain.ModeClassic)
}

// StartedAt returns when the current focus countdown began.
func (c *Controller) StartedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startedAt
}

// Teardown cancels any active clock. Called on unmount so no tick
// fires after the host is gone.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.driver != nil {
		c.driver.Stop()
	}
}
