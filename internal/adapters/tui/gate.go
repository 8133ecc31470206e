package tui

import (
	"sync/atomic"

	"github.com/veldrin/prisma-cli/internal/ports"
)

// TickGate implements ports.TickDriver for the TUI. Bubbletea delivers
// a message every second regardless of phase; the gate decides whether
// that message becomes a tick event. Start and Stop are synchronous,
// so a transition out of a ticking phase closes the gate before the
// transition completes and no stale tick can slip through.
type TickGate struct {
	active atomic.Bool
}

// NewTickGate creates a closed gate.
func NewTickGate() *TickGate {
	return &TickGate{}
}

// Ensure TickGate implements ports.TickDriver.
var _ ports.TickDriver = (*TickGate)(nil)

// Start opens the gate.
func (g *TickGate) Start() {
	g.active.Store(true)
}

// Stop closes the gate. Closing an already closed gate is a no-op.
func (g *TickGate) Stop() {
	g.active.Store(false)
}

// Active reports whether ticks should be delivered.
func (g *TickGate) Active() bool {
	return g.active.Load()
}
