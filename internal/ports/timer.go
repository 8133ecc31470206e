package ports

import "github.com/veldrin/prisma-cli/internal/domain"

// TickDriver owns the one-second clock feeding the session controller.
// This is a driven port (implemented by adapters). The controller
// issues Stop before any transition out of a ticking phase completes,
// so implementations never deliver a tick for a dead phase after Stop
// returns.
type TickDriver interface {
	// Start begins delivering one tick per second.
	Start()

	// Stop cancels tick delivery synchronously. Stopping an already
	// stopped driver is a no-op.
	Stop()
}

// CompletionSignaler delivers the audio/visual completion signal.
// This is a driven port. The signal is best-effort: failures must
// never affect session state.
type CompletionSignaler interface {
	// SessionComplete signals a Classic-mode natural completion.
	SessionComplete(session domain.Session) error

	// BreakOver signals that the break countdown reached zero.
	BreakOver(session domain.Session) error
}
