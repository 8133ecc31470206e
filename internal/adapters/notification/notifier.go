// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/veldrin/prisma-cli/internal/config"
	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// Notifier delivers completion signals as desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Ensure Notifier implements ports.CompletionSignaler.
var _ ports.CompletionSignaler = (*Notifier)(nil)

// SessionComplete signals a Classic-mode natural completion.
func (n *Notifier) SessionComplete(session domain.Session) error {
	minutes := session.TotalFocusSeconds / 60
	title := "Focus Complete!"
	message := fmt.Sprintf("Great job! You completed a %d minute focus session.", minutes)
	if err := n.notify(title, message); err != nil {
		return err
	}
	return n.beep()
}

// BreakOver signals that the break countdown reached zero.
func (n *Notifier) BreakOver(session domain.Session) error {
	title := "Break Over!"
	message := "Your break is complete. Ready to focus?"
	return n.notify(title, message)
}

// notify displays a desktop notification if enabled.
func (n *Notifier) notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// beep plays the completion sound if enabled.
func (n *Notifier) beep() error {
	if n.cfg == nil || !n.cfg.Enabled || !n.cfg.Sound {
		return nil
	}
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
