package ports

import (
	"context"

	"github.com/veldrin/prisma-cli/internal/domain"
)

// StatusProvider exposes the current application status to read-only
// surfaces: the status command and the MCP server.
// This is a driving port (called by the adapter layer).
type StatusProvider interface {
	// Status returns a snapshot of the in-process session and today's stats.
	Status(ctx context.Context) (*domain.Status, error)

	// RecentRecords returns finished sessions from the last given number of days.
	RecentRecords(ctx context.Context, days int) ([]*domain.Record, error)
}
