// Package ports defines the interfaces (driven and driving ports)
// for the Prisma application following hexagonal architecture
// principles. These interfaces define the contracts between the
// session controller and external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/veldrin/prisma-cli/internal/domain"
)

// HistoryRepository defines the interface for focus history
// persistence. This is a driven port (implemented by adapters).
// Only finished sessions are stored; the live Session record and the
// cycle counter are process-lifetime only and never round-trip
// through here.
type HistoryRepository interface {
	// Save persists a finished session record.
	Save(ctx context.Context, record *domain.Record) error

	// FindRecent retrieves records ended since the given time, newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.Record, error)

	// GetDailyStats returns aggregated statistics for a specific date.
	GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// History provides access to focus history operations.
	History() HistoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
