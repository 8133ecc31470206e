package services

import (
	"context"

	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// StatusService assembles read-only snapshots for the status command
// and the MCP server.
type StatusService struct {
	controller *Controller
	history    *HistoryService
}

// NewStatusService creates a new status service.
func NewStatusService(controller *Controller, history *HistoryService) *StatusService {
	return &StatusService{controller: controller, history: history}
}

// Ensure StatusService implements ports.StatusProvider.
var _ ports.StatusProvider = (*StatusService)(nil)

// Status returns the in-process session snapshot plus today's stats.
func (s *StatusService) Status(ctx context.Context) (*domain.Status, error) {
	today, err := s.history.Today(ctx)
	if err != nil {
		today = &domain.DailyStats{}
	}
	return &domain.Status{
		Session: s.controller.Snapshot(),
		Today:   *today,
	}, nil
}

// RecentRecords returns finished sessions from the last given number of days.
func (s *StatusService) RecentRecords(ctx context.Context, days int) ([]*domain.Record, error) {
	return s.history.Recent(ctx, days)
}
