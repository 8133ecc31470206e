package services

import (
	"context"
	"fmt"
	"time"

	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// HistoryService logs finished focus sessions and serves the stats
// queries built on top of them.
type HistoryService struct {
	storage    ports.Storage
	git        ports.GitDetector
	workingDir string
}

// NewHistoryService creates a new history service.
func NewHistoryService(storage ports.Storage, git ports.GitDetector) *HistoryService {
	return &HistoryService{storage: storage, git: git}
}

// SetWorkingDir sets the directory used for git context detection.
func (s *HistoryService) SetWorkingDir(dir string) {
	s.workingDir = dir
}

// Record logs a finished session. Git context is attached when a
// repository encloses the working directory; its absence is not an
// error.
func (s *HistoryService) Record(ctx context.Context, final domain.Session, startedAt time.Time) error {
	record := domain.NewRecord(final, startedAt)

	if s.git != nil && s.git.IsAvailable() {
		if info, err := s.git.Detect(ctx, s.workingDir); err == nil && info != nil {
			record.SetGitContext(info.Branch, info.Commit)
		}
	}

	if err := s.storage.History().Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}
	return nil
}

// Today returns aggregated stats for the current day.
func (s *HistoryService) Today(ctx context.Context) (*domain.DailyStats, error) {
	stats, err := s.storage.History().GetDailyStats(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return stats, nil
}

// Recent returns records from the last given number of days, newest first.
func (s *HistoryService) Recent(ctx context.Context, days int) ([]*domain.Record, error) {
	if days < 1 {
		days = 1
	}
	since := time.Now().AddDate(0, 0, -days)
	records, err := s.storage.History().FindRecent(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}
