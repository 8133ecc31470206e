package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// historyRepository implements ports.HistoryRepository using SQLite.
type historyRepository struct {
	db *sql.DB
}

// newHistoryRepository creates a new history repository.
func newHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

// Save persists a finished session record.
func (r *historyRepository) Save(ctx context.Context, record *domain.Record) error {
	query := `
	INSERT INTO history (id, mode, target_seconds, focus_seconds, overtime_seconds,
		cycles, git_branch, git_commit, started_at, ended_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Mode),
		record.TargetSeconds,
		record.FocusSeconds,
		record.OvertimeSeconds,
		record.Cycles,
		record.GitBranch,
		record.GitCommit,
		record.StartedAt,
		record.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

// FindRecent retrieves records ended since the given time, newest first.
func (r *historyRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.Record, error) {
	query := `
	SELECT id, mode, target_seconds, focus_seconds, overtime_seconds,
		cycles, git_branch, git_commit, started_at, ended_at
	FROM history
	WHERE ended_at >= ?
	ORDER BY ended_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetDailyStats returns aggregated statistics for a specific date.
func (r *historyRepository) GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
	SELECT COUNT(*), COALESCE(SUM(focus_seconds), 0)
	FROM history
	WHERE ended_at >= ? AND ended_at < ?
	`

	var sessions int
	var focusSeconds int64
	err := r.db.QueryRowContext(ctx, query, dayStart, dayEnd).Scan(&sessions, &focusSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}

	return &domain.DailyStats{
		Date:           dayStart,
		Sessions:       sessions,
		TotalFocusTime: time.Duration(focusSeconds) * time.Second,
	}, nil
}

// scanRecord reads a single history row.
func scanRecord(rows *sql.Rows) (*domain.Record, error) {
	var record domain.Record
	var mode string
	var branch, commit sql.NullString

	err := rows.Scan(
		&record.ID,
		&mode,
		&record.TargetSeconds,
		&record.FocusSeconds,
		&record.OvertimeSeconds,
		&record.Cycles,
		&branch,
		&commit,
		&record.StartedAt,
		&record.EndedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan history record: %w", err)
	}

	record.Mode = domain.Mode(mode)
	record.GitBranch = branch.String
	record.GitCommit = commit.String
	return &record, nil
}
