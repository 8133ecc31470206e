package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is a finished focus session as logged by the host
// application. The live Session is never reconstructed from records;
// they exist only for the stats listing.
type Record struct {
	ID              string
	Mode            Mode
	TargetSeconds   int
	FocusSeconds    int
	OvertimeSeconds int
	Cycles          int
	GitBranch       string
	GitCommit       string
	StartedAt       time.Time
	EndedAt         time.Time
}

// NewRecord captures a finished session into a history record.
func NewRecord(s Session, startedAt time.Time) *Record {
	return &Record{
		ID:              uuid.New().String(),
		Mode:            s.Mode,
		TargetSeconds:   s.TargetSeconds,
		FocusSeconds:    s.TotalFocusSeconds,
		OvertimeSeconds: s.OvertimeSeconds,
		Cycles:          s.CycleCount,
		StartedAt:       startedAt,
		EndedAt:         time.Now(),
	}
}

// SetGitContext stores git information on the record.
func (r *Record) SetGitContext(branch, commit string) {
	r.GitBranch = branch
	r.GitCommit = commit
}

// FocusDuration returns the logged focus time as a time.Duration.
func (r *Record) FocusDuration() time.Duration {
	return time.Duration(r.FocusSeconds) * time.Second
}

// DailyStats aggregates focus history for a day.
type DailyStats struct {
	Date           time.Time
	Sessions       int
	TotalFocusTime time.Duration
}

// Status is a point-in-time snapshot of the in-process session plus
// the day's history, as exposed to status consumers (CLI, MCP).
type Status struct {
	Session Session
	Today   DailyStats
}
