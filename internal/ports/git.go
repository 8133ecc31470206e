package ports

import "context"

// GitInfo holds the git context detected at session start.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector detects the git context of a working directory.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// IsAvailable returns true if git detection can be attempted.
	IsAvailable() bool

	// Detect scans the working directory for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}
