package domain

import "time"

// RunStatus is the lifecycle state of an extraction run.
type RunStatus string

const (
	// RunRunning indicates the batch is in progress.
	RunRunning RunStatus = "running"

	// RunCompleted indicates the output table was written.
	RunCompleted RunStatus = "completed"

	// RunFailed indicates the batch aborted before writing output.
	RunFailed RunStatus = "failed"
)

// Run is the history entry for one extraction batch.
type Run struct {
	ID         string
	Root       string
	Output     string
	Format     string
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt time.Time

	// DocumentsSeen counts every document the source yielded or failed to read.
	DocumentsSeen int

	// DocumentsExtracted counts documents that produced a row.
	DocumentsExtracted int

	// DocumentsSkipped counts unreadable documents.
	DocumentsSkipped int

	// FieldErrors counts rule groups omitted because a sub-transform failed.
	FieldErrors int

	Rows    int
	Columns int

	// Checksum is the hex SHA-256 of the written table.
	Checksum string

	// Error holds the failure message for failed runs.
	Error string
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// OutcomeStatus is the result of processing one document.
type OutcomeStatus string

const (
	// OutcomeExtracted indicates the document produced a row.
	OutcomeExtracted OutcomeStatus = "extracted"

	// OutcomeSkipped indicates the document could not be read.
	OutcomeSkipped OutcomeStatus = "skipped"
)

// DocumentOutcome records what happened to one document during a run.
type DocumentOutcome struct {
	RunID       string
	URI         string
	Name        string
	Status      OutcomeStatus
	Fields      int
	FieldErrors int
	Message     string
}
