package storage

import (
	"time"

	"printdesk/server/printer"
)

// PrinterRecord is the persisted form of one printer: identity and
// driver options are stored as JSON documents, everything else as
// columns. The record id becomes the printer's storage id.
type PrinterRecord struct {
	ID         int64
	Name       string
	DriverName string
	Identity   printer.Identity
	Driver     printer.DriverOptions
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// JobRecord is one persisted job row, keyed by (printer_id, job_id).
// Rows are upserted on every job state transition so the queue
// survives a restart.
type JobRecord struct {
	PrinterID            int64
	JobID                int
	Name                 string
	Username             string
	ImpressionsCompleted int
	State                int
	Canceled             bool
	CreatedAt            time.Time
	ProcessingAt         time.Time
	CompletedAt          time.Time
}

// Summary converts a job row back into the printer package's
// read-only projection.
func (r *JobRecord) Summary() printer.JobSummary {
	return printer.JobSummary{
		ID:                   r.JobID,
		Name:                 r.Name,
		Username:             r.Username,
		ImpressionsCompleted: r.ImpressionsCompleted,
		State:                printer.JobState(r.State),
		Canceled:             r.Canceled,
		CreatedAt:            r.CreatedAt,
		ProcessingAt:         r.ProcessingAt,
		CompletedAt:          r.CompletedAt,
	}
}

// NewJobRecord builds a job row from a summary.
func NewJobRecord(printerID int64, sum printer.JobSummary) *JobRecord {
	return &JobRecord{
		PrinterID:            printerID,
		JobID:                sum.ID,
		Name:                 sum.Name,
		Username:             sum.Username,
		ImpressionsCompleted: sum.ImpressionsCompleted,
		State:                int(sum.State),
		Canceled:             sum.Canceled,
		CreatedAt:            sum.CreatedAt,
		ProcessingAt:         sum.ProcessingAt,
		CompletedAt:          sum.CompletedAt,
	}
}
