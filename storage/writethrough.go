package storage

import (
	"context"
	"time"

	"printdesk/server/printer"
)

// WriteThrough adapts a Store to the printer system's Persister hook:
// every committed configuration or job change lands in the database.
// Persistence failures are logged, never surfaced to the admin page
// that triggered the change.
type WriteThrough struct {
	store   Store
	timeout time.Duration
}

// NewWriteThrough wraps store for use with printer.System.SetPersister.
func NewWriteThrough(store Store) *WriteThrough {
	return &WriteThrough{store: store, timeout: 5 * time.Second}
}

var _ printer.Persister = (*WriteThrough)(nil)

// SavePrinter persists a printer's identity and driver options.
func (w *WriteThrough) SavePrinter(p *printer.Printer) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	rec := &PrinterRecord{
		ID:         p.ID(),
		Name:       p.Name(),
		DriverName: p.DriverName(),
		Identity:   p.Identity(),
		Driver:     p.Driver(),
	}
	id, err := w.store.UpsertPrinter(ctx, rec)
	if err != nil {
		logError("Failed to persist printer", "printer", p.Name(), "error", err)
		return
	}
	if p.ID() != id {
		p.SetID(id)
	}
}

// SaveJob persists one job state snapshot.
func (w *WriteThrough) SaveJob(p *printer.Printer, sum printer.JobSummary) {
	if p.ID() == 0 {
		w.SavePrinter(p)
	}
	if p.ID() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.store.UpsertJob(ctx, NewJobRecord(p.ID(), sum)); err != nil {
		logError("Failed to persist job", "printer", p.Name(), "job", sum.ID, "error", err)
	}
}

// LoadSystem restores every persisted printer with its job history
// into system. Called once at startup, before the persister is wired.
func LoadSystem(ctx context.Context, store Store, system *printer.System) error {
	records, err := store.ListPrinters(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		jobRecs, err := store.ListJobs(ctx, rec.ID)
		if err != nil {
			return err
		}
		jobs := make([]printer.JobSummary, 0, len(jobRecs))
		for _, jr := range jobRecs {
			jobs = append(jobs, jr.Summary())
		}
		if _, err := system.RestorePrinter(rec.Name, rec.DriverName, rec.ID,
			rec.Identity, rec.Driver, jobs); err != nil {
			return err
		}
	}
	return nil
}
