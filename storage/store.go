// Package storage persists printer configuration and job history.
// It ships a SQLite backend for single-node installs and a PostgreSQL
// backend for shared deployments; both run the same SQL through a
// small dialect layer.
package storage

import (
	"context"
	"fmt"

	"printdesk/server/internal/db"
)

// Store is the persistence surface the server wires into the printer
// system's write-through hooks.
type Store interface {
	// UpsertPrinter inserts or updates a printer row by queue name and
	// returns its row id.
	UpsertPrinter(ctx context.Context, rec *PrinterRecord) (int64, error)

	// GetPrinter returns the record for one queue name, or nil when
	// the printer is unknown.
	GetPrinter(ctx context.Context, name string) (*PrinterRecord, error)

	// ListPrinters returns every persisted printer in creation order.
	ListPrinters(ctx context.Context) ([]*PrinterRecord, error)

	// DeletePrinter removes a printer and its job rows.
	DeletePrinter(ctx context.Context, name string) error

	// UpsertJob inserts or updates one job row.
	UpsertJob(ctx context.Context, rec *JobRecord) error

	// ListJobs returns a printer's job rows in job-id order.
	ListJobs(ctx context.Context, printerID int64) ([]*JobRecord, error)

	// PruneJobs deletes terminated job rows beyond keep, oldest first.
	PruneJobs(ctx context.Context, printerID int64, keep int) error

	// Close releases the underlying database.
	Close() error

	// Path describes the backing database for logs.
	Path() string
}

// NewStore creates the Store implementation selected by the database
// configuration: SQLite (default) or PostgreSQL.
func NewStore(cfg *db.Config) (Store, error) {
	if cfg == nil {
		cfg = &db.Config{}
	}

	switch driver := cfg.EffectiveDriver(); driver {
	case "sqlite":
		path := cfg.BuildDSN()
		if path == "" {
			path = DefaultDBPath()
		}
		return NewSQLiteStore(path)
	case "postgres":
		return NewPostgresStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q (supported: sqlite, postgres)", driver)
	}
}
