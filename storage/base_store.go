package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"printdesk/server/printer"
)

// BaseStore carries the database handle and the shared SQL used by
// both backends. Queries are written with ?-placeholders and rebound
// through the dialect.
type BaseStore struct {
	db      *sql.DB
	dialect Dialect
	path    string
}

// DB exposes the raw handle for integration tests.
func (s *BaseStore) DB() *sql.DB { return s.db }

// Path describes the backing database for logs.
func (s *BaseStore) Path() string { return s.path }

// Close releases the underlying database.
func (s *BaseStore) Close() error { return s.db.Close() }

// initSchema creates the tables when they do not exist yet.
func (s *BaseStore) initSchema() error {
	d := s.dialect
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS printers (
		id %[1]s,
		name TEXT NOT NULL UNIQUE,
		driver_name TEXT NOT NULL,
		identity TEXT NOT NULL,
		driver TEXT NOT NULL,
		created_at %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS jobs (
		printer_id BIGINT NOT NULL,
		job_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		username TEXT NOT NULL,
		impressions_completed INTEGER NOT NULL DEFAULT 0,
		state INTEGER NOT NULL,
		canceled %[3]s NOT NULL,
		created_at %[2]s NOT NULL,
		processing_at %[2]s,
		completed_at %[2]s,
		PRIMARY KEY (printer_id, job_id)
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_printer ON jobs(printer_id);
	CREATE INDEX IF NOT EXISTS idx_jobs_state ON jobs(printer_id, state);
	`, d.AutoIncrement(), d.TimestampType(), d.BoolType())

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	_, err := s.db.Exec(s.dialect.Rebind(
		"INSERT INTO schema_version (version) VALUES (?) ON CONFLICT (version) DO NOTHING"), schemaVersion)
	if err != nil {
		return fmt.Errorf("schema version: %w", err)
	}
	return nil
}

// UpsertPrinter inserts or updates a printer row by queue name and
// returns its row id.
func (s *BaseStore) UpsertPrinter(ctx context.Context, rec *PrinterRecord) (int64, error) {
	if rec == nil || rec.Name == "" {
		return 0, errors.New("printer record requires a name")
	}
	identityJSON, err := json.Marshal(rec.Identity)
	if err != nil {
		return 0, fmt.Errorf("encode identity: %w", err)
	}
	driverJSON, err := json.Marshal(rec.Driver)
	if err != nil {
		return 0, fmt.Errorf("encode driver options: %w", err)
	}

	query := s.dialect.Rebind(fmt.Sprintf(`
		INSERT INTO printers (name, driver_name, identity, driver)
		VALUES (?, ?, ?, ?)
		%s driver_name = excluded.driver_name,
		   identity = excluded.identity,
		   driver = excluded.driver,
		   updated_at = CURRENT_TIMESTAMP
		RETURNING id`, s.dialect.UpsertConflict([]string{"name"})))

	var id int64
	if err := s.db.QueryRowContext(ctx, query,
		rec.Name, rec.DriverName, string(identityJSON), string(driverJSON)).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert printer %q: %w", rec.Name, err)
	}
	rec.ID = id
	return id, nil
}

// GetPrinter returns the record for one queue name, or nil when the
// printer is unknown.
func (s *BaseStore) GetPrinter(ctx context.Context, name string) (*PrinterRecord, error) {
	query := s.dialect.Rebind(`
		SELECT id, name, driver_name, identity, driver, created_at, updated_at
		FROM printers WHERE name = ?`)
	rec, err := scanPrinter(s.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

// ListPrinters returns every persisted printer in creation order.
func (s *BaseStore) ListPrinters(ctx context.Context) ([]*PrinterRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, driver_name, identity, driver, created_at, updated_at
		FROM printers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer rows.Close()

	var out []*PrinterRecord
	for rows.Next() {
		rec, err := scanPrinter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeletePrinter removes a printer and its job rows.
func (s *BaseStore) DeletePrinter(ctx context.Context, name string) error {
	rec, err := s.GetPrinter(ctx, name)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if _, err := s.db.ExecContext(ctx,
		s.dialect.Rebind("DELETE FROM jobs WHERE printer_id = ?"), rec.ID); err != nil {
		return fmt.Errorf("delete jobs for %q: %w", name, err)
	}
	if _, err := s.db.ExecContext(ctx,
		s.dialect.Rebind("DELETE FROM printers WHERE id = ?"), rec.ID); err != nil {
		return fmt.Errorf("delete printer %q: %w", name, err)
	}
	return nil
}

// UpsertJob inserts or updates one job row.
func (s *BaseStore) UpsertJob(ctx context.Context, rec *JobRecord) error {
	if rec == nil || rec.PrinterID == 0 {
		return errors.New("job record requires a printer id")
	}
	query := s.dialect.Rebind(fmt.Sprintf(`
		INSERT INTO jobs (printer_id, job_id, name, username, impressions_completed,
			state, canceled, created_at, processing_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		%s name = excluded.name,
		   username = excluded.username,
		   impressions_completed = excluded.impressions_completed,
		   state = excluded.state,
		   canceled = excluded.canceled,
		   processing_at = excluded.processing_at,
		   completed_at = excluded.completed_at`,
		s.dialect.UpsertConflict([]string{"printer_id", "job_id"})))

	_, err := s.db.ExecContext(ctx, query,
		rec.PrinterID, rec.JobID, rec.Name, rec.Username, rec.ImpressionsCompleted,
		rec.State, rec.Canceled, rec.CreatedAt, rec.ProcessingAt, rec.CompletedAt)
	if err != nil {
		return fmt.Errorf("upsert job %d: %w", rec.JobID, err)
	}
	return nil
}

// ListJobs returns a printer's job rows in job-id order.
func (s *BaseStore) ListJobs(ctx context.Context, printerID int64) ([]*JobRecord, error) {
	query := s.dialect.Rebind(`
		SELECT printer_id, job_id, name, username, impressions_completed,
			state, canceled, created_at, processing_at, completed_at
		FROM jobs WHERE printer_id = ? ORDER BY job_id`)
	rows, err := s.db.QueryContext(ctx, query, printerID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []*JobRecord
	for rows.Next() {
		rec := &JobRecord{}
		if err := rows.Scan(&rec.PrinterID, &rec.JobID, &rec.Name, &rec.Username,
			&rec.ImpressionsCompleted, &rec.State, &rec.Canceled,
			&rec.CreatedAt, &rec.ProcessingAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PruneJobs deletes terminated job rows beyond keep, oldest first.
// Active jobs are never pruned.
func (s *BaseStore) PruneJobs(ctx context.Context, printerID int64, keep int) error {
	if keep < 0 {
		keep = 0
	}
	query := s.dialect.Rebind(fmt.Sprintf(`
		DELETE FROM jobs WHERE printer_id = ? AND state >= %d AND job_id NOT IN (
			SELECT job_id FROM jobs WHERE printer_id = ? AND state >= %d
			ORDER BY job_id DESC LIMIT ?
		)`, int(printer.JobCanceled), int(printer.JobCanceled)))
	if _, err := s.db.ExecContext(ctx, query, printerID, printerID, keep); err != nil {
		return fmt.Errorf("prune jobs: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrinter(row rowScanner) (*PrinterRecord, error) {
	rec := &PrinterRecord{}
	var identityJSON, driverJSON string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.DriverName,
		&identityJSON, &driverJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan printer: %w", err)
	}
	if err := json.Unmarshal([]byte(identityJSON), &rec.Identity); err != nil {
		return nil, fmt.Errorf("decode identity for %q: %w", rec.Name, err)
	}
	if err := json.Unmarshal([]byte(driverJSON), &rec.Driver); err != nil {
		return nil, fmt.Errorf("decode driver options for %q: %w", rec.Name, err)
	}
	return rec, nil
}
