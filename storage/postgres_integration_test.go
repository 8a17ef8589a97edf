//go:build integration

package storage

import (
	"context"
	"testing"
	"time"

	"printdesk/server/printer"
)

// Run with: go test -tags integration ./storage/...
func TestPostgresStoreRoundTrip(t *testing.T) {
	tc, cleanup := NewPostgresTestContainer(t)
	defer cleanup()

	store, err := NewPostgresStoreDSN(tc.DSN)
	if err != nil {
		t.Fatalf("NewPostgresStoreDSN: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rec := testRecord("pg-printer")
	id, err := store.UpsertPrinter(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}

	rec.Identity.Location = "Rack 7"
	second, err := store.UpsertPrinter(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertPrinter update: %v", err)
	}
	if id != second {
		t.Errorf("upsert created a second row: %d != %d", id, second)
	}

	got, err := store.GetPrinter(ctx, "pg-printer")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got == nil || got.Identity.Location != "Rack 7" {
		t.Fatalf("GetPrinter = %+v", got)
	}

	err = store.UpsertJob(ctx, &JobRecord{
		PrinterID: id, JobID: 1, Name: "j", Username: "u",
		State: int(printer.JobPending), CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpsertJob: %v", err)
	}
	jobs, err := store.ListJobs(ctx, id)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("ListJobs returned %d rows", len(jobs))
	}
}
