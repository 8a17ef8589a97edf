package storage

import (
	"context"
	"testing"
	"time"

	"printdesk/server/printer"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(name string) *PrinterRecord {
	return &PrinterRecord{
		Name:       name,
		DriverName: "office-generic",
		Identity: printer.Identity{
			DNSSDName: name,
			Location:  "Main Office",
			Contact:   printer.Contact{Name: "Admin", Email: "admin@example.com"},
		},
		Driver: printer.DriverOptions{
			ColorSupported: printer.ColorModes(printer.ColorModeAuto, printer.ColorModeMonochrome),
			ColorDefault:   printer.ColorModeAuto,
			Sources:        []string{"tray-1", "manual"},
			MediaSupported: []string{"na_letter_8.5x11in"},
			TypeSupported:  []string{"stationery"},
			MediaReady: []printer.MediaCol{
				{SizeName: "na_letter_8.5x11in", Width: 21590, Length: 27940, Source: "tray-1", Type: "stationery"},
				{},
			},
		},
	}
}

func TestUpsertPrinterRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("test-printer")
	id, err := store.UpsertPrinter(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero row id")
	}

	got, err := store.GetPrinter(ctx, "test-printer")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got == nil {
		t.Fatal("GetPrinter returned nil for existing printer")
	}
	if got.ID != id {
		t.Errorf("id = %d, want %d", got.ID, id)
	}
	if got.Identity.Location != "Main Office" {
		t.Errorf("location = %q", got.Identity.Location)
	}
	if got.Identity.Contact.Email != "admin@example.com" {
		t.Errorf("contact email = %q", got.Identity.Contact.Email)
	}
	if len(got.Driver.Sources) != 2 || got.Driver.Sources[0] != "tray-1" {
		t.Errorf("sources = %v", got.Driver.Sources)
	}
	if got.Driver.MediaReady[0].Width != 21590 {
		t.Errorf("ready width = %d", got.Driver.MediaReady[0].Width)
	}
}

func TestUpsertPrinterUpdatesInPlace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("test-printer")
	first, err := store.UpsertPrinter(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}

	rec.Identity.Location = "Annex"
	second, err := store.UpsertPrinter(ctx, rec)
	if err != nil {
		t.Fatalf("UpsertPrinter update: %v", err)
	}
	if first != second {
		t.Errorf("upsert created a new row: %d != %d", first, second)
	}

	got, err := store.GetPrinter(ctx, "test-printer")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got.Identity.Location != "Annex" {
		t.Errorf("location = %q, want Annex", got.Identity.Location)
	}

	all, err := store.ListPrinters(ctx)
	if err != nil {
		t.Fatalf("ListPrinters: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListPrinters returned %d rows, want 1", len(all))
	}
}

func TestGetPrinterUnknown(t *testing.T) {
	store := newTestStore(t)
	got, err := store.GetPrinter(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}

func TestJobRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pid, err := store.UpsertPrinter(ctx, testRecord("test-printer"))
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}

	created := time.Now().UTC().Truncate(time.Second)
	job := &JobRecord{
		PrinterID: pid, JobID: 1,
		Name: "report.pdf", Username: "alice",
		State: int(printer.JobPending), CreatedAt: created,
	}
	if err := store.UpsertJob(ctx, job); err != nil {
		t.Fatalf("UpsertJob: %v", err)
	}

	// State transition updates the same row.
	job.State = int(printer.JobProcessing)
	job.ProcessingAt = created.Add(2 * time.Second)
	job.ImpressionsCompleted = 3
	if err := store.UpsertJob(ctx, job); err != nil {
		t.Fatalf("UpsertJob update: %v", err)
	}

	jobs, err := store.ListJobs(ctx, pid)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("ListJobs returned %d rows, want 1", len(jobs))
	}
	sum := jobs[0].Summary()
	if sum.State != printer.JobProcessing {
		t.Errorf("state = %v", sum.State)
	}
	if sum.ImpressionsCompleted != 3 {
		t.Errorf("impressions = %d", sum.ImpressionsCompleted)
	}
	if sum.Name != "report.pdf" || sum.Username != "alice" {
		t.Errorf("identity fields lost: %+v", sum)
	}
}

func TestPruneJobsKeepsActiveAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pid, err := store.UpsertPrinter(ctx, testRecord("test-printer"))
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}

	for i := 1; i <= 5; i++ {
		state := printer.JobCompleted
		if i == 5 {
			state = printer.JobPending
		}
		err := store.UpsertJob(ctx, &JobRecord{
			PrinterID: pid, JobID: i, Name: "j", Username: "u",
			State: int(state), CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("UpsertJob %d: %v", i, err)
		}
	}

	if err := store.PruneJobs(ctx, pid, 2); err != nil {
		t.Fatalf("PruneJobs: %v", err)
	}

	jobs, err := store.ListJobs(ctx, pid)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	ids := make([]int, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.JobID)
	}
	// Keep the two newest completed jobs (3, 4) plus the active job (5).
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 4 || ids[2] != 5 {
		t.Errorf("remaining jobs = %v, want [3 4 5]", ids)
	}
}

func TestDeletePrinterRemovesJobs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pid, err := store.UpsertPrinter(ctx, testRecord("test-printer"))
	if err != nil {
		t.Fatalf("UpsertPrinter: %v", err)
	}
	err = store.UpsertJob(ctx, &JobRecord{
		PrinterID: pid, JobID: 1, Name: "j", Username: "u",
		State: int(printer.JobPending), CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpsertJob: %v", err)
	}

	if err := store.DeletePrinter(ctx, "test-printer"); err != nil {
		t.Fatalf("DeletePrinter: %v", err)
	}
	got, err := store.GetPrinter(ctx, "test-printer")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got != nil {
		t.Error("printer still present after delete")
	}
	jobs, err := store.ListJobs(ctx, pid)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("jobs remain after delete: %d", len(jobs))
	}

	// Deleting an unknown printer is a no-op.
	if err := store.DeletePrinter(ctx, "test-printer"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestWriteThroughPersistsOnCommit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sys := printer.NewSystem("PrintDesk Test")
	sys.SetPersister(NewWriteThrough(store))

	rec := testRecord("office")
	p := printer.NewPrinter("office", rec.DriverName, rec.Driver)
	if err := sys.AddPrinter(p); err != nil {
		t.Fatalf("AddPrinter: %v", err)
	}
	if p.ID() == 0 {
		t.Fatal("write-through did not assign a storage id")
	}

	p.UpdateIdentity(func(id *printer.Identity) {
		id.Location = "Floor 2"
	})
	got, err := store.GetPrinter(ctx, "office")
	if err != nil {
		t.Fatalf("GetPrinter: %v", err)
	}
	if got.Identity.Location != "Floor 2" {
		t.Errorf("persisted location = %q, want Floor 2", got.Identity.Location)
	}

	sum := p.Submit("memo.pdf", "bob")
	jobs, err := store.ListJobs(ctx, p.ID())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobID != sum.ID {
		t.Fatalf("job not persisted: %v", jobs)
	}
}

func TestLoadSystemRestoresPrintersAndJobs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sys := printer.NewSystem("PrintDesk Test")
	sys.SetPersister(NewWriteThrough(store))
	rec := testRecord("office")
	p := printer.NewPrinter("office", rec.DriverName, rec.Driver)
	if err := sys.AddPrinter(p); err != nil {
		t.Fatalf("AddPrinter: %v", err)
	}
	p.UpdateIdentity(func(id *printer.Identity) { id.Location = "Floor 2" })
	sum := p.Submit("memo.pdf", "bob")

	// Fresh system, as after a restart.
	restored := printer.NewSystem("PrintDesk Test")
	if err := LoadSystem(ctx, store, restored); err != nil {
		t.Fatalf("LoadSystem: %v", err)
	}
	rp, ok := restored.Printer("office")
	if !ok {
		t.Fatal("restored system is missing the printer")
	}
	if rp.ID() != p.ID() {
		t.Errorf("restored id = %d, want %d", rp.ID(), p.ID())
	}
	if rp.Identity().Location != "Floor 2" {
		t.Errorf("restored location = %q", rp.Identity().Location)
	}
	jobs := rp.Jobs()
	if len(jobs) != 1 || jobs[0].ID != sum.ID || jobs[0].Username != "bob" {
		t.Fatalf("restored jobs = %+v", jobs)
	}

	// The next submitted job must not collide with restored ids.
	next := rp.Submit("again.pdf", "bob")
	if next.ID <= sum.ID {
		t.Errorf("job id %d not advanced past restored %d", next.ID, sum.ID)
	}
}
