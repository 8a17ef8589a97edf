package storage

import "testing"

func TestPostgresRebind(t *testing.T) {
	d := &PostgresDialect{}
	got := d.Rebind("INSERT INTO t (a, b, c) VALUES (?, ?, ?)")
	want := "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)"
	if got != want {
		t.Errorf("Rebind = %q, want %q", got, want)
	}
}

func TestSQLiteRebindIsIdentity(t *testing.T) {
	d := &SQLiteDialect{}
	q := "SELECT * FROM t WHERE a = ? AND b = ?"
	if got := d.Rebind(q); got != q {
		t.Errorf("Rebind changed query: %q", got)
	}
}

func TestUpsertConflict(t *testing.T) {
	sq := (&SQLiteDialect{}).UpsertConflict([]string{"name"})
	if sq != "ON CONFLICT(name) DO UPDATE SET" {
		t.Errorf("sqlite upsert = %q", sq)
	}
	pg := (&PostgresDialect{}).UpsertConflict([]string{"printer_id", "job_id"})
	if pg != "ON CONFLICT (printer_id, job_id) DO UPDATE SET" {
		t.Errorf("postgres upsert = %q", pg)
	}
}
