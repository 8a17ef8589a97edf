package storage

import (
	"fmt"
	"strings"
)

// Dialect abstracts the SQL syntax differences between SQLite and
// PostgreSQL so both backends share the BaseStore queries.
type Dialect interface {
	// Name returns the dialect name ("sqlite" or "postgres").
	Name() string

	// AutoIncrement returns the auto-incrementing primary key column type.
	AutoIncrement() string

	// TimestampType returns the timestamp column type.
	TimestampType() string

	// BoolType returns the boolean column type.
	BoolType() string

	// UpsertConflict returns the ON CONFLICT clause head for the given
	// key columns.
	UpsertConflict(conflictColumns []string) string

	// Rebind converts ?-style placeholders to the dialect's form.
	Rebind(query string) string
}

// SQLiteDialect implements Dialect for SQLite.
type SQLiteDialect struct{}

var _ Dialect = (*SQLiteDialect)(nil)

func (d *SQLiteDialect) Name() string          { return "sqlite" }
func (d *SQLiteDialect) AutoIncrement() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }
func (d *SQLiteDialect) TimestampType() string { return "DATETIME" }
func (d *SQLiteDialect) BoolType() string      { return "INTEGER" }

func (d *SQLiteDialect) UpsertConflict(conflictColumns []string) string {
	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET", strings.Join(conflictColumns, ", "))
}

func (d *SQLiteDialect) Rebind(query string) string { return query }

// PostgresDialect implements Dialect for PostgreSQL.
type PostgresDialect struct{}

var _ Dialect = (*PostgresDialect)(nil)

func (d *PostgresDialect) Name() string          { return "postgres" }
func (d *PostgresDialect) AutoIncrement() string { return "BIGSERIAL PRIMARY KEY" }
func (d *PostgresDialect) TimestampType() string { return "TIMESTAMPTZ" }
func (d *PostgresDialect) BoolType() string      { return "BOOLEAN" }

func (d *PostgresDialect) UpsertConflict(conflictColumns []string) string {
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET", strings.Join(conflictColumns, ", "))
}

// Rebind converts ?-style placeholders to $n placeholders.
func (d *PostgresDialect) Rebind(query string) string {
	var result strings.Builder
	result.Grow(len(query) + 10)
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(fmt.Sprintf("$%d", n))
			n++
		} else {
			result.WriteByte(query[i])
		}
	}
	return result.String()
}
