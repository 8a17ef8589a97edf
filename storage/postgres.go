package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"printdesk/server/internal/db"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
)

// PostgresStore implements Store on PostgreSQL for deployments where
// several servers share one database.
type PostgresStore struct {
	BaseStore
}

// NewPostgresStore connects to the configured PostgreSQL database and
// initializes the schema.
func NewPostgresStore(cfg *db.Config) (*PostgresStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config required")
	}

	dsn := cfg.BuildDSN()
	if dsn == "" {
		return nil, fmt.Errorf("invalid database configuration: could not build DSN")
	}

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeSecs > 0 {
		conn.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeSecs) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	store := &PostgresStore{
		BaseStore: BaseStore{
			db:      conn,
			dialect: &PostgresDialect{},
			path:    cfg.Host + "/" + cfg.Name,
		},
	}
	if err := store.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize postgres schema: %w", err)
	}

	logInfo("Opened PostgreSQL database", "host", cfg.Host, "database", cfg.Name)
	return store, nil
}

// NewPostgresStoreDSN connects with an explicit DSN; used by the
// container-backed integration tests.
func NewPostgresStoreDSN(dsn string) (*PostgresStore, error) {
	return NewPostgresStore(&db.Config{Driver: "postgres", DSN: dsn})
}

var _ Store = (*PostgresStore)(nil)
