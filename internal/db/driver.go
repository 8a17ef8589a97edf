// Package db normalizes database configuration into a concrete
// driver name and DSN, keeping the TOML surface and the storage
// backends decoupled.
package db

import "fmt"

// Config holds the [database] section of the server configuration.
type Config struct {
	Driver string `toml:"driver"` // "sqlite" (default) or "postgres"
	Path   string `toml:"path"`   // SQLite file path; empty = platform default
	DSN    string `toml:"dsn"`    // full connection string; overrides Host/Port/...

	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`

	MaxOpenConns        int `toml:"max_open_conns"`
	MaxIdleConns        int `toml:"max_idle_conns"`
	ConnMaxLifetimeSecs int `toml:"conn_max_lifetime_secs"`
}

// EffectiveDriver returns the normalized driver name, defaulting to
// sqlite for single-node installs.
func (c *Config) EffectiveDriver() string {
	switch c.Driver {
	case "", "sqlite", "sqlite3", "modernc", "modernc-sqlite":
		return "sqlite"
	case "postgres", "postgresql", "pgx":
		return "postgres"
	}
	return c.Driver
}

// BuildDSN returns the connection string for the configured backend.
// For SQLite this is the file path; for Postgres an explicit DSN wins
// over the Host/Port/User/Password/Name fields.
func (c *Config) BuildDSN() string {
	switch c.EffectiveDriver() {
	case "sqlite":
		if c.DSN != "" {
			return c.DSN
		}
		return c.Path
	case "postgres":
		if c.DSN != "" {
			return c.DSN
		}
		host := c.Host
		if host == "" {
			host = "localhost"
		}
		port := c.Port
		if port == 0 {
			port = 5432
		}
		name := c.Name
		if name == "" {
			name = "printdesk"
		}
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s", host, port, name)
		if c.User != "" {
			dsn += " user=" + c.User
		}
		if c.Password != "" {
			dsn += " password=" + c.Password
		}
		return dsn
	}
	return c.DSN
}
