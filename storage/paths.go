package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the platform data directory for the server,
// creating it if needed. Falls back to the working directory when no
// platform directory can be resolved.
func DataDir() string {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		baseDir = os.Getenv("ProgramData")
		if baseDir == "" {
			baseDir = os.Getenv("LOCALAPPDATA")
		}
	case "darwin":
		baseDir = "/Library/Application Support"
	default:
		baseDir = "/var/lib"
	}

	dir := filepath.Join(baseDir, "printdesk", "server")
	if err := os.MkdirAll(dir, 0755); err != nil {
		// Unprivileged run; keep data next to the binary.
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, ".local", "share", "printdesk", "server")
			if err := os.MkdirAll(dir, 0755); err == nil {
				return dir
			}
		}
		return "."
	}
	return dir
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "printdesk.db")
}
