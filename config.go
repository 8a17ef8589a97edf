package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"printdesk/server/internal/db"
)

// ConfigSourceTracker records which keys were set by environment
// variables, so managed settings never override an operator's env.
type ConfigSourceTracker struct {
	EnvKeys map[string]bool
}

func newConfigSourceTracker() *ConfigSourceTracker {
	return &ConfigSourceTracker{EnvKeys: make(map[string]bool)}
}

// Config represents the server configuration.
type Config struct {
	Server   ServerConfig  `toml:"server"`
	System   SystemConfig  `toml:"system"`
	Database db.Config     `toml:"database"`
	Logging  LoggingConfig `toml:"logging"`
	DNSSD    DNSSDConfig   `toml:"dnssd"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port        int    `toml:"port"`
	BindAddress string `toml:"bind_address"`
}

// SystemConfig names the print system and its default queue.
type SystemConfig struct {
	Name string `toml:"name"`
	// MultiQueue switches the web interface to /printers/<name> paths
	// and a printer-list landing page.
	MultiQueue bool `toml:"multi_queue"`
	// JobHistory is how many terminated jobs to keep per printer.
	JobHistory int `toml:"job_history"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// DNSSDConfig controls Bonjour advertisement of printers.
type DNSSDConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8613,
			BindAddress: "0.0.0.0",
		},
		System: SystemConfig{
			Name:       "PrintDesk",
			MultiQueue: false,
			JobHistory: 100,
		},
		Database: db.Config{
			Path: "", // empty = platform default
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DNSSD: DNSSDConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from a TOML file with environment
// variable overrides. Returns the config and a tracker indicating
// which keys came from the environment.
func LoadConfig(configPath string) (*Config, *ConfigSourceTracker, error) {
	cfg := DefaultConfig()
	tracker := newConfigSourceTracker()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if val := os.Getenv("SERVER_PORT"); val != "" {
		var port int
		if _, err := fmt.Sscanf(val, "%d", &port); err == nil {
			cfg.Server.Port = port
			tracker.EnvKeys["server.port"] = true
		}
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		cfg.Server.BindAddress = val
		tracker.EnvKeys["server.bind_address"] = true
	}
	if val := os.Getenv("SYSTEM_NAME"); val != "" {
		cfg.System.Name = val
		tracker.EnvKeys["system.name"] = true
	}
	if val := os.Getenv("SYSTEM_MULTI_QUEUE"); val != "" {
		cfg.System.MultiQueue = val == "true" || val == "1"
		tracker.EnvKeys["system.multi_queue"] = true
	}
	if val := os.Getenv("SYSTEM_JOB_HISTORY"); val != "" {
		var v int
		if _, err := fmt.Sscanf(val, "%d", &v); err == nil {
			cfg.System.JobHistory = v
			tracker.EnvKeys["system.job_history"] = true
		}
	}
	if val := os.Getenv("DB_DRIVER"); val != "" {
		cfg.Database.Driver = val
		tracker.EnvKeys["database.driver"] = true
	}
	if val := os.Getenv("DB_PATH"); val != "" {
		cfg.Database.Path = val
		tracker.EnvKeys["database.path"] = true
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.Database.DSN = val
		tracker.EnvKeys["database.dsn"] = true
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
		tracker.EnvKeys["logging.level"] = true
	}
	if val := os.Getenv("LOG_DIR"); val != "" {
		cfg.Logging.Dir = val
		tracker.EnvKeys["logging.dir"] = true
	}
	if val := os.Getenv("DNSSD_ENABLED"); val != "" {
		cfg.DNSSD.Enabled = val == "true" || val == "1"
		tracker.EnvKeys["dnssd.enabled"] = true
	}

	return cfg, tracker, nil
}

// WriteDefaultConfig writes a default config file, refusing to
// overwrite an existing one.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// configSearchPaths returns the ordered locations probed for
// config.toml when -config is not given.
func configSearchPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "windows":
		paths = append(paths, filepath.Join(os.Getenv("ProgramData"), "PrintDesk", "server", "config.toml"))
	case "darwin":
		paths = append(paths, "/Library/Application Support/PrintDesk/server/config.toml")
	default:
		paths = append(paths, "/etc/printdesk/server.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		switch runtime.GOOS {
		case "windows":
			paths = append(paths, filepath.Join(homeDir, "AppData", "Local", "PrintDesk", "server", "config.toml"))
		case "darwin":
			paths = append(paths, filepath.Join(homeDir, "Library", "Application Support", "PrintDesk", "server", "config.toml"))
		default:
			paths = append(paths, filepath.Join(homeDir, ".config", "printdesk", "server.toml"))
		}
	}

	paths = append(paths, filepath.Join(".", "config.toml"))
	return paths
}

// findConfigFile returns the first existing config file from the
// search paths, or empty when none exists.
func findConfigFile() string {
	for _, path := range configSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
