package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kardianos/service"
)

// program implements service.Interface.
type program struct {
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	svcLogger service.Logger
}

func (p *program) Start(s service.Service) error {
	p.svcLogger, _ = s.Logger(nil)
	if p.svcLogger != nil {
		p.svcLogger.Info("PrintDesk Server service starting")
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.done = make(chan struct{})

	go p.run()
	return nil
}

func (p *program) run() {
	defer close(p.done)

	if p.svcLogger != nil {
		p.svcLogger.Info("PrintDesk Server service running")
	}

	runServer(p.ctx)

	if p.svcLogger != nil {
		p.svcLogger.Info("PrintDesk Server service stopping")
	}
}

func (p *program) Stop(s service.Service) error {
	if p.svcLogger != nil {
		p.svcLogger.Info("PrintDesk Server service stop requested")
	}

	if p.cancel != nil {
		p.cancel()
	}

	timeout := time.After(30 * time.Second)
	select {
	case <-p.done:
		if p.svcLogger != nil {
			p.svcLogger.Info("PrintDesk Server service stopped gracefully")
		}
	case <-timeout:
		if p.svcLogger != nil {
			p.svcLogger.Warning("PrintDesk Server service stopped with timeout")
		}
	}

	return nil
}

// getServiceConfig returns the service configuration for the current
// platform.
func getServiceConfig() *service.Config {
	var workingDir string
	switch runtime.GOOS {
	case "windows":
		workingDir = filepath.Join(os.Getenv("ProgramData"), "PrintDesk", "server")
	case "darwin":
		workingDir = "/Library/Application Support/PrintDesk/server"
	default:
		workingDir = "/var/lib/printdesk/server"
	}

	return &service.Config{
		Name:             "PrintDeskServer",
		DisplayName:      "PrintDesk Server",
		Description:      "PrintDesk print server. Manages printer queues and serves the administrative web interface.",
		WorkingDirectory: workingDir,
		Arguments:        []string{"-service", "run"},
		Option: service.KeyValue{
			// Windows service options
			"StartType":              "automatic",
			"OnFailure":              "restart",
			"OnFailureDelayDuration": "5s",
			"OnFailureResetPeriod":   30,

			// Linux systemd options
			"Restart":           "on-failure",
			"RestartSec":        5,
			"SuccessExitStatus": "0 SIGTERM",
			"KillMode":          "mixed",
			"KillSignal":        "SIGTERM",
			"SendSIGKILL":       true,

			// macOS launchd options
			"RunAtLoad":     true,
			"KeepAlive":     true,
			"SessionCreate": false,
		},
	}
}

// setupServiceDirectories creates the data, log, and config
// directories used when running as a service, and seeds a default
// config file.
func setupServiceDirectories() error {
	var dirs []string
	var configPath string

	switch runtime.GOOS {
	case "windows":
		serverDir := filepath.Join(os.Getenv("ProgramData"), "PrintDesk", "server")
		dirs = []string{serverDir, filepath.Join(serverDir, "logs")}
		configPath = filepath.Join(serverDir, "config.toml")
	case "darwin":
		serverDir := "/Library/Application Support/PrintDesk/server"
		dirs = []string{serverDir, "/var/log/printdesk/server"}
		configPath = filepath.Join(serverDir, "config.toml")
	default:
		dirs = []string{
			"/var/lib/printdesk/server",
			"/var/log/printdesk/server",
			"/etc/printdesk",
		}
		configPath = "/etc/printdesk/server.toml"
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				fmt.Printf("Configuration already exists at: %s\n", configPath)
			} else {
				return fmt.Errorf("failed to generate default config at %s: %w", configPath, err)
			}
		} else {
			fmt.Printf("Generated default configuration at: %s\n", configPath)
		}
	} else {
		fmt.Printf("Configuration already exists at: %s\n", configPath)
	}

	return nil
}

// handleServiceCommand runs a -service verb: install, uninstall,
// start, stop, restart, or run.
func handleServiceCommand(verb string) error {
	svcConfig := getServiceConfig()
	prg := &program{}
	svc, err := service.New(prg, svcConfig)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	switch verb {
	case "install":
		if err := setupServiceDirectories(); err != nil {
			return err
		}
		if err := svc.Install(); err != nil {
			return fmt.Errorf("failed to install service: %w", err)
		}
		fmt.Println("Service installed.")
	case "uninstall":
		if err := svc.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall service: %w", err)
		}
		fmt.Println("Service uninstalled.")
	case "start":
		if err := svc.Start(); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
		fmt.Println("Service started.")
	case "stop":
		if err := svc.Stop(); err != nil {
			return fmt.Errorf("failed to stop service: %w", err)
		}
		fmt.Println("Service stopped.")
	case "restart":
		if err := svc.Restart(); err != nil {
			return fmt.Errorf("failed to restart service: %w", err)
		}
		fmt.Println("Service restarted.")
	case "run":
		return svc.Run()
	default:
		return fmt.Errorf("unknown service command %q (install, uninstall, start, stop, restart, run)", verb)
	}
	return nil
}
