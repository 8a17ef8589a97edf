// PrintDesk Server - printer queue management with an administrative
// web interface for status, configuration, media, print defaults,
// supplies, and the job queue.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"printdesk/server/dnssd"
	"printdesk/server/logger"
	"printdesk/server/printer"
	"printdesk/server/storage"
	"printdesk/server/webif"
)

// Version information (set at build time via -ldflags).
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	serverLogger *logger.Logger
	serverStore  storage.Store

	flagConfig   = flag.String("config", "", "Path to config.toml (default: platform search paths)")
	flagPort     = flag.Int("port", 0, "HTTP port (overrides config)")
	flagDB       = flag.String("db", "", "SQLite database path (overrides config)")
	flagLogLevel = flag.String("log-level", "", "Log level: error, warn, info, debug, trace (overrides config)")
	flagPrinter  = flag.String("add-printer", "", "Create the named print queue if it does not exist")
	flagDriver   = flag.String("driver", "office-generic", "Driver preset for -add-printer")
	flagService  = flag.String("service", "", "Service command: install, uninstall, start, stop, restart, run")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("PrintDesk Server %s (build %s, commit %s, %s/%s)\n",
			Version, BuildTime, GitCommit, runtime.GOOS, runtime.GOARCH)
		return
	}

	if *flagService != "" {
		if err := handleServiceCommand(*flagService); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runServer(ctx)
}

// runServer is the shared entry point for interactive and service
// runs. It returns when ctx is canceled and the listener has drained.
func runServer(ctx context.Context) {
	configPath := *flagConfig
	if configPath == "" {
		configPath = findConfigFile()
	}
	cfg, tracker, err := LoadConfig(configPath)
	if err != nil {
		logFatal("Failed to load configuration", "path", configPath, "error", err)
	}
	if *flagPort != 0 {
		cfg.Server.Port = *flagPort
	}
	if *flagDB != "" {
		cfg.Database.Path = *flagDB
	}
	if *flagLogLevel != "" {
		cfg.Logging.Level = *flagLogLevel
	}

	logDir := cfg.Logging.Dir
	if logDir == "" {
		logDir = filepath.Join(storage.DataDir(), "logs")
	}
	serverLogger = logger.New(logger.ParseLevel(cfg.Logging.Level), logDir, 1000)
	defer serverLogger.Close()
	storage.SetLogger(serverLogger)

	logInfo("PrintDesk Server starting",
		"version", Version, "go", runtime.Version(), "os", runtime.GOOS, "arch", runtime.GOARCH)
	if configPath != "" {
		logInfo("Loaded configuration", "path", configPath, "env_overrides", len(tracker.EnvKeys))
	}

	serverStore, err = storage.NewStore(&cfg.Database)
	if err != nil {
		logFatal("Failed to initialize database", "error", err)
	}
	defer serverStore.Close()
	logInfo("Database ready", "path", serverStore.Path())

	system := printer.NewSystem(cfg.System.Name)
	system.SetVersions([]printer.Version{{Name: "printdesk", Version: Version}})

	if err := storage.LoadSystem(ctx, serverStore, system); err != nil {
		logFatal("Failed to load printers from storage", "error", err)
	}
	logInfo("Printers restored", "count", len(system.Printers()))

	system.SetPersister(storage.NewWriteThrough(serverStore))

	if name := *flagPrinter; name != "" {
		if _, exists := system.Printer(name); !exists {
			driver, err := driverOptions(*flagDriver)
			if err != nil {
				logFatal("Cannot create printer", "name", name, "error", err)
			}
			if err := system.AddPrinter(printer.NewPrinter(name, *flagDriver, driver)); err != nil {
				logFatal("Cannot create printer", "name", name, "error", err)
			}
			logInfo("Created printer", "name", name, "driver", *flagDriver)
		}
	}
	if len(system.Printers()) == 0 {
		// A server with no queues renders nothing useful; seed one.
		driver, _ := driverOptions("office-generic")
		if err := system.AddPrinter(printer.NewPrinter("printer", "office-generic", driver)); err != nil {
			logFatal("Cannot create default printer", "error", err)
		}
		logInfo("Created default printer", "name", "printer", "driver", "office-generic")
	}

	// Committed changes fan out to the admin pages over /ws and trim
	// old job history rows.
	system.OnEvent(broadcastEvent)
	system.OnEvent(func(ev printer.Event) {
		if ev.Type != printer.EventJobStateChanged {
			return
		}
		p, ok := system.Printer(ev.Printer)
		if !ok || p.ID() == 0 {
			return
		}
		pruneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := serverStore.PruneJobs(pruneCtx, p.ID(), cfg.System.JobHistory); err != nil {
			logWarn("Job history pruning failed", "printer", ev.Printer, "error", err)
		}
	})

	if cfg.DNSSD.Enabled {
		adv := dnssd.NewAdvertiser(cfg.Server.Port, serverLogger)
		defer adv.Close()
		system.OnEvent(adv.HandleEvent(system))
		for _, p := range system.Printers() {
			if err := adv.Advertise(p); err != nil {
				logWarn("DNS-SD registration failed", "printer", p.Name(), "error", err)
			}
		}
	}

	wi, err := webif.New(system, webif.Options{
		Logger:     serverLogger,
		MultiQueue: cfg.System.MultiQueue,
		Version:    system.LatestVersion(),
	})
	if err != nil {
		logFatal("Failed to build web interface", "error", err)
	}

	mux := http.NewServeMux()
	wi.RegisterRoutes(mux)
	mux.HandleFunc("/ws", handleEventsWS)
	mux.HandleFunc("/health", handleHealth)

	addr := fmt.Sprintf("%s:%d", cfg.Server.BindAddress, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logInfo("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logInfo("Shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logError("HTTP server failed", "error", err)
		}
	}

	logInfo("PrintDesk Server stopped")
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"version":   Version,
		"timestamp": time.Now().UTC(),
	})
}
