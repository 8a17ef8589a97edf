package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var levelNames = map[LogLevel]string{
	ERROR: "ERROR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
	TRACE: "TRACE",
}

// String returns the level's canonical name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
	Context   map[string]interface{}
}

// RotationPolicy defines when and how log files are rotated
type RotationPolicy struct {
	Enabled   bool
	MaxSizeMB int
	MaxFiles  int
}

// Logger provides leveled logging with an in-memory ring buffer,
// console output, and size-rotated file output.
type Logger struct {
	mu            sync.RWMutex
	level         LogLevel
	logDir        string
	fileName      string
	currentFile   *os.File
	currentPath   string
	buffer        []LogEntry
	maxBufferSize int
	consoleOutput bool
	rotation      RotationPolicy
}

// New creates a Logger writing to logDir/printdesk.log. An empty logDir
// disables file output.
func New(level LogLevel, logDir string, maxBufferSize int) *Logger {
	return &Logger{
		level:         level,
		logDir:        logDir,
		fileName:      "printdesk.log",
		buffer:        make([]LogEntry, 0, maxBufferSize),
		maxBufferSize: maxBufferSize,
		consoleOutput: true,
		rotation: RotationPolicy{
			Enabled:   true,
			MaxSizeMB: 50,
			MaxFiles:  10,
		},
	}
}

// SetConsoleOutput enables or disables console output
func (l *Logger) SetConsoleOutput(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.consoleOutput = enabled
}

// SetRotationPolicy replaces the file rotation policy
func (l *Logger) SetRotationPolicy(policy RotationPolicy) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rotation = policy
}

// SetLevel changes the current log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Error logs an error level message
func (l *Logger) Error(msg string, context ...interface{}) {
	l.log(ERROR, msg, context...)
}

// Warn logs a warning level message
func (l *Logger) Warn(msg string, context ...interface{}) {
	l.log(WARN, msg, context...)
}

// Info logs an info level message
func (l *Logger) Info(msg string, context ...interface{}) {
	l.log(INFO, msg, context...)
}

// Debug logs a debug level message
func (l *Logger) Debug(msg string, context ...interface{}) {
	l.log(DEBUG, msg, context...)
}

// Trace logs a trace level message
func (l *Logger) Trace(msg string, context ...interface{}) {
	l.log(TRACE, msg, context...)
}

// log is the internal logging implementation. Context is interpreted as
// alternating key/value pairs; a trailing key without a value is dropped.
func (l *Logger) log(level LogLevel, msg string, context ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.level {
		return
	}

	ctx := make(map[string]interface{})
	for i := 0; i+1 < len(context); i += 2 {
		key := fmt.Sprintf("%v", context[i])
		ctx[key] = context[i+1]
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Context:   ctx,
	}

	l.buffer = append(l.buffer, entry)
	if len(l.buffer) > l.maxBufferSize {
		l.buffer = l.buffer[1:]
	}

	if l.consoleOutput {
		fmt.Println(formatEntry(entry))
	}

	l.writeToFile(entry)
}

// formatEntry renders an entry as a single log line. Context keys are
// sorted so output is stable.
func formatEntry(entry LogEntry) string {
	line := fmt.Sprintf("[%s] [%s] %s",
		entry.Timestamp.Format("2006-01-02 15:04:05"),
		levelNames[entry.Level],
		entry.Message)

	if len(entry.Context) > 0 {
		keys := make([]string, 0, len(entry.Context))
		for k := range entry.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		line += " |"
		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, entry.Context[k])
		}
	}
	return line
}

// writeToFile appends the entry to the current log file, rotating first
// when the size policy is exceeded. Callers hold l.mu.
func (l *Logger) writeToFile(entry LogEntry) {
	if l.logDir == "" {
		return
	}

	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return
	}

	if l.currentFile == nil {
		path := filepath.Join(l.logDir, l.fileName)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		l.currentFile = f
		l.currentPath = path
	}

	l.currentFile.WriteString(formatEntry(entry) + "\n")

	if l.shouldRotate() {
		l.rotate()
	}
}

// shouldRotate reports whether the current file exceeds the size policy.
func (l *Logger) shouldRotate() bool {
	if !l.rotation.Enabled || l.rotation.MaxSizeMB <= 0 || l.currentFile == nil {
		return false
	}
	stat, err := l.currentFile.Stat()
	if err != nil {
		return false
	}
	return stat.Size() >= int64(l.rotation.MaxSizeMB)*1024*1024
}

// rotate closes the current file, renames it with a timestamp suffix, and
// prunes old backups beyond MaxFiles.
func (l *Logger) rotate() {
	if l.currentFile == nil {
		return
	}
	l.currentFile.Close()
	l.currentFile = nil

	if l.currentPath != "" {
		stamp := time.Now().Format("20060102_150405")
		base := strings.TrimSuffix(l.fileName, ".log")
		backup := filepath.Join(l.logDir, fmt.Sprintf("%s_%s.log", base, stamp))
		os.Rename(l.currentPath, backup)
	}

	l.pruneBackups()
}

// pruneBackups removes the oldest rotated files beyond the MaxFiles limit.
func (l *Logger) pruneBackups() {
	if l.rotation.MaxFiles <= 0 {
		return
	}
	base := strings.TrimSuffix(l.fileName, ".log")
	pattern := filepath.Join(l.logDir, base+"_*.log")
	backups, err := filepath.Glob(pattern)
	if err != nil || len(backups) <= l.rotation.MaxFiles {
		return
	}
	sort.Strings(backups) // timestamp suffix sorts oldest first
	for _, old := range backups[:len(backups)-l.rotation.MaxFiles] {
		os.Remove(old)
	}
}

// GetBuffer returns a copy of the recent log entries
func (l *Logger) GetBuffer() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]LogEntry, len(l.buffer))
	copy(entries, l.buffer)
	return entries
}

// Close closes any open file handle
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentFile != nil {
		err := l.currentFile.Close()
		l.currentFile = nil
		return err
	}
	return nil
}

// ParseLevel converts a string to a LogLevel, defaulting to INFO
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ERROR
	case "WARN", "WARNING":
		return WARN
	case "INFO":
		return INFO
	case "DEBUG":
		return DEBUG
	case "TRACE":
		return TRACE
	default:
		return INFO
	}
}
