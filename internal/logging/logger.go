package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	logger  = log.NewWithOptions(io.Discard, log.Options{})
	logFile *os.File
)

// Init points the global logger at path. The TUI owns the terminal, so
// logs never go to stdout or stderr.
func Init(path, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = New(f, lvl)
	return nil
}

// New builds a logger with the application's formatting
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "empsearch",
	})
}

// Close flushes and closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logger.Info("shutting down")
		logFile.Close()
		logFile = nil
	}
	logger = log.NewWithOptions(io.Discard, log.Options{})
}

// Logger returns the current global logger for injection into components
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func Debug(msg string, keyvals ...interface{}) { Logger().Debug(msg, keyvals...) }

func Info(msg string, keyvals ...interface{}) { Logger().Info(msg, keyvals...) }

func Warn(msg string, keyvals ...interface{}) { Logger().Warn(msg, keyvals...) }

func Error(msg string, keyvals ...interface{}) { Logger().Error(msg, keyvals...) }
