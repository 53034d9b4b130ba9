// Package logging configures the shared zap logger. The TUI owns stdout, so
// all logs go to a file under the workspace logs directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init opens the log file and installs the package logger. Safe to skip in
// tests; L() returns a no-op logger until Init succeeds.
func Init(logsDir string, debug bool) error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{filepath.Join(logsDir, "vitrin.log")}
	config.ErrorOutputPaths = config.OutputPaths
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger = l
	return nil
}

// L returns the shared logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = logger.Sync()
}
