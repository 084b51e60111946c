// Package logger initializes the process-wide zap logger used by the CLI
// client for diagnostics and progress reporting.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log defaults to a no-op logger until Initialize is called.
var Log *zap.Logger = zap.NewNop()

// Initialize builds the logger at the given level ("debug", "info", ...).
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("log level parsing: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("zap initialization: %w", err)
	}
	Log = zl
	return nil
}
