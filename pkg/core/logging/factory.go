// ============================================================================
// complexible - complex number toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions turning configuration into foundation loggers
// Author:      kevmasajedi
// Created:     2025-02-10
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/kevmasajedi/complexible/foundation/core/config"
	mdwlog "github.com/kevmasajedi/complexible/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name appears as the logger field of every entry
	Name string

	// Level is one of trace, debug, info, warn, error, off
	Level string

	// Format is one of json, text, console, logfmt
	Format string

	// Caller adds file:line to every entry
	Caller bool

	// Output defaults to stderr
	Output io.Writer

	// AdditionalOutputs receive a copy of every entry
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  mdwlog.DefaultLevel().String(),
		Format: mdwlog.FormatText.String(),
	}
}

// FromConfig derives a LoggerConfig from the [log] section of cfg
func FromConfig(cfg *config.Config) LoggerConfig {
	return LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: cfg.Log.Caller,
	}
}

// NewLogger creates a foundation logger. Unknown level or format strings
// fall back to the package defaults.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}
	format, _ := mdwlog.ParseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Caller,
	})
}
