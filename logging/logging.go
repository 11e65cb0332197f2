// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the command-line tool
// and the search engines.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel indicates an unknown level name.
var ErrBadLevel = errors.New("logging: unknown level")

// ErrBadFormat indicates an encoding other than "json" or "console".
var ErrBadFormat = errors.New("logging: unknown format")

// Config holds logging configuration.
type Config struct {
	Level     string // debug, info, warn, error; empty means info
	Format    string // "json" or "console"; empty means console
	Output    string // "stdout", "stderr" or a file path; empty means stderr
	AddCaller bool
	AddStack  bool
}

// New builds a logger from cfg. JSON output starts from zap's production
// preset (sampled); console output starts from the development preset,
// which is unsampled and panics on DPanic.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(cfg.Format)
	switch format {
	case "":
		format = "console"
	case "json", "console":
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}
	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	zapConfig := zap.NewProductionConfig()
	if format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.Encoding = format
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{output}
	zapConfig.DisableCaller = !cfg.AddCaller
	zapConfig.DisableStacktrace = !cfg.AddStack
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}
}
