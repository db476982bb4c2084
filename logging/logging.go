// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by haulsim binaries.
// Library packages never log through globals; they receive a *zap.Logger
// through their options and default to zap.NewNop().
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level ("debug", "info", "warn",
// "error"). development selects zap's console encoder with caller and
// stack traces on warnings; otherwise JSON on stderr.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return l, nil
}
