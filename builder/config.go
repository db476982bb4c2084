// SPDX-License-Identifier: MIT
// Package: haulsim/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • No globals; every Build call gets its own config.
//
// Deterministic defaults:
//   • logger     = zap.NewNop()   (silent unless WithLogger)
//   • allowLoops = true           (origin == destination rows accepted)

package builder

import "go.uber.org/zap"

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	logger     *zap.Logger
	allowLoops bool
}

// newBuilderConfig applies options in order over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:     zap.NewNop(),
		allowLoops: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
