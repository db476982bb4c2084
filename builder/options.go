// SPDX-License-Identifier: MIT

package builder

import "go.uber.org/zap"

// BuilderOption customizes Build by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithLogger attaches a logger for construction diagnostics.
// Panics on nil to surface programmer error early.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithoutSelfLoops makes Build reject demand rows with origin == destination.
func WithoutSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.allowLoops = false
	}
}
