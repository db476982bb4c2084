// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML description of a run.
//
// Example file:
//
//	nodes:
//	  - {id: 1, x: 5, y: 10}
//	  - {id: 2, x: 50, y: 5}
//	demand: data/transport_demand.txt
//	output: data
//	transporters: 2
//	policy: random
//	seed: 42
//	log_level: info
//
// Fields missing from the file keep the values of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/haulsim/builder"
	"github.com/katalvlaran/haulsim/sim"
	"github.com/katalvlaran/haulsim/transport"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

// validate is the shared validator instance; it caches struct metadata.
var validate = validator.New()

// Node is one node descriptor.
type Node struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Config describes one run.
type Config struct {
	Nodes        []Node `yaml:"nodes" validate:"required,min=1,dive"`
	Demand       string `yaml:"demand" validate:"required"`
	Output       string `yaml:"output" validate:"required"`
	Transporters int    `yaml:"transporters" validate:"min=1"`
	Policy       string `yaml:"policy" validate:"oneof=greedy random"`
	Seed         int64  `yaml:"seed"`
	StartNodes   []int  `yaml:"start_nodes,omitempty"`
	LogLevel     string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Development  bool   `yaml:"development"`
	MetricsFile  string `yaml:"metrics_file,omitempty"`
}

// Default returns the six-node service area with one greedy transporter.
func Default() Config {
	return Config{
		Nodes: []Node{
			{ID: 1, X: 5, Y: 10},
			{ID: 2, X: 50, Y: 5},
			{ID: 3, X: 40, Y: 20},
			{ID: 4, X: 60, Y: 35},
			{ID: 5, X: 30, Y: 35},
			{ID: 6, X: 20, Y: 30},
		},
		Demand:       "data/transport_demand.txt",
		Output:       "data",
		Transporters: 1,
		Policy:       string(transport.PolicyGreedy),
		LogLevel:     "info",
	}
}

// Load reads path over Default and validates the result. An empty path
// yields the validated Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg, err = Parse(raw); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates it. Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field rules and cross-field consistency.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	ids := make([]int, len(c.Nodes))
	for i, n := range c.Nodes {
		ids[i] = n.ID
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(ids) {
		return fmt.Errorf("%w: duplicate node ids in %v", ErrInvalid, ids)
	}

	if len(c.StartNodes) == 0 {
		if c.Transporters > len(c.Nodes) {
			return fmt.Errorf("%w: %d transporters for %d nodes", ErrInvalid, c.Transporters, len(c.Nodes))
		}
		return nil
	}
	if len(c.StartNodes) != c.Transporters {
		return fmt.Errorf("%w: %d start nodes for %d transporters", ErrInvalid, len(c.StartNodes), c.Transporters)
	}
	for _, id := range c.StartNodes {
		if !slices.Contains(ids, id) {
			return fmt.Errorf("%w: unknown start node %d", ErrInvalid, id)
		}
	}

	return nil
}

// NodeSpecs converts the node list for the builder.
func (c Config) NodeSpecs() []builder.NodeSpec {
	out := make([]builder.NodeSpec, len(c.Nodes))
	for i, n := range c.Nodes {
		out[i] = builder.NodeSpec{X: n.X, Y: n.Y, ID: n.ID}
	}
	return out
}

// PolicyKind returns the configured policy.
func (c Config) PolicyKind() transport.PolicyKind {
	return transport.PolicyKind(c.Policy)
}

// RunName returns the result-file run name, e.g. "num_trans_1_greedy".
func (c Config) RunName() string {
	return sim.RunName(c.Transporters, c.PolicyKind())
}

// SimOptions translates the run-shaping fields into sim options.
func (c Config) SimOptions() []sim.Option {
	opts := []sim.Option{
		sim.WithTransporters(c.Transporters),
		sim.WithPolicy(c.PolicyKind()),
		sim.WithSeed(c.Seed),
	}
	if len(c.StartNodes) > 0 {
		opts = append(opts, sim.WithStartNodes(c.StartNodes...))
	}
	return opts
}
