// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/haulsim/demand"
	"github.com/katalvlaran/haulsim/network"
)

// Method names used as error prefixes.
const (
	MethodBuild    = "Build"
	MethodFromFile = "FromFile"
)

// NodeSpec describes one node: its position and id.
type NodeSpec struct {
	X  float64
	Y  float64
	ID int
}

// Build constructs a Graph from node descriptors and demand rows.
//
// Steps:
//  1. One Node per spec, in order (duplicate ids fail).
//  2. For each row in order, Count Links From→To added to the From Node.
//
// Row order fixes Link insertion order, which is what greedy extraction
// falls back on when costs tie.
//
// Complexity: O(V + U log U) where U is the total demand.
func Build(specs []NodeSpec, rows []demand.Row, opts ...BuilderOption) (*network.Graph, error) {
	cfg := newBuilderConfig(opts...)

	g := network.NewGraph()
	for _, s := range specs {
		if err := g.AddNode(network.NewNode(s.ID, s.X, s.Y)); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	units := 0
	for i, r := range rows {
		from, err := g.Node(r.From)
		if err != nil {
			return nil, builderErrorf(MethodBuild, "row %d origin %d: %w", i+1, r.From, ErrUnknownNode)
		}
		to, err := g.Node(r.To)
		if err != nil {
			return nil, builderErrorf(MethodBuild, "row %d destination %d: %w", i+1, r.To, ErrUnknownNode)
		}
		if r.Count < 0 {
			return nil, builderErrorf(MethodBuild, "row %d count %d: %w", i+1, r.Count, ErrNegativeCount)
		}
		if from == to && !cfg.allowLoops {
			return nil, builderErrorf(MethodBuild, "row %d node %d: %w", i+1, r.From, ErrSelfLoop)
		}

		for k := 0; k < r.Count; k++ {
			if err = from.AddLink(network.NewLink(from, to)); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodBuild, err)
			}
		}
		units += r.Count
	}

	cfg.logger.Debug("graph built",
		zap.Int("nodes", g.Len()),
		zap.Int("rows", len(rows)),
		zap.Int("links", units),
	)

	return g, nil
}

// FromFile reads the demand table at path and delegates to Build.
// A missing file fails with demand.ErrNotFound before any Node is created.
func FromFile(specs []NodeSpec, path string, opts ...BuilderOption) (*network.Graph, error) {
	rows, err := demand.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFromFile, err)
	}

	return Build(specs, rows, opts...)
}
