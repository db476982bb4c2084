// SPDX-License-Identifier: MIT

package transport

import "github.com/katalvlaran/haulsim/network"

// Transporter is an agent that consumes Links by moving between Nodes.
type Transporter struct {
	id      int
	current *network.Node
	loaded  bool
}

// NewTransporter places an empty Transporter on start.
func NewTransporter(id int, start *network.Node) *Transporter {
	return &Transporter{id: id, current: start}
}

// ID returns the transporter identity.
func (t *Transporter) ID() int { return t.id }

// Current returns the Node the Transporter stands on.
func (t *Transporter) Current() *network.Node { return t.current }

// Loaded reports whether the Transporter carries a package.
func (t *Transporter) Loaded() bool { return t.loaded }

// Step advances the Transporter by one hop under p.
//
// It returns false, and leaves the Transporter untouched, only when no Node
// in g has demand left; that is the normal end of work, not an error.
//
// Complexity: O(log k) for a pickup, O(V) for an empty trip.
func (t *Transporter) Step(g *network.Graph, p Policy) (Move, bool) {
	unloaded := t.loaded

	var (
		next *network.Node
		cost float64
	)
	if t.current.Remaining() > 0 {
		l, ok := p.NextLink(t.current)
		if !ok {
			return Move{}, false
		}
		t.loaded = true
		next, cost = l.End(), l.Cost()
	} else {
		candidates := g.NodesWithDemand()
		if len(candidates) == 0 {
			return Move{}, false
		}
		t.loaded = false
		next = p.NextNode(t.current, candidates)
		cost = network.Distance(t.current, next)
	}

	m := Move{
		Transition: Transition{
			TransporterID: t.id,
			NodeID:        t.current.ID(),
			Unloaded:      unloaded,
			Loaded:        t.loaded,
		},
		To:   next.ID(),
		Cost: cost,
	}
	t.current = next

	return m, true
}
