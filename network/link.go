// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/paulmach/orb/planar"
)

// NewLink builds the directed Link start→end and fixes its cost.
// Complexity: O(1).
func NewLink(start, end *Node) *Link {
	return &Link{start: start, end: end, cost: Distance(start, end)}
}

// Distance returns the Euclidean distance between two Nodes.
// It is the cost function for Links and for nearest-node searches.
func Distance(a, b *Node) float64 {
	return planar.Distance(a.pos, b.pos)
}

// Start returns the Node this Link departs from.
func (l *Link) Start() *Node { return l.start }

// End returns the Node this Link delivers to.
func (l *Link) End() *Node { return l.end }

// Cost returns the traversal cost fixed at construction.
func (l *Link) Cost() float64 { return l.cost }

// Less reports whether l is strictly cheaper than o.
func (l *Link) Less(o *Link) bool { return l.cost < o.cost }

// Greater reports whether l is strictly more expensive than o.
func (l *Link) Greater(o *Link) bool { return l.cost > o.cost }

// Equal reports cost equivalence, not identity: distinct Links with the
// same cost compare equal.
func (l *Link) Equal(o *Link) bool { return l.cost == o.cost }

// String renders the Link for logs and examples.
func (l *Link) String() string {
	return fmt.Sprintf("Link from %d to %d with cost %g", l.start.id, l.end.id, l.cost)
}
