// SPDX-License-Identifier: MIT

package network

import "fmt"

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// AddNode hands ownership of n to the Graph.
// Returns ErrNilNode for nil and ErrDuplicateNode if the id is taken.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, ok := g.nodes[n.id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.id)
	}
	g.nodes[n.id] = n
	g.order = append(g.order, n.id)

	return nil
}

// Node looks up a Node by id.
func (g *Graph) Node(id int) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of Nodes.
func (g *Graph) Len() int { return len(g.order) }

// IDs returns node ids in insertion order.
func (g *Graph) IDs() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// Nodes returns all Nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodesWithDemand returns, in insertion order, every Node that still has
// at least one outgoing Link.
//
// Complexity: O(V).
func (g *Graph) NodesWithDemand() []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Remaining() > 0 {
			out = append(out, n)
		}
	}
	return out
}

// Remaining returns the total number of unserviced Links in the Graph.
func (g *Graph) Remaining() int {
	total := 0
	for _, n := range g.nodes {
		total += n.Remaining()
	}
	return total
}

// Exhausted reports whether no demand is left anywhere.
func (g *Graph) Exhausted() bool {
	for _, n := range g.nodes {
		if n.Remaining() > 0 {
			return false
		}
	}
	return true
}
