// SPDX-License-Identifier: MIT

package network

import (
	"cmp"
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"
)

// defaultRNGSeed seeds the fallback stream used when RandomLink gets a nil rng.
const defaultRNGSeed int64 = 1

// NewNode creates a Node at (x, y) with no outgoing demand.
func NewNode(id int, x, y float64) *Node {
	return &Node{id: id, pos: orb.Point{x, y}}
}

// ID returns the node identity.
func (n *Node) ID() int { return n.id }

// Position returns the planar position as an orb.Point.
func (n *Node) Position() orb.Point { return n.pos }

// X returns the x coordinate.
func (n *Node) X() float64 { return n.pos.X() }

// Y returns the y coordinate.
func (n *Node) Y() float64 { return n.pos.Y() }

// Remaining returns the number of outgoing Links still to be serviced.
func (n *Node) Remaining() int { return len(n.pool) }

// Served returns the number of Links extracted from this Node so far.
func (n *Node) Served() int { return n.served }

// AddLink registers one unit of outgoing demand.
//
// The Link must start at n; otherwise ErrInvalidLink is returned and n is
// left untouched. On success the Link enters both extraction views.
//
// Complexity: O(log k), k = Remaining().
func (n *Node) AddLink(l *Link) error {
	if l == nil {
		return ErrNilLink
	}
	if l.start != n {
		return fmt.Errorf("%w: %s registered on node %d", ErrInvalidLink, l, n.id)
	}

	it := &linkItem{link: l, seq: n.seq, poolIdx: len(n.pool)}
	n.seq++
	n.pool = append(n.pool, it)
	heap.Push(&n.queue, it)

	return nil
}

// GreedyLink removes and returns the cheapest remaining Link.
// Equal costs come out in insertion order. Returns (nil, false) when no
// demand is left.
//
// Complexity: O(log k).
func (n *Node) GreedyLink() (*Link, bool) {
	if n.Remaining() == 0 {
		return nil, false
	}
	it := heap.Pop(&n.queue).(*linkItem)
	n.dropFromPool(it)
	n.served++

	return it.link, true
}

// RandomLink removes and returns a uniformly random remaining Link drawn
// from rng. A nil rng draws from the Node's own stream, seeded with
// defaultRNGSeed on first use and continued across calls. Returns
// (nil, false) when no demand is left.
//
// Complexity: O(log k).
func (n *Node) RandomLink(rng *rand.Rand) (*Link, bool) {
	if n.Remaining() == 0 {
		return nil, false
	}
	if rng == nil {
		if n.fallback == nil {
			n.fallback = rand.New(rand.NewSource(defaultRNGSeed))
		}
		rng = n.fallback
	}
	it := n.pool[rng.Intn(len(n.pool))]
	n.dropFromPool(it)
	heap.Remove(&n.queue, it.heapIdx)
	n.served++

	return it.link, true
}

// Links returns the remaining Links in greedy extraction order without
// consuming them.
//
// Complexity: O(k log k).
func (n *Node) Links() []*Link {
	items := make([]*linkItem, len(n.queue))
	copy(items, n.queue)
	slices.SortFunc(items, func(a, b *linkItem) int {
		if c := cmp.Compare(a.link.cost, b.link.cost); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]*Link, len(items))
	for i, it := range items {
		out[i] = it.link
	}

	return out
}

// String renders the node identity, position and remaining demand.
func (n *Node) String() string {
	return fmt.Sprintf("Node %d at (%g, %g) with %d links left", n.id, n.pos.X(), n.pos.Y(), n.Remaining())
}

// dropFromPool swap-removes it from the random-access view in O(1).
func (n *Node) dropFromPool(it *linkItem) {
	last := len(n.pool) - 1
	moved := n.pool[last]
	n.pool[it.poolIdx] = moved
	moved.poolIdx = it.poolIdx
	n.pool[last] = nil
	n.pool = n.pool[:last]
}
