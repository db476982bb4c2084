// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"math/rand"

	"github.com/paulmach/orb"
)

// Sentinel errors for network operations.
var (
	// ErrInvalidLink indicates a Link was added to a Node other than its start.
	ErrInvalidLink = errors.New("network: link does not start at this node")

	// ErrNilLink indicates a nil *Link was passed to AddLink.
	ErrNilLink = errors.New("network: link is nil")

	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("network: node is nil")

	// ErrDuplicateNode indicates a Node with the same id is already in the Graph.
	ErrDuplicateNode = errors.New("network: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a node id unknown to the Graph.
	ErrNodeNotFound = errors.New("network: node not found")
)

// Node is a location in the service area with pending outbound demand.
//
// The zero value is not usable; construct Nodes with NewNode.
type Node struct {
	id  int       // unique within a Graph
	pos orb.Point // planar position (x, y)

	// queue and pool index the same set of *linkItem.
	queue linkPQ      // min-heap by (cost, seq)
	pool  []*linkItem // random-access view, swap-remove

	seq    uint64 // insertion counter, FIFO tie-break
	served int    // links extracted so far

	fallback *rand.Rand // lazily seeded stream for RandomLink(nil)
}

// Link is one unit of required transport from Start to End.
//
// A Link is immutable after NewLink; its cost is the Euclidean distance
// between the endpoint positions.
type Link struct {
	start *Node
	end   *Node
	cost  float64
}

// Graph exclusively owns the Nodes of one simulation run.
//
// Iteration order (Nodes, IDs, NodesWithDemand) is the order in which Nodes
// were added, which keeps nearest-node tie-breaking reproducible.
type Graph struct {
	nodes map[int]*Node
	order []int
}
