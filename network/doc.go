// SPDX-License-Identifier: MIT

// Package network holds the service-area model of haulsim: Nodes placed on a
// plane, directed Links that represent one unit of transport demand each,
// and the Graph that owns every Node of a run.
//
// A Link costs the Euclidean distance between its endpoints. Cost is fixed at
// construction; Links are ordered by cost only, so two Links of equal cost are
// interchangeable for ordering and ties are resolved by insertion order.
//
// Each Node owns the multiset of its remaining outgoing Links and offers two
// extraction views over one shared collection:
//
//	GreedyLink()     pop the cheapest remaining Link (min-heap, FIFO on ties)
//	RandomLink(rng)  pop a uniformly random remaining Link (swap-remove pool)
//
// Every removal goes through both indices, so Remaining() always equals the
// size of either view and demand can only shrink.
//
// Errors:
//
//	ErrInvalidLink    - a Link was registered on a Node that is not its start.
//	ErrNilLink        - a nil Link was registered.
//	ErrNilNode        - a nil Node was passed where one is required.
//	ErrDuplicateNode  - a Node id is already present in the Graph.
//	ErrNodeNotFound   - a Node id is not present in the Graph.
//
// Concurrency:
//
//	Nothing in this package is safe for concurrent mutation. A simulation is
//	single-threaded and steps strictly one after another; no locks are taken.
package network
