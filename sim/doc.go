// SPDX-License-Identifier: MIT

// Package sim drives a haulsim run.
//
// Run spawns Transporters 1..n on their start Nodes and then plays rounds:
// in every round each Transporter takes exactly one Step in ascending id
// order. The first Step that finds no demand anywhere halts the whole run
// at once; Transporters later in that round do not move. Every Transition
// is appended to the history in the order it was produced, and the cost of
// each hop is summed into Result.TotalCost.
//
// Options:
//
//	WithTransporters(n)   - number of agents (default 1).
//	WithPolicy(kind)      - transport.PolicyGreedy (default) or PolicyRandom.
//	WithSeed(seed)        - seed of the random policy stream (0 ⇒ default seed).
//	WithRand(r)           - explicit random stream; overrides WithSeed.
//	WithStartNodes(ids…)  - start node per agent; default k-th agent on k-th node.
//	WithLogger(l)         - zap logger (default no-op).
//	WithObserver(o)       - hook called on every move and at halt.
//	WithRunID(id)         - run identity for logs (default random UUID).
//
// Errors:
//
//	ErrNilGraph             - graph is nil.
//	ErrTooManyTransporters  - more agents than nodes and no explicit start nodes.
//	ErrStartNode            - a start node id is unknown or the list length mismatches.
package sim
