// SPDX-License-Identifier: MIT

// Package transport implements the agents of a haulsim run.
//
// A Transporter stands on one network.Node and is either loaded or empty.
// Each Step it:
//
//  1. remembers whether it arrived loaded (that package is now dropped off);
//  2. if the current Node still has outgoing demand, picks up one package:
//     the Policy chooses a Link, the Transporter becomes loaded and heads to
//     the Link's end;
//  3. otherwise travels empty to a Node that still has demand, chosen by the
//     Policy among all such Nodes in Graph order. If there is none, the step
//     reports false and the Transporter is left exactly as it was;
//  4. emits a Transition and moves.
//
// Policies:
//
//	Greedy - cheapest Link; nearest Node (strictly closer wins, first in Graph order on ties).
//	Random - uniform Link; uniform Node. Draws come from an injected *rand.Rand.
//
// Determinism: with the same Graph, Policy kind and seed, a run always
// produces the same Transitions.
package transport
