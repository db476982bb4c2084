// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/haulsim/network"
)

// Policy decides where a Transporter goes next.
type Policy interface {
	// Kind names the policy.
	Kind() PolicyKind

	// NextLink extracts the Link to service from n, which has demand.
	NextLink(n *network.Node) (*network.Link, bool)

	// NextNode picks the destination of an empty trip from a non-empty
	// candidate list given in Graph order.
	NextNode(from *network.Node, candidates []*network.Node) *network.Node
}

// ParsePolicyKind accepts "greedy" or "random" (case-insensitive, trimmed).
func ParsePolicyKind(s string) (PolicyKind, error) {
	switch k := PolicyKind(strings.ToLower(strings.TrimSpace(s))); k {
	case PolicyGreedy, PolicyRandom:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// NewPolicy returns the Policy for kind. Every kind other than PolicyGreedy
// selects Random; callers that need strict names validate with
// ParsePolicyKind first. A nil rng falls back to RNGFromSeed(0).
func NewPolicy(kind PolicyKind, rng *rand.Rand) Policy {
	if kind == PolicyGreedy {
		return Greedy{}
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}
	return &Random{rng: rng}
}

// Greedy always takes the cheapest Link and the nearest Node.
type Greedy struct{}

// Kind returns PolicyGreedy.
func (Greedy) Kind() PolicyKind { return PolicyGreedy }

// NextLink pops the cheapest remaining Link.
func (Greedy) NextLink(n *network.Node) (*network.Link, bool) {
	return n.GreedyLink()
}

// NextNode returns the candidate closest to from. Only a strictly smaller
// distance replaces the current best, so the first candidate wins ties.
func (Greedy) NextNode(from *network.Node, candidates []*network.Node) *network.Node {
	var best *network.Node
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d := network.Distance(from, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Random draws Links and Nodes uniformly from its own stream.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random policy drawing from rng.
// Panics on nil; use NewPolicy for the seeded default.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		panic("transport: NewRandom(nil)")
	}
	return &Random{rng: rng}
}

// Kind returns PolicyRandom.
func (*Random) Kind() PolicyKind { return PolicyRandom }

// NextLink pops a uniformly random remaining Link.
func (r *Random) NextLink(n *network.Node) (*network.Link, bool) {
	return n.RandomLink(r.rng)
}

// NextNode returns a uniformly random candidate.
func (r *Random) NextNode(_ *network.Node, candidates []*network.Node) *network.Node {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[r.rng.Intn(len(candidates))]
}
