// SPDX-License-Identifier: MIT

package transport

import "errors"

// Sentinel errors for the transport package.
var (
	// ErrUnknownPolicy indicates a policy name other than "greedy" or "random".
	ErrUnknownPolicy = errors.New("transport: unknown policy")

	// ErrBadTransition indicates text that is not a valid Transition line.
	ErrBadTransition = errors.New("transport: malformed transition")
)

// PolicyKind names a link-selection policy.
type PolicyKind string

const (
	// PolicyGreedy always takes the cheapest option.
	PolicyGreedy PolicyKind = "greedy"

	// PolicyRandom draws uniformly among the available options.
	PolicyRandom PolicyKind = "random"
)

// String returns the policy name.
func (k PolicyKind) String() string { return string(k) }
