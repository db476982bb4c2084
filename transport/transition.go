// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"strconv"
	"strings"
)

// Transition is the log record of one Transporter step.
//
// NodeID is the node departed from. Unloaded reports that a package carried
// into NodeID was dropped there; Loaded reports that the Transporter left
// NodeID carrying a package.
type Transition struct {
	TransporterID int
	NodeID        int
	Unloaded      bool
	Loaded        bool
}

// String renders "transporter,node,unloaded,loaded" with 0/1 flags.
func (t Transition) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.TransporterID, t.NodeID, flag(t.Unloaded), flag(t.Loaded))
}

// MarshalText implements encoding.TextMarshaler with the String format.
func (t Transition) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the String format.
func (t *Transition) UnmarshalText(b []byte) error {
	parts := strings.Split(strings.TrimSpace(string(b)), ",")
	if len(parts) != 4 {
		return fmt.Errorf("%w: %q", ErrBadTransition, b)
	}

	var vals [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrBadTransition, b, err)
		}
		vals[i] = v
	}
	if (vals[2] != 0 && vals[2] != 1) || (vals[3] != 0 && vals[3] != 1) {
		return fmt.Errorf("%w: flags must be 0 or 1: %q", ErrBadTransition, b)
	}

	*t = Transition{
		TransporterID: vals[0],
		NodeID:        vals[1],
		Unloaded:      vals[2] == 1,
		Loaded:        vals[3] == 1,
	}

	return nil
}

// Move is one successful step: the Transition plus where the Transporter
// went and what the hop cost.
type Move struct {
	Transition
	To   int     // destination node id
	Cost float64 // Link cost for a pickup, Euclidean distance for an empty trip
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
