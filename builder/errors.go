// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrUnknownNode indicates a demand row references a node id that has no
// NodeSpec. Usage: if errors.Is(err, ErrUnknownNode) { /* fix the table */ }.
var ErrUnknownNode = errors.New("builder: demand references unknown node")

// ErrNegativeCount indicates a demand row with a unit count below zero.
var ErrNegativeCount = errors.New("builder: negative demand count")

// ErrSelfLoop indicates a demand row whose origin equals its destination
// while WithoutSelfLoops is in effect.
var ErrSelfLoop = errors.New("builder: self-loop demand not allowed")

// builderErrorf prefixes an error with the method that produced it while
// keeping the wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
