// SPDX-License-Identifier: MIT
// Package: haulsim/transport
//
// rng.go - deterministic random streams for the random policy.
//
// Goals:
//   • Determinism: same seed ⇒ identical runs across platforms.
//   • Encapsulation: one factory; no time-based sources anywhere.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. A run owns its stream and
//     steps transporters one after another.

package transport

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no rng.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; one stream per run.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
