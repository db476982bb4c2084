// SPDX-License-Identifier: MIT

// Package builder turns node descriptors and a demand table into a
// network.Graph ready for simulation.
//
// Build creates one network.Node per NodeSpec (in the given order, which
// becomes the Graph iteration order) and then, walking the demand rows in
// order, registers exactly Count network.Links origin→destination on the
// origin Node. FromFile does the same after reading the demand table from
// disk with the demand package.
//
// Options:
//
//	WithLogger(l)        - debug-level construction logs (default: no-op).
//	WithoutSelfLoops()   - reject rows whose origin equals destination.
//
// Errors:
//
//	ErrUnknownNode           - a demand row references an id with no NodeSpec.
//	ErrNegativeCount         - a demand row asks for fewer than zero units.
//	ErrSelfLoop              - origin == destination under WithoutSelfLoops.
//	network.ErrDuplicateNode - two NodeSpecs share an id.
//	network.ErrInvalidLink   - a Link was registered on the wrong Node.
//	demand.ErrNotFound       - FromFile could not find the demand file.
//
// Any error aborts construction; no partial Graph is returned.
package builder
