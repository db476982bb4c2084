// SPDX-License-Identifier: MIT

// Package demand reads transport demand tables.
//
// A demand table is comma-separated text with one header row followed by
// rows of three integer columns:
//
//	origin,destination,count
//	1,2,2
//	1,3,1
//
// Each row asks for count packages to be moved from origin to destination;
// the builder package turns every unit into one network.Link. Row order is
// preserved because it fixes Link insertion order and therefore greedy
// tie-breaking.
//
// Errors:
//
//	ErrNotFound    - the demand file does not exist; the message carries the path.
//	ErrInvalidRow  - a row has the wrong shape, a non-integer cell, or a negative count.
//	ErrEmptyTable  - the input has no header row.
package demand
