// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation MUST return (a wrap of) one of these sentinels and
// tests MUST check them via errors.Is. No operation panics on caller errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with an op tag
// (see matrixErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> self-consistency (DimensionMismatch) -> cross-operand checks
// (DimensionMismatch / IncompatibleDimensions) -> index bounds.

var (
	// ErrDimensionMismatch is returned when a matrix's recorded shape disagrees
	// with its stored data, when constructor rows have differing lengths, or
	// when two operands required to share a shape (Add/Sub) do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleDimensions is returned by Dot when the inner dimensions
	// disagree (a.Cols() != b.Rows()).
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions for product")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid bounds.
	// Public accessors (Row/Col/At) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a factory or product is asked for a negative
	// dimension or a shape whose element count overflows int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
