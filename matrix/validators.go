// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep kernels minimal by delegating nil/self-consistency/compatibility checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence: self(a) → self(b) → cross-check.

package matrix

import (
	"fmt"
	"math"
)

// shapeFits reports whether r*c is representable as an int. Callers guarantee r,c >= 0.
func shapeFits(r, c int) bool {
	return r == 0 || c <= math.MaxInt/r
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims checks that m is internally consistent.
//
// Inputs: any *Dense, possibly nil.
// Errors:
//   - ErrNilMatrix if m == nil.
//   - ErrDimensionMismatch if a dimension is negative, Rows()*Cols() overflows
//     int, or the buffer length disagrees with Rows()*Cols().
//
// Complexity: O(1). The flat buffer makes per-row uniformity a length check.
func (m *Dense[T]) validateDims() error {
	if m == nil {
		return validatorErrorf("validateDims", ErrNilMatrix)
	}
	if m.r < 0 || m.c < 0 {
		return validatorErrorf("validateDims",
			fmt.Errorf("negative shape %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	if !shapeFits(m.r, m.c) {
		return validatorErrorf("validateDims",
			fmt.Errorf("%dx%d overflows int: %w", m.r, m.c, ErrDimensionMismatch))
	}
	if len(m.data) != m.r*m.c {
		return validatorErrorf("validateDims",
			fmt.Errorf("%dx%d holds %d elements: %w", m.r, m.c, len(m.data), ErrDimensionMismatch))
	}

	return nil
}

// Validate reports whether m is a well-formed matrix (see validateDims).
func (m *Dense[T]) Validate() error {
	return m.validateDims()
}

// ValidateSameShape – Composite: valid(a) → valid(b) → equal shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// Use for Add/Sub.
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if err := a.validateDims(); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := b.validateDims(); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows",
			fmt.Errorf("%d != %d: %w", a.r, b.r, ErrDimensionMismatch))
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns",
			fmt.Errorf("%d != %d: %w", a.c, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible – Composite: valid(a) → valid(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (malformed operand),
// ErrIncompatibleDimensions (inner mismatch).
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := a.validateDims(); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := b.validateDims(); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrIncompatibleDimensions))
	}

	return nil
}
