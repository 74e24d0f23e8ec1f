// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a small generic dense-matrix value type.
//
// The matrix package provides:
//
//   - Construction from rows (New) and the factories Zeros, Ones and Identity.
//   - Copying accessors Row, Col, At and ToSlices.
//   - Element-wise Add/Sub, the matrix product Dot, scalar DotScalar and Transpose,
//     plus function-style facades (Sum, Diff, Product, ScaleBy, T).
//   - A human-readable String rendering, one bracketed row per line.
//
// Elements are any integer, floating-point or complex type (see Number).
// Every operation returns a freshly allocated matrix; operands are never
// mutated and no two matrices share storage.
//
// Shape violations are returned as errors, never panics: match them with
// errors.Is against ErrDimensionMismatch, ErrIncompatibleDimensions,
// ErrIndexOutOfRange, ErrBadShape and ErrNilMatrix.
//
// The package targets small, correctness-focused code; it does no blocking,
// pivoting or parallel work.
//
// See the examples in this package for usage patterns.
package matrix
