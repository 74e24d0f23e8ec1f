// SPDX-License-Identifier: MIT

// Package linalg is a small, correctness-first dense matrix toolkit.
//
// What is in the box?
//
//	• matrix/   Dense[T], a generic row-major matrix over any integer,
//	            float or complex element type: construction, Zeros/Ones,
//	            Row/Col, Add/Sub, Dot, DotScalar, Transpose, String
//	• render/   debug-list and table renderers with functional options
//	• cmd/      matdemo, a worked example on the command line
//
// Guarantees:
//
//   - Shape violations are errors (errors.Is against matrix.Err*), never panics.
//   - Every operation returns a new matrix; operands are never mutated and no
//     two matrices share storage.
//   - Fixed loop orders, so results are reproducible bit for bit.
//
// Out of scope: sparse storage, pivoting, blocking/SIMD/parallel kernels,
// serialization, solving, determinants and inversion.
//
// Quick example:
//
//	a, _ := matrix.New([][]int32{{1, 2, 1}, {4, 1, 3}})
//	ones, _ := matrix.Ones[int32](3, 4)
//	p, _ := a.Dot(ones) // [[4 4 4 4] [8 8 8 8]]
//
//	go get github.com/katalvlaran/linalg
package linalg
