// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense tests.
//   • Fail fast (t.Fatalf) on unexpected constructor errors to keep tests terse.

package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// overflowSide squared wraps int to exactly zero, so an overflowSide×overflowSide
// shape looks consistent with an empty buffer unless the product is checked.
const overflowSide = 1 << (strconv.IntSize / 2)

// MustNew builds a matrix from rows or fails the test.
func MustNew[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(rows)
	if err != nil {
		tb.Fatalf("matrix.New(%v): %v", rows, err)
	}

	return m
}

// MustOnes allocates an r×c all-ones matrix or fails the test.
func MustOnes[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Ones[T](r, c)
	if err != nil {
		tb.Fatalf("matrix.Ones(%d,%d): %v", r, c, err)
	}

	return m
}

// MustZeros allocates an r×c zero matrix or fails the test.
func MustZeros[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Zeros[T](r, c)
	if err != nil {
		tb.Fatalf("matrix.Zeros(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// sampleA is the 2×3 literal used throughout: row sums are 4 and 8.
func sampleA() [][]int32 {
	return [][]int32{
		{1, 2, 1},
		{4, 1, 3},
	}
}
