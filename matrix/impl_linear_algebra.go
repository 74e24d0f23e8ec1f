// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic of Dense: element-wise addition and
// subtraction, matrix multiplication, scalar multiplication and transpose.
// All operations perform strict fail-fast validation and return clear errors
// on dimension problems.
//
// Notes:
//   - Validation always precedes allocation; on error the result is nil, so a
//     structurally invalid or partially computed matrix is never observable.
//   - Operands are never mutated; every result owns a fresh buffer.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opDotScalar = "DotScalar"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[i] = f(a[i], b[i]) over two same-shape matrices.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); allocate result of the shared shape.
//   - Stage 2: single flat loop 0..r*c-1 (row-major order equals i→j order).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise[T Number](a, b *Dense[T], f func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense[T](a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil operand).
//   - ErrDimensionMismatch (malformed operand or shapes differ). Shapes are
//     never coerced by truncation or padding.
//
// Complexity: O(r*c).
func (m *Dense[T]) Add(other *Dense[T]) (*Dense[T], error) {
	return elementwise(m, other, func(x, y T) T { return x + y }, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh matrix.
// Same error contract as Add.
func (m *Dense[T]) Sub(other *Dense[T]) (*Dense[T], error) {
	return elementwise(m, other, func(x, y T) T { return x - y }, opSub)
}

// Dot performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (both well-formed, A.Cols == B.Rows).
//   - Stage 2: for each (i,j) accumulate Σ_k A[i,k]*B[k,j] starting from zero,
//     in increasing k, and write the cell exactly once.
//
// Behavior highlights:
//   - Summation order is fixed (k ascending), which matters only for element
//     types whose arithmetic is not associative (e.g. floating point).
//   - An inner dimension of 0 yields an all-zero rows×cols result.
//
// Inputs:
//   - m:     left matrix (r × n).
//   - other: right matrix (n × c).
//
// Returns:
//   - *Dense: new r × c matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (malformed operand),
//     ErrIncompatibleDimensions (m.Cols() != other.Rows()),
//     ErrBadShape (Rows()*other.Cols() overflows int).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Dot(other *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	rows, inner, cols := m.r, m.c, other.c
	if !shapeFits(rows, cols) {
		return nil, matrixErrorf(opDot, fmt.Errorf("result %dx%d overflows int: %w", rows, cols, ErrBadShape))
	}
	res := newDense[T](rows, cols)

	var (
		i, j, k int // loop iterators
		sum     T
	)
	for i = 0; i < rows; i++ {
		rowOffsetA := i * inner
		for j = 0; j < cols; j++ {
			sum = zero[T]()
			for k = 0; k < inner; k++ {
				sum += m.data[rowOffsetA+k] * other.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// DotScalar returns a new matrix whose elements are k * m[i,j].
// The scalar is the left operand of every multiplication.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (malformed receiver).
// Complexity: O(r*c).
func (m *Dense[T]) DotScalar(k T) (*Dense[T], error) {
	if err := m.validateDims(); err != nil {
		return nil, matrixErrorf(opDotScalar, err)
	}

	res := newDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = k * v
	}

	return res, nil
}

// Transpose returns mᵀ: a Cols()×Rows() matrix whose row i equals column i of m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (malformed receiver).
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() (*Dense[T], error) {
	if err := m.validateDims(); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDense[T](cols, rows) // dims flipped

	// data[i*cols + j] → res.data[j*rows + i]
	var baseSrc int
	for i := 0; i < rows; i++ {
		baseSrc = i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
