// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/Col/At return errors instead of panicking.
//   - Keep value semantics: every Dense owns its buffer, accessors hand out copies.
//
// Complexity quicksheet:
//   - New/Zeros/Ones: O(r*c); At: O(1); Row: O(c); Col: O(r); Clone/ToSlices: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxZeros = "Zeros"
	ctxOnes  = "Ones"
	ctxIdent = "Identity"
	ctxAt    = "At"
	ctxRow   = "Row"
	ctxCol   = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowJoin  = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and the offending index.
func denseErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}

// Dense is a rectangular matrix of T stored in row-major order.
//   - r,c hold dimensions (rows, cols), both >= 0 and fixed at construction.
//   - data is a flat buffer of length r*c (offset = i*c + j) owned by this value only.
//
// The zero value is a valid 0×0 matrix. All operations return new matrices
// and never mutate their operands.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// newDense allocates an r×c zero matrix. Callers guarantee r,c >= 0.
func newDense[T Number](r, c int) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: make([]T, r*c)}
}

// New builds a matrix from a rectangular slice of rows.
// MAIN DESCRIPTION:
//   - Shape is derived from the input: Rows() = len(rows), Cols() = len(rows[0]).
//   - The input is deep-copied; later changes to rows are not observed.
//
// Implementation:
//   - Stage 1: every row length must equal len(rows[0]); otherwise ErrDimensionMismatch.
//   - Stage 2: allocate one flat buffer and copy each row into its stride.
//
// Behavior highlights:
//   - nil or empty input yields a 0×0 matrix.
//   - A single empty row ([][]T{{}}) yields a 1×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch naming the first ragged row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDense[T](0, 0), nil
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctxNew,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
	}

	m := newDense[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Zeros returns an n×p matrix whose every element is the zero value of T.
// Returns ErrBadShape if n or p is negative or n*p overflows int.
func Zeros[T Number](n, p int) (*Dense[T], error) {
	return filled(ctxZeros, n, p, zero[T]())
}

// Ones returns an n×p matrix whose every element is 1.
// Returns ErrBadShape if n or p is negative or n*p overflows int.
func Ones[T Number](n, p int) (*Dense[T], error) {
	return filled(ctxOnes, n, p, one[T]())
}

// Identity returns the n×n matrix with ones on the diagonal and zeros elsewhere.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := filled(ctxIdent, n, n, zero[T]())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one[T]()
	}

	return m, nil
}

// filled validates the shape and allocates an n×p matrix holding v everywhere.
func filled[T Number](tag string, n, p int, v T) (*Dense[T], error) {
	if n < 0 || p < 0 {
		return nil, matrixErrorf(tag, fmt.Errorf("%dx%d: %w", n, p, ErrBadShape))
	}
	if !shapeFits(n, p) {
		return nil, matrixErrorf(tag, fmt.Errorf("%dx%d overflows int: %w", n, p, ErrBadShape))
	}
	m := newDense[T](n, p)
	if v != zero[T]() { // make() already zero-filled the buffer
		for i := range m.data {
			m.data[i] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows; 0 for a nil matrix.
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns; 0 for a nil matrix.
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape returns (Rows(), Cols()).
func (m *Dense[T]) Shape() (int, int) {
	return m.Rows(), m.Cols()
}

// At returns the element at (i, j).
// Returns ErrIndexOutOfRange if i ∉ [0,Rows()) or j ∉ [0,Cols()).
func (m *Dense[T]) At(i, j int) (T, error) {
	if err := m.validateDims(); err != nil {
		return zero[T](), matrixErrorf(ctxAt, err)
	}
	if i < 0 || i >= m.r {
		return zero[T](), fmt.Errorf("Dense.%s(%d,%d): row: %w", ctxAt, i, j, ErrIndexOutOfRange)
	}
	if j < 0 || j >= m.c {
		return zero[T](), fmt.Errorf("Dense.%s(%d,%d): col: %w", ctxAt, i, j, ErrIndexOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Rows().
//
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := m.validateDims(); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, ErrIndexOutOfRange)
	}

	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, one element gathered from each row.
// Returns ErrIndexOutOfRange if j < 0 or j >= Cols().
//
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if err := m.validateDims(); err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, j, ErrIndexOutOfRange)
	}

	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of m. A nil receiver yields nil.
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// ToSlices returns the elements as freshly allocated rows.
// A nil receiver yields nil.
func (m *Dense[T]) ToSlices() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and other have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
// Each row is rendered as a bracketed, comma-separated list of its elements
// (%v) and rows are joined by "\n" with no trailing newline:
//
//	[1, 2, 1]
//	[4, 1, 3]
//
// A 0×0 matrix renders as the empty string.
//
// Floats use Go's shortest %v form, so 1.0 renders as "1" and 2.5 as "2.5";
// render.WithPrecision fixes the number of decimals when that matters.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowJoin)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
