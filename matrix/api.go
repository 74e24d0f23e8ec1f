// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide function-style entry points mirroring the Dense methods, handy
//     for chaining and for passing operations around as values.
//   - Avoid any logic duplication; each facade delegates to the method.

package matrix

// Sum is an alias for a.Add(b): element-wise a + b.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b): element-wise a − b.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Sub(b) }

// Product is an alias for a.Dot(b): matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Dot(b) }

// ScaleBy is an alias for m.DotScalar(k): k*m.
func ScaleBy[T Number](m *Dense[T], k T) (*Dense[T], error) { return m.DotScalar(k) }

// T is an alias for m.Transpose(): returns mᵀ.
func T[E Number](m *Dense[E]) (*Dense[E], error) { return m.Transpose() }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := m.validateDims(); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros[T](m.r, m.c)
}
