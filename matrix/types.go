// SPDX-License-Identifier: MIT

// Package matrix: element type contract.
// This file contains ONLY the numeric constraint that parameterizes Dense and
// the two literal helpers (zero/one) the factories are built on.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Dense may hold.
//
// Every member supports the zero value, conversion from the constants 0 and 1,
// the operators + - *, copy by assignment and %v formatting. Named types are
// accepted through the ~ approximations carried by the constraints package.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// zero returns the additive identity of T.
func zero[T Number]() T {
	var z T // zero value of every Number is 0

	return z
}

// one returns the multiplicative identity of T.
func one[T Number]() T {
	return T(1) // 1 is representable by every member of Number
}
