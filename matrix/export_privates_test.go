// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private constructors.
//
// Purpose:
//   - Let matrix_test build matrices whose recorded shape disagrees with their
//     buffer, a state no public constructor can produce, to exercise validateDims.
//   - Lives in a _test.go file, so it never widens the production API.

// NewMalformed_TestOnly returns a Dense with the given shape and buffer verbatim.
func NewMalformed_TestOnly[T Number](r, c int, data []T) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: data}
}
