// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat for an unrecognised format name.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrNilMatrix is returned when Write receives a nil matrix.
	ErrNilMatrix = errors.New("render: nil matrix")
)
