// SPDX-License-Identifier: MIT

// Package render writes a matrix.Dense as human-readable text.
//
// Two formats are available:
//
//   - FormatDebug: one bracketed row per line, e.g. "[1, 2, 1]" (the default,
//     identical to Dense.String for default options).
//   - FormatTable: an aligned table with a column-index header, drawn by
//     github.com/olekukonko/tablewriter.
//
// Output is configured with functional options (WithFormat, WithSeparator,
// WithPrecision). Neither format is meant to be parsed back.
//
//	_ = render.Write(os.Stdout, m, render.WithFormat(render.FormatTable))
package render
