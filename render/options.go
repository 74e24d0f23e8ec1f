// SPDX-License-Identifier: MIT

// Package render: functional configuration for the renderers. This file defines:
//   - Format and its parser,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package render

import (
	"fmt"
	"strings"
)

// Format selects the textual layout produced by Write.
type Format int

const (
	// FormatDebug renders one bracketed, separator-joined row per line.
	FormatDebug Format = iota
	// FormatTable renders an aligned table with a column-index header.
	FormatTable
)

var formatNames = [...]string{
	FormatDebug: "debug",
	FormatTable: "table",
}

// String returns the flag spelling of f.
func (f Format) String() string {
	if f.valid() {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) valid() bool {
	return f >= FormatDebug && int(f) < len(formatNames)
}

// ParseFormat maps a case-insensitive name ("debug", "table") to a Format.
// Returns ErrUnknownFormat otherwise.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Format(f), nil
		}
	}

	return FormatDebug, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the layout used when WithFormat is not given.
	DefaultFormat = FormatDebug

	// DefaultSeparator joins elements inside a debug row.
	DefaultSeparator = ", "

	// DefaultPrecision < 0 keeps the shortest %v representation of floats.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFormatInvalid    = "render: WithFormat: unknown format"
	panicSeparatorInvalid = "render: WithSeparator: separator must not contain a newline"
	panicPrecisionInvalid = "render: WithPrecision: precision must be >= -1"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	format    Format // DefaultFormat
	separator string // DefaultSeparator
	precision int    // DefaultPrecision
}

// WithFormat selects the output layout. Panics on a value outside the Format enum.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithSeparator sets the element separator of debug rows.
// Panics if sep contains a newline, which would break the one-row-per-line layout.
func WithSeparator(sep string) Option {
	if strings.ContainsAny(sep, "\r\n") {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// WithPrecision fixes the number of digits after the decimal point for
// float32/float64 elements (-1 restores the shortest representation).
// Other element types ignore it. Panics if p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// gatherOptions applies user setters in order on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		format:    DefaultFormat,
		separator: DefaultSeparator,
		precision: DefaultPrecision,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
