// SPDX-License-Identifier: MIT

// Package logging builds the hclog loggers used by the command-line tools.
//
// Library packages never log; only cmd/ entry points create a logger here and
// hand it down explicitly.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when Options.Level is empty.
const DefaultLevel = "info"

// ErrUnknownLevel is returned for a level name hclog does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Options configures New.
type Options struct {
	Name    string    // logger name, printed as "name:" before each message
	Level   string    // trace|debug|info|warn|error|off; empty means DefaultLevel
	Output  io.Writer // nil means os.Stderr
	NoColor bool      // disable ANSI colour even on a terminal
	JSON    bool      // emit one JSON object per line
}

// New returns a logger configured from opts.
func New(opts Options) (hclog.Logger, error) {
	name := strings.TrimSpace(opts.Level)
	if name == "" {
		name = DefaultLevel
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("%q: %w", opts.Level, ErrUnknownLevel)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	color := hclog.AutoColor
	if opts.NoColor || opts.JSON {
		color = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		Output:     out,
		Color:      color,
		JSONFormat: opts.JSON,
	}), nil
}
