// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/render"
)

// demoRows is the left operand of the product.
var demoRows = [][]int32{
	{1, 2, 1},
	{4, 1, 3},
}

// nopLogger is used when runDemo is called without a logger.
var nopLogger = hclog.NewNullLogger()

// step is one named matrix printed by the demo.
type step struct {
	name string
	m    *matrix.Dense[int32]
}

// runDemo computes the demo matrices and writes them to w in order:
// ones, product, scaled product, transposed product.
func runDemo(w io.Writer, log hclog.Logger, format render.Format, scale int32) error {
	if log == nil {
		log = nopLogger
	}

	steps, err := buildSteps(scale)
	if err != nil {
		return err
	}

	for _, s := range steps {
		log.Debug("rendering", "step", s.name, "rows", s.m.Rows(), "cols", s.m.Cols())
		if err = render.Write(w, s.m, render.WithFormat(format)); err != nil {
			return fmt.Errorf("render %s: %w", s.name, err)
		}
	}

	return nil
}

// buildSteps performs the arithmetic; any shape error aborts before output starts.
func buildSteps(scale int32) ([]step, error) {
	a, err := matrix.New(demoRows)
	if err != nil {
		return nil, fmt.Errorf("build left operand: %w", err)
	}
	ones, err := matrix.Ones[int32](3, 4)
	if err != nil {
		return nil, fmt.Errorf("build ones: %w", err)
	}
	prod, err := a.Dot(ones)
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}
	scaled, err := prod.DotScalar(scale)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	tr, err := prod.Transpose()
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	return []step{
		{"ones", ones},
		{"product", prod},
		{"scaled", scaled},
		{"transposed", tr},
	}, nil
}
