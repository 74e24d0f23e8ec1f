// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	_rowOpen   = "["
	_rowClose  = "]"
	_rowLabel  = "#"
	_emptyFmt  = "(empty %dx%d matrix)\n"
	_lineBreak = "\n"
)

// Write renders m to w as a newline-terminated block in the configured format.
//
// Errors:
//   - ErrNilMatrix for a nil m; matrix validation errors for a malformed m.
//   - Any error returned by w or by the table renderer.
//
// Complexity: O(r*c).
func Write[T matrix.Number](w io.Writer, m *matrix.Dense[T], opts ...Option) error {
	var buf bytes.Buffer
	if err := renderTo(&buf, m, gatherOptions(opts...)); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// Sprint returns the rendering of m without the trailing newline.
// For FormatDebug with default options it equals m.String().
func Sprint[T matrix.Number](m *matrix.Dense[T], opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := renderTo(&buf, m, gatherOptions(opts...)); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), _lineBreak), nil
}

// renderTo validates m once and dispatches on the format.
func renderTo[T matrix.Number](buf *bytes.Buffer, m *matrix.Dense[T], o Options) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	cells := formatCells(m, o.precision)
	switch o.format {
	case FormatTable:
		return writeTable(buf, cells, m.Rows(), m.Cols())
	default:
		writeDebug(buf, cells, o.separator)

		return nil
	}
}

// formatCells converts every element to its display string, row by row.
func formatCells[T matrix.Number](m *matrix.Dense[T], precision int) [][]string {
	src := m.ToSlices()
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = formatElem(v, precision)
		}
	}

	return out
}

// formatElem renders v with %v, or with a fixed precision for float32/float64.
func formatElem[T matrix.Number](v T, precision int) string {
	if precision >= 0 {
		switch x := any(v).(type) {
		case float64:
			return strconv.FormatFloat(x, 'f', precision, 64)
		case float32:
			return strconv.FormatFloat(float64(x), 'f', precision, 32)
		}
	}

	return fmt.Sprint(v)
}

// writeDebug writes "[a<sep>b<sep>c]" per row; a 0-row matrix is a single empty line.
func writeDebug(buf *bytes.Buffer, cells [][]string, sep string) {
	for i, row := range cells {
		if i > 0 {
			buf.WriteString(_lineBreak)
		}
		buf.WriteString(_rowOpen)
		buf.WriteString(strings.Join(row, sep))
		buf.WriteString(_rowClose)
	}
	buf.WriteString(_lineBreak)
}

// writeTable draws cells as a table whose header holds the column indices and
// whose first column holds the row indices. Empty shapes get a one-line note.
func writeTable(buf *bytes.Buffer, cells [][]string, rows, cols int) error {
	if rows == 0 || cols == 0 {
		fmt.Fprintf(buf, _emptyFmt, rows, cols)

		return nil
	}

	header := make([]any, 0, cols+1)
	header = append(header, _rowLabel)
	for j := 0; j < cols; j++ {
		header = append(header, strconv.Itoa(j))
	}

	body := make([][]string, rows)
	for i, row := range cells {
		body[i] = append([]string{strconv.Itoa(i)}, row...)
	}

	table := tablewriter.NewWriter(buf)
	table.Header(header...)
	if err := table.Bulk(body); err != nil {
		return fmt.Errorf("render: table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render: table: %w", err)
	}

	return nil
}
