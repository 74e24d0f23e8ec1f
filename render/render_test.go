// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// TestSprint_DebugMatchesString ensures the default rendering equals Dense.String.
func TestSprint_DebugMatchesString(t *testing.T) {
	t.Parallel()

	ones, err := matrix.Ones[int32](3, 4)
	require.NoError(t, err)
	empty, err := matrix.Zeros[int32](0, 2)
	require.NoError(t, err)

	for _, m := range []*matrix.Dense[int32]{
		ones,
		empty,
		mustNew(t, [][]int32{{1, 2, 1}, {4, 1, 3}}),
	} {
		got, err := render.Sprint(m)
		require.NoError(t, err)
		require.Equal(t, m.String(), got)
	}
}

func TestWrite_DebugIsNewlineTerminated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, mustNew(t, [][]int{{1, 2}, {3, 4}})))
	require.Equal(t, "[1, 2]\n[3, 4]\n", buf.String())
}

func TestSprint_SeparatorAndPrecision(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]float64{{1, 2.5}, {-0.125, 3}})

	got, err := render.Sprint(m, render.WithSeparator(" "), render.WithPrecision(2))
	require.NoError(t, err)
	require.Equal(t, "[1.00 2.50]\n[-0.12 3.00]", got)

	// precision does not apply to integers
	got, err = render.Sprint(mustNew(t, [][]int{{7}}), render.WithPrecision(3))
	require.NoError(t, err)
	require.Equal(t, "[7]", got)
}

func TestSprint_Table(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]int32{{8, 8, 8, 8}, {16, 16, 16, 16}})
	got, err := render.Sprint(m, render.WithFormat(render.FormatTable))
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 2, "table must hold a header and both rows:\n%s", got)
	assert.Contains(t, got, "16")
	assert.Contains(t, got, "3") // last column index
	assert.NotContains(t, got, "[")

	var eights, sixteens int
	for _, line := range lines {
		eights += strings.Count(line, " 8 ")
		sixteens += strings.Count(line, "16")
	}
	assert.Equal(t, 4, sixteens)
	assert.GreaterOrEqual(t, eights, 2)
}

func TestSprint_TableEmpty(t *testing.T) {
	t.Parallel()

	m, err := matrix.Zeros[int](2, 0)
	require.NoError(t, err)
	got, err := render.Sprint(m, render.WithFormat(render.FormatTable))
	require.NoError(t, err)
	require.Equal(t, "(empty 2x0 matrix)", got)
}

func TestWrite_NilMatrix(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense[int]
	err := render.Write(&bytes.Buffer{}, m)
	require.ErrorIs(t, err, render.ErrNilMatrix)
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_PropagatesWriterError(t *testing.T) {
	t.Parallel()

	err := render.Write(failingWriter{}, mustNew(t, [][]int{{1}}))
	require.ErrorIs(t, err, errSink)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]render.Format{
		"debug":   render.FormatDebug,
		"TABLE":   render.FormatTable,
		" table ": render.FormatTable,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := render.ParseFormat("json")
	require.ErrorIs(t, err, render.ErrUnknownFormat)

	require.Equal(t, "table", render.FormatTable.String())
	require.Equal(t, "Format(9)", render.Format(9).String())
}
