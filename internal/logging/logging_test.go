// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Name: "matdemo", Level: "info", Output: &buf, NoColor: true})
	require.NoError(t, err)

	log.Debug("hidden detail")
	log.Info("computed product", "rows", 2, "cols", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "matdemo: computed product")
	assert.Contains(t, out, "rows=2")
	assert.Contains(t, out, "cols=4")
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Output: &buf, NoColor: true})
	require.NoError(t, err)
	assert.True(t, log.IsInfo())
	assert.False(t, log.IsDebug())
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Name: "matdemo", Level: "debug", Output: &buf, JSON: true})
	require.NoError(t, err)

	log.Debug("rendering", "step", "ones")
	out := buf.String()
	assert.Contains(t, out, `"@message":"rendering"`)
	assert.Contains(t, out, `"step":"ones"`)
	assert.Contains(t, out, `"@level":"debug"`)
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "verbose"})
	require.ErrorIs(t, err, ErrUnknownLevel)
}
