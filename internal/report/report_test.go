package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtsp/tsp"
)

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("warn", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Named("tsp").Info("hidden")
	log.Named("tsp").Warn("shown", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"name":"tsp"`)
	assert.Contains(t, out, `"n":3`)

	buf.Reset()
	log, err = newLogger("DEBUG", "console", zapcore.AddSync(&buf))
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger("loud", "console")
	require.Error(t, err)

	_, err = NewLogger("info", "xml")
	require.Error(t, err)
}

func TestTime(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(obsCore)

	done := Time(log, "load")
	var err error
	done(&err)

	err = errors.New("boom")
	Time(log, "solve")(&err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "operation finished", entries[0].Message)
	assert.Equal(t, "load", entries[0].ContextMap()["op"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []Entry{
		{Algorithm: tsp.Backtrack, Result: tsp.Result{Tour: []int{0, 1, 2, 0}, Cost: 12.5}},
		{Algorithm: tsp.NearestNeighbor, Result: tsp.Result{Tour: []int{0, 1}, Cost: 1, Partial: true}},
		{Algorithm: tsp.Christofides, Result: tsp.Result{Cost: tsp.NoTour}, Err: tsp.ErrNoHamiltonianCycle},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	assert.Contains(t, lines[1], "12.50")
	assert.Contains(t, lines[1], "0 -> 1 -> 2 -> 0")
	assert.Contains(t, lines[2], "partial")
	assert.Contains(t, lines[3], "no tour")
}

func TestFormatTour(t *testing.T) {
	assert.Equal(t, "", FormatTour(nil))
	assert.Equal(t, "7", FormatTour([]int{7}))
}
