package lol

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	defer Level.Store(Level.Load())
	NoTimeStomp.Store(true)
	defer NoTimeStomp.Store(false)

	var buf bytes.Buffer
	l, c, e := New(&buf)

	Level.Store(Warn)
	l.I.F("hidden %d", 1)
	l.W.F("shown %d", 2)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown 2")
	require.Contains(t, buf.String(), "log_test.go")

	buf.Reset()
	require.False(t, c.E(nil))
	require.True(t, c.D(errors.New("quiet")))
	require.Empty(t, buf.String())
	require.True(t, c.E(errors.New("loud")))
	require.Contains(t, buf.String(), "loud")

	buf.Reset()
	err := e.D("not printed %s", "x")
	require.EqualError(t, err, "not printed x")
	require.Empty(t, buf.String())
}

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, Trace, GetLogLevel("trace"))
	require.Equal(t, Off, GetLogLevel("off"))
	require.Equal(t, Info, GetLogLevel("nonsense"))
}
