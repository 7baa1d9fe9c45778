package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_LevelFilter(t *testing.T) {
	t.Setenv("ENV", "")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogTo(&buf, WarnLevel, false)
	require.Equal(WarnLevel, l.Level())

	l.Info("dropped")
	require.Zero(buf.Len())

	l.Warn("frame rejected", "device", "0001")
	var rec map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &rec))
	require.Equal("frame rejected", rec["msg"])
	require.Equal("0001", rec["device"])
	require.Contains(rec, "ts")

	l.SetLevel(DebugLevel)
	require.Equal(DebugLevel, l.Level())
}

func TestSlogLogger_With(t *testing.T) {
	t.Setenv("ENV", "")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogTo(&buf, InfoLevel, false).With("session", "s1")
	l.Info("hello")

	var rec map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &rec))
	require.Equal("s1", rec["session"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    Level
		expectErr   bool
	}{
		{description: "debug", input: "debug", expected: DebugLevel},
		{description: "upper case", input: "WARN", expected: WarnLevel},
		{description: "empty defaults to info", input: "", expected: InfoLevel},
		{description: "error", input: "error", expected: ErrorLevel},
		{description: "unknown", input: "verbose", expected: InfoLevel, expectErr: true},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		lv, err := ParseLevel(test.input)
		if test.expectErr {
			require.Error(err)
		} else {
			require.NoError(err)
		}
		require.Equal(test.expected, lv)
	}
}
