package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer

	log := NewWithWriter(Config{Level: "warn"}, &buf)
	log.Info().Msg("dropped")
	log.Warn().Str("component", "selic").Msg("fallback rate in use")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "selic", entry["component"])
	assert.Equal(t, "fallback rate in use", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_Pretty(t *testing.T) {
	restoreGlobalLevel(t)
	var buf bytes.Buffer

	log := NewWithWriter(Config{Level: "info", Pretty: true}, &buf)
	log.Info().Msg("API listening")

	assert.Contains(t, buf.String(), "API listening")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
