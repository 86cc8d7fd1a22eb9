package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "picker"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"mode": "dates"})
	log.Info("selection changed", "key", "2024-03-15", "size", 2)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "selection changed", entry["message"])
	require.Equal(t, "picker", entry["component"])
	require.Equal(t, "dates", entry["mode"])
	require.Equal(t, "2024-03-15", entry["key"])
	require.EqualValues(t, 2, entry["size"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear", "scene", "month")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "value rejected", "input", "2024-99")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "value rejected", entry["message"])
	require.Equal(t, "2024-99", entry["input"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored", "k", "v")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
	require.NotPanics(t, func() { Nop().Warn("dropped", "odd") })
}
