package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, FormatJSON)

	l.Info("user signed in", "user_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "user signed in", line["msg"])
	assert.Equal(t, float64(7), line["user_id"])
}

func TestNewWithWriter_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "yaml")

	l.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelWarn), FormatText)

	l.Info("dropped")
	l.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
