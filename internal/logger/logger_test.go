package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmail/internal/config"
)

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf).WithComponent("mail")

	l.Info().Msg("sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mail", entry["component"])
	assert.Equal(t, "sent", entry["message"])
}

func TestWailsAdapter_MapsLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWailsAdapter(NewWriter(&buf))

	adapter.Warning("careful")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "wails", entry["component"])
}

func TestNew_WritesRollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptmail.log")
	l := New(config.LogConfig{Level: "debug", Format: "json", File: path})

	l.Info().Msg("hello")
	require.NoError(t, l.Close())

	assert.FileExists(t, path)
}

func TestNewFileOnly_WithoutFileDiscards(t *testing.T) {
	l := NewFileOnly(config.LogConfig{Level: "info"})

	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
	assert.NoError(t, l.Close())
}

func TestNewFileOnly_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	l := NewFileOnly(config.LogConfig{Level: "info", File: path})

	l.Info().Msg("hello")
	require.NoError(t, l.Close())

	assert.FileExists(t, path)
}
