package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", Debug},
		{"INFO", Info},
		{"warning", Warn},
		{" Error ", Error},
		{"fatal", Fatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	lvl, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, Warn, lvl)
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New("catalog", Info, &buf)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Warn("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO  [catalog] shown 2")
	assert.Contains(t, out, "WARN  [catalog] shown 3")
	assert.NotContains(t, out, "\033[")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("dump", Debug, &buf)
	l.JSON = true

	l.Named("keywords").Debug("loaded %d", 5)

	var entry logEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "DEBUG", entry.Level)
	assert.Equal(t, "dump/keywords", entry.Logger)
	assert.Equal(t, "loaded 5", entry.Message)
}

func TestLogger_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lrcat.log")
	l := NewLogger("test", Info, file, true)
	l.Info("to file")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO  [test] to file")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing %s", strings.Repeat("x", 3))
	assert.Equal(t, Fatal+1, l.Level)
}
