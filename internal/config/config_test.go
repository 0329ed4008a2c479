package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrcat/lrcat-go/internal/log"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{EnvLogLevel, EnvLogFile, EnvLogJSON, EnvCatalog} {
		t.Setenv(name, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, log.Warn, cfg.LogLevel)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/lrcat.log")
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(EnvCatalog, "/photos/Lightroom Catalog.lrcat")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel: log.Debug,
		LogFile:  "/tmp/lrcat.log",
		LogJSON:  true,
		Catalog:  "/photos/Lightroom Catalog.lrcat",
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"level", EnvLogLevel, "verbose"},
		{"json", EnvLogJSON, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lrcat.log")
	cfg := Config{LogLevel: log.Info, LogFile: file, LogJSON: true}

	l := cfg.Logger("dump")
	assert.Equal(t, "dump", l.Name)
	assert.Equal(t, log.Info, l.Level)
	assert.True(t, l.JSON)
	assert.Equal(t, file, l.File)
}
