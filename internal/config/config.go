// Package config reads the settings shared by the binaries from the
// environment. Command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lrcat/lrcat-go/internal/log"
)

// Environment variables
const (
	EnvLogLevel = "LRCAT_LOG_LEVEL"
	EnvLogFile  = "LRCAT_LOG_FILE"
	EnvLogJSON  = "LRCAT_LOG_JSON"
	EnvCatalog  = "LRCAT_CATALOG"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime settings
type Config struct {
	LogLevel log.LogLevel
	LogFile  string
	LogJSON  bool
	// Catalog is the catalog the tool server uses when a call names none.
	Catalog string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{LogLevel: log.Warn}
}

// FromEnv reads the LRCAT_* variables. Unset variables keep their default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	cfg.LogFile = os.Getenv(EnvLogFile)

	if v := os.Getenv(EnvLogJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogJSON, err)
		}
		cfg.LogJSON = b
	}

	cfg.Catalog = os.Getenv(EnvCatalog)

	return cfg, nil
}

// Logger builds the logger described by the configuration. It writes to
// stderr and to LogFile when set.
func (c Config) Logger(name string) *log.Logger {
	l := log.NewLogger(name, c.LogLevel, c.LogFile, false)
	l.JSON = c.LogJSON
	return l
}
