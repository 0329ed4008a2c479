//go:build sqlite_wasm

package storage

// This file is compiled with the sqlite_wasm tag. SQLite runs as a
// WebAssembly module inside wazero, no C compiler needed.
//
// Build command:
//   go build -tags "sqlite_wasm" ./...
//
// Driver used: github.com/ncruces/go-sqlite3

import (
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration
	BuildMode = "wasm"
)
