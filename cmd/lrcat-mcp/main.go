package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lrcat/lrcat-go/internal/config"
	"github.com/lrcat/lrcat-go/internal/mcp"
	"github.com/lrcat/lrcat-go/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("lrcat MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lrcat-mcp: %v\n", err)
		os.Exit(2)
	}

	// The flag overrides LRCAT_CATALOG
	flag.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "default catalog for calls that name none")
	flag.Parse()

	// Logs go to stderr, stdout is reserved for the MCP protocol
	logger := cfg.Logger("mcp")
	logger.Info("lrcat MCP Server v%s starting...", version)
	logger.Info("Build Mode: %s, Driver: %s", storage.BuildMode, storage.DriverName)
	if cfg.Catalog != "" {
		logger.Info("Default catalog: %s", cfg.Catalog)
	}

	server, err := mcp.NewServer(cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("Failed to create MCP server: %v", err)
	}

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		logger.Info("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		logger.Info("Received signal %v, shutting down gracefully...", sig)
		cancel()
		if err := server.Close(); err != nil {
			logger.Error("Failed to close catalogs: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server error: %v", err)
		}
	}

	logger.Info("Server stopped")
}
