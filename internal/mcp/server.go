package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/lrcat/lrcat-go/internal/log"
	"github.com/lrcat/lrcat-go/pkg/catalog"
)

const (
	// ServerName is the MCP server name
	ServerName = "lrcat-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the catalogs it has opened
type Server struct {
	mcp *server.MCPServer
	log *log.Logger

	// defaultCatalog is used by calls that don't name a catalog
	defaultCatalog string

	mu       sync.Mutex
	catalogs map[string]*openCatalog
}

// openCatalog serializes the calls made on one catalog. The catalog itself
// is not safe for concurrent use.
type openCatalog struct {
	mu  sync.Mutex
	cat *catalog.Catalog
}

// NewServer creates a new MCP server instance. defaultCatalog may be empty,
// calls must then name their catalog.
func NewServer(defaultCatalog string, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Discard()
	}
	if defaultCatalog != "" {
		abs, err := filepath.Abs(defaultCatalog)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
		}
		defaultCatalog = abs
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:            mcpServer,
		log:            logger,
		defaultCatalog: defaultCatalog,
		catalogs:       make(map[string]*openCatalog),
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.Close() }()
	return server.ServeStdio(s.mcp)
}

// Close closes every catalog opened by the server.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for path, oc := range s.catalogs {
		oc.mu.Lock()
		if err := oc.cat.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		oc.mu.Unlock()
		delete(s.catalogs, path)
	}
	return errors.Join(errs...)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(catalogInfoTool(), s.handleCatalogInfo)
	s.mcp.AddTool(listKeywordsTool(), s.handleListKeywords)
	s.mcp.AddTool(listFoldersTool(), s.handleListFolders)
	s.mcp.AddTool(listCollectionsTool(), s.handleListCollections)
	s.mcp.AddTool(collectionImagesTool(), s.handleCollectionImages)
	s.mcp.AddTool(parseLronTool(), s.handleParseLron)
	return nil
}

// withCatalog runs fn with exclusive use of the catalog at path, opening
// and caching it on first use. An empty path selects the default catalog.
func (s *Server) withCatalog(ctx context.Context, path string, fn func(*catalog.Catalog) error) error {
	oc, err := s.catalog(ctx, path)
	if err != nil {
		return err
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return fn(oc.cat)
}

func (s *Server) catalog(ctx context.Context, path string) (*openCatalog, error) {
	if path == "" {
		path = s.defaultCatalog
	}
	if err := validatePath(path); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if oc, ok := s.catalogs[path]; ok {
		return oc, nil
	}

	cat := catalog.New(path, catalog.WithLogger(s.log.Named(filepath.Base(path))))
	if err := cat.Open(ctx); err != nil {
		return nil, err
	}
	if err := cat.LoadVersion(ctx); err != nil {
		_ = cat.Close()
		return nil, err
	}
	s.log.Info("opened %s, version %s", path, cat.Version())

	oc := &openCatalog{cat: cat}
	s.catalogs[path] = oc
	return oc, nil
}

// validatePath checks that path is an absolute path to a readable file
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if info.IsDir() {
		return ErrIsDirectory
	}
	return nil
}

// Validation errors
var (
	ErrPathRequired    = errors.New("catalog path is required")
	ErrPathNotAbsolute = errors.New("catalog path must be absolute")
	ErrPathNotFound    = errors.New("catalog does not exist")
	ErrPathNotReadable = errors.New("catalog is not readable")
	ErrIsDirectory     = errors.New("catalog path is a directory")
)
