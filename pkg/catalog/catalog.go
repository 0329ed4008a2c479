package catalog

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/lrcat/lrcat-go/internal/log"
	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Catalog variables read by LoadVersion.
const (
	variableDBVersion     = "Adobe_DBVersion"
	variableRootKeywordID = "AgLibraryKeyword_rootTagID"
)

// Catalog is a Lightroom catalog opened read-only. Entity collections are
// loaded on demand and cached.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	path string
	db   *storage.DB
	log  *log.Logger

	versionString string
	version       Version
	rootKeywordID types.LrID

	keywords     *Keywords
	keywordTree  *KeywordTree
	folders      *Folders
	libraryFiles []LibraryFile
	images       []Image
	collections  []Collection
	diagnostics  []Diagnostic
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an unopened catalog for the file at path.
func New(path string, opts ...Option) *Catalog {
	c := &Catalog{
		path:     path,
		log:      log.Discard(),
		keywords: NewKeywords(),
		folders:  NewFolders(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open connects to the catalog file. Opening an open catalog does nothing.
func (c *Catalog) Open(ctx context.Context) error {
	if c.db != nil {
		return nil
	}
	db, err := storage.Open(ctx, c.path)
	if err != nil {
		return err
	}
	c.db = db
	c.log.Debug("opened %s", c.path)
	return nil
}

// Close releases the connection. Loaded collections stay available.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// IsOpen reports whether Open succeeded and Close wasn't called since.
func (c *Catalog) IsOpen() bool {
	return c.db != nil
}

func (c *Catalog) Path() string { return c.path }

// VersionString is the raw Adobe_DBVersion value, e.g. "0400020".
func (c *Catalog) VersionString() string { return c.versionString }

func (c *Catalog) Version() Version { return c.version }

// RootKeywordID is the parent of the top level keywords.
func (c *Catalog) RootKeywordID() types.LrID { return c.rootKeywordID }

// Diagnostics returns the rows dropped by the loaders so far.
func (c *Catalog) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// LoadVersion reads the schema version and the root keyword id. A variable
// that is missing or unreadable leaves the current value in place and is not
// an error. The only error is ErrNotOpen, returned before any query when Open
// hasn't succeeded: there is no file to read variables from.
func (c *Catalog) LoadVersion(ctx context.Context) error {
	if c.db == nil {
		return ErrNotOpen
	}

	if row, err := c.db.Variable(ctx, variableDBVersion); err != nil {
		c.log.Debug("%s: %v", variableDBVersion, err)
	} else if s, err := row.String(0); err != nil {
		c.log.Debug("%s: %v", variableDBVersion, err)
	} else {
		c.versionString = s
		c.version = ParseVersion(s)
	}

	if row, err := c.db.Variable(ctx, variableRootKeywordID); err != nil {
		c.log.Debug("%s: %v", variableRootKeywordID, err)
	} else if f, err := variableFloat(row); err != nil {
		c.log.Debug("%s: %v", variableRootKeywordID, err)
	} else {
		c.rootKeywordID = types.LrID(math.Round(f))
	}

	c.log.Debug("version %s (%s), root keyword %d", c.versionString, c.version, c.rootKeywordID)
	return nil
}

// variableFloat reads a numeric variable that may be stored as text.
func variableFloat(row *storage.Row) (float64, error) {
	f, err := row.Float64(0)
	var typeErr *storage.ColumnTypeError
	if !errors.As(err, &typeErr) {
		return f, err
	}
	s, err := row.String(0)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func (c *Catalog) ready() error {
	if c.db == nil {
		return ErrNotOpen
	}
	return nil
}

func (c *Catalog) record(diagnostics []Diagnostic) {
	for _, d := range diagnostics {
		c.log.Debug("dropped %s", d)
	}
	c.diagnostics = append(c.diagnostics, diagnostics...)
}

// LoadKeywords loads the keywords, unless some are loaded already.
func (c *Catalog) LoadKeywords(ctx context.Context) (*Keywords, error) {
	if c.keywords.Len() > 0 {
		return c.keywords, nil
	}
	if err := c.ready(); err != nil {
		return c.keywords, err
	}

	keywords, diagnostics, err := keywordMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return c.keywords, err
	}
	c.keywords = NewKeywords(keywords...)
	c.log.Debug("loaded %d keywords", c.keywords.Len())
	return c.keywords, nil
}

// LoadKeywordTree loads the keywords and indexes them by parent.
func (c *Catalog) LoadKeywordTree(ctx context.Context) (*KeywordTree, error) {
	if c.keywordTree != nil && c.keywordTree.Len() > 0 {
		return c.keywordTree, nil
	}
	keywords, err := c.LoadKeywords(ctx)
	if err != nil {
		return nil, err
	}
	c.keywordTree = NewKeywordTree(keywords)
	return c.keywordTree, nil
}

// LoadFolders loads the root folders and the folders with their content,
// unless any are loaded already.
func (c *Catalog) LoadFolders(ctx context.Context) (*Folders, error) {
	if !c.folders.IsEmpty() {
		return c.folders, nil
	}
	if err := c.ready(); err != nil {
		return c.folders, err
	}

	roots, diagnostics, err := rootFolderMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return c.folders, err
	}
	folders, diagnostics, err := folderMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return c.folders, err
	}

	source := folderContent[c.version]
	result := NewFolders()
	for _, root := range roots {
		result.AddRootFolder(root)
	}
	for _, folder := range folders {
		folder.Content = c.loadContent(ctx, "folder", source, folder.ID())
		result.AddFolder(folder)
	}
	c.folders = result
	c.log.Debug("loaded %d root folders, %d folders", len(roots), len(folders))
	return c.folders, nil
}

// loadContent reads the content of one container. Failures are recorded as
// diagnostics and leave the content absent.
func (c *Catalog) loadContent(ctx context.Context, entity string, source contentSource, id types.LrID) *Content {
	if source.table == "" {
		return nil
	}
	content, err := LoadContent(ctx, c.db, source.table, source.column, id)
	if err != nil {
		c.record([]Diagnostic{{Entity: entity + " content", ID: id, Err: err}})
		return nil
	}
	if err := content.SmartCollectionErr(); err != nil {
		c.log.Debug("%s %d: smart collection ignored: %v", entity, id, err)
	}
	return &content
}

// LoadLibraryFiles loads the library files, unless some are loaded already.
func (c *Catalog) LoadLibraryFiles(ctx context.Context) ([]LibraryFile, error) {
	if len(c.libraryFiles) > 0 {
		return c.libraryFiles, nil
	}
	if err := c.ready(); err != nil {
		return nil, err
	}

	files, diagnostics, err := libraryFileMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return nil, err
	}
	c.libraryFiles = files
	return c.libraryFiles, nil
}

// LoadImages loads the images, unless some are loaded already.
func (c *Catalog) LoadImages(ctx context.Context) ([]Image, error) {
	if len(c.images) > 0 {
		return c.images, nil
	}
	if err := c.ready(); err != nil {
		return nil, err
	}

	images, diagnostics, err := imageMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return nil, err
	}
	c.images = images
	return c.images, nil
}

// LoadCollections loads the collections with their content, unless some
// are loaded already.
func (c *Catalog) LoadCollections(ctx context.Context) ([]Collection, error) {
	if len(c.collections) > 0 {
		return c.collections, nil
	}
	if err := c.ready(); err != nil {
		return nil, err
	}

	collections, diagnostics, err := collectionMapper.Load(ctx, c.db, c.version)
	c.record(diagnostics)
	if err != nil {
		return nil, err
	}
	source := collectionContent[c.version]
	for i := range collections {
		collections[i].Content = c.loadContent(ctx, "collection", source, collections[i].ID())
	}
	c.collections = collections
	return c.collections, nil
}

// ImagesForCollection returns the ids of the images in a collection. The
// result is not cached.
func (c *Catalog) ImagesForCollection(ctx context.Context, id types.LrID) ([]types.LrID, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	query, ok := collectionImagesQuery[c.version]
	if !ok {
		return nil, ErrUnsupportedVersion
	}

	var ids []types.LrID
	err := c.db.Query(ctx, query, []any{int64(id)}, func(row *storage.Row) error {
		image, err := row.Int64(0)
		if err != nil {
			c.record([]Diagnostic{{Entity: "collection image", ID: id, Err: err}})
			return nil
		}
		ids = append(ids, types.LrID(image))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
