package dump

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/catalog"
	"github.com/lrcat/lrcat-go/pkg/types"
)

var fixture = []string{
	`CREATE TABLE Adobe_variablesTable (id_local INTEGER PRIMARY KEY, name, value)`,
	`INSERT INTO Adobe_variablesTable (name, value) VALUES ('Adobe_DBVersion', '0600008')`,
	`INSERT INTO Adobe_variablesTable (name, value) VALUES ('AgLibraryKeyword_rootTagID', 10.0)`,

	`CREATE TABLE AgLibraryKeyword (id_local INTEGER PRIMARY KEY, id_global, dateCreated, name, parent INTEGER)`,
	`INSERT INTO AgLibraryKeyword VALUES (10, '0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A50', 0, NULL, NULL)`,
	`INSERT INTO AgLibraryKeyword VALUES (11, '0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A51', 0, 'Animals', 10)`,
	`INSERT INTO AgLibraryKeyword VALUES (12, '0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A52', 0, 'Cats', 11)`,
	`INSERT INTO AgLibraryKeyword VALUES (13, 'not-a-uuid', 0, 'Places', 10)`,

	`CREATE TABLE AgLibraryRootFolder (id_local INTEGER PRIMARY KEY, id_global, absolutePath, name, relativePathFromCatalog)`,
	`INSERT INTO AgLibraryRootFolder VALUES (1, '1B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A50', '/home/hub/Pictures/', 'Pictures', NULL)`,
	`CREATE TABLE AgLibraryFolder (id_local INTEGER PRIMARY KEY, id_global, pathFromRoot, rootFolder INTEGER)`,
	`INSERT INTO AgLibraryFolder VALUES (2, '2B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A50', '2017/10/', 1)`,
	`CREATE TABLE AgFolderContent (id_local INTEGER PRIMARY KEY, containingFolder INTEGER, content, owningModule)`,
	`INSERT INTO AgFolderContent (containingFolder, content, owningModule) VALUES (2, 'ascending', 'com.adobe.ag.library.sortDirection')`,

	`CREATE TABLE AgLibraryFile (id_local INTEGER PRIMARY KEY, id_global, baseName, extension, folder INTEGER, sidecarExtensions)`,
	`INSERT INTO AgLibraryFile VALUES (3, '3B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A50', 'IMG_0001', 'CR2', 2, 'xmp')`,
	`INSERT INTO AgLibraryFile VALUES (4, '3B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A51', NULL, 'CR2', 2, 'xmp')`,

	`CREATE TABLE Adobe_images (id_local INTEGER PRIMARY KEY, id_global, masterImage, rating, rootFile, fileFormat, pick, orientation, captureTime, copyName)`,
	`INSERT INTO Adobe_images VALUES (5, '4B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A50', NULL, 5, 3, 'RAW', 1, 'DA', '2017-10-01T10:00:00', NULL)`,
	`CREATE TABLE Adobe_AdditionalMetadata (id_local INTEGER PRIMARY KEY, image INTEGER, xmp, embeddedXmp, externalXmpIsDirty)`,
	`INSERT INTO Adobe_AdditionalMetadata (image, xmp, embeddedXmp, externalXmpIsDirty) VALUES (5, '<x:xmpmeta/>', 0, 0)`,
	`CREATE TABLE Adobe_imageProperties (id_local INTEGER PRIMARY KEY, image INTEGER, propertiesString)`,
	`INSERT INTO Adobe_imageProperties (image, propertiesString) VALUES (5, NULL)`,

	`CREATE TABLE AgLibraryCollection (id_local INTEGER PRIMARY KEY, genealogy, name, parent INTEGER, systemOnly)`,
	`INSERT INTO AgLibraryCollection VALUES (6, '/66', 'Best of', NULL, 0)`,
	`CREATE TABLE AgLibraryCollectionContent (id_local INTEGER PRIMARY KEY, collection INTEGER, content, owningModule)`,
	`INSERT INTO AgLibraryCollectionContent (collection, content, owningModule) VALUES (6, 's = { { criteria = "rating", operation = ">", value = 4, value2 = 0, }, combine = "union", }', 'ag.library.smart_collection')`,
}

// openFixture writes a catalog built from statements and opens it.
func openFixture(t *testing.T, statements ...string) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.lrcat")

	db, err := sql.Open(storage.DriverName, path)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	require.NoError(t, db.Close())

	cat := catalog.New(path)
	require.NoError(t, cat.Open(context.Background()))
	t.Cleanup(func() { _ = cat.Close() })
	return cat
}

func TestDump_All(t *testing.T) {
	cat := openFixture(t, fixture...)
	var out bytes.Buffer

	require.NoError(t, Dump(context.Background(), &out, cat, All()))
	s := out.String()

	assert.Contains(t, s, "Version: 0600008 (Lr6)")
	assert.Contains(t, s, "Root keyword id: 10")
	assert.Contains(t, s, "Keywords count: 4")
	for _, title := range []string{"Keywords", "Root Folders", "Folders", "Libfiles", "Images", "Collections"} {
		assert.Contains(t, s, title)
	}
	assert.Contains(t, s, "/home/hub/Pictures/2017/10/")
	assert.Contains(t, s, "direction=ascending")
	assert.Contains(t, s, "DA(8)")
	assert.Contains(t, s, "12 bytes")
	assert.Contains(t, s, "smart=union(1 rules)")

	// Depth first from the root keyword.
	animals := strings.Index(s, "+ Animals")
	cats := strings.Index(s, " + Cats")
	places := strings.Index(s, "+ Places")
	require.True(t, animals >= 0 && cats >= 0 && places >= 0, s)
	assert.Less(t, animals, cats)
	assert.Less(t, cats, places)
}

func TestKeywords_Cycle(t *testing.T) {
	keywords := catalog.NewKeywords(
		catalog.NewKeyword(1, 2, "0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A01", "Left"),
		catalog.NewKeyword(2, 1, "0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A02", "Right"),
		catalog.NewKeyword(3, 3, "0B1F3C2A-3C4D-4E5F-8A9B-0C1D2E3F4A03", "Self"),
	)
	tree := catalog.NewKeywordTree(keywords)

	var out bytes.Buffer
	Keywords(&out, 1, keywords, tree)
	s := out.String()
	assert.Equal(t, 1, strings.Count(s, "Left"))
	assert.Equal(t, 1, strings.Count(s, "+ Right"))

	out.Reset()
	Keywords(&out, 3, keywords, tree)
	assert.Equal(t, 1, strings.Count(out.String(), "Self"))
}

func TestDump_Selection(t *testing.T) {
	cat := openFixture(t, fixture...)
	var out bytes.Buffer

	require.NoError(t, Dump(context.Background(), &out, cat, Selection{Images: true}))
	s := out.String()

	assert.Contains(t, s, "Images")
	assert.NotContains(t, s, "Libfiles")
	assert.NotContains(t, s, "Root Folders")
	assert.NotContains(t, s, "Animals")
}

func TestDump_UnsupportedVersion(t *testing.T) {
	cat := openFixture(t,
		`CREATE TABLE Adobe_variablesTable (id_local INTEGER PRIMARY KEY, name, value)`,
		`INSERT INTO Adobe_variablesTable (name, value) VALUES ('Adobe_DBVersion', '0300025')`,
	)
	var out bytes.Buffer

	err := Dump(context.Background(), &out, cat, All())
	require.ErrorIs(t, err, catalog.ErrUnsupportedVersion)
	assert.Contains(t, out.String(), "Unsupported catalog version")
	assert.NotContains(t, out.String(), "Keywords count")
}

func TestAudit(t *testing.T) {
	cat := openFixture(t, fixture...)
	var out bytes.Buffer

	report, err := Audit(context.Background(), &out, cat)
	require.NoError(t, err)
	assert.False(t, report.IsClean())

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "library file", report.Diagnostics[0].Entity)
	assert.Equal(t, types.LrID(4), report.Diagnostics[0].ID)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "keyword", report.Findings[0].Entity)
	assert.Equal(t, types.LrID(13), report.Findings[0].ID)
	assert.ErrorIs(t, report.Findings[0].Err, types.ErrInvalidUUID)

	s := out.String()
	assert.Contains(t, s, "Dropped rows")
	assert.Contains(t, s, "Invalid ids")
	assert.Contains(t, s, "not-a-uuid")
}

func TestFormatContent(t *testing.T) {
	assert.Equal(t, "-", FormatContent(nil))
	assert.Equal(t, "-", FormatContent(&catalog.Content{}))

	filter := "rating > 2"
	sortType := "captureTime"
	c := catalog.NewContent(
		catalog.ContentRow{Content: &filter, Module: catalog.ModuleFilter},
		catalog.ContentRow{Content: &sortType, Module: catalog.ModuleSortType},
	)
	assert.Equal(t, `filter="rating > 2" sort=captureTime`, FormatContent(&c))
}
