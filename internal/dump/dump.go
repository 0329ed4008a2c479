// Package dump prints the content of a catalog as tables.
package dump

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lrcat/lrcat-go/pkg/catalog"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Selection picks the entity tables printed by Dump. Entities are loaded
// whether or not they are printed.
type Selection struct {
	Keywords     bool
	Folders      bool
	LibraryFiles bool
	Images       bool
	Collections  bool
}

// All selects every entity.
func All() Selection {
	return Selection{Keywords: true, Folders: true, LibraryFiles: true, Images: true, Collections: true}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(w io.Writer, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row < 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.Render())
}

// Header prints the catalog version and root keyword.
func Header(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "Catalog: %s\n", cat.Path())
	fmt.Fprintf(w, "\tVersion: %s (%s)\n", cat.VersionString(), cat.Version())
	fmt.Fprintf(w, "\tRoot keyword id: %d\n", cat.RootKeywordID())
}

// Dump prints an opened catalog. It stops after the header with
// catalog.ErrUnsupportedVersion when the version has no query plan.
func Dump(ctx context.Context, w io.Writer, cat *catalog.Catalog, sel Selection) error {
	if err := cat.LoadVersion(ctx); err != nil {
		return err
	}
	Header(w, cat)
	if !cat.Version().IsSupported() {
		fmt.Fprintln(w, "Unsupported catalog version")
		return fmt.Errorf("%w: %s", catalog.ErrUnsupportedVersion, cat.VersionString())
	}

	keywords, err := cat.LoadKeywords(ctx)
	if err != nil {
		return fmt.Errorf("keywords: %w", err)
	}
	tree, err := cat.LoadKeywordTree(ctx)
	if err != nil {
		return fmt.Errorf("keyword tree: %w", err)
	}
	fmt.Fprintf(w, "\tKeywords count: %d\n", keywords.Len())
	if sel.Keywords {
		Keywords(w, cat.RootKeywordID(), keywords, tree)
	}

	folders, err := cat.LoadFolders(ctx)
	if err != nil {
		return fmt.Errorf("folders: %w", err)
	}
	if sel.Folders {
		Folders(w, folders)
	}

	files, err := cat.LoadLibraryFiles(ctx)
	if err != nil {
		return fmt.Errorf("library files: %w", err)
	}
	if sel.LibraryFiles {
		LibraryFiles(w, files)
	}

	images, err := cat.LoadImages(ctx)
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}
	if sel.Images {
		Images(w, images)
	}

	collections, err := cat.LoadCollections(ctx)
	if err != nil {
		return fmt.Errorf("collections: %w", err)
	}
	if sel.Collections {
		Collections(w, collections)
	}
	return nil
}

// Keywords prints the keyword hierarchy depth first, starting at root. A
// keyword is printed once; parent cycles are cut where they close.
func Keywords(w io.Writer, root types.LrID, keywords *catalog.Keywords, tree *catalog.KeywordTree) {
	var rows [][]string
	visited := make(map[types.LrID]bool)
	var walk func(level int, id types.LrID)
	walk = func(level int, id types.LrID) {
		if visited[id] {
			return
		}
		visited[id] = true
		keyword, ok := keywords.Get(id)
		if !ok {
			return
		}
		indent := ""
		if level > 0 {
			indent = strings.Repeat(" ", level-1) + "+ "
		}
		rows = append(rows, []string{
			id64(keyword.ID()), keyword.UUID(), id64(keyword.Parent), indent + keyword.Name,
		})
		for _, child := range tree.ChildrenFor(id) {
			walk(level+1, child)
		}
	}
	walk(0, root)

	renderTable(w, "Keywords", []string{"id", "uuid", "parent", "name"}, rows)
}

// Folders prints the root folders then the folders.
func Folders(w io.Writer, folders *catalog.Folders) {
	rows := make([][]string, 0, len(folders.Roots))
	for _, root := range folders.Roots {
		rows = append(rows, []string{id64(root.ID()), root.UUID(), root.Name, root.AbsolutePath})
	}
	renderTable(w, "Root Folders", []string{"id", "uuid", "name", "absolute path"}, rows)

	rows = make([][]string, 0, len(folders.Folders))
	for _, folder := range folders.Folders {
		path, ok := folders.ResolveFolderPath(folder)
		if !ok {
			path = "?"
		}
		rows = append(rows, []string{
			id64(folder.ID()), folder.UUID(), id64(folder.RootFolder), folder.PathFromRoot, path,
			FormatContent(folder.Content),
		})
	}
	renderTable(w, "Folders", []string{"id", "uuid", "root", "path", "resolved", "content"}, rows)
}

// LibraryFiles prints the files.
func LibraryFiles(w io.Writer, files []catalog.LibraryFile) {
	rows := make([][]string, 0, len(files))
	for _, file := range files {
		rows = append(rows, []string{
			id64(file.ID()), file.UUID(), id64(file.Folder), file.Extension, file.Basename,
			file.SidecarExtensions,
		})
	}
	renderTable(w, "Libfiles", []string{"id", "uuid", "folder", "extension", "basename", "sidecars"}, rows)
}

// Images prints the images. The orientation column shows the code and its
// EXIF value.
func Images(w io.Writer, images []catalog.Image) {
	rows := make([][]string, 0, len(images))
	for _, img := range images {
		orientation := ""
		if img.Orientation != nil {
			orientation = *img.Orientation
		}
		rows = append(rows, []string{
			id64(img.ID()), img.UUID(), id64(img.RootFile), img.FileFormat,
			fmt.Sprintf("%s(%d)", orientation, img.ExifOrientation()),
			strconv.FormatInt(img.Pick, 10),
			fmt.Sprintf("%d bytes", len(img.XMP)),
		})
	}
	renderTable(w, "Images", []string{"id", "uuid", "root", "format", "or", "P", "xmp"}, rows)
}

// Collections prints the collections with their content.
func Collections(w io.Writer, collections []catalog.Collection) {
	rows := make([][]string, 0, len(collections))
	for _, c := range collections {
		rows = append(rows, []string{
			id64(c.ID()), c.Name, id64(c.Parent), strconv.FormatBool(c.SystemOnly), FormatContent(c.Content),
		})
	}
	renderTable(w, "Collections", []string{"id", "name", "parent", "system", "content"}, rows)
}

// FormatContent summarizes a content on one line.
func FormatContent(c *catalog.Content) string {
	if c == nil {
		return "-"
	}
	var parts []string
	if c.Filter != nil {
		parts = append(parts, "filter="+strconv.Quote(*c.Filter))
	}
	if c.SortType != nil {
		parts = append(parts, "sort="+*c.SortType)
	}
	if c.SortDirection != nil {
		parts = append(parts, "direction="+c.SortDirection.String())
	}
	if c.SmartCollection != nil {
		parts = append(parts, fmt.Sprintf("smart=%s(%d rules)",
			c.SmartCollection.Combine(), len(c.SmartCollection.Rules())))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func id64(id types.LrID) string {
	return strconv.FormatInt(int64(id), 10)
}
