package dump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lrcat/lrcat-go/pkg/catalog"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Finding is an object whose identity doesn't validate.
type Finding struct {
	Entity string
	ID     types.LrID
	UUID   string
	Err    error
}

// Report is what Audit found.
type Report struct {
	Diagnostics []catalog.Diagnostic
	Findings    []Finding
}

// IsClean reports whether nothing was dropped or invalid.
func (r Report) IsClean() bool {
	return len(r.Diagnostics) == 0 && len(r.Findings) == 0
}

// Inspect loads every entity of an opened catalog and collects the rows
// that were dropped and the objects whose ids are invalid.
func Inspect(ctx context.Context, cat *catalog.Catalog) (Report, error) {
	var report Report
	if err := cat.LoadVersion(ctx); err != nil {
		return report, err
	}
	if !cat.Version().IsSupported() {
		return report, fmt.Errorf("%w: %s", catalog.ErrUnsupportedVersion, cat.VersionString())
	}

	check := func(entity string, o types.LrObject) {
		if err := types.Validate(o); err != nil {
			report.Findings = append(report.Findings, Finding{Entity: entity, ID: o.ID(), UUID: o.UUID(), Err: err})
		}
	}

	keywords, err := cat.LoadKeywords(ctx)
	if err != nil {
		return report, fmt.Errorf("keywords: %w", err)
	}
	keywords.Ascend(func(k catalog.Keyword) bool {
		check("keyword", k)
		return true
	})

	folders, err := cat.LoadFolders(ctx)
	if err != nil {
		return report, fmt.Errorf("folders: %w", err)
	}
	for _, root := range folders.Roots {
		check("root folder", root)
	}
	for _, folder := range folders.Folders {
		check("folder", folder)
	}

	files, err := cat.LoadLibraryFiles(ctx)
	if err != nil {
		return report, fmt.Errorf("library files: %w", err)
	}
	for _, file := range files {
		check("library file", file)
	}

	images, err := cat.LoadImages(ctx)
	if err != nil {
		return report, fmt.Errorf("images: %w", err)
	}
	for _, img := range images {
		check("image", img)
	}

	if _, err := cat.LoadCollections(ctx); err != nil {
		return report, fmt.Errorf("collections: %w", err)
	}

	report.Diagnostics = cat.Diagnostics()
	return report, nil
}

// Audit inspects the catalog and prints the report.
func Audit(ctx context.Context, w io.Writer, cat *catalog.Catalog) (Report, error) {
	report, err := Inspect(ctx, cat)
	Header(w, cat)
	if errors.Is(err, catalog.ErrUnsupportedVersion) {
		fmt.Fprintln(w, "Unsupported catalog version")
	}
	if err != nil {
		return report, err
	}
	if report.IsClean() {
		fmt.Fprintln(w, "Nothing to report")
		return report, nil
	}

	if len(report.Diagnostics) > 0 {
		rows := make([][]string, 0, len(report.Diagnostics))
		for _, d := range report.Diagnostics {
			rows = append(rows, []string{d.Entity, strconv.Itoa(d.Row), id64(d.ID), d.Err.Error()})
		}
		renderTable(w, "Dropped rows", []string{"entity", "row", "id", "error"}, rows)
	}
	if len(report.Findings) > 0 {
		rows := make([][]string, 0, len(report.Findings))
		for _, f := range report.Findings {
			rows = append(rows, []string{f.Entity, id64(f.ID), f.UUID, f.Err.Error()})
		}
		renderTable(w, "Invalid ids", []string{"entity", "id", "uuid", "error"}, rows)
	}
	return report, nil
}
