package catalog

import (
	"context"
	"fmt"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/lron"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Owning modules of content rows.
const (
	ModuleFilter          = "com.adobe.ag.library.filter"
	ModuleSortType        = "com.adobe.ag.library.sortType"
	ModuleSortDirection   = "com.adobe.ag.library.sortDirection"
	ModuleSmartCollection = "ag.library.smart_collection"
)

// SortDirection of a folder or collection.
type SortDirection int

const (
	SortUnknown SortDirection = iota
	SortAscending
	SortDescending
)

func parseSortDirection(s string) SortDirection {
	switch s {
	case "ascending":
		return SortAscending
	case "descending":
		return SortDescending
	default:
		return SortUnknown
	}
}

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// Content is the filter, sort and smart collection definition attached to
// a folder or a collection. Absent fields are nil.
type Content struct {
	Filter          *string
	SortType        *string
	SortDirection   *SortDirection
	SmartCollection *SmartCollection

	smartCollectionErr error
}

// ContentRow is one row of a content table.
type ContentRow struct {
	Content *string
	Module  string
}

// NewContent assigns each row to the field of its owning module. Unknown
// modules are ignored and the last row of a module wins.
func NewContent(rows ...ContentRow) Content {
	var c Content
	for _, row := range rows {
		c.apply(row)
	}
	return c
}

func (c *Content) apply(row ContentRow) {
	switch row.Module {
	case ModuleFilter:
		c.Filter = row.Content
	case ModuleSortType:
		c.SortType = row.Content
	case ModuleSortDirection:
		c.SortDirection = nil
		if row.Content != nil {
			d := parseSortDirection(*row.Content)
			c.SortDirection = &d
		}
	case ModuleSmartCollection:
		// Best effort: an unparsable definition leaves the field unset.
		c.SmartCollection, c.smartCollectionErr = nil, nil
		if row.Content == nil {
			return
		}
		root, err := lron.Parse(*row.Content)
		if err != nil {
			c.smartCollectionErr = err
			return
		}
		c.SmartCollection = &SmartCollection{Root: root}
	}
}

// SmartCollectionErr returns why a smart collection row could not be parsed,
// or nil. The failure is otherwise invisible.
func (c Content) SmartCollectionErr() error {
	return c.smartCollectionErr
}

// FilterDocument parses the filter string as a document of its own.
func (c Content) FilterDocument() (*lron.Pair, error) {
	if c.Filter == nil {
		return nil, fmt.Errorf("%w: no filter", lron.ErrNotDocument)
	}
	return lron.Parse(*c.Filter)
}

// LoadContent reads the content rows of container id from table, where
// column is the foreign key to the container.
func LoadContent(ctx context.Context, q storage.Querier, table, column string, id types.LrID) (Content, error) {
	query := fmt.Sprintf("SELECT content,owningModule FROM %s WHERE %s = ?", table, column)

	var c Content
	err := q.Query(ctx, query, []any{int64(id)}, func(row *storage.Row) error {
		module, err := row.String(1)
		if err != nil {
			return nil
		}
		c.apply(ContentRow{Content: row.OptString(0), Module: module})
		return nil
	})
	if err != nil {
		return Content{}, err
	}
	return c, nil
}

// SmartCollection is a parsed smart collection definition:
//
//	s = {
//	    { criteria = "rating", operation = ">", value = 0, value2 = 0, },
//	    combine = "intersect",
//	}
type SmartCollection struct {
	Root *lron.Pair
}

// Combine returns how the rules are combined, e.g. "intersect" or "union".
func (s *SmartCollection) Combine() string {
	v, _ := s.Root.Dict().Lookup("combine")
	combine, _ := lron.String(v)
	return combine
}

// Rules returns the rule dictionaries of the definition in order.
func (s *SmartCollection) Rules() []Rule {
	var rules []Rule
	for _, o := range s.Root.Dict() {
		d, ok := o.(lron.Dict)
		if !ok {
			continue
		}
		r := Rule{Dict: d}
		for _, p := range d.Pairs() {
			switch p.Key {
			case "criteria":
				r.Criteria, _ = lron.String(p.Value)
			case "operation":
				r.Operation, _ = lron.String(p.Value)
			case "value":
				r.Value = p.Value
			case "value2":
				r.Value2 = p.Value
			}
		}
		rules = append(rules, r)
	}
	return rules
}

// Rule is one criterion of a smart collection.
type Rule struct {
	Criteria  string
	Operation string
	Value     lron.Value
	Value2    lron.Value
	// Dict holds every pair of the rule, including unrecognized ones.
	Dict lron.Dict
}

// NestedDocument parses the rule value as a document of its own. Some
// criteria store a complete definition in their string value.
func (r Rule) NestedDocument() (*lron.Pair, error) {
	return lron.Document(r.Value)
}
