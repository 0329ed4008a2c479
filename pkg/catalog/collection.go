package catalog

import (
	"fmt"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Collection is a collection or a smart collection. Unlike other objects it
// has no global id.
type Collection struct {
	id     types.LrID
	Name   string
	Parent types.LrID
	// SystemOnly is set for the quick collection.
	SystemOnly bool
	Content    *Content
}

// NewCollection builds a collection.
func NewCollection(id types.LrID, name string, parent types.LrID, systemOnly bool) Collection {
	return Collection{id: id, Name: name, Parent: parent, SystemOnly: systemOnly}
}

func (c Collection) ID() types.LrID { return c.id }

// Tag kinds of Lr2 AgLibraryTag rows.
const (
	collectionTagKind      = "AgCollectionTagKind"
	quickCollectionTagKind = "AgQuickCollectionTagKind"
)

var collectionStrategy = Strategy[Collection]{
	Tables:  "AgLibraryCollection",
	Columns: "id_local,name,parent,systemOnly",
	Decode: func(row *storage.Row) (Collection, error) {
		id, err := row.Int64(0)
		if err != nil {
			return Collection{}, err
		}
		systemOnly, err := row.Bool(3)
		if err != nil {
			return Collection{}, err
		}
		return NewCollection(types.LrID(id), optString(row, 1), optID(row, 2), systemOnly), nil
	},
}

var collectionMapper = Mapper[Collection]{
	Entity: "collection",
	Strategies: map[Version]Strategy[Collection]{
		Lr2: {
			Tables:  "AgLibraryTag",
			Columns: "id_local,name,parent,kindName",
			Decode: func(row *storage.Row) (Collection, error) {
				id, err := row.Int64(0)
				if err != nil {
					return Collection{}, err
				}
				kind, err := row.String(3)
				if err != nil {
					return Collection{}, err
				}
				switch kind {
				case collectionTagKind, quickCollectionTagKind:
				default:
					return Collection{}, fmt.Errorf("%w: tag kind %s", ErrSkip, kind)
				}
				return NewCollection(types.LrID(id), optString(row, 1), optID(row, 2),
					kind == quickCollectionTagKind), nil
			},
		},
		Lr4: collectionStrategy,
		Lr6: collectionStrategy,
	},
}

// contentSource names the table holding container content rows and its
// foreign key column.
type contentSource struct {
	table, column string
}

var (
	folderContent = map[Version]contentSource{
		Lr2: {"AgFolderContent", "containingFolder"},
		Lr4: {"AgFolderContent", "containingFolder"},
		Lr6: {"AgFolderContent", "containingFolder"},
	}
	collectionContent = map[Version]contentSource{
		Lr4: {"AgLibraryCollectionContent", "collection"},
		Lr6: {"AgLibraryCollectionContent", "collection"},
	}
)

// collectionImagesQuery lists the image ids of one collection.
var collectionImagesQuery = map[Version]string{
	Lr2: "SELECT image FROM AgLibraryTagImage WHERE tag = ? AND tagKind = '" + collectionTagKind + "'",
	Lr3: "SELECT image FROM AgLibraryCollectionImage WHERE collection = ?",
	Lr4: "SELECT image FROM AgLibraryCollectionImage WHERE collection = ?",
	Lr6: "SELECT image FROM AgLibraryCollectionImage WHERE collection = ?",
}
