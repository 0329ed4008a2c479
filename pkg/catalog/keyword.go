package catalog

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Keyword is a node of the keyword hierarchy. Top level keywords have the
// catalog root keyword as parent.
type Keyword struct {
	id     types.LrID
	uuid   string
	Name   string
	Parent types.LrID
}

// NewKeyword builds a keyword.
func NewKeyword(id, parent types.LrID, uuid, name string) Keyword {
	return Keyword{id: id, uuid: uuid, Name: name, Parent: parent}
}

func (k Keyword) ID() types.LrID { return k.id }
func (k Keyword) UUID() string   { return k.uuid }

const keywordTagKind = "AgKeywordTagKind"

var keywordStrategy = Strategy[Keyword]{
	Tables:  "AgLibraryKeyword",
	Columns: "id_local,id_global,name,parent",
	Decode:  decodeKeyword,
}

var keywordMapper = Mapper[Keyword]{
	Entity: "keyword",
	Strategies: map[Version]Strategy[Keyword]{
		// Lr2 keeps keywords and collections in one tag table.
		Lr2: {
			Tables:  "AgLibraryTag",
			Columns: "id_local,id_global,name,parent,kindName",
			Decode: func(row *storage.Row) (Keyword, error) {
				kind, err := row.String(4)
				if err != nil {
					return Keyword{}, err
				}
				if kind != keywordTagKind {
					return Keyword{}, fmt.Errorf("%w: tag kind %s", ErrSkip, kind)
				}
				return decodeKeyword(row)
			},
		},
		Lr4: keywordStrategy,
		Lr6: keywordStrategy,
	},
}

func decodeKeyword(row *storage.Row) (Keyword, error) {
	id, uuid, err := decodeIdentity(row)
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{
		id:     id,
		uuid:   uuid,
		Name:   optString(row, 2),
		Parent: optID(row, 3),
	}, nil
}

// Keywords is the keyword set ordered by id.
type Keywords struct {
	m *btree.Map[types.LrID, Keyword]
}

// NewKeywords builds a set from keywords. Later duplicates replace earlier ones.
func NewKeywords(keywords ...Keyword) *Keywords {
	k := &Keywords{m: btree.NewMap[types.LrID, Keyword](0)}
	for _, kw := range keywords {
		k.m.Set(kw.ID(), kw)
	}
	return k
}

func (k *Keywords) Len() int {
	return k.m.Len()
}

// Get returns the keyword with the given id.
func (k *Keywords) Get(id types.LrID) (Keyword, bool) {
	return k.m.Get(id)
}

// Ascend calls fn for each keyword in ascending id order until fn returns false.
func (k *Keywords) Ascend(fn func(Keyword) bool) {
	k.m.Scan(func(_ types.LrID, kw Keyword) bool {
		return fn(kw)
	})
}

// Values returns the keywords in ascending id order.
func (k *Keywords) Values() []Keyword {
	return k.m.Values()
}
