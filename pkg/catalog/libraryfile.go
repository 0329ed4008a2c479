package catalog

import (
	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// LibraryFile is a file on disk referenced by the catalog.
type LibraryFile struct {
	id                types.LrID
	uuid              string
	Basename          string
	Extension         string
	Folder            types.LrID
	SidecarExtensions string // comma separated
}

func (l LibraryFile) ID() types.LrID { return l.id }
func (l LibraryFile) UUID() string   { return l.uuid }

var libraryFileStrategy = Strategy[LibraryFile]{
	Tables:  "AgLibraryFile",
	Columns: "id_local,id_global,baseName,extension,folder,sidecarExtensions",
	Decode: func(row *storage.Row) (LibraryFile, error) {
		id, uuid, err := decodeIdentity(row)
		if err != nil {
			return LibraryFile{}, err
		}
		basename, err := row.String(2)
		if err != nil {
			return LibraryFile{}, err
		}
		extension, err := row.String(3)
		if err != nil {
			return LibraryFile{}, err
		}
		folder, err := row.Int64(4)
		if err != nil {
			return LibraryFile{}, err
		}
		return LibraryFile{
			id:                id,
			uuid:              uuid,
			Basename:          basename,
			Extension:         extension,
			Folder:            types.LrID(folder),
			SidecarExtensions: optString(row, 5),
		}, nil
	},
}

var libraryFileMapper = Mapper[LibraryFile]{
	Entity: "library file",
	Strategies: map[Version]Strategy[LibraryFile]{
		Lr2: libraryFileStrategy,
		Lr4: libraryFileStrategy,
		Lr6: libraryFileStrategy,
	},
}
