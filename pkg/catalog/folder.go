package catalog

import (
	"github.com/tidwall/btree"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// RootFolder is a top-level filesystem anchor. Folders are relative to one.
type RootFolder struct {
	id           types.LrID
	uuid         string
	AbsolutePath string
	Name         string
	// RelativePathFromCatalog is nil when the schema doesn't record it.
	RelativePathFromCatalog *string
}

// NewRootFolder builds a root folder.
func NewRootFolder(id types.LrID, uuid, absolutePath, name string) RootFolder {
	return RootFolder{id: id, uuid: uuid, AbsolutePath: absolutePath, Name: name}
}

func (r RootFolder) ID() types.LrID { return r.id }
func (r RootFolder) UUID() string   { return r.uuid }

// Folder is a directory below a root folder. Its absolute location is not
// stored, see Folders.ResolveFolderPath.
type Folder struct {
	id           types.LrID
	uuid         string
	PathFromRoot string
	RootFolder   types.LrID
	Content      *Content
}

// NewFolder builds a folder.
func NewFolder(id types.LrID, uuid, pathFromRoot string, rootFolder types.LrID) Folder {
	return Folder{id: id, uuid: uuid, PathFromRoot: pathFromRoot, RootFolder: rootFolder}
}

func (f Folder) ID() types.LrID { return f.id }
func (f Folder) UUID() string   { return f.uuid }

var rootFolderStrategy = Strategy[RootFolder]{
	Tables:  "AgLibraryRootFolder",
	Columns: "id_local,id_global,absolutePath,name,relativePathFromCatalog",
	Decode:  decodeRootFolder,
}

var rootFolderMapper = Mapper[RootFolder]{
	Entity: "root folder",
	Strategies: map[Version]Strategy[RootFolder]{
		Lr2: {
			Tables:  "AgLibraryRootFolder",
			Columns: "id_local,id_global,absolutePath,name",
			Decode:  decodeRootFolder,
		},
		Lr4: rootFolderStrategy,
		Lr6: rootFolderStrategy,
	},
}

func decodeRootFolder(row *storage.Row) (RootFolder, error) {
	id, uuid, err := decodeIdentity(row)
	if err != nil {
		return RootFolder{}, err
	}
	absolutePath, err := row.String(2)
	if err != nil {
		return RootFolder{}, err
	}
	return RootFolder{
		id:                      id,
		uuid:                    uuid,
		AbsolutePath:            absolutePath,
		Name:                    optString(row, 3),
		RelativePathFromCatalog: row.OptString(4),
	}, nil
}

var folderStrategy = Strategy[Folder]{
	Tables:  "AgLibraryFolder",
	Columns: "id_local,id_global,pathFromRoot,rootFolder",
	Decode: func(row *storage.Row) (Folder, error) {
		id, uuid, err := decodeIdentity(row)
		if err != nil {
			return Folder{}, err
		}
		pathFromRoot, err := row.String(2)
		if err != nil {
			return Folder{}, err
		}
		rootFolder, err := row.Int64(3)
		if err != nil {
			return Folder{}, err
		}
		return NewFolder(id, uuid, pathFromRoot, types.LrID(rootFolder)), nil
	},
}

var folderMapper = Mapper[Folder]{
	Entity: "folder",
	Strategies: map[Version]Strategy[Folder]{
		Lr2: folderStrategy,
		Lr4: folderStrategy,
		Lr6: folderStrategy,
	},
}

// Folders holds the root folders and folders of a catalog.
type Folders struct {
	Roots   []RootFolder
	Folders []Folder

	rootIndex *btree.Map[types.LrID, int]
}

// NewFolders returns an empty folder set.
func NewFolders() *Folders {
	return &Folders{rootIndex: btree.NewMap[types.LrID, int](0)}
}

// IsEmpty reports whether neither roots nor folders are loaded.
func (f *Folders) IsEmpty() bool {
	return len(f.Roots) == 0 && len(f.Folders) == 0
}

// AddRootFolder appends a root folder. A later root with the same id
// shadows the earlier one in lookups.
func (f *Folders) AddRootFolder(root RootFolder) {
	if f.rootIndex == nil {
		f.rootIndex = btree.NewMap[types.LrID, int](0)
	}
	f.rootIndex.Set(root.ID(), len(f.Roots))
	f.Roots = append(f.Roots, root)
}

// AddFolder appends a folder.
func (f *Folders) AddFolder(folder Folder) {
	f.Folders = append(f.Folders, folder)
}

// Root returns the root folder with the given id.
func (f *Folders) Root(id types.LrID) (RootFolder, bool) {
	if f.rootIndex == nil {
		return RootFolder{}, false
	}
	i, ok := f.rootIndex.Get(id)
	if !ok {
		return RootFolder{}, false
	}
	return f.Roots[i], true
}

// ResolveFolderPath returns the root folder's absolute path followed by the
// folder's path from root. The concatenation is literal: no separator is
// added and nothing is checked on disk. It reports false when the folder's
// root is not loaded.
func (f *Folders) ResolveFolderPath(folder Folder) (string, bool) {
	root, ok := f.Root(folder.RootFolder)
	if !ok {
		return "", false
	}
	return root.AbsolutePath + folder.PathFromRoot, true
}
