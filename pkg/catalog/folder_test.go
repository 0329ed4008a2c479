package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFolders_ResolveFolderPath(t *testing.T) {
	folders := NewFolders()
	folders.AddRootFolder(NewRootFolder(24, "", "/home/hub/Pictures", "Pictures"))
	folder := NewFolder(42, "", "/2017/10", 24)
	folders.AddFolder(folder)

	path, ok := folders.ResolveFolderPath(folder)
	assert.True(t, ok)
	assert.Equal(t, "/home/hub/Pictures/2017/10", path)

	_, ok = folders.ResolveFolderPath(NewFolder(43, "", "/2017/11", 25))
	assert.False(t, ok)
}

func TestFolders_ResolveIsLiteral(t *testing.T) {
	folders := NewFolders()
	folders.AddRootFolder(NewRootFolder(1, "", "/photos", "photos"))

	path, ok := folders.ResolveFolderPath(NewFolder(2, "", "2017/", 1))
	assert.True(t, ok)
	assert.Equal(t, "/photos2017/", path)
}

func TestFolders_ZeroValue(t *testing.T) {
	var folders Folders
	assert.True(t, folders.IsEmpty())
	_, ok := folders.Root(1)
	assert.False(t, ok)

	folders.AddRootFolder(NewRootFolder(1, "", "/a", "a"))
	assert.False(t, folders.IsEmpty())
	root, ok := folders.Root(1)
	assert.True(t, ok)
	assert.Equal(t, "/a", root.AbsolutePath)
}

func TestFolders_LaterRootShadows(t *testing.T) {
	folders := NewFolders()
	folders.AddRootFolder(NewRootFolder(1, "", "/old", "old"))
	folders.AddRootFolder(NewRootFolder(1, "", "/new", "new"))

	root, ok := folders.Root(1)
	assert.True(t, ok)
	assert.Equal(t, "/new", root.AbsolutePath)
	assert.Len(t, folders.Roots, 2)
}
