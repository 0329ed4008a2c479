package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

func TestImage_ExifOrientation(t *testing.T) {
	tests := []struct {
		orientation *string
		want        int
	}{
		{ptr("AB"), 1},
		{ptr("DA"), 8},
		{ptr("BC"), 6},
		{ptr("CD"), 3},
		{ptr("BA"), -1},
		{ptr(""), -1},
		{nil, 0},
	}

	for _, tt := range tests {
		img := Image{Orientation: tt.orientation}
		assert.Equal(t, tt.want, img.ExifOrientation())
	}
}

func imageRow(values ...any) *storage.Row {
	columns := []string{"id_local", "id_global", "masterImage", "rating", "rootFile", "fileFormat",
		"pick", "orientation", "captureTime", "copyName", "xmp", "embeddedXmp", "externalXmpIsDirty",
		"propertiesString"}
	return storage.NewRow(columns, values)
}

func TestDecodeImage(t *testing.T) {
	img, err := decodeImage(imageRow(
		int64(10), "uuid", int64(9), float64(4), int64(100), "RAW",
		int64(-1), "BC", "2017-10-01T10:00:00", "Copy 1", "<x:xmpmeta/>", int64(1), int64(0),
		`properties = { cropAspectH = 2, cropAspectW = 3, }`,
	))
	require.NoError(t, err)

	assert.Equal(t, types.LrID(10), img.ID())
	assert.Equal(t, "uuid", img.UUID())
	require.NotNil(t, img.MasterImage)
	assert.Equal(t, types.LrID(9), *img.MasterImage)
	assert.Equal(t, int64(4), *img.Rating)
	assert.Equal(t, types.LrID(100), img.RootFile)
	assert.Equal(t, int64(PickRejected), img.Pick)
	assert.Equal(t, 6, img.ExifOrientation())
	assert.Equal(t, "Copy 1", *img.CopyName)
	assert.True(t, img.XMPEmbedded)
	assert.False(t, img.XMPExternalDirty)
	require.NotNil(t, img.Properties)
	assert.Equal(t, &AspectRatio{Width: 3, Height: 2}, img.Properties.CropAspectRatio)
}

func TestDecodeImage_OptionalColumns(t *testing.T) {
	img, err := decodeImage(imageRow(
		int64(10), "uuid", nil, nil, int64(100), "JPG",
		int64(0), nil, "2017-10-01", nil, "", int64(0), int64(0),
		"not a document",
	))
	require.NoError(t, err)

	assert.Nil(t, img.MasterImage)
	assert.Nil(t, img.Rating)
	assert.Nil(t, img.CopyName)
	assert.Nil(t, img.Orientation)
	assert.Nil(t, img.Properties)
	assert.Equal(t, 0, img.ExifOrientation())
}

func TestDecodeImage_MissingRootFile(t *testing.T) {
	_, err := decodeImage(imageRow(
		int64(10), "uuid", nil, nil, nil, "JPG",
		int64(0), nil, "2017-10-01", nil, "", int64(0), int64(0), nil,
	))
	assert.ErrorIs(t, err, storage.ErrNull)
}
