package catalog

import (
	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Pick flag values.
const (
	PickRejected = -1
	PickNone     = 0
	PickPicked   = 1
)

// Image is a photo in the catalog. A virtual copy has MasterImage set.
type Image struct {
	id          types.LrID
	uuid        string
	MasterImage *types.LrID
	CopyName    *string
	Rating      *int64
	RootFile    types.LrID // LibraryFile id
	FileFormat  string
	Pick        int64
	// Orientation is a two letter code, e.g. "AB".
	Orientation      *string
	CaptureTime      string
	XMP              string
	XMPEmbedded      bool
	XMPExternalDirty bool
	Properties       *Properties
}

func (i Image) ID() types.LrID { return i.id }
func (i Image) UUID() string   { return i.uuid }

// ExifOrientation maps the orientation code to the EXIF orientation tag
// value. It returns 0 when there is no orientation and -1 for unknown codes.
func (i Image) ExifOrientation() int {
	if i.Orientation == nil {
		return 0
	}
	switch *i.Orientation {
	case "AB":
		return 1
	case "DA":
		return 8
	case "BC":
		return 6
	case "CD":
		return 3
	default:
		return -1
	}
}

var imageStrategy = Strategy[Image]{
	Tables: "Adobe_images as img,Adobe_AdditionalMetadata as meta,Adobe_imageProperties as props",
	Columns: "img.id_local,img.id_global,cast(img.masterImage as integer),img.rating,img.rootFile," +
		"img.fileFormat,cast(img.pick as integer),img.orientation,img.captureTime,img.copyName," +
		"meta.xmp,meta.embeddedXmp,meta.externalXmpIsDirty,props.propertiesString",
	Join:   "meta.image = img.id_local and props.image = img.id_local",
	Decode: decodeImage,
}

var imageMapper = Mapper[Image]{
	Entity: "image",
	Strategies: map[Version]Strategy[Image]{
		Lr2: imageStrategy,
		Lr4: imageStrategy,
		Lr6: imageStrategy,
	},
}

func decodeImage(row *storage.Row) (Image, error) {
	id, uuid, err := decodeIdentity(row)
	if err != nil {
		return Image{}, err
	}
	rootFile, err := row.Int64(4)
	if err != nil {
		return Image{}, err
	}
	fileFormat, err := row.String(5)
	if err != nil {
		return Image{}, err
	}
	pick, err := row.Int64(6)
	if err != nil {
		return Image{}, err
	}
	captureTime, err := row.String(8)
	if err != nil {
		return Image{}, err
	}
	xmp, err := row.String(10)
	if err != nil {
		return Image{}, err
	}
	embedded, err := row.Bool(11)
	if err != nil {
		return Image{}, err
	}
	dirty, err := row.Bool(12)
	if err != nil {
		return Image{}, err
	}

	img := Image{
		id:               id,
		uuid:             uuid,
		CopyName:         row.OptString(9),
		Rating:           row.OptInt64(3),
		RootFile:         types.LrID(rootFile),
		FileFormat:       fileFormat,
		Pick:             pick,
		Orientation:      row.OptString(7),
		CaptureTime:      captureTime,
		XMP:              xmp,
		XMPEmbedded:      embedded,
		XMPExternalDirty: dirty,
	}
	if master := row.OptInt64(2); master != nil {
		m := types.LrID(*master)
		img.MasterImage = &m
	}
	if props := row.OptString(13); props != nil {
		// Unparsable properties are left out, the image is still loaded.
		img.Properties, _ = ParseProperties(*props)
	}
	return img, nil
}
