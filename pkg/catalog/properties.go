package catalog

import (
	"fmt"

	"github.com/lrcat/lrcat-go/pkg/lron"
)

// Point is a position in normalized image coordinates.
type Point struct {
	X, Y float64
}

// AspectRatio of a crop.
type AspectRatio struct {
	Width, Height int64
}

// Crop bounds, normalized.
type Crop struct {
	Top, Bottom, Left, Right float64
}

// Properties are the image properties the catalog stores as a document.
// Each field is set only when all of its parts are present.
type Properties struct {
	LoupeFocus      *Point
	CropAspectRatio *AspectRatio
	DefaultCrop     *Crop
}

const pointClassName = "AgPoint"

// ParseProperties parses a propertiesString column.
func ParseProperties(text string) (*Properties, error) {
	root, err := lron.Parse(text)
	if err != nil {
		return nil, err
	}
	if root.Key != "properties" {
		return nil, fmt.Errorf("%w: root is %q, not properties", lron.ErrNotDocument, root.Key)
	}
	p := PropertiesFromLron(root.Dict())
	return &p, nil
}

// PropertiesFromLron interprets the dictionary of a properties document.
func PropertiesFromLron(d lron.Dict) Properties {
	var (
		p                        Properties
		aspectH, aspectW         *int64
		top, bottom, left, right *float64
	)

	number := func(v lron.Value) *float64 {
		if f, ok := lron.Number[float64](v); ok {
			return &f
		}
		return nil
	}

	for _, pair := range d.Pairs() {
		switch pair.Key {
		case "loupeFocusPoint":
			if point, ok := pair.Value.(lron.Dict); ok {
				p.LoupeFocus = loupeFocus(point)
			}
		case "cropAspectH":
			if i, ok := pair.Value.(lron.Int); ok {
				h := int64(i)
				aspectH = &h
			}
		case "cropAspectW":
			if i, ok := pair.Value.(lron.Int); ok {
				w := int64(i)
				aspectW = &w
			}
		case "defaultCropTop":
			top = number(pair.Value)
		case "defaultCropBottom":
			bottom = number(pair.Value)
		case "defaultCropLeft":
			left = number(pair.Value)
		case "defaultCropRight":
			right = number(pair.Value)
		}
	}

	if aspectH != nil && aspectW != nil {
		p.CropAspectRatio = &AspectRatio{Width: *aspectW, Height: *aspectH}
	}
	if top != nil && bottom != nil && left != nil && right != nil {
		p.DefaultCrop = &Crop{Top: *top, Bottom: *bottom, Left: *left, Right: *right}
	}
	return p
}

func loupeFocus(d lron.Dict) *Point {
	var (
		isPoint bool
		x, y    *float64
	)
	for _, pair := range d.Pairs() {
		switch pair.Key {
		case "_ag_className":
			s, ok := lron.String(pair.Value)
			isPoint = ok && s == pointClassName
		case "x":
			if f, ok := lron.Number[float64](pair.Value); ok {
				x = &f
			}
		case "y":
			if f, ok := lron.Number[float64](pair.Value); ok {
				y = &f
			}
		}
	}
	if !isPoint || x == nil || y == nil {
		return nil
	}
	return &Point{X: *x, Y: *y}
}
