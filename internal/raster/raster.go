// Package raster renders SVG documents into images, by reading
// them back with oksvg and wrapping rasterx.
// It is used to check the geometry of built documents.
package raster

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Image parses the SVG document and renders it into an image of
// the size of its view box, using a ScannerGV.
func Image(document io.Reader) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(document, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "reading svg")
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid view box %gx%g", icon.ViewBox.W, icon.ViewBox.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// Filled reports whether the pixel (x, y) is mostly opaque.
func Filled(img *image.RGBA, x, y int) bool { return img.RGBAAt(x, y).A > 128 }
