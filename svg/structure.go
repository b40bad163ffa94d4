package svg

import (
	"encoding/base64"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// ErrUnknownImageType is returned when the format of an
// embedded image is not recognized.
var ErrUnknownImageType = errors.New("unknown image type")

// Defs adds a definitions container.
func (e *Element) Defs() *Element { return e.Append("defs") }

// G adds a group.
func (e *Element) G() *Element { return e.Append("g") }

// Title adds a title, usually displayed as a tooltip.
func (e *Element) Title(title string) *Element { return e.Append("title", title) }

// Desc adds a description.
func (e *Element) Desc(desc string) *Element { return e.Append("desc", desc) }

// Use adds a reference to the element href (like "#id").
// corner, width and height are omitted when nil.
func (e *Element) Use(href string, corner, width, height interface{}) *Element {
	return e.Append("use").SetXLinkHref(href).
		setPoint("Use", "x", "y", corner).
		SetAttr("width", width).
		SetAttr("height", height)
}

// Image adds an external image.
func (e *Element) Image(href string, corner, width, height interface{}, align Align) *Element {
	return e.Append("image").SetXLinkHref(href).
		setPoint("Image", "x", "y", corner).
		SetAttr("width", width).
		SetAttr("height", height).
		SetAttr("preserveAspectRatio", keyword(string(align)))
}

// DataURI returns the base64 data URI of an image file content,
// whose MIME type is sniffed from its first bytes.
func DataURI(content []byte) (string, error) {
	kind, err := filetype.Image(content)
	if err != nil || kind.MIME.Value == "" {
		return "", errors.Wrapf(ErrUnknownImageType, "%d bytes", len(content))
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

// EmbedImage adds an image whose content is stored in the document,
// as a data URI.
func (e *Element) EmbedImage(content []byte, corner, width, height interface{}, align Align) *Element {
	uri, err := DataURI(content)
	if err != nil {
		return e.Image("", corner, width, height, align).fail("EmbedImage", err)
	}
	return e.Image(uri, corner, width, height, align)
}

// ClipPath adds a clipping path.
func (e *Element) ClipPath(id string, units Units) *Element {
	return e.Append("clipPath").SetID(id).SetAttr("clipPathUnits", keyword(string(units)))
}

// Mask adds a mask. The region corner, width and height
// are omitted when nil.
func (e *Element) Mask(id string, corner, width, height interface{}, units, contentUnits Units) *Element {
	return e.Append("mask").SetID(id).
		setPoint("Mask", "x", "y", corner).
		SetAttr("width", width).
		SetAttr("height", height).
		SetAttr("maskUnits", keyword(string(units))).
		SetAttr("maskContentUnits", keyword(string(contentUnits)))
}
