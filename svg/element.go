// Package svg provides fluent builders for SVG documents.
//
// Every builder method creates a child element, appends it to the receiver
// and returns it, so that
//
//	doc := svg.New(200, 200, "0 0 200 200")
//	doc.G().SetID("logo").Path("").D().Star([]int{100, 100}, 5, 80, []float64{35}, false)
//
// builds a group holding a star shaped path. Navigate back with Parent
// and Root.
//
// Invalid arguments do not interrupt the chain: the first error is kept by
// the document and returned by Markup and WriteTo.
package svg

import (
	"io"

	"github.com/benoitkugler/svgbuild/internal/logging"
	"github.com/benoitkugler/svgbuild/svgpath"
	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	NamespaceSVG   = "http://www.w3.org/2000/svg"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
)

// SetLogger sets the logger used by the builders. By default
// nothing is logged. Pass nil to disable logging.
func SetLogger(l *zerolog.Logger) { logging.Set(l) }

// document is shared by the elements of a tree
type document struct {
	root *Element
	err  error
}

func (d *document) record(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Element is an SVG element, with its position in the document.
type Element struct {
	x      *xmlbuild.Element
	parent *Element
	doc    *document
	path   *svgpath.Path // lazily created, see D
}

func wrapRoot(x *xmlbuild.Element) *Element {
	doc := &document{}
	doc.root = &Element{x: x, doc: doc}
	return doc.root
}

// New returns the root of a new SVG document. width, height and viewBox
// are omitted when nil. viewBox is either a string or a list of
// four numbers.
func New(width, height, viewBox interface{}, opts ...xmlbuild.Option) *Element {
	root := wrapRoot(xmlbuild.NewDocument("svg", opts...))
	root.x.SetAttr("xmlns", NamespaceSVG).
		SetAttr("width", width).
		SetAttr("height", height).
		SetAttr("viewBox", viewBox)
	return root
}

// NewFragment returns a detached element, rendered without the XML
// declaration nor namespaces. With an empty name, the fragment is a
// list of sibling elements.
func NewFragment(name string, opts ...xmlbuild.Option) *Element {
	return wrapRoot(xmlbuild.NewFragment(name, opts...))
}

// Append adds a child element and returns it.
func (e *Element) Append(name string, text ...string) *Element {
	return &Element{x: e.x.Append(name, text...), parent: e, doc: e.doc}
}

// SetAttr sets an arbitrary attribute. nil values remove it.
func (e *Element) SetAttr(name string, value interface{}) *Element {
	e.x.SetAttr(name, value)
	return e
}

// Attr returns the text of the attribute name.
func (e *Element) Attr(name string) (string, bool) { return e.x.Attr(name) }

// Name returns the tag name of the element.
func (e *Element) Name() string { return e.x.Name() }

// Content returns the text content of the element.
func (e *Element) Content() string { return e.x.Content() }

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Root returns the root of the document.
func (e *Element) Root() *Element { return e.doc.root }

// Inline renders the children of the element on one line.
func (e *Element) Inline(inline bool) *Element {
	e.x.SetInline(inline)
	return e
}

// XML returns the underlying XML element.
func (e *Element) XML() *xmlbuild.Element { return e.x }

// Err returns the first error recorded in the document.
func (e *Element) Err() error { return e.doc.err }

// fail records err for the document and logs it.
func (e *Element) fail(op string, err error) *Element {
	err = errors.Wrapf(err, "<%s> %s", e.Name(), op)
	logging.Logger().Warn().Err(err).Str("element", e.Name()).Str("op", op).Msg("invalid argument")
	e.doc.record(err)
	return e
}

// Markup returns the markup of the element. It fails with the
// first error recorded while building the document.
func (e *Element) Markup() (string, error) {
	if err := e.doc.err; err != nil {
		return "", errors.Wrap(err, "building svg")
	}
	return e.x.Markup()
}

// WriteTo writes the markup of the element to w, in the
// configured encoding.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	if err := e.doc.err; err != nil {
		return 0, errors.Wrap(err, "building svg")
	}
	return e.x.WriteTo(w)
}

// listSep returns the document separator for list
// valued attributes
func (e *Element) listSep() string { return e.x.Settings().ListSeparator }

// keyword returns nil for empty keywords, so that they are omitted.
func keyword(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
