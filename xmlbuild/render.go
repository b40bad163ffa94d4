package xmlbuild

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when the output charset label
// is not recognized.
var ErrUnknownEncoding = errors.New("unknown encoding")


func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// lookupEncoding returns the encoder for label (nil for UTF-8)
// and its canonical name. Runes the charset cannot represent
// are written as numeric character references.
func lookupEncoding(label string) (*encoding.Encoder, string, error) {
	if isUTF8(label) {
		return nil, "UTF-8", nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", errors.Wrapf(ErrUnknownEncoding, "%q", label)
	}
	return encoding.HTMLEscapeUnsupported(enc.NewEncoder()), name, nil
}

// Markup returns the markup of the element and its descendants.
// The XML declaration is only emitted for the root of a document.
// The returned string is always UTF-8: it is the decoded form of
// what WriteTo writes.
func (e *Element) Markup() (string, error) {
	_, name, err := lookupEncoding(e.doc.settings.Encoding)
	if err != nil {
		return "", err
	}
	return e.markup(name), nil
}

func (e *Element) markup(encodingName string) string {
	var b strings.Builder
	if e.IsRoot() && e.name != "" && e.doc.settings.Declaration {
		b.WriteString(`<?xml version="1.0" encoding="` + encodingName + `"?>` + "\n")
	}
	r := renderer{b: &b, settings: e.doc.settings}
	r.element(e, 0, false)
	return b.String()
}

// WriteTo writes the markup of e to w, in the configured encoding.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	enc, name, err := lookupEncoding(e.doc.settings.Encoding)
	if err != nil {
		return 0, err
	}
	cw := &countWriter{w: w}
	text := e.markup(name)
	if enc == nil {
		_, err = io.WriteString(cw, text)
		return cw.n, err
	}
	tw := transform.NewWriter(cw, enc)
	if _, err = io.WriteString(tw, text); err != nil {
		return cw.n, errors.Wrap(err, "encoding markup")
	}
	err = tw.Close()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type renderer struct {
	b        *strings.Builder
	settings Settings
}

// escape writes s as character data. Runes XML does not allow, including
// invalid UTF-8, become U+FFFD; tabs and line breaks become character
// references so attribute values keep them.
func (r renderer) escape(s string) {
	_ = xml.EscapeText(r.b, []byte(s))
}

func (r renderer) indent(depth int) {
	for i := 0; i < depth; i++ {
		r.b.WriteString(r.settings.Indent)
	}
}

// children writes the child elements, one per line, at depth,
// or all on the current line if inline.
func (r renderer) children(e *Element, depth int, inline bool) {
	for i, child := range e.children {
		if !inline && i > 0 {
			r.b.WriteByte('\n')
		}
		r.element(child, depth, inline)
	}
}

// element writes e, assuming the cursor is at the start of its line
// (when not inline).
func (r renderer) element(e *Element, depth int, inline bool) {
	if e.name == "" {
		r.children(e, depth, inline || e.inline)
		return
	}
	if !inline {
		r.indent(depth)
	}
	r.b.WriteString("<" + e.name)
	for _, a := range e.attrs {
		r.b.WriteString(" " + a.name + `="`)
		r.escape(a.value.Text(r.settings.Format))
		r.b.WriteByte('"')
	}
	switch {
	case len(e.children) == 0 && e.text == "":
		r.b.WriteString("/>")
		return
	case len(e.children) == 0:
		r.b.WriteByte('>')
		r.escape(e.text)
	case inline || e.inline || e.text != "":
		// mixed content is kept on one line, whitespace being significant
		r.b.WriteByte('>')
		r.escape(e.text)
		r.children(e, depth+1, true)
	default:
		r.b.WriteString(">\n")
		r.children(e, depth+1, false)
		r.b.WriteByte('\n')
		r.indent(depth)
	}
	r.b.WriteString("</" + e.name + ">")
}
