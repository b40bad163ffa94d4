package svg

// Text adds a text element. x and y are either single coordinates or
// lists of coordinates (one per glyph), and are omitted when nil.
func (e *Element) Text(content string, x, y interface{}) *Element {
	return e.Append("text", content).SetX(x).SetY(y)
}

// TSpan adds a text span, see Text.
func (e *Element) TSpan(content string, x, y interface{}) *Element {
	return e.Append("tspan", content).SetX(x).SetY(y)
}

// TextPath adds a text laid out along the path referenced by href.
func (e *Element) TextPath(content, href string) *Element {
	return e.Append("textPath", content).SetXLinkHref(href)
}

// The following setters append to the glyph position lists, using
// the list separator of the document.

func (e *Element) SetX(x interface{}) *Element {
	e.x.AppendAttr("x", x, e.listSep())
	return e
}

func (e *Element) SetY(y interface{}) *Element {
	e.x.AppendAttr("y", y, e.listSep())
	return e
}

func (e *Element) SetXY(x, y interface{}) *Element { return e.SetX(x).SetY(y) }

func (e *Element) SetDx(dx interface{}) *Element {
	e.x.AppendAttr("dx", dx, e.listSep())
	return e
}

func (e *Element) SetDy(dy interface{}) *Element {
	e.x.AppendAttr("dy", dy, e.listSep())
	return e
}

func (e *Element) SetDxDy(dx, dy interface{}) *Element { return e.SetDx(dx).SetDy(dy) }

// SetRotate appends glyph rotations, in degrees.
func (e *Element) SetRotate(angles interface{}) *Element {
	e.x.AppendAttr("rotate", angles, e.listSep())
	return e
}
