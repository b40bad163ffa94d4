package svg

import (
	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/svgpath"
	"github.com/benoitkugler/svgbuild/xmlbuild"
)

// setPoint sets the two coordinates attributes of a point.
// A nil point omits both.
func (e *Element) setPoint(op, xName, yName string, p interface{}) *Element {
	if p == nil {
		return e
	}
	pt, err := geom.AsPoint(p)
	if err != nil {
		return e.fail(op, err)
	}
	e.x.SetAttr(xName, pt.X).SetAttr(yName, pt.Y)
	return e
}

func pairs(ps []geom.Point) []xmlbuild.Value {
	out := make([]xmlbuild.Value, len(ps))
	for i, p := range ps {
		out[i] = xmlbuild.Pair{X: p.X, Y: p.Y}
	}
	return out
}

// Rect adds a rectangle. The corner radii rx and ry are omitted when nil.
func (e *Element) Rect(corner interface{}, width, height float64, rx, ry interface{}) *Element {
	r := e.Append("rect").setPoint("Rect", "x", "y", corner)
	r.x.SetAttr("width", width).SetAttr("height", height).SetAttr("rx", rx).SetAttr("ry", ry)
	return r
}

// Circle adds a circle.
func (e *Element) Circle(center interface{}, r float64) *Element {
	c := e.Append("circle").setPoint("Circle", "cx", "cy", center)
	c.x.SetAttr("r", r)
	return c
}

// Ellipse adds an ellipse.
func (e *Element) Ellipse(center interface{}, rx, ry float64) *Element {
	c := e.Append("ellipse").setPoint("Ellipse", "cx", "cy", center)
	c.x.SetAttr("rx", rx).SetAttr("ry", ry)
	return c
}

// Line adds a line segment.
func (e *Element) Line(p1, p2 interface{}) *Element {
	return e.Append("line").
		setPoint("Line", "x1", "y1", p1).
		setPoint("Line", "x2", "y2", p2)
}

// Polyline adds an open polyline. points is either the text of
// the `points` attribute or a list of point-like values.
func (e *Element) Polyline(points interface{}) *Element {
	return e.Append("polyline").SetPoints(points)
}

// Polygon adds a closed polygon, see Polyline.
func (e *Element) Polygon(points interface{}) *Element {
	return e.Append("polygon").SetPoints(points)
}

// Star adds a polygon with the vertices of geom.Star, clockwise.
func (e *Element) Star(center interface{}, n int, radius float64, radii []float64) *Element {
	s := e.Append("polygon")
	c, err := geom.AsPoint(center)
	if err != nil {
		return s.fail("Star", err)
	}
	ps, err := geom.Star(c, n, radius, radii, false)
	if err != nil {
		return s.fail("Star", err)
	}
	s.x.SetAttr("points", &xmlbuild.List{Sep: " ", Items: pairs(ps)})
	return s
}

// SetPoints appends to the `points` attribute, either raw text or a
// list of point-like values.
func (e *Element) SetPoints(points interface{}) *Element {
	switch points := points.(type) {
	case nil:
		return e
	case string:
		e.x.AppendAttr("points", points, " ")
		return e
	}
	ps, err := geom.AsPoints(points)
	if err != nil {
		return e.fail("SetPoints", err)
	}
	e.x.AppendAttr("points", pairs(ps), " ")
	return e
}

// AddPoint appends one point to the `points` attribute.
func (e *Element) AddPoint(p interface{}) *Element {
	pt, err := geom.AsPoint(p)
	if err != nil {
		return e.fail("AddPoint", err)
	}
	e.x.AppendAttr("points", xmlbuild.Pair{X: pt.X, Y: pt.Y}, " ")
	return e
}

// Path adds a path element, starting with the data d (which may be empty).
// Use D to append commands.
func (e *Element) Path(d string) *Element {
	p := e.Append("path")
	if d != "" {
		p.x.SetAttr("d", d)
	}
	return p
}

// D returns the path data of the element, created on first use
// from the current `d` attribute. Commands appended to it are
// reflected in the `d` attribute, and their errors in the document.
func (e *Element) D() *svgpath.Path {
	if e.path == nil {
		d, _ := e.x.Attr("d")
		e.path = svgpath.FromRaw(d).OnError(e.doc.record)
		e.x.SetAttr("d", e.path)
	}
	return e.path
}
