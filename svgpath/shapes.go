package svgpath

import (
	"github.com/benoitkugler/svgbuild/geom"
)

// This file implements the high level shapes, reduced to
// the primitive commands of the path.

// Polygon draws the closed polygon going through points, which may
// be a []geom.Point or any slice of point-like values.
// An empty list is a no-op.
func (p *Path) Polygon(points interface{}) *Path {
	ps, err := geom.AsPoints(points)
	if err != nil {
		return p.fail("Polygon", err)
	}
	return p.polygon(ps)
}

func (p *Path) polygon(ps []geom.Point) *Path {
	if len(ps) == 0 {
		return p
	}
	ops := make([]Operation, 0, len(ps)+1)
	ops = append(ops, MoveTo{To: ps[0]})
	for _, v := range ps[1:] {
		ops = append(ops, LineTo{To: v})
	}
	return p.push(append(ops, Close{})...)
}

// Rectangle draws the rectangle whose top left corner is corner.
func (p *Path) Rectangle(corner interface{}, width, height float64, ccw bool) *Path {
	c, err := geom.AsPoint(corner)
	if err != nil {
		return p.fail("Rectangle", err)
	}
	p.advise("Rectangle", geom.CheckSize(width, height))
	return p.polygon(geom.Rectangle(c, width, height, ccw))
}

// RegularPolygon draws the regular polygon with n corners inscribed
// in the circle (center, radius), its first corner straight above the center.
func (p *Path) RegularPolygon(center interface{}, n int, radius float64, ccw bool) *Path {
	c, err := geom.AsPoint(center)
	if err != nil {
		return p.fail("RegularPolygon", err)
	}
	ps, err := geom.RegularPolygon(c, n, radius, ccw)
	if err != nil {
		return p.fail("RegularPolygon", err)
	}
	p.advise("RegularPolygon", geom.CheckRadius("radius", radius))
	return p.polygon(ps)
}

// Star draws a star with n branches of length radius. radii are the
// distances to the center of the vertices between two branches.
// See geom.Star.
func (p *Path) Star(center interface{}, n int, radius float64, radii []float64, ccw bool) *Path {
	return p.star("Star", center, n, radius, radii, ccw, geom.Star)
}

// StarRatio is the same as Star, with radii given relatively to radius.
func (p *Path) StarRatio(center interface{}, n int, radius float64, ratios []float64, ccw bool) *Path {
	return p.star("StarRatio", center, n, radius, ratios, ccw, geom.StarRatio)
}

func (p *Path) star(name string, center interface{}, n int, radius float64, radii []float64, ccw bool,
	vertices func(geom.Point, int, float64, []float64, bool) ([]geom.Point, error),
) *Path {
	c, err := geom.AsPoint(center)
	if err != nil {
		return p.fail(name, err)
	}
	ps, err := vertices(c, n, radius, radii, ccw)
	if err != nil {
		return p.fail(name, err)
	}
	p.advise(name, geom.CheckRadius("radius", radius))
	return p.polygon(ps)
}

// Circle draws a full circle with two arcs, starting at
// the rightmost point.
func (p *Path) Circle(center interface{}, radius float64, ccw bool) *Path {
	return p.ellipse("Circle", center, radius, radius, 0, ccw)
}

// Ellipse draws a full ellipse with two half arcs. Its x axis
// is rotated by rotation degrees around the center.
func (p *Path) Ellipse(center interface{}, rx, ry, rotation float64, ccw bool) *Path {
	return p.ellipse("Ellipse", center, rx, ry, rotation, ccw)
}

func (p *Path) ellipse(name string, center interface{}, rx, ry, rotation float64, ccw bool) *Path {
	c, err := geom.AsPoint(center)
	if err != nil {
		return p.fail(name, err)
	}
	p.advise(name, geom.CheckRadius("rx", rx))
	p.advise(name, geom.CheckRadius("ry", ry))

	angle := geom.Deg(rotation)
	p1 := geom.Rotate(c.Add(geom.Pt(rx, 0)), c, angle)
	p2 := geom.Rotate(c.Sub(geom.Pt(rx, 0)), c, angle)
	return p.push(
		MoveTo{To: p1},
		ArcTo{Rx: rx, Ry: ry, Rotation: rotation, Sweep: !ccw, To: p2},
		ArcTo{Rx: rx, Ry: ry, Rotation: rotation, Sweep: !ccw, To: p1},
	)
}

// Sector draws the pie slice of the circle (center, radius) between
// the angles start and stop.
func (p *Path) Sector(center interface{}, start, stop geom.Angle, radius float64, ccw bool) *Path {
	c, err := geom.AsPoint(center)
	if err != nil {
		return p.fail("Sector", err)
	}
	p.advise("Sector", geom.CheckRadius("radius", radius))
	p.advise("Sector", geom.CheckSpan(start, stop))

	ps := geom.Sector(c, start, stop, radius, ccw)
	return p.push(
		MoveTo{To: ps[0]},
		LineTo{To: ps[1]},
		ArcTo{Rx: radius, Ry: radius, Large: geom.LargeArc(start, stop), Sweep: !ccw, To: ps[2]},
		Close{},
	)
}

// RingSector draws the part of the ring between the circles of radius
// innerRadius and radius, from start to stop.
func (p *Path) RingSector(center interface{}, start, stop geom.Angle, radius, innerRadius float64, ccw bool) *Path {
	c, err := geom.AsPoint(center)
	if err != nil {
		return p.fail("RingSector", err)
	}
	p.advise("RingSector", geom.CheckRadius("radius", radius))
	p.advise("RingSector", geom.CheckRadius("inner radius", innerRadius))
	p.advise("RingSector", geom.CheckSpan(start, stop))

	ps := geom.RingSector(c, start, stop, radius, innerRadius, ccw)
	large := geom.LargeArc(start, stop)
	return p.push(
		MoveTo{To: ps[0]},
		ArcTo{Rx: radius, Ry: radius, Large: large, Sweep: !ccw, To: ps[1]},
		LineTo{To: ps[2]},
		ArcTo{Rx: innerRadius, Ry: innerRadius, Large: large, Sweep: ccw, To: ps[3]},
		Close{},
	)
}

// RoundedRectangle draws the rectangle whose top left corner is corner,
// with corners rounded by arcs of radius r.
func (p *Path) RoundedRectangle(corner interface{}, width, height, r float64, ccw bool) *Path {
	c, err := geom.AsPoint(corner)
	if err != nil {
		return p.fail("RoundedRectangle", err)
	}
	p.advise("RoundedRectangle", geom.CheckSize(width, height))
	p.advise("RoundedRectangle", geom.CheckCornerRadius(width, height, r))

	ps := geom.RoundedRectangle(c, width, height, r, ccw)
	ops := []Operation{MoveTo{To: ps[0]}}
	for k := 0; k < 4; k++ {
		ops = append(ops, ArcTo{Rx: r, Ry: r, Sweep: !ccw, To: ps[2*k+1]})
		if k < 3 {
			ops = append(ops, LineTo{To: ps[2*k+2]})
		}
	}
	return p.push(append(ops, Close{})...)
}
