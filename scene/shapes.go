package scene

import (
	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/svg"
	"github.com/benoitkugler/svgbuild/svgpath"
	"github.com/pkg/errors"
)

// Shape is one entry of a scene. Only the fields relevant
// to its Kind are used. Angles are in degrees.
type Shape struct {
	Kind  string            `mapstructure:"kind"`
	ID    string            `mapstructure:"id"`
	Attrs map[string]string `mapstructure:"attrs"`

	Center   []float64   `mapstructure:"center"`
	Corner   []float64   `mapstructure:"corner"`
	Position []float64   `mapstructure:"position"`
	Points   [][]float64 `mapstructure:"points"`

	Width    float64   `mapstructure:"width"`
	Height   float64   `mapstructure:"height"`
	Radius   float64   `mapstructure:"radius"`
	Inner    float64   `mapstructure:"inner"`
	Rx       float64   `mapstructure:"rx"`
	Ry       float64   `mapstructure:"ry"`
	Rotation float64   `mapstructure:"rotation"`
	Start    float64   `mapstructure:"start"`
	Stop     float64   `mapstructure:"stop"`
	N        int       `mapstructure:"n"`
	Radii    []float64 `mapstructure:"radii"`
	Ratios   []float64 `mapstructure:"ratios"`
	CCW      bool      `mapstructure:"ccw"`

	Content string `mapstructure:"content"` // text
	D       string `mapstructure:"d"`       // raw path data
}

type pathFunc func(s Shape, d *svgpath.Path)

var pathFuncs = map[string]pathFunc{
	"rect":      rectF,
	"roundrect": roundRectF,
	"circle":    circleF,
	"ellipse":   ellipseF,
	"polygon":   polygonF,
	"star":      starF,
	"sector":    sectorF,
	"ring":      ringF,
	"path":      rawF,
}

// point returns nil for missing coordinates, rejected by the path
func point(coords []float64) interface{} {
	if coords == nil {
		return nil
	}
	return coords
}

func rectF(s Shape, d *svgpath.Path) {
	d.Rectangle(point(s.Corner), s.Width, s.Height, s.CCW)
}

func roundRectF(s Shape, d *svgpath.Path) {
	d.RoundedRectangle(point(s.Corner), s.Width, s.Height, s.Radius, s.CCW)
}

func circleF(s Shape, d *svgpath.Path) { d.Circle(point(s.Center), s.Radius, s.CCW) }

func ellipseF(s Shape, d *svgpath.Path) {
	d.Ellipse(point(s.Center), s.Rx, s.Ry, s.Rotation, s.CCW)
}

// polygonF draws either the given points or a regular polygon
func polygonF(s Shape, d *svgpath.Path) {
	if len(s.Points) != 0 {
		d.Polygon(s.Points)
		return
	}
	d.RegularPolygon(point(s.Center), s.N, s.Radius, s.CCW)
}

func starF(s Shape, d *svgpath.Path) {
	if len(s.Ratios) != 0 {
		d.StarRatio(point(s.Center), s.N, s.Radius, s.Ratios, s.CCW)
		return
	}
	d.Star(point(s.Center), s.N, s.Radius, s.Radii, s.CCW)
}

func sectorF(s Shape, d *svgpath.Path) {
	d.Sector(point(s.Center), geom.Deg(s.Start), geom.Deg(s.Stop), s.Radius, s.CCW)
}

func ringF(s Shape, d *svgpath.Path) {
	d.RingSector(point(s.Center), geom.Deg(s.Start), geom.Deg(s.Stop), s.Radius, s.Inner, s.CCW)
}

func rawF(s Shape, d *svgpath.Path) { d.Raw(s.D) }

func (s Shape) build(parent *svg.Element) (*svg.Element, error) {
	if s.Kind == "text" {
		var x, y interface{}
		if len(s.Position) == 2 {
			x, y = s.Position[0], s.Position[1]
		}
		return parent.Text(s.Content, x, y), nil
	}
	fn, ok := pathFuncs[s.Kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownShape, "%q", s.Kind)
	}
	e := parent.Path("")
	fn(s, e.D())
	return e, nil
}
