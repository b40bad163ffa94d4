package geom

import (
	"math"

	"github.com/pkg/errors"
)

// This file implements the vertex generators for the
// high level shapes, which are then reduced to paths.

// defaultInnerRatio is the inner radius of a star, relative
// to its outer radius, when none is given.
const defaultInnerRatio = 0.5

// winding returns the sign applied to angles.
func winding(ccw bool) float64 {
	if ccw {
		return -1
	}
	return 1
}

// radial returns the m vertices spaced evenly on circles centered at center,
// the first one straight above the center. radius gives the distance of
// the vertex i to the center.
func radial(center Point, m int, ccw bool, radius func(i int) float64) []Point {
	out := make([]Point, m)
	step := winding(ccw) * 2 * math.Pi / float64(m)
	for i := range out {
		out[i] = onCircle(center, radius(i), Rad(-math.Pi/2+float64(i)*step))
	}
	return out
}

// RegularPolygon returns the n vertices of the regular polygon inscribed
// in the circle (center, radius), starting straight above the center,
// walking clockwise (or counter-clockwise if ccw).
// n must be at least 3.
func RegularPolygon(center Point, n int, radius float64, ccw bool) ([]Point, error) {
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidArgument, "regular polygon needs at least 3 corners, got %d", n)
	}
	return radial(center, n, ccw, func(int) float64 { return radius }), nil
}

// Star returns the vertices of a regular star polygon.
// The n outer vertices are laid out as for RegularPolygon, and each one is
// followed by len(radii) vertices whose distances to the center are given
// by radii, so that the star has n*(len(radii)+1) evenly spaced vertices.
// An empty radii defaults to half of radius. n must be at least 1.
func Star(center Point, n int, radius float64, radii []float64, ccw bool) ([]Point, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "star needs at least 1 corner, got %d", n)
	}
	if len(radii) == 0 {
		radii = []float64{radius * defaultInnerRatio}
	}
	k := len(radii) + 1
	return radial(center, n*k, ccw, func(i int) float64 {
		if i%k == 0 {
			return radius
		}
		return radii[i%k-1]
	}), nil
}

// StarRatio is the same as Star, but the inner radii are given
// as ratios of radius. An empty ratios defaults to 0.5.
func StarRatio(center Point, n int, radius float64, ratios []float64, ccw bool) ([]Point, error) {
	radii := make([]float64, len(ratios))
	for i, r := range ratios {
		radii[i] = r * radius
	}
	return Star(center, n, radius, radii, ccw)
}

// Rectangle returns the corners of the axis aligned rectangle whose top left
// corner is corner, starting with it.
func Rectangle(corner Point, width, height float64, ccw bool) []Point {
	x, y := corner.X, corner.Y
	if ccw {
		return []Point{corner, {x, y + height}, {x + width, y + height}, {x + width, y}}
	}
	return []Point{corner, {x + width, y}, {x + width, y + height}, {x, y + height}}
}

// Sector returns [center, A, B] where A and B are the ends of the arc
// of the circle (center, radius) going from start to stop.
// When ccw is true, the arc is walked backward, that is A is at stop.
// stop is expected to be greater than start: the caller is responsible
// for normalizing the angles.
func Sector(center Point, start, stop Angle, radius float64, ccw bool) []Point {
	p1, p2 := onCircle(center, radius, start), onCircle(center, radius, stop)
	if ccw {
		p1, p2 = p2, p1
	}
	return []Point{center, p1, p2}
}

// RingSector returns the 4 corners of the ring sector between the circles
// of radius innerRadius and radius, from start to stop: the outer arc
// ends followed by the inner arc ends, walked backward.
func RingSector(center Point, start, stop Angle, radius, innerRadius float64, ccw bool) []Point {
	if ccw {
		start, stop = stop, start
	}
	return []Point{
		onCircle(center, radius, start),
		onCircle(center, radius, stop),
		onCircle(center, innerRadius, stop),
		onCircle(center, innerRadius, start),
	}
}

// RoundedRectangle returns the 8 points where the straight edges of
// the rectangle meet its rounded corners of radius r.
// Points come by pairs (start and end of a corner arc), walking the perimeter
// from the end of the top edge (clockwise) or its start (ccw).
func RoundedRectangle(corner Point, width, height, r float64, ccw bool) []Point {
	x0, y0 := corner.X, corner.Y
	x1, y1 := x0+width, y0+height
	if ccw {
		return []Point{
			{x0 + r, y0}, {x0, y0 + r},
			{x0, y1 - r}, {x0 + r, y1},
			{x1 - r, y1}, {x1, y1 - r},
			{x1, y0 + r}, {x1 - r, y0},
		}
	}
	return []Point{
		{x1 - r, y0}, {x1, y0 + r},
		{x1, y1 - r}, {x1 - r, y1},
		{x0 + r, y1}, {x0, y1 - r},
		{x0, y0 + r}, {x0 + r, y0},
	}
}

// CheckRadius returns an advisory wrapping ErrDegenerate
// if r is not strictly positive.
func CheckRadius(name string, r float64) error {
	if r > 0 {
		return nil
	}
	return errors.Wrapf(ErrDegenerate, "%s %g is not positive", name, r)
}

// CheckSize returns an advisory wrapping ErrDegenerate
// for empty rectangles.
func CheckSize(width, height float64) error {
	if width > 0 && height > 0 {
		return nil
	}
	return errors.Wrapf(ErrDegenerate, "empty rectangle %gx%g", width, height)
}

// CheckSpan returns an advisory wrapping ErrDegenerate
// when start and stop are the same direction, so that the
// arc between them has coincident ends.
func CheckSpan(start, stop Angle) error {
	if math.Mod(stop.deg-start.deg, 360) != 0 {
		return nil
	}
	return errors.Wrapf(ErrDegenerate, "arc from %g° to %g° has coincident ends", start.deg, stop.deg)
}

// CheckCornerRadius returns an advisory wrapping ErrDegenerate
// when the corners of a rounded rectangle overlap.
func CheckCornerRadius(width, height, r float64) error {
	if err := CheckRadius("corner radius", r); err != nil {
		return err
	}
	if 2*r <= math.Min(width, height) {
		return nil
	}
	return errors.Wrapf(ErrDegenerate, "corner radius %g too large for %gx%g", r, width, height)
}
