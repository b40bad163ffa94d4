// Package geom computes the vertices and angles used to
// decompose composite shapes (polygons, stars, sectors, rounded
// rectangles) into SVG path commands.
// All the functions are pure: the returned slices are fresh and
// owned by the caller.
package geom

import (
	"image"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrInvalidArgument is returned for malformed inputs, such as
	// a point with the wrong number of coordinates.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerate tags advisories about inputs producing visually
	// degenerate (but well-formed) shapes. It is never fatal.
	ErrDegenerate = errors.New("degenerate geometry")
)

// Point is a 2D point, in SVG user space (y axis pointing down).
type Point struct {
	X, Y float64
}

// Pt is a shortcut for Point{x, y}
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rotate returns p rotated around pivot by angle.
func (p Point) Rotate(pivot Point, angle Angle) Point {
	return Rotate(p, pivot, angle)
}

// Rotate returns the point obtained by rotating point about pivot.
// A zero angle returns point unchanged.
func Rotate(point, pivot Point, angle Angle) Point {
	if angle.rad == 0 {
		return point
	}
	sin, cos := angle.Sin(), angle.Cos()
	dx, dy := point.X-pivot.X, point.Y-pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// onCircle returns the point of the circle (center, radius) at angle a.
func onCircle(center Point, radius float64, a Angle) Point {
	return Point{X: center.X + radius*a.Cos(), Y: center.Y + radius*a.Sin()}
}

// AsPoint normalizes the accepted point representations:
// Point, *Point, image.Point, fixed.Point26_6 and two-element numeric arrays
// or slices ([2]float64, []float64, [2]int, []int, []interface{} holding numbers...).
// Any other value fails with ErrInvalidArgument.
func AsPoint(v interface{}) (Point, error) {
	switch v := v.(type) {
	case Point:
		return v, nil
	case *Point:
		if v == nil {
			return Point{}, errors.Wrap(ErrInvalidArgument, "nil point")
		}
		return *v, nil
	case [2]float64:
		return Point{X: v[0], Y: v[1]}, nil
	case [2]int:
		return Point{X: float64(v[0]), Y: float64(v[1])}, nil
	case image.Point:
		return Point{X: float64(v.X), Y: float64(v.Y)}, nil
	case fixed.Point26_6:
		return Point{X: float64(v.X) / 64, Y: float64(v.Y) / 64}, nil
	case nil:
		return Point{}, errors.Wrap(ErrInvalidArgument, "missing point")
	}

	// generic arrays and slices
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
	default:
		return Point{}, errors.Wrapf(ErrInvalidArgument, "unsupported point type %T", v)
	}
	if rv.Len() != 2 {
		return Point{}, errors.Wrapf(ErrInvalidArgument, "point needs 2 coordinates, got %d", rv.Len())
	}
	x, okX := number(rv.Index(0))
	y, okY := number(rv.Index(1))
	if !okX || !okY {
		return Point{}, errors.Wrapf(ErrInvalidArgument, "non numeric point coordinates %v", v)
	}
	return Point{X: x, Y: y}, nil
}

// AsPoints normalizes a list of point-like values, see AsPoint.
// A []Point is returned as a copy.
func AsPoints(v interface{}) ([]Point, error) {
	if ps, ok := v.([]Point); ok {
		return append([]Point(nil), ps...), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported point list type %T", v)
	}
	out := make([]Point, rv.Len())
	for i := range out {
		p, err := AsPoint(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		out[i] = p
	}
	return out, nil
}

// number unwraps interfaces and returns the float value of
// numeric kinds.
func number(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	}
	return 0, false
}
