package geom

import "math"

// Angle is a measure usable both in degrees (the unit of the public API
// and of the SVG attributes) and radians (used by the formulas).
// Positive angles turn clockwise on screen, since the SVG y axis points down.
type Angle struct {
	deg, rad float64
}

// Deg returns the angle of d degrees.
func Deg(d float64) Angle { return Angle{deg: d, rad: d * math.Pi / 180} }

// Rad returns the angle of r radians.
func Rad(r float64) Angle { return Angle{deg: r * 180 / math.Pi, rad: r} }

// Degrees returns the angle value in degrees.
func (a Angle) Degrees() float64 { return a.deg }

// Radians returns the angle value in radians.
func (a Angle) Radians() float64 { return a.rad }

func (a Angle) Sin() float64 { return math.Sin(a.rad) }

func (a Angle) Cos() float64 { return math.Cos(a.rad) }

// Add returns a + b
func (a Angle) Add(b Angle) Angle { return Angle{deg: a.deg + b.deg, rad: a.rad + b.rad} }

// LargeArc returns the SVG large-arc flag for an arc spanning
// from start to stop: true when the span, reduced modulo 360°,
// is at least 180°. A full turn is reported as a null span (false).
func LargeArc(start, stop Angle) bool {
	span := math.Mod(math.Abs(stop.deg-start.deg), 360)
	return span >= 180
}
