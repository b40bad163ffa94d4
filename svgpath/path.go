// Package svgpath assembles SVG path data: an ordered buffer of
// typed commands, flattened to a `d` attribute only when read.
package svgpath

import (
	"strings"

	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/internal/logging"
	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/pkg/errors"
)

// Operation groups the different SVG commands
type Operation interface {
	// command returns the command letter, lower case for
	// relative commands
	command() byte
	args(nf xmlbuild.NumberFormat) []string
}

type MoveTo struct {
	To  geom.Point
	Rel bool
}

type LineTo struct {
	To  geom.Point
	Rel bool
}

type HLineTo struct {
	X   float64
	Rel bool
}

type VLineTo struct {
	Y   float64
	Rel bool
}

type CubicTo struct {
	C1, C2, To geom.Point
	Rel        bool
}

// SmoothCubicTo reflects the previous control point.
type SmoothCubicTo struct {
	C2, To geom.Point
	Rel    bool
}

type QuadTo struct {
	C, To geom.Point
	Rel   bool
}

type SmoothQuadTo struct {
	To  geom.Point
	Rel bool
}

// ArcTo is an elliptical arc, Rotation being in degrees.
type ArcTo struct {
	Rx, Ry, Rotation float64
	Large, Sweep     bool
	To               geom.Point
	Rel              bool
}

type Close struct{ Rel bool }

// Raw is an existing path data string, copied as is.
type Raw string

func letter(upper byte, rel bool) byte {
	if rel {
		return upper + 'a' - 'A'
	}
	return upper
}

func (op MoveTo) command() byte        { return letter('M', op.Rel) }
func (op LineTo) command() byte        { return letter('L', op.Rel) }
func (op HLineTo) command() byte       { return letter('H', op.Rel) }
func (op VLineTo) command() byte       { return letter('V', op.Rel) }
func (op CubicTo) command() byte       { return letter('C', op.Rel) }
func (op SmoothCubicTo) command() byte { return letter('S', op.Rel) }
func (op QuadTo) command() byte        { return letter('Q', op.Rel) }
func (op SmoothQuadTo) command() byte  { return letter('T', op.Rel) }
func (op ArcTo) command() byte         { return letter('A', op.Rel) }
func (op Close) command() byte         { return letter('Z', op.Rel) }
func (Raw) command() byte              { return 0 }

func pt(nf xmlbuild.NumberFormat, p geom.Point) string { return nf.Float(p.X) + "," + nf.Float(p.Y) }

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (op MoveTo) args(nf xmlbuild.NumberFormat) []string  { return []string{pt(nf, op.To)} }
func (op LineTo) args(nf xmlbuild.NumberFormat) []string  { return []string{pt(nf, op.To)} }
func (op HLineTo) args(nf xmlbuild.NumberFormat) []string { return []string{nf.Float(op.X)} }
func (op VLineTo) args(nf xmlbuild.NumberFormat) []string { return []string{nf.Float(op.Y)} }
func (op CubicTo) args(nf xmlbuild.NumberFormat) []string {
	return []string{pt(nf, op.C1), pt(nf, op.C2), pt(nf, op.To)}
}
func (op SmoothCubicTo) args(nf xmlbuild.NumberFormat) []string {
	return []string{pt(nf, op.C2), pt(nf, op.To)}
}
func (op QuadTo) args(nf xmlbuild.NumberFormat) []string {
	return []string{pt(nf, op.C), pt(nf, op.To)}
}
func (op SmoothQuadTo) args(nf xmlbuild.NumberFormat) []string { return []string{pt(nf, op.To)} }
func (op ArcTo) args(nf xmlbuild.NumberFormat) []string {
	return []string{
		nf.Float(op.Rx), nf.Float(op.Ry), nf.Float(op.Rotation),
		flag(op.Large), flag(op.Sweep), pt(nf, op.To),
	}
}
func (Close) args(xmlbuild.NumberFormat) []string { return nil }
func (op Raw) args(xmlbuild.NumberFormat) []string {
	if s := strings.TrimSpace(string(op)); s != "" {
		return []string{s}
	}
	return nil
}

// Commands is a sequence of basic SVG operations.
type Commands []Operation

// Text returns the path data, commands and arguments
// being separated by one space.
func (cs Commands) Text(nf xmlbuild.NumberFormat) string {
	chunks := make([]string, 0, 2*len(cs))
	for _, op := range cs {
		if c := op.command(); c != 0 {
			chunks = append(chunks, string(c))
		}
		chunks = append(chunks, op.args(nf)...)
	}
	return strings.Join(chunks, " ")
}

// Path is a path data buffer. Commands are appended in call order
// and every method returns the path, for chaining.
//
// A call receiving a malformed point appends nothing: the error is
// logged and kept (see Err), and later calls keep working.
type Path struct {
	ops        Commands
	err        error
	advisories []error
	onError    func(error)
}

// New returns an empty path.
func New() *Path { return &Path{} }

// FromRaw returns a path starting with the existing data d.
func FromRaw(d string) *Path {
	p := New()
	if strings.TrimSpace(d) != "" {
		p.ops = append(p.ops, Raw(d))
	}
	return p
}

// OnError registers a function called with every error recorded
// by the path.
func (p *Path) OnError(fn func(error)) *Path {
	p.onError = fn
	return p
}

// Len returns the number of operations.
func (p *Path) Len() int { return len(p.ops) }

// Operations returns a copy of the operations.
func (p *Path) Operations() Commands { return append(Commands(nil), p.ops...) }

// Reset clears the operations, the error and the advisories.
func (p *Path) Reset() *Path {
	p.ops = p.ops[:0]
	p.err = nil
	p.advisories = nil
	return p
}

// Err returns the first error recorded, or nil.
func (p *Path) Err() error { return p.err }

// Advisories returns the degeneracy warnings, wrapping geom.ErrDegenerate.
func (p *Path) Advisories() []error { return p.advisories }

// Text implements xmlbuild.Value.
func (p *Path) Text(nf xmlbuild.NumberFormat) string { return p.ops.Text(nf) }

// String returns the path data with the default number format.
func (p *Path) String() string {
	return p.Text(xmlbuild.NumberFormat{Precision: xmlbuild.DefaultPrecision})
}

func (p *Path) fail(op string, err error) *Path {
	err = errors.Wrap(err, op)
	logging.Logger().Warn().Err(err).Str("op", op).Msg("path command rejected")
	if p.err == nil {
		p.err = err
	}
	if p.onError != nil {
		p.onError(err)
	}
	return p
}

func (p *Path) advise(op string, err error) {
	if err == nil {
		return
	}
	err = errors.Wrap(err, op)
	logging.Logger().Debug().Err(err).Str("op", op).Msg("degenerate shape")
	p.advisories = append(p.advisories, err)
}

// points normalizes all the values, stopping at the first invalid one
func points(values ...interface{}) ([]geom.Point, error) {
	out := make([]geom.Point, len(values))
	for i, v := range values {
		var err error
		out[i], err = geom.AsPoint(v)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i+1)
		}
	}
	return out, nil
}

func (p *Path) push(ops ...Operation) *Path {
	p.ops = append(p.ops, ops...)
	return p
}

// MoveTo starts a new sub-path at to.
func (p *Path) MoveTo(to interface{}) *Path { return p.moveTo("MoveTo", to, false) }

// MoveToRel is the relative version of MoveTo.
func (p *Path) MoveToRel(to interface{}) *Path { return p.moveTo("MoveToRel", to, true) }

func (p *Path) moveTo(name string, to interface{}, rel bool) *Path {
	ps, err := points(to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(MoveTo{To: ps[0], Rel: rel})
}

// LineTo draws a line to to.
func (p *Path) LineTo(to interface{}) *Path { return p.lineTo("LineTo", to, false) }

// LineToRel is the relative version of LineTo.
func (p *Path) LineToRel(to interface{}) *Path { return p.lineTo("LineToRel", to, true) }

func (p *Path) lineTo(name string, to interface{}, rel bool) *Path {
	ps, err := points(to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(LineTo{To: ps[0], Rel: rel})
}

// HLineTo draws a horizontal line.
func (p *Path) HLineTo(x float64) *Path { return p.push(HLineTo{X: x}) }

func (p *Path) HLineToRel(dx float64) *Path { return p.push(HLineTo{X: dx, Rel: true}) }

// VLineTo draws a vertical line.
func (p *Path) VLineTo(y float64) *Path { return p.push(VLineTo{Y: y}) }

func (p *Path) VLineToRel(dy float64) *Path { return p.push(VLineTo{Y: dy, Rel: true}) }

// CubicTo draws a cubic Bézier curve.
func (p *Path) CubicTo(c1, c2, to interface{}) *Path { return p.cubicTo("CubicTo", c1, c2, to, false) }

func (p *Path) CubicToRel(c1, c2, to interface{}) *Path {
	return p.cubicTo("CubicToRel", c1, c2, to, true)
}

func (p *Path) cubicTo(name string, c1, c2, to interface{}, rel bool) *Path {
	ps, err := points(c1, c2, to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(CubicTo{C1: ps[0], C2: ps[1], To: ps[2], Rel: rel})
}

// SmoothCubicTo draws a cubic Bézier curve whose first control point
// is the reflection of the previous one.
func (p *Path) SmoothCubicTo(c2, to interface{}) *Path {
	return p.smoothCubicTo("SmoothCubicTo", c2, to, false)
}

func (p *Path) SmoothCubicToRel(c2, to interface{}) *Path {
	return p.smoothCubicTo("SmoothCubicToRel", c2, to, true)
}

func (p *Path) smoothCubicTo(name string, c2, to interface{}, rel bool) *Path {
	ps, err := points(c2, to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(SmoothCubicTo{C2: ps[0], To: ps[1], Rel: rel})
}

// QuadTo draws a quadratic Bézier curve.
func (p *Path) QuadTo(c, to interface{}) *Path { return p.quadTo("QuadTo", c, to, false) }

func (p *Path) QuadToRel(c, to interface{}) *Path { return p.quadTo("QuadToRel", c, to, true) }

func (p *Path) quadTo(name string, c, to interface{}, rel bool) *Path {
	ps, err := points(c, to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(QuadTo{C: ps[0], To: ps[1], Rel: rel})
}

// SmoothQuadTo draws a quadratic Bézier curve whose control point
// is the reflection of the previous one.
func (p *Path) SmoothQuadTo(to interface{}) *Path {
	return p.smoothQuadTo("SmoothQuadTo", to, false)
}

func (p *Path) SmoothQuadToRel(to interface{}) *Path {
	return p.smoothQuadTo("SmoothQuadToRel", to, true)
}

func (p *Path) smoothQuadTo(name string, to interface{}, rel bool) *Path {
	ps, err := points(to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(SmoothQuadTo{To: ps[0], Rel: rel})
}

// ArcTo draws an elliptical arc of radii (rx, ry), the x axis
// of the ellipse being rotated by rotation degrees.
func (p *Path) ArcTo(rx, ry, rotation float64, large, sweep bool, to interface{}) *Path {
	return p.arcTo("ArcTo", rx, ry, rotation, large, sweep, to, false)
}

func (p *Path) ArcToRel(rx, ry, rotation float64, large, sweep bool, to interface{}) *Path {
	return p.arcTo("ArcToRel", rx, ry, rotation, large, sweep, to, true)
}

func (p *Path) arcTo(name string, rx, ry, rotation float64, large, sweep bool, to interface{}, rel bool) *Path {
	ps, err := points(to)
	if err != nil {
		return p.fail(name, err)
	}
	return p.push(ArcTo{Rx: rx, Ry: ry, Rotation: rotation, Large: large, Sweep: sweep, To: ps[0], Rel: rel})
}

// Close joins the end of the sub-path to its start.
func (p *Path) Close() *Path { return p.push(Close{}) }

// CloseRel is Close written with the lower case command.
func (p *Path) CloseRel() *Path { return p.push(Close{Rel: true}) }

// Raw appends existing path data.
func (p *Path) Raw(d string) *Path {
	if strings.TrimSpace(d) == "" {
		return p
	}
	return p.push(Raw(d))
}
