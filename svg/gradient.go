package svg

import (
	"fmt"
	"image/color"
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (s SpreadMethod) String() string {
	switch s {
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	default:
		return "pad"
	}
}

// GradStop represents a stop of a gradient.
// A zero Opacity takes the alpha channel of StopColor. A nil
// StopColor is omitted, as an opacity of 1.
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Hex returns the #rrggbb notation of c, ignoring its alpha
// channel.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// LinearGradient adds a linear gradient going from (x1, y1) to (x2, y2).
// Coordinates are omitted when nil.
func (e *Element) LinearGradient(id string, x1, y1, x2, y2 interface{}) *Element {
	return e.Append("linearGradient").SetID(id).
		SetAttr("x1", x1).SetAttr("y1", y1).
		SetAttr("x2", x2).SetAttr("y2", y2)
}

// RadialGradient adds a radial gradient of center (cx, cy).
// Parameters are omitted when nil.
func (e *Element) RadialGradient(id string, cx, cy, r interface{}) *Element {
	return e.Append("radialGradient").SetID(id).
		SetAttr("cx", cx).SetAttr("cy", cy).SetAttr("r", r)
}

// SetFocus sets the focal point of a radial gradient.
func (e *Element) SetFocus(fx, fy interface{}) *Element {
	return e.SetAttr("fx", fx).SetAttr("fy", fy)
}

// SetSpreadMethod sets the behavior of a gradient outside of its bounds.
// The default pad method is omitted.
func (e *Element) SetSpreadMethod(s SpreadMethod) *Element {
	if s == PadSpread {
		return e.SetAttr("spreadMethod", nil)
	}
	return e.SetAttr("spreadMethod", s)
}

// SetGradientUnits sets the coordinate system of a gradient.
func (e *Element) SetGradientUnits(units Units) *Element {
	return e.SetAttr("gradientUnits", keyword(string(units)))
}

// Stop adds a gradient stop. color is either a string or a color.Color,
// color and opacity are omitted when nil.
func (e *Element) Stop(offset, stopColor, opacity interface{}) *Element {
	if c, ok := stopColor.(color.Color); ok {
		stopColor = Hex(c)
	}
	return e.Append("stop").
		SetAttr("offset", offset).
		SetAttr("stop-color", stopColor).
		SetAttr("stop-opacity", opacity)
}

// AddStops adds the stops of a gradient, in order.
func (e *Element) AddStops(stops ...GradStop) *Element {
	for _, s := range stops {
		var c, opacity interface{}
		alpha := s.Opacity
		if s.StopColor != nil {
			c = s.StopColor
			if alpha == 0 {
				_, _, _, a := s.StopColor.RGBA()
				alpha = float64(a) / 0xffff
			}
		}
		if alpha != 1 && (alpha != 0 || s.StopColor != nil) {
			opacity = alpha
		}
		e.Stop(s.Offset, c, opacity)
	}
	return e
}
