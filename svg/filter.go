package svg

import (
	"reflect"

	"github.com/benoitkugler/svgbuild/xmlbuild"
)

// Region is the subregion of a filter or a primitive. Each field is a
// number or a string (such as "-10%"), omitted when nil.
type Region struct {
	X, Y, Width, Height interface{}
}

func (e *Element) setRegion(r *Region) *Element {
	if r == nil {
		return e
	}
	return e.SetAttr("x", r.X).SetAttr("y", r.Y).SetAttr("width", r.Width).SetAttr("height", r.Height)
}

// Filter adds a filter. href, region and units are omitted when empty.
func (e *Element) Filter(id string, region *Region, href string, filterUnits, primitiveUnits Units) *Element {
	return e.Append("filter").SetID(id).SetXLinkHref(href).setRegion(region).
		SetAttr("filterUnits", keyword(string(filterUnits))).
		SetAttr("primitiveUnits", keyword(string(primitiveUnits)))
}

// primitive adds a filter primitive reading in.
func (e *Element) primitive(name string, in interface{}) *Element {
	return e.Append(name).SetIn(in)
}

func (e *Element) FeBlend(in, in2 interface{}, mode BlendMode, result string) *Element {
	return e.primitive("feBlend", in).SetIn2(in2).
		SetAttr("mode", keyword(string(mode))).
		SetResult(result)
}

// FeColorMatrix adds a color matrix primitive. values is either a string,
// a list of numbers or a matrix (rows of numbers), and is omitted
// when nil.
func (e *Element) FeColorMatrix(in interface{}, typ ColorMatrixType, values interface{}, result string) *Element {
	m := e.primitive("feColorMatrix", in).SetAttr("type", keyword(string(typ)))
	m.x.AppendAttr("values", values, " ")
	return m.SetResult(result)
}

// FeComponentTransfer adds a component transfer primitive,
// whose functions are added with the FeFunc methods.
func (e *Element) FeComponentTransfer(in interface{}, result string) *Element {
	return e.primitive("feComponentTransfer", in).SetResult(result)
}

// feFuncs adds one transfer function per channel letter, calling set
// on each. It returns the receiver.
func (e *Element) feFuncs(channels Channel, typ TransferType, set func(f *Element)) *Element {
	for _, c := range channels {
		f := e.Append("feFunc" + string(c)).SetAttr("type", string(typ))
		if set != nil {
			set(f)
		}
	}
	return e
}

// FeFuncIdentity adds identity transfer functions for channels
// and returns the receiver.
func (e *Element) FeFuncIdentity(channels Channel) *Element {
	return e.feFuncs(channels, TransferIdentity, nil)
}

// FeFuncTable adds table transfer functions.
func (e *Element) FeFuncTable(channels Channel, values interface{}) *Element {
	return e.feFuncs(channels, TransferTable, func(f *Element) { f.SetTableValues(values) })
}

// FeFuncDiscrete adds discrete transfer functions.
func (e *Element) FeFuncDiscrete(channels Channel, values interface{}) *Element {
	return e.feFuncs(channels, TransferDiscrete, func(f *Element) { f.SetTableValues(values) })
}

// FeFuncLinear adds linear transfer functions.
func (e *Element) FeFuncLinear(channels Channel, slope, intercept interface{}) *Element {
	return e.feFuncs(channels, TransferLinear, func(f *Element) {
		f.SetAttr("slope", slope).SetAttr("intercept", intercept)
	})
}

// FeFuncGamma adds gamma transfer functions.
func (e *Element) FeFuncGamma(channels Channel, amplitude, exponent, offset interface{}) *Element {
	return e.feFuncs(channels, TransferGamma, func(f *Element) {
		f.SetAttr("amplitude", amplitude).SetAttr("exponent", exponent).SetAttr("offset", offset)
	})
}

// FeGaussianBlur adds a blur. stdDeviation is a number
// or a pair of numbers (x and y deviations).
func (e *Element) FeGaussianBlur(in, stdDeviation interface{}, result string) *Element {
	return e.primitive("feGaussianBlur", in).
		SetAttr("stdDeviation", stdDeviation).
		SetResult(result)
}

// FeImage adds an external image to the filter.
func (e *Element) FeImage(href string, align Align, region *Region, result string) *Element {
	return e.Append("feImage").SetXLinkHref(href).
		SetAttr("preserveAspectRatio", keyword(string(align))).
		setRegion(region).
		SetResult(result)
}

// FeMerge adds a merge primitive, with one node per input.
// A nil input adds a node without `in`, that is the previous result.
func (e *Element) FeMerge(inputs []interface{}, result string) *Element {
	m := e.Append("feMerge").SetResult(result)
	for _, in := range inputs {
		m.Append("feMergeNode").SetIn(in)
	}
	return m
}

// FeMorphology adds an erosion or a dilation. radius is a number or
// a pair of numbers (x and y radii).
func (e *Element) FeMorphology(in, radius interface{}, operator MorphologyOperator, result string) *Element {
	m := e.primitive("feMorphology", in)
	if rv := reflect.ValueOf(radius); radius != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		m.x.AppendAttr("radius", radius, ",")
	} else {
		m.SetAttr("radius", radius)
	}
	return m.SetAttr("operator", keyword(string(operator))).SetResult(result)
}

// FeOffset adds an offset primitive.
func (e *Element) FeOffset(in interface{}, dx, dy float64, result string) *Element {
	return e.primitive("feOffset", in).
		SetAttr("dx", xmlbuild.Number(dx)).
		SetAttr("dy", xmlbuild.Number(dy)).
		SetResult(result)
}
