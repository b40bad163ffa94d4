package svg

import (
	"strings"

	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/pkg/errors"
)

func (e *Element) SetID(id string) *Element { return e.SetAttr("id", keyword(id)) }

// SetResult names the output of a filter primitive.
func (e *Element) SetResult(result string) *Element { return e.SetAttr("result", keyword(result)) }

// SetXLinkHref sets the `xlink:href` attribute and declares
// the xlink namespace on the document root.
func (e *Element) SetXLinkHref(href string) *Element {
	if href == "" {
		return e
	}
	if root := e.Root(); root.Name() == "svg" {
		if _, ok := root.Attr("xmlns:xlink"); !ok {
			root.x.SetAttr("xmlns:xlink", NamespaceXLink)
		}
	}
	return e.SetAttr("xlink:href", href)
}

// BuildViewBox returns the value of a viewBox attribute.
func BuildViewBox(corner geom.Point, width, height float64) xmlbuild.Value {
	return &xmlbuild.List{Sep: " ", Items: []xmlbuild.Value{
		xmlbuild.Number(corner.X), xmlbuild.Number(corner.Y),
		xmlbuild.Number(width), xmlbuild.Number(height),
	}}
}

// SetViewBox sets the `viewBox` attribute.
func (e *Element) SetViewBox(corner interface{}, width, height float64) *Element {
	c, err := geom.AsPoint(corner)
	if err != nil {
		return e.fail("SetViewBox", err)
	}
	return e.SetAttr("viewBox", BuildViewBox(c, width, height))
}

// BuildPreserveAspectRatio returns the value of a preserveAspectRatio
// attribute. meetOrSlice may be empty.
func BuildPreserveAspectRatio(align Align, meetOrSlice MeetOrSlice, deferred bool) string {
	var chunks []string
	if deferred {
		chunks = append(chunks, "defer")
	}
	if align != "" {
		chunks = append(chunks, string(align))
	}
	if meetOrSlice != "" {
		chunks = append(chunks, string(meetOrSlice))
	}
	return strings.Join(chunks, " ")
}

func (e *Element) SetPreserveAspectRatio(align Align, meetOrSlice MeetOrSlice, deferred bool) *Element {
	return e.SetAttr("preserveAspectRatio", keyword(BuildPreserveAspectRatio(align, meetOrSlice, deferred)))
}

// SetIn sets the first input of a filter primitive, see SetInput.
func (e *Element) SetIn(in interface{}) *Element { return e.SetInput("in", in) }

// SetIn2 sets the second input of a filter primitive, see SetInput.
func (e *Element) SetIn2(in interface{}) *Element { return e.SetInput("in2", in) }

// SetInput sets the input attribute attr of a filter primitive.
// in is either a keyword (see the In... constants), the result name of
// another primitive, or the primitive itself, whose `result`
// attribute is then used. nil is ignored.
func (e *Element) SetInput(attr string, in interface{}) *Element {
	switch in := in.(type) {
	case nil:
		return e
	case string:
		return e.SetAttr(attr, keyword(in))
	case In:
		return e.SetAttr(attr, keyword(string(in)))
	case *Element:
		if in == nil {
			return e
		}
		result, ok := in.Attr("result")
		if !ok {
			return e.fail("SetInput", errors.Wrapf(geom.ErrInvalidArgument, "<%s> has no result", in.Name()))
		}
		return e.SetAttr(attr, result)
	default:
		return e.fail("SetInput", errors.Wrapf(geom.ErrInvalidArgument, "unsupported input %T", in))
	}
}

// SetTableValues appends to the comma separated `tableValues` of
// a transfer function. A string is appended as is.
func (e *Element) SetTableValues(values interface{}) *Element {
	e.x.AppendAttr("tableValues", values, ",")
	return e
}
