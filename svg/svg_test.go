package svg

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e *Element) string {
	t.Helper()
	s, err := e.Root().Markup()
	require.NoError(t, err)
	return s
}

func sub() *Element { return NewFragment("") }

func TestShapes(t *testing.T) {
	assert.Equal(t, `<rect x="4.5" y="3.5" width="2" height="3.2" rx="0.2" ry="0.5"/>`,
		render(t, sub().Rect([]float64{4.5, 3.5}, 2, 3.2, 0.2, 0.5)))
	assert.Equal(t, `<rect x="4.5" y="3.5" width="2" height="3.2"/>`,
		render(t, sub().Rect(geom.Pt(4.5, 3.5), 2, 3.2, nil, nil)))
	assert.Equal(t, `<circle cx="4.5" cy="3.5" r="3.2"/>`, render(t, sub().Circle([]float64{4.5, 3.5}, 3.2)))
	assert.Equal(t, `<ellipse cx="4.5" cy="3.5" rx="2" ry="3.2"/>`, render(t, sub().Ellipse([]float64{4.5, 3.5}, 2, 3.2)))
	assert.Equal(t, `<line x1="0.1" y1="1.2" x2="2.3" y2="3.4"/>`, render(t, sub().Line([]float64{0.1, 1.2}, []float64{2.3, 3.4})))
}

func TestPoints(t *testing.T) {
	expected := `<polygon points="2,2 2,4 4,4 4,6 6,6"/>`
	assert.Equal(t, expected, render(t, sub().Polygon("2,2 2,4 4,4 4,6 6,6")))
	assert.Equal(t, expected, render(t, sub().Polygon([][]int{{2, 2}, {2, 4}, {4, 4}, {4, 6}, {6, 6}})))
	assert.Equal(t, expected, render(t, sub().Polygon("2,2 2,4").SetPoints("4,4 4,6").AddPoint([]int{6, 6})))
	assert.Equal(t, expected, render(t, sub().Polygon([]geom.Point{{X: 2, Y: 2}, {X: 2, Y: 4}}).SetPoints([][]int{{4, 4}, {4, 6}}).AddPoint(geom.Pt(6, 6))))

	assert.Equal(t, `<polyline points="2,2 2,4 4,4 4,6 6,6"/>`, render(t, sub().Polyline("2,2 2,4 4,4 4,6 6,6")))
	assert.Equal(t, `<polyline points="4,4"/>`, render(t, sub().Polyline("").AddPoint([]int{4, 4})))

	assert.Equal(t, `<polygon points="10,-80 60,20 10,120 -40,20"/>`, render(t, sub().Star([]int{10, 20}, 2, 100, []float64{50})))
}

func TestPath(t *testing.T) {
	p := sub().Path("")
	p.D().MoveTo([]int{20, 20}).VLineTo(40).HLineTo(40).VLineTo(20).Close()
	assert.Equal(t, `<path d="M 20,20 V 40 H 40 V 20 Z"/>`, render(t, p))

	p = sub().Path("M 20,20")
	p.D().VLineToRel(20).HLineToRel(20).VLineToRel(-20).Close()
	assert.Equal(t, `<path d="M 20,20 v 20 h 20 v -20 Z"/>`, render(t, p))
	assert.Same(t, p.D(), p.D())

	assert.Equal(t, `<path d="M 10,20"/>`, render(t, sub().Path("M 10,20")))
}

func TestPathComposites(t *testing.T) {
	p := sub().Path("")
	p.D().Rectangle([]int{10, 20}, 100, 80, false)
	assert.Equal(t, `<path d="M 10,20 L 110,20 L 110,100 L 10,100 Z"/>`, render(t, p))

	p = sub().Path("")
	p.D().Circle([]int{10, 20}, 100, false)
	assert.Equal(t, `<path d="M 110,20 A 100 100 0 0 1 -90,20 A 100 100 0 0 1 110,20"/>`, render(t, p))

	p = sub().Path("")
	p.D().Star([]int{10, 20}, 2, 100, []float64{50}, false)
	assert.Equal(t, `<path d="M 10,-80 L 60,20 L 10,120 L -40,20 Z"/>`, render(t, p))
}

func TestText(t *testing.T) {
	assert.Equal(t, `<text x="20" y="100">lorem ipsum</text>`, render(t, sub().Text("lorem ipsum", 20, 100)))
	assert.Equal(t, `<text x="20 30 40" y="100 105">lorem ipsum</text>`,
		render(t, sub().Text("lorem ipsum", []int{20, 30, 40}, []int{100, 105})))
	assert.Equal(t, `<text x="20 30 40" y="100 105">lorem ipsum</text>`,
		render(t, sub().Text("lorem ipsum", 20, 100).SetX([]int{30, 40}).SetY(105)))
	assert.Equal(t, `<text dx="2 3 4" dy="1 2">lorem ipsum</text>`,
		render(t, sub().Text("lorem ipsum", nil, nil).SetDxDy([]int{2, 3, 4}, []int{1, 2})))
	assert.Equal(t, `<text rotate="15 30 45">lorem ipsum</text>`,
		render(t, sub().Text("lorem ipsum", nil, nil).SetRotate(15).SetRotate([]int{30, 45})))
	assert.Equal(t, `<tspan x="20" y="100">lorem ipsum</tspan>`, render(t, sub().TSpan("lorem ipsum", 20, 100)))
	assert.Equal(t, `<textPath xlink:href="#path">lorem ipsum</textPath>`, render(t, sub().TextPath("lorem ipsum", "#path")))

	comma := NewFragment("", xmlbuild.WithListSeparator(","))
	assert.Equal(t, `<text x="20,30">a</text>`, render(t, comma.Text("a", 20, nil).SetX(30)))
}

func TestStructure(t *testing.T) {
	assert.Equal(t, `<use xlink:href="#circle" x="20" y="30" width="40" height="50"/>`,
		render(t, sub().Use("#circle", []int{20, 30}, 40, 50)))

	defs := sub().Defs()
	defs.Circle([]int{0, 0}, 20).SetID("circle")
	assert.Equal(t, "<defs>\n\t<circle cx=\"0\" cy=\"0\" r=\"20\" id=\"circle\"/>\n</defs>", render(t, defs))

	g := sub().G()
	g.Circle([]int{0, 0}, 20).SetID("circle")
	assert.Equal(t, "<g>\n\t<circle cx=\"0\" cy=\"0\" r=\"20\" id=\"circle\"/>\n</g>", render(t, g))

	assert.Equal(t, "<title>Foo Bar</title>\n<desc>lorem ipsum</desc>", render(t, sub().Title("Foo Bar").Root().Desc("lorem ipsum")))

	assert.Equal(t, `<image xlink:href="cat.jpg" x="80" y="20" width="320" height="200" preserveAspectRatio="xMidYMid"/>`,
		render(t, sub().Image("cat.jpg", []int{80, 20}, 320, 200, AlignXMidYMid)))

	assert.Equal(t, `<clipPath id="p1" clipPathUnits="userSpaceOnUse"/>`, render(t, sub().ClipPath("p1", UserSpaceOnUse)))
	assert.Equal(t, `<clipPath id="p1"/>`, render(t, sub().ClipPath("p1", "")))
	assert.Equal(t, `<mask id="m1" x="10" y="20" width="200" height="120" maskUnits="objectBoundingBox" maskContentUnits="userSpaceOnUse"/>`,
		render(t, sub().Mask("m1", []int{10, 20}, 200, 120, ObjectBoundingBox, UserSpaceOnUse)))
}

func TestNavigation(t *testing.T) {
	doc := New(100, 100, nil)
	g := doc.G()
	c := g.Circle([]int{1, 2}, 3)
	assert.Equal(t, g, c.Parent())
	assert.Equal(t, doc, c.Root())
	assert.Nil(t, doc.Parent())
	assert.Equal(t, "circle", c.Name())
}

func TestDocument(t *testing.T) {
	doc := New(640, 400, []int{0, 0, 640, 400})
	doc.Use("#c", nil, nil, nil)
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"640\" height=\"400\" viewBox=\"0 0 640 400\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n"+
		"\t<use xlink:href=\"#c\"/>\n"+
		"</svg>", render(t, doc))

	doc = New(nil, nil, "0 0 10 10", xmlbuild.WithDeclaration(false))
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"/>`, render(t, doc))

	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"/>`, buf.String())
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, `<svg viewBox="0 0 640 400"/>`, render(t, NewFragment("svg").SetViewBox([]int{0, 0}, 640, 400)))
	assert.Equal(t, `<svg preserveAspectRatio="defer xMidYMin slice"/>`,
		render(t, NewFragment("svg").SetPreserveAspectRatio(AlignXMidYMin, Slice, true)))
	assert.Equal(t, "xMaxYMax meet", BuildPreserveAspectRatio(AlignXMaxYMax, Meet, false))
	assert.Equal(t, "0 0 640 400", BuildViewBox(geom.Pt(0, 0), 640, 400).Text(xmlbuild.NumberFormat{Precision: 10}))
}

func TestErrors(t *testing.T) {
	doc := New(10, 10, nil)
	doc.Circle("oops", 3)
	doc.Path("").D().LineTo([]int{1})
	doc.Rect([]int{1, 2}, 3, 4, nil, nil)

	assert.ErrorIs(t, doc.Err(), geom.ErrInvalidArgument)
	assert.Contains(t, doc.Err().Error(), "<circle>")
	_, err := doc.Markup()
	assert.ErrorIs(t, err, geom.ErrInvalidArgument)
	_, err = doc.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, geom.ErrInvalidArgument)

	// errors of the path are reported to the document
	doc = New(10, 10, nil)
	p := doc.Path("")
	p.D().MoveTo([]int{0, 0}).LineTo("bad").LineTo([]int{1, 1})
	assert.ErrorIs(t, doc.Err(), geom.ErrInvalidArgument)
	assert.Equal(t, "M 0,0 L 1,1", p.D().String())

	doc = New(10, 10, nil)
	doc.FeGaussianBlur(doc.FeOffset(nil, 1, 1, ""), 2, "")
	assert.ErrorIs(t, doc.Err(), geom.ErrInvalidArgument)
}

func TestEmbedImage(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	require.NoError(t, png.Encode(&buf, img))

	e := sub().EmbedImage(buf.Bytes(), []int{0, 0}, 1, 1, "")
	href, ok := e.Attr("xlink:href")
	require.True(t, ok)
	require.True(t, strings.HasPrefix(href, "data:image/png;base64,"), href)
	content, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(href, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), content)

	doc := New(1, 1, nil)
	doc.EmbedImage([]byte("not an image at all"), nil, nil, nil, "")
	assert.ErrorIs(t, doc.Err(), ErrUnknownImageType)
}

func TestGradients(t *testing.T) {
	g := sub().LinearGradient("g1", 0, 0, 1, nil).SetSpreadMethod(ReflectSpread).SetGradientUnits(ObjectBoundingBox)
	g.Stop(0, "red", nil)
	g.AddStops(GradStop{Offset: 1, StopColor: color.RGBA{B: 255, A: 255}, Opacity: 0.5})
	assert.Equal(t, "<linearGradient id=\"g1\" x1=\"0\" y1=\"0\" x2=\"1\" spreadMethod=\"reflect\" gradientUnits=\"objectBoundingBox\">\n"+
		"\t<stop offset=\"0\" stop-color=\"red\"/>\n"+
		"\t<stop offset=\"1\" stop-color=\"#0000ff\" stop-opacity=\"0.5\"/>\n"+
		"</linearGradient>", render(t, g))

	g = sub().LinearGradient("g3", nil, nil, nil, nil)
	g.AddStops(
		GradStop{StopColor: color.RGBA{R: 255, A: 255}},
		GradStop{Offset: 0.5, StopColor: color.NRGBA{G: 255, A: 0}},
		GradStop{Offset: 1},
	)
	assert.Equal(t, "<linearGradient id=\"g3\">\n"+
		"\t<stop offset=\"0\" stop-color=\"#ff0000\"/>\n"+
		"\t<stop offset=\"0.5\" stop-color=\"#00ff00\" stop-opacity=\"0\"/>\n"+
		"\t<stop offset=\"1\"/>\n"+
		"</linearGradient>", render(t, g))

	r := sub().RadialGradient("g2", "50%", "50%", "40%").SetFocus(0.3, nil).SetSpreadMethod(PadSpread)
	assert.Equal(t, `<radialGradient id="g2" cx="50%" cy="50%" r="40%" fx="0.3"/>`, render(t, r))

	assert.Equal(t, "#ff8000", Hex(color.RGBA{R: 255, G: 128, A: 255}))
}
