package svg

import (
	"bytes"
	"image"
	"testing"

	"github.com/benoitkugler/svgbuild/geom"
	"github.com/benoitkugler/svgbuild/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rasterize(t *testing.T, doc *Element) *image.RGBA {
	t.Helper()
	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	img, err := raster.Image(&buf)
	require.NoError(t, err)
	return img
}

var filled = raster.Filled

func TestRasterPaths(t *testing.T) {
	doc := New(100, 100, []int{0, 0, 100, 100})
	doc.Path("").D().Rectangle([]int{5, 5}, 30, 30, false)
	doc.Path("").D().Circle([]int{70, 25}, 20, false)
	doc.Path("").D().RingSector([]int{50, 70}, geom.Deg(0), geom.Deg(90), 28, 14, false)
	require.NoError(t, doc.Err())

	img := rasterize(t, doc)

	assert.True(t, filled(img, 20, 20), "inside the rectangle")
	assert.False(t, filled(img, 40, 40), "outside the rectangle")

	assert.True(t, filled(img, 70, 25), "circle center")
	assert.True(t, filled(img, 85, 25), "inside the circle")
	assert.False(t, filled(img, 85, 8), "outside the circle")

	// the ring sector spans the lower right quarter, between
	// the distances 14 and 28 to its center
	assert.True(t, filled(img, 64, 84), "inside the ring sector")
	assert.False(t, filled(img, 53, 73), "inside the hole")
	assert.False(t, filled(img, 36, 84), "other quarter")
}

func TestRasterStar(t *testing.T) {
	doc := New(100, 100, "0 0 100 100")
	doc.Star([]int{50, 50}, 5, 45, []float64{15})

	img := rasterize(t, doc)
	assert.True(t, filled(img, 50, 50), "center")
	assert.True(t, filled(img, 50, 15), "top branch")
	assert.False(t, filled(img, 20, 10), "between two branches")
}
