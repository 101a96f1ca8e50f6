package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditation/geometry"
	"meditation/models"
)

var testFeature = models.Feature{
	Title:       "Test card",
	Icon:        models.IconHeadphone,
	DarkColor:   color.NRGBA{R: 200, A: 255},
	MediumColor: color.NRGBA{G: 200, A: 255},
	LightColor:  color.NRGBA{B: 200, A: 255},
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.NRGBA) {
	t.Helper()
	got := img.RGBAAt(x, y)
	w := color.RGBAModel.Convert(want).(color.RGBA)
	assert.InDelta(t, w.R, got.R, 2, "R at (%d,%d)", x, y)
	assert.InDelta(t, w.G, got.G, 2, "G at (%d,%d)", x, y)
	assert.InDelta(t, w.B, got.B, 2, "B at (%d,%d)", x, y)
	assert.InDelta(t, w.A, got.A, 2, "A at (%d,%d)", x, y)
}

func TestCardLayers(t *testing.T) {
	img := Card(200, 200, testFeature, 0)
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// above both curves
	assertPixel(t, img, 5, 5, testFeature.DarkColor)
	assertPixel(t, img, 100, 5, testFeature.DarkColor)
	// under the medium curve, above the light one
	assertPixel(t, img, 30, 75, testFeature.MediumColor)
	// under both
	assertPixel(t, img, 100, 190, testFeature.LightColor)
	assertPixel(t, img, 190, 190, testFeature.LightColor)
}

func TestCardRoundedCorners(t *testing.T) {
	img := Card(64, 64, testFeature, 12)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(63, 63).A)
	assert.Equal(t, uint8(255), img.RGBAAt(32, 32).A)
	assert.Equal(t, uint8(255), img.RGBAAt(32, 0).A)
}

func TestCardDegenerateSize(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, Card(0, 0, testFeature, 10).Bounds().Empty())
		assert.True(t, Card(-5, 20, testFeature, 0).Bounds().Empty())
	})
}

func TestFillPathOffsetDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(10, 10, 20, 20))
	var p geometry.Path
	p.MoveTo(geometry.Pt(0, 0))
	p.LineTo(geometry.Pt(30, 0))
	p.LineTo(geometry.Pt(30, 30))
	p.LineTo(geometry.Pt(0, 30))
	p.ClosePath()

	FillPath(dst, &p, testFeature.LightColor)
	assertPixel(t, dst, 10, 10, testFeature.LightColor)
	assertPixel(t, dst, 19, 19, testFeature.LightColor)
}

func TestSVGDocument(t *testing.T) {
	doc := SVG(200, 200, testFeature)
	deco := geometry.NewDecoration(200, 200)

	assert.Contains(t, doc, `viewBox="0 0 200 200"`)
	assert.Contains(t, doc, `<rect width="200" height="200" fill="#c80000"/>`)
	assert.Contains(t, doc, `<path d="`+deco.Medium.SVG()+`" fill="#00c800"/>`)
	assert.Contains(t, doc, `<path d="`+deco.Light.SVG()+`" fill="#0000c8"/>`)
	assert.Contains(t, doc, "L300 300 L-100 300 Z")
}

func TestFillOpacity(t *testing.T) {
	assert.Equal(t, `fill="#102030" fill-opacity="0.502"`, fill(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 128}))
}
