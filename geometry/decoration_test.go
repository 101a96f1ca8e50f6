package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

func TestCurvePathVisitsChain(t *testing.T) {
	s := Silhouette{Pt(1, 2), Pt(3, 4), Pt(5, 1), Pt(7, 9), Pt(20, -5)}
	els := CurvePath(s, 10, 10).Elements()
	require.Len(t, els, 8)

	assert.Equal(t, MoveTo(s[0]), els[0])
	for i := 1; i < 5; i++ {
		el := els[i]
		require.Equal(t, QuadToKind, el.Kind)
		assert.Equal(t, s[i], el.P1)
		assert.Equal(t, s[i-1].Midpoint(s[i]), el.P0)
	}
}

func TestCurvePathClosureIgnoresPoints(t *testing.T) {
	a := Silhouette{Pt(1, 2), Pt(3, 4), Pt(5, 1), Pt(7, 9), Pt(20, -5)}
	b := Silhouette{Pt(-50, 0), Pt(0, 0), Pt(99, 99), Pt(-1, 7), Pt(3, 3)}
	for _, s := range []Silhouette{a, b} {
		els := CurvePath(s, 40, 25).Elements()
		tail := els[len(els)-3:]
		assert.Equal(t, []Element{
			LineTo(Pt(140, 125)),
			LineTo(Pt(-100, 125)),
			ClosePath(),
		}, tail)
	}
}

func TestCurvePathIdempotent(t *testing.T) {
	first := NewDecoration(317, 211)
	second := NewDecoration(317, 211)
	assert.Equal(t, first.Medium.Elements(), second.Medium.Elements())
	assert.Equal(t, first.Light.Elements(), second.Light.Elements())
}

func TestDegenerateCard(t *testing.T) {
	d := NewDecoration(0, 0)
	for _, p := range []*Path{d.Medium, d.Light} {
		els := p.Elements()
		require.Len(t, els, 8)
		for _, el := range els[:5] {
			assert.Equal(t, Pt(0, 0), el.P0)
			assert.Equal(t, Pt(0, 0), el.P1)
		}
		assert.Equal(t, LineTo(Pt(100, 100)), els[5])
		assert.Equal(t, LineTo(Pt(-100, 100)), els[6])
		assert.Equal(t, ClosePath(), els[7])
	}
}

func TestNegativeSizeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		d := NewDecoration(-20, -40)
		assert.Equal(t, 8, d.Medium.Len())
	})
}

func TestMediumLayerAt200(t *testing.T) {
	s := MediumLayer(200, 200)
	want := Silhouette{Pt(0, 60), Pt(20, 70), Pt(80, 10), Pt(150, 140), Pt(280, -200)}
	for i := range want {
		assertPoint(t, want[i], s[i], "P%d", i+1)
	}

	els := CurvePath(s, 200, 200).Elements()
	require.Len(t, els, 8)
	assert.Equal(t, MoveToKind, els[0].Kind)
	assertPoint(t, Pt(0, 60), els[0].P0)

	controls := []Point{Pt(10, 65), Pt(50, 40), Pt(115, 75), Pt(215, -30)}
	for i, ctrl := range controls {
		el := els[i+1]
		require.Equal(t, QuadToKind, el.Kind)
		assertPoint(t, ctrl, el.P0, "control %d", i)
		assertPoint(t, want[i+1], el.P1, "end %d", i)
	}
	assert.Equal(t, LineTo(Pt(300, 300)), els[5])
	assert.Equal(t, LineTo(Pt(-100, 300)), els[6])
	assert.Equal(t, ClosePath(), els[7])
}

func TestLayersShareHeightScale(t *testing.T) {
	medium := MediumLayer(120, 300)
	light := LightLayer(120, 300)

	assertPoint(t, Pt(0, 105), light[0])
	assertPoint(t, Pt(12, 120), light[1])
	assertPoint(t, Pt(36, 105), light[2])
	assertPoint(t, Pt(78, 300), light[3])
	assertPoint(t, Pt(168, -100), light[4])

	// both layers start on the left edge and the light one sits lower
	assert.Equal(t, 0.0, medium[0].X)
	assert.Greater(t, light[0].Y, medium[0].Y)
}
