package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadFromToEndsAtTarget(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Pt(0, 0), Pt(10, 10)},
		{Pt(-3.5, 7.25), Pt(12.125, -40)},
		{Pt(1e6, -1e6), Pt(-1e-3, 3)},
		{Pt(5, 5), Pt(5, 5)},
	}
	for _, tc := range cases {
		var p Path
		p.MoveTo(tc.a)
		p.QuadFromTo(tc.a, tc.b)

		els := p.Elements()
		require.Len(t, els, 2)
		quad := els[1]
		assert.Equal(t, QuadToKind, quad.Kind)
		assert.Equal(t, tc.b, quad.P1, "end point of %s -> %s", tc.a, tc.b)
		assert.Equal(t, Pt((tc.a.X+tc.b.X)/2, (tc.a.Y+tc.b.Y)/2), quad.P0, "control point of %s -> %s", tc.a, tc.b)
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	var p Path
	p.MoveTo(Pt(1, 2))
	els := p.Elements()
	els[0] = LineTo(Pt(9, 9))
	assert.Equal(t, MoveTo(Pt(1, 2)), p.Elements()[0])
}

func TestElementEnd(t *testing.T) {
	end, ok := QuadTo(Pt(1, 1), Pt(2, 3)).End()
	assert.True(t, ok)
	assert.Equal(t, Pt(2, 3), end)

	_, ok = ClosePath().End()
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	var empty Path
	_, _, ok := empty.Bounds()
	assert.False(t, ok)

	var p Path
	p.MoveTo(Pt(0, 5))
	p.QuadTo(Pt(-4, 20), Pt(10, 10))
	p.LineTo(Pt(3, -2))
	p.ClosePath()
	lo, hi, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, Pt(-4, -2), lo)
	assert.Equal(t, Pt(10, 20), hi)
}

func TestSVG(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 60))
	p.QuadFromTo(Pt(0, 60), Pt(20, 70))
	p.LineTo(Pt(-100, 300))
	p.ClosePath()
	assert.Equal(t, "M0 60 Q10 65 20 70 L-100 300 Z", p.SVG())
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "MoveTo(1, 2)", MoveTo(Pt(1, 2)).String())
	assert.Equal(t, "QuadTo((1, 2), (3, 4))", QuadTo(Pt(1, 2), Pt(3, 4)).String())
	assert.Equal(t, "ClosePath", ClosePath().String())
	assert.Equal(t, "InvalidElement", Element{}.String())
}
