package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"meditation/geometry"
)

// FillPath paints path onto dst with a flat colour, compositing over what is
// already there. Geometry falling outside dst is clipped by the rasterizer.
func FillPath(dst *image.RGBA, path *geometry.Path, c color.Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	trace(z, path, float32(b.Min.X), float32(b.Min.Y))
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// trace replays the path instructions into the rasterizer. Path coordinates
// are card-relative so they are shifted by the destination origin.
func trace(z *vector.Rasterizer, path *geometry.Path, ox, oy float32) {
	pt := func(p geometry.Point) (float32, float32) {
		return float32(p.X) - ox, float32(p.Y) - oy
	}
	for _, el := range path.Elements() {
		switch el.Kind {
		case geometry.MoveToKind:
			z.MoveTo(pt(el.P0))
		case geometry.LineToKind:
			z.LineTo(pt(el.P0))
		case geometry.QuadToKind:
			cx, cy := pt(el.P0)
			ex, ey := pt(el.P1)
			z.QuadTo(cx, cy, ex, ey)
		case geometry.ClosePathKind:
			z.ClosePath()
		}
	}
}
