package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"meditation/geometry"
	"meditation/models"
)

// kappa places cubic control points so a quarter circle is approximated
// within 0.03% of the radius.
const kappa = 0.5522847498

// Card renders the background of a feature card at the given pixel size:
// the dark fill, then the medium layer, then the light layer. When radius is
// positive the corners are masked to transparent.
//
// A non-positive width or height yields an empty image.
func Card(width, height int, f models.Feature, radius float32) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(f.DarkColor), image.Point{}, draw.Src)

	deco := geometry.NewDecoration(float64(width), float64(height))
	FillPath(img, deco.Medium, f.MediumColor)
	FillPath(img, deco.Light, f.LightColor)

	if radius <= 0 {
		return img
	}

	out := image.NewRGBA(img.Bounds())
	draw.DrawMask(out, out.Bounds(), img, image.Point{}, roundedMask(width, height, radius), image.Point{}, draw.Src)
	return out
}

// roundedMask returns an alpha mask covering a width x height rectangle with
// circular corners. The radius is clamped to half the shorter side.
func roundedMask(width, height int, radius float32) *image.Alpha {
	w, h := float32(width), float32(height)
	r := radius
	if m := min(w, h) / 2; r > m {
		r = m
	}
	k := r * kappa

	z := vector.NewRasterizer(width, height)
	z.MoveTo(r, 0)
	z.LineTo(w-r, 0)
	z.CubeTo(w-r+k, 0, w, r-k, w, r)
	z.LineTo(w, h-r)
	z.CubeTo(w, h-r+k, w-r+k, h, w-r, h)
	z.LineTo(r, h)
	z.CubeTo(r-k, h, 0, h-r+k, 0, h-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})
	return mask
}
