package render

import (
	"fmt"
	"image/color"
	"strings"

	"meditation/geometry"
	"meditation/models"
)

// SVG returns a standalone SVG document drawing the same card background as
// Card, without corner rounding.
func SVG(width, height int, f models.Feature) string {
	deco := geometry.NewDecoration(float64(width), float64(height))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" %s/>`+"\n", width, height, fill(f.DarkColor))
	fmt.Fprintf(&sb, `  <path d="%s" %s/>`+"\n", deco.Medium.SVG(), fill(f.MediumColor))
	fmt.Fprintf(&sb, `  <path d="%s" %s/>`+"\n", deco.Light.SVG(), fill(f.LightColor))
	sb.WriteString("</svg>\n")
	return sb.String()
}

func fill(c color.NRGBA) string {
	attr := fmt.Sprintf(`fill="#%02x%02x%02x"`, c.R, c.G, c.B)
	if c.A != 0xff {
		attr += fmt.Sprintf(` fill-opacity="%.3g"`, float64(c.A)/255)
	}
	return attr
}
