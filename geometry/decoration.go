package geometry

// Overscan is how far past the card edges the closing anchors sit, so curve
// bulge never leaves an unfilled sliver along the border.
const Overscan = 100

// Silhouette holds the five points a decorative layer passes through:
// top inflection, shoulder, peak, trough and an off-card anchor.
type Silhouette [5]Point

// MediumLayer returns the silhouette of the darker overlay for a card of the
// given size.
func MediumLayer(width, height float64) Silhouette {
	return Silhouette{
		Pt(0, height*0.3),
		Pt(width*0.1, height*0.35),
		Pt(width*0.4, height*0.05),
		Pt(width*0.75, height*0.7),
		Pt(width*1.4, -height),
	}
}

// LightLayer returns the silhouette of the lighter overlay drawn on top of
// the medium one.
func LightLayer(width, height float64) Silhouette {
	return Silhouette{
		Pt(0, height*0.35),
		Pt(width*0.1, height*0.4),
		Pt(width*0.3, height*0.35),
		Pt(width*0.65, height),
		Pt(width*1.4, -height/3),
	}
}

// CurvePath chains the silhouette points with midpoint-controlled quads and
// closes the shape below the card: (width+Overscan, height+Overscan), then
// (-Overscan, height+Overscan), then back to the first point.
func CurvePath(s Silhouette, width, height float64) *Path {
	p := &Path{}
	p.MoveTo(s[0])
	for i := 1; i < len(s); i++ {
		p.QuadFromTo(s[i-1], s[i])
	}
	p.LineTo(Pt(width+Overscan, height+Overscan))
	p.LineTo(Pt(-Overscan, height+Overscan))
	p.ClosePath()
	return p
}

// Decoration is the pair of fill paths for one card, in paint order.
type Decoration struct {
	Medium *Path
	Light  *Path
}

// NewDecoration builds both layers from the same card size.
func NewDecoration(width, height float64) Decoration {
	return Decoration{
		Medium: CurvePath(MediumLayer(width, height), width, height),
		Light:  CurvePath(LightLayer(width, height), width, height),
	}
}
