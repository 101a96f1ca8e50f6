package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ElementKind int

const (
	// Move to the point without drawing, starting a new subpath.
	MoveToKind ElementKind = iota + 1
	// Draw a straight line from the current location to the point.
	LineToKind
	// Draw a quadratic curve using the current location, a control point and an end point.
	QuadToKind
	// Close the subpath back to its starting point.
	ClosePathKind
)

// Element is a single drawing instruction. P0 is the target of a move or line
// and the control point of a quad; P1 is the end point of a quad.
type Element struct {
	Kind ElementKind
	P0   Point
	P1   Point
}

func (el Element) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo%s", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo%s", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidElement"
	}
}

// End returns the point the element leaves the pen at. ClosePath has no
// end point of its own and reports false.
func (el Element) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) Element {
	return Element{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) Element {
	return Element{Kind: LineToKind, P0: pt}
}

func QuadTo(ctrl, end Point) Element {
	return Element{Kind: QuadToKind, P0: ctrl, P1: end}
}

func ClosePath() Element {
	return Element{Kind: ClosePathKind}
}

// Path is an ordered list of drawing instructions. The zero value is an
// empty path ready to use.
type Path struct {
	elements []Element
}

func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo(pt))
}

func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo(pt))
}

func (p *Path) QuadTo(ctrl, end Point) {
	p.elements = append(p.elements, QuadTo(ctrl, end))
}

func (p *Path) ClosePath() {
	p.elements = append(p.elements, ClosePath())
}

// QuadFromTo appends a smooth segment from a to b. The control point is the
// midpoint of a and b and the segment ends exactly at b.
func (p *Path) QuadFromTo(a, b Point) {
	p.QuadTo(a.Midpoint(b), b)
}

// Elements returns a copy of the path's instructions.
func (p *Path) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

func (p *Path) Len() int {
	return len(p.elements)
}

// Bounds returns the smallest rectangle containing every point of the path,
// control points included. An empty path reports ok == false.
func (p *Path) Bounds() (lo, hi Point, ok bool) {
	lo = Pt(math.Inf(1), math.Inf(1))
	hi = Pt(math.Inf(-1), math.Inf(-1))
	add := func(pt Point) {
		lo.X = math.Min(lo.X, pt.X)
		lo.Y = math.Min(lo.Y, pt.Y)
		hi.X = math.Max(hi.X, pt.X)
		hi.Y = math.Max(hi.Y, pt.Y)
		ok = true
	}
	for _, el := range p.elements {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return lo, hi, true
}

// SVG returns the path as SVG path data, e.g. "M0 60 Q10 65 20 70 Z".
func (p *Path) SVG() string {
	var sb strings.Builder
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	for i, el := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch el.Kind {
		case MoveToKind:
			sb.WriteString("M" + num(el.P0.X) + " " + num(el.P0.Y))
		case LineToKind:
			sb.WriteString("L" + num(el.P0.X) + " " + num(el.P0.Y))
		case QuadToKind:
			sb.WriteString("Q" + num(el.P0.X) + " " + num(el.P0.Y) + " " + num(el.P1.X) + " " + num(el.P1.Y))
		case ClosePathKind:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}
