package glyphmask

import (
	"image/color"
	"math"
)

// TwoPointConicalGradient interpolates between the circle (Start,
// StartRadius) at offset 0 and the circle (End, EndRadius) at offset 1.
// Points covered by no circle of non-negative radius are transparent.
type TwoPointConicalGradient struct {
	Start       Point
	StartRadius float64
	End         Point
	EndRadius   float64
	Colors      []color.NRGBA
	Offsets     []float64
	Tile        TileMode
}

func (TwoPointConicalGradient) shaderMarker() {}

// ColorAt returns the color of the largest circle through (x, y).
func (g TwoPointConicalGradient) ColorAt(x, y float64) color.RGBA {
	t, ok := g.computeT(x, y)
	if !ok {
		return color.RGBA{}
	}
	return gradientStops{Colors: g.Colors, Offsets: g.Offsets, Tile: g.Tile}.colorAt(t)
}

// computeT solves |p - c(t)| = r(t) for the largest t with r(t) >= 0, where
// c(t) = Start + t*(End-Start) and r(t) = StartRadius + t*(EndRadius-StartRadius).
func (g TwoPointConicalGradient) computeT(x, y float64) (float64, bool) {
	cd := g.End.Sub(g.Start)
	pd := Pt(x, y).Sub(g.Start)
	dr := g.EndRadius - g.StartRadius

	// a*t^2 - 2*b*t + c = 0
	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.StartRadius*dr
	c := pd.Dot(pd) - g.StartRadius*g.StartRadius

	valid := func(t float64) bool { return g.StartRadius+t*dr >= 0 }

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	s := math.Sqrt(disc)
	t1, t2 := (b+s)/a, (b-s)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if valid(t1) {
		return t1, true
	}
	if valid(t2) {
		return t2, true
	}
	return 0, false
}
