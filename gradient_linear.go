package glyphmask

import "image/color"

// LinearGradient varies color along the line from Start to End.
// Offset 0 is at Start and 1 at End.
type LinearGradient struct {
	Start, End Point
	Colors     []color.NRGBA
	Offsets    []float64
	Tile       TileMode
}

func (LinearGradient) shaderMarker() {}

// ColorAt projects (x, y) onto the gradient line.
func (g LinearGradient) ColorAt(x, y float64) color.RGBA {
	stops := gradientStops{Colors: g.Colors, Offsets: g.Offsets, Tile: g.Tile}
	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return stops.colorAt(0)
	}
	t := Pt(x, y).Sub(g.Start).Dot(d) / lengthSq
	return stops.colorAt(t)
}
