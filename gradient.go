package glyphmask

import (
	"image/color"
	"math"
	"sort"
)

// Shader computes a color for every point of user space. It is implemented
// by LinearGradient, TwoPointConicalGradient and SweepGradient.
type Shader interface {
	// ColorAt returns the premultiplied color at (x, y).
	ColorAt(x, y float64) color.RGBA
	shaderMarker()
}

// gradientStops is the shared stop list of every gradient shader. Offsets
// must be sorted ascending and have the same length as Colors.
type gradientStops struct {
	Colors  []color.NRGBA
	Offsets []float64
	Tile    TileMode
}

// applyTileMode maps t into [0, 1].
func applyTileMode(t float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		t -= math.Floor(t)
	case TileMirror:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAt interpolates between the two stops around t. Colors are mixed
// unpremultiplied and premultiplied afterwards.
func (g gradientStops) colorAt(t float64) color.RGBA {
	n := min(len(g.Colors), len(g.Offsets))
	if n == 0 {
		return color.RGBA{}
	}
	if n == 1 || math.IsNaN(t) {
		return premultiply(g.Colors[0])
	}
	t = applyTileMode(t, g.Tile)

	idx := sort.Search(n, func(i int) bool {
		return g.Offsets[i] >= t
	})
	if idx == 0 {
		return premultiply(g.Colors[0])
	}
	if idx >= n {
		return premultiply(g.Colors[n-1])
	}
	o1, o2 := g.Offsets[idx-1], g.Offsets[idx]
	if o2 == o1 {
		return premultiply(g.Colors[idx])
	}
	return premultiply(lerpNRGBA(g.Colors[idx-1], g.Colors[idx], (t-o1)/(o2-o1)))
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// premultiply converts to the premultiplied model with 8-bit rounding.
func premultiply(c color.NRGBA) color.RGBA {
	a := uint32(c.A)
	mul := func(v uint8) uint8 {
		x := uint32(v)*a + 128
		return uint8((x + x>>8) >> 8)
	}
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
