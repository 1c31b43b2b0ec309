package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/glyphmask"
)

// maxOverscan limits how far outside the canvas a path is rasterized.
const maxOverscan = 1 << 12

// coverage rasterizes p under the current transform into an alpha image
// covering the canvas. Without antialiasing coverage is thresholded at one
// half.
func (c *Canvas) coverage(p *glyphmask.Path, antiAlias bool) *image.Alpha {
	out := image.NewAlpha(c.bounds)
	dp := p.Transform(c.st.ctm)
	lo, hi, ok := dp.Bounds()
	if !ok || c.bounds.Empty() {
		return out
	}

	// The rasterizer's origin must sit at or above-left of every point.
	area := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	).Union(c.bounds).Intersect(c.bounds.Inset(-maxOverscan))
	off := area.Min

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Src
	pt := func(q glyphmask.Point) (float32, float32) {
		x := math.Max(0, math.Min(float64(area.Dx()), q.X-float64(off.X)))
		y := math.Max(0, math.Min(float64(area.Dy()), q.Y-float64(off.Y)))
		return float32(x), float32(y)
	}
	open := false
	for _, el := range dp.Elements() {
		switch e := el.(type) {
		case glyphmask.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(e.Point))
			open = true
		case glyphmask.LineTo:
			z.LineTo(pt(e.Point))
		case glyphmask.QuadTo:
			bx, by := pt(e.Control)
			cx, cy := pt(e.Point)
			z.QuadTo(bx, by, cx, cy)
		case glyphmask.CubicTo:
			bx, by := pt(e.Control1)
			cx, cy := pt(e.Control2)
			dx, dy := pt(e.Point)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case glyphmask.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}

	tmp := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	z.Draw(tmp, tmp.Bounds(), image.Opaque, image.Point{})
	draw.Draw(out, c.bounds, tmp, c.bounds.Min.Sub(off), draw.Src)

	if !antiAlias {
		for i, v := range out.Pix {
			if v >= 0x80 {
				out.Pix[i] = 0xFF
			} else {
				out.Pix[i] = 0
			}
		}
	}
	return out
}

// intersectAlpha multiplies dst by clip.
func intersectAlpha(dst, clip *image.Alpha) {
	for i, v := range dst.Pix {
		dst.Pix[i] = mul255(v, clip.Pix[i])
	}
}

func mul255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}
