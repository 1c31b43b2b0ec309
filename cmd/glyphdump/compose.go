package main

import (
	"image"
	"image/color"

	"github.com/gogpu/glyphmask"
)

// stripCanvas is a white image that glyph masks are drawn onto in black,
// or in their own colors for ARGB32.
type stripCanvas struct {
	img *image.NRGBA
}

func newCanvas(w, h int) *stripCanvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &stripCanvas{img: img}
}

// drawGlyph places g with its origin at (ox, oy).
func (c *stripCanvas) drawGlyph(g *glyphmask.Glyph, ox, oy int) {
	m := &glyphmask.Mask{
		Pix:      g.Image,
		Bounds:   g.Bounds(),
		RowBytes: g.RowBytes(),
		Format:   g.Format,
	}
	for y := range g.Height {
		for x := range g.Width {
			px, py := ox+g.Left+x, oy+g.Top+y
			if !image.Pt(px, py).In(c.img.Rect) {
				continue
			}
			c.img.SetNRGBA(px, py, onWhite(m, x, y))
		}
	}
}

// onWhite composites one mask pixel over white.
func onWhite(m *glyphmask.Mask, x, y int) color.NRGBA {
	switch m.Format {
	case glyphmask.FormatBW:
		if m.BitAt(x, y) {
			return color.NRGBA{A: 0xFF}
		}
	case glyphmask.FormatA8:
		v := 0xFF - m.AlphaAt(x, y)
		return color.NRGBA{R: v, G: v, B: v, A: 0xFF}
	case glyphmask.FormatLCD16:
		r, g, b := glyphmask.UnpackRGB16(m.RGB16At(x, y))
		return color.NRGBA{R: 0xFF - r, G: 0xFF - g, B: 0xFF - b, A: 0xFF}
	case glyphmask.FormatARGB32:
		a, r, g, b := glyphmask.UnpackARGB32(m.ARGBAt(x, y))
		inv := 0xFF - a
		return color.NRGBA{R: r + inv, G: g + inv, B: b + inv, A: 0xFF}
	}
	return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}
