package glyphmask

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Glyph is one glyph image request. The caller fills in the identity,
// format, bounds and buffer; Scaler.GenerateImage writes the pixels.
//
// Left and Top place the image's top-left pixel relative to the glyph
// origin, in device pixels with y pointing down.
type Glyph struct {
	ID     GlyphID
	Format MaskFormat

	Left, Top     int
	Width, Height int

	// SubX and SubY are the fractional pen position in 26.6 pixels, y down.
	// They only apply to a Scaler built WithSubpixel(true).
	SubX, SubY fixed.Int26_6

	// Image holds Height rows of RowBytes bytes.
	Image []byte
}

// RowBytes returns the stride of Image.
func (g *Glyph) RowBytes() int {
	return g.Format.MinRowBytes(g.Width)
}

// Bounds returns the image rectangle relative to the glyph origin.
func (g *Glyph) Bounds() image.Rectangle {
	return image.Rect(g.Left, g.Top, g.Left+g.Width, g.Top+g.Height)
}

// SetBounds sets the image rectangle and allocates a zeroed Image.
func (g *Glyph) SetBounds(r image.Rectangle) {
	g.Left, g.Top = r.Min.X, r.Min.Y
	g.Width, g.Height = r.Dx(), r.Dy()
	g.Image = make([]byte, g.RowBytes()*g.Height)
}

// mask returns a Mask view of the glyph image.
func (g *Glyph) mask() *Mask {
	return &Mask{
		Pix:      g.Image,
		Bounds:   g.Bounds(),
		RowBytes: g.RowBytes(),
		Format:   g.Format,
	}
}
