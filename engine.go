package glyphmask

import "image/color"

// GlyphID is a glyph index in a font.
type GlyphID uint32

// GlyphFormat is the kind of data a font engine holds for a glyph.
type GlyphFormat uint8

// Glyph formats.
const (
	GlyphFormatNone GlyphFormat = iota
	GlyphFormatOutline
	GlyphFormatBitmap
)

// GlyphSlot is a glyph loaded by a FontEngine at the current size.
type GlyphSlot struct {
	Format GlyphFormat
	// Outline is set for GlyphFormatOutline, in 26.6 pixels with y up.
	Outline *Outline
	// Bitmap is set for GlyphFormatBitmap, unscaled at the strike size.
	Bitmap SourceBitmap
}

// ColorLayer is one layer of a flat color glyph: an outline glyph filled
// with a palette color, or the foreground color for ForegroundPaletteIndex.
type ColorLayer struct {
	Glyph        GlyphID
	PaletteIndex uint16
}

// Palette is a list of unpremultiplied colors.
type Palette []color.NRGBA

// FontEngine loads, measures and rasterizes glyphs of one face at one size.
type FontEngine interface {
	// UnitsPerEm returns the design grid size. Zero disables color glyphs.
	UnitsPerEm() int

	// LoadGlyph loads the glyph, preferring an embedded bitmap.
	LoadGlyph(id GlyphID) (*GlyphSlot, error)

	// LoadOutline loads only the outline of the glyph.
	LoadOutline(id GlyphID) (*Outline, error)

	// RenderOutline rasterizes o into dst: a FormatBW mask receives
	// monochrome coverage and a FormatA8 mask receives gray coverage.
	// The bottom-left pixel corner of dst is the outline origin.
	RenderOutline(o *Outline, dst *Mask) error

	// RenderLCD rasterizes o at three times the resolution horizontally,
	// or vertically when vertical is set. The returned bitmap's Left and
	// Top place it relative to the outline origin in pixels.
	RenderLCD(o *Outline, vertical bool) (SourceBitmap, error)

	ColorFont
}

// ColorFont gives access to color glyph data.
type ColorFont interface {
	// Palette returns palette i.
	Palette(i int) (Palette, error)

	// ColorGlyphPaint returns the root paint of a glyph's paint graph.
	ColorGlyphPaint(id GlyphID) (PaintRef, bool)

	// Paint resolves a reference into a node.
	Paint(ref PaintRef) (PaintNode, bool)

	// PaintLayer returns the i-th child of a layers node.
	PaintLayer(layers PaintColrLayers, i int) (PaintRef, bool)

	// ColorLayers returns the flat layers of a glyph.
	ColorLayers(id GlyphID) ([]ColorLayer, bool)
}
