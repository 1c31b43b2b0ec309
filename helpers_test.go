package glyphmask

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// fakeEngine is an in-memory FontEngine. Paint references wrap string keys
// into nodes.
type fakeEngine struct {
	upem     int
	slots    map[GlyphID]*GlyphSlot
	outlines map[GlyphID]*Outline
	loadErr  error

	// coverage is written to every pixel by RenderOutline.
	coverage byte
	rendered *Outline
	lcd      SourceBitmap
	lcdErr   error

	palette    Palette
	paletteErr error
	roots      map[GlyphID]string
	nodes      map[string]PaintNode
	layerList  []string
	colrLayers map[GlyphID][]ColorLayer
}

func newFakeEngine(upem int) *fakeEngine {
	return &fakeEngine{
		upem:       upem,
		slots:      make(map[GlyphID]*GlyphSlot),
		outlines:   make(map[GlyphID]*Outline),
		roots:      make(map[GlyphID]string),
		nodes:      make(map[string]PaintNode),
		colrLayers: make(map[GlyphID][]ColorLayer),
	}
}

func ref(key string) PaintRef { return NewPaintRef(key) }

func (e *fakeEngine) UnitsPerEm() int { return e.upem }

func (e *fakeEngine) LoadGlyph(id GlyphID) (*GlyphSlot, error) {
	if e.loadErr != nil {
		return nil, e.loadErr
	}
	if s, ok := e.slots[id]; ok {
		return s, nil
	}
	if o, ok := e.outlines[id]; ok {
		return &GlyphSlot{Format: GlyphFormatOutline, Outline: o}, nil
	}
	return nil, &EngineError{Op: "load", Glyph: id, Code: CodeInvalidGlyphIndex}
}

func (e *fakeEngine) LoadOutline(id GlyphID) (*Outline, error) {
	o, ok := e.outlines[id]
	if !ok {
		return nil, fmt.Errorf("no outline for glyph %d", id)
	}
	return o.Clone(), nil
}

func (e *fakeEngine) RenderOutline(o *Outline, dst *Mask) error {
	e.rendered = o
	v := e.coverage
	if dst.Format == FormatBW && v != 0 {
		v = 0xFF
	}
	for y := range dst.Height() {
		row := dst.Row(y)[:dst.Format.MinRowBytes(dst.Width())]
		for i := range row {
			row[i] = v
		}
	}
	return nil
}

func (e *fakeEngine) RenderLCD(o *Outline, vertical bool) (SourceBitmap, error) {
	e.rendered = o
	return e.lcd, e.lcdErr
}

func (e *fakeEngine) Palette(i int) (Palette, error) {
	return e.palette, e.paletteErr
}

func (e *fakeEngine) ColorGlyphPaint(id GlyphID) (PaintRef, bool) {
	k, ok := e.roots[id]
	return ref(k), ok
}

func (e *fakeEngine) Paint(r PaintRef) (PaintNode, bool) {
	k, _ := r.Value().(string)
	n, ok := e.nodes[k]
	return n, ok
}

func (e *fakeEngine) PaintLayer(layers PaintColrLayers, i int) (PaintRef, bool) {
	j := int(layers.FirstLayer) + i
	if j >= len(e.layerList) {
		return PaintRef{}, false
	}
	return ref(e.layerList[j]), true
}

func (e *fakeEngine) ColorLayers(id GlyphID) ([]ColorLayer, bool) {
	l, ok := e.colrLayers[id]
	return l, ok
}

// squareOutline is a closed square from (x, y) to (x+size, y+size) in whole
// pixels, y up.
func squareOutline(x, y, size int) *Outline {
	return &Outline{Segments: []Segment{
		seg(SegmentMoveTo, fp(x, y)),
		seg(SegmentLineTo, fp(x+size, y)),
		seg(SegmentLineTo, fp(x+size, y+size)),
		seg(SegmentLineTo, fp(x, y+size)),
	}}
}

// logCanvas records canvas calls as short strings.
type logCanvas struct {
	ops     []string
	matrix  []Matrix
	paints  []Paint
	flushed bool
}

func (c *logCanvas) Save()                    { c.ops = append(c.ops, "save") }
func (c *logCanvas) SaveLayer(mode BlendMode) { c.ops = append(c.ops, "layer "+mode.String()) }
func (c *logCanvas) Restore()                 { c.ops = append(c.ops, "restore") }
func (c *logCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, fmt.Sprintf("translate %g %g", dx, dy))
}
func (c *logCanvas) Concat(m Matrix) {
	c.ops = append(c.ops, "concat")
	c.matrix = append(c.matrix, m)
}
func (c *logCanvas) ClipPath(*Path, bool) { c.ops = append(c.ops, "clip") }
func (c *logCanvas) DrawPath(_ *Path, p Paint) {
	c.ops = append(c.ops, "path")
	c.paints = append(c.paints, p)
}
func (c *logCanvas) DrawPaint(p Paint) {
	c.ops = append(c.ops, "paint")
	c.paints = append(c.paints, p)
}
func (c *logCanvas) DrawMask(*Mask, FilterQuality) { c.ops = append(c.ops, "mask") }
func (c *logCanvas) Clear(color.NRGBA)             { c.ops = append(c.ops, "clear") }
func (c *logCanvas) Flush() error {
	c.flushed = true
	return nil
}

func (c *logCanvas) String() string { return strings.Join(c.ops, "; ") }

type logBackend struct {
	canvas *logCanvas
	err    error
}

func (b *logBackend) NewCanvas(*Mask) (Canvas, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.canvas = &logCanvas{}
	return b.canvas, nil
}

func glyphFor(id GlyphID, format MaskFormat, r image.Rectangle) *Glyph {
	g := &Glyph{ID: id, Format: format}
	g.SetBounds(r)
	return g
}
