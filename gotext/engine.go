package gotext

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphmask"
	"github.com/gogpu/glyphmask/internal/cache"
)

const defaultCacheSize = 256

// Engine is a glyphmask.FontEngine over one go-text face at one size.
type Engine struct {
	face *font.Face
	size float64
	upem int

	// strike is the ppem of the bitmap strike go-text selects at size,
	// or 0 when the font has no embedded bitmaps.
	strike uint16

	lcdFilter bool

	outlines *cache.Cache[glyphmask.GlyphID, *glyphmask.Outline]
	bitmaps  *cache.Cache[glyphmask.GlyphID, bitmapResult]
}

var _ glyphmask.FontEngine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLCDFilter enables the five-tap FIR filter applied to LCD renders.
// It is enabled by default.
func WithLCDFilter(enabled bool) Option {
	return func(e *Engine) {
		e.lcdFilter = enabled
	}
}

// WithCacheSize sets how many outlines and bitmaps are kept decoded.
// Zero or less disables the limit.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.outlines = cache.New[glyphmask.GlyphID, *glyphmask.Outline](n)
		e.bitmaps = cache.New[glyphmask.GlyphID, bitmapResult](n)
	}
}

// Load parses an OpenType font and returns an engine at size pixels per em.
func Load(data []byte, size float64, opts ...Option) (*Engine, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: parse font: %w", err)
	}
	return New(face.Font, size, opts...)
}

// New returns an engine for f at size pixels per em. f may be shared
// between engines.
func New(f *font.Font, size float64, opts ...Option) (*Engine, error) {
	if !(size > 0) || math.IsInf(size, 0) || size > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	e := &Engine{
		face:      font.NewFace(f),
		size:      size,
		upem:      int(f.Upem()),
		lcdFilter: true,
		outlines:  cache.New[glyphmask.GlyphID, *glyphmask.Outline](defaultCacheSize),
		bitmaps:   cache.New[glyphmask.GlyphID, bitmapResult](defaultCacheSize),
	}
	for _, opt := range opts {
		opt(e)
	}
	ppem := uint16(math.Ceil(size))
	e.face.SetPpem(ppem, ppem)
	e.strike = chooseStrike(f.BitmapSizes(), ppem)
	return e, nil
}

// chooseStrike picks the smallest strike at least as large as request, or
// the largest one when none is, matching go-text's own selection.
func chooseStrike(sizes []font.BitmapSize, request uint16) uint16 {
	if len(sizes) == 0 {
		return 0
	}
	best := max(sizes[0].XPpem, sizes[0].YPpem)
	for _, s := range sizes[1:] {
		ppem := max(s.XPpem, s.YPpem)
		if request <= ppem && ppem < best || request > best && ppem > best {
			best = ppem
		}
	}
	return best
}

// Face returns the underlying go-text face.
func (e *Engine) Face() *font.Face { return e.face }

// Size returns the pixel size.
func (e *Engine) Size() float64 { return e.size }

// UnitsPerEm implements glyphmask.FontEngine.
func (e *Engine) UnitsPerEm() int { return e.upem }

// Scale returns the pixels per em on both axes.
func (e *Engine) Scale() (x, y float64) { return e.size, e.size }

// BitmapTransform returns the scaling from strike pixels to device pixels.
func (e *Engine) BitmapTransform() glyphmask.Matrix {
	if e.strike == 0 || float64(e.strike) == e.size {
		return glyphmask.Identity()
	}
	s := e.size / float64(e.strike)
	return glyphmask.Scale(s, s)
}

func gid(id glyphmask.GlyphID) (tables.GlyphID, error) {
	if id > math.MaxUint16 {
		return 0, ErrGlyphRange
	}
	return tables.GlyphID(id), nil
}

func engineError(op string, id glyphmask.GlyphID, code glyphmask.EngineErrorCode, err error) error {
	return &glyphmask.EngineError{Op: op, Glyph: id, Code: code, Err: err}
}

// LoadOutline implements glyphmask.FontEngine. The returned outline is a
// copy the caller may modify.
func (e *Engine) LoadOutline(id glyphmask.GlyphID) (*glyphmask.Outline, error) {
	o, err := e.outline(id)
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

func (e *Engine) outline(id glyphmask.GlyphID) (*glyphmask.Outline, error) {
	g, err := gid(id)
	if err != nil {
		return nil, engineError("load outline", id, glyphmask.CodeInvalidGlyphIndex, err)
	}
	o := e.outlines.GetOrCreate(id, func() *glyphmask.Outline {
		data, ok := e.face.GlyphDataOutline(g)
		if !ok {
			return nil
		}
		return convertOutline(data, e.size/float64(e.upem))
	})
	if o == nil {
		return nil, engineError("load outline", id, glyphmask.CodeInvalidGlyphIndex, ErrNoGlyphData)
	}
	return o, nil
}

// LoadGlyph implements glyphmask.FontEngine. Embedded bitmaps take
// precedence over outlines. A color glyph without an outline of its own
// loads as an empty outline so that it can still be painted.
func (e *Engine) LoadGlyph(id glyphmask.GlyphID) (*glyphmask.GlyphSlot, error) {
	g, err := gid(id)
	if err != nil {
		return nil, engineError("load glyph", id, glyphmask.CodeInvalidGlyphIndex, err)
	}
	if bm, ok := e.bitmap(id, g); ok {
		return &glyphmask.GlyphSlot{Format: glyphmask.GlyphFormatBitmap, Bitmap: bm}, nil
	}
	o, err := e.LoadOutline(id)
	if err != nil {
		if _, isColor := e.face.COLR.Search(g); !isColor {
			return nil, err
		}
		o = &glyphmask.Outline{}
	}
	return &glyphmask.GlyphSlot{Format: glyphmask.GlyphFormatOutline, Outline: o}, nil
}

// GlyphBounds returns the device pixel rectangle, y down, that holds the
// glyph rendered in format at the origin.
func (e *Engine) GlyphBounds(id glyphmask.GlyphID, format glyphmask.MaskFormat) image.Rectangle {
	g, err := gid(id)
	if err != nil {
		return image.Rectangle{}
	}
	if bm, ok := e.bitmap(id, g); ok {
		r := image.Rect(bm.Left, -bm.Top, bm.Left+bm.PixelWidth(), -bm.Top+bm.PixelRows())
		return transformRect(e.BitmapTransform(), r)
	}
	if format == glyphmask.FormatARGB32 {
		if r, ok := e.colorBounds(g); ok {
			return r
		}
	}
	o, err := e.outline(id)
	if err != nil {
		return image.Rectangle{}
	}
	r := pixelBounds(o)
	if format == glyphmask.FormatLCD16 && e.lcdFilter && !r.Empty() {
		r.Min.X--
		r.Max.X++
	}
	return r
}

// pixelBounds rounds the control box of o out to whole pixels, y down.
func pixelBounds(o *glyphmask.Outline) image.Rectangle {
	if len(o.Segments) == 0 {
		return image.Rectangle{}
	}
	b := o.CBox()
	return image.Rect(
		b.Min.X.Floor(), -b.Max.Y.Ceil(),
		b.Max.X.Ceil(), -b.Min.Y.Floor(),
	)
}

// transformRect maps r through m and rounds the result out.
func transformRect(m glyphmask.Matrix, r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return r
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4]glyphmask.Point{
		glyphmask.Pt(float64(r.Min.X), float64(r.Min.Y)),
		glyphmask.Pt(float64(r.Max.X), float64(r.Min.Y)),
		glyphmask.Pt(float64(r.Min.X), float64(r.Max.Y)),
		glyphmask.Pt(float64(r.Max.X), float64(r.Max.Y)),
	} {
		p := m.TransformPoint(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// toFixed converts font units to 26.6 pixels.
func toFixed(v float32, scale float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * scale * 64))
}
