package glyphmask

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/math/fixed"
)

// Scaler turns glyphs of one FontEngine into masks. A Scaler is not safe
// for concurrent use.
type Scaler struct {
	engine  FontEngine
	backend Backend
	opts    scalerOptions
}

// NewScaler creates a scaler over engine. backend draws color glyphs and
// transformed bitmaps; it may be nil when neither is needed.
func NewScaler(engine FontEngine, backend Backend, opts ...Option) *Scaler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scaler{engine: engine, backend: backend, opts: o}
}

// scale returns the pixels per em on each axis.
func (s *Scaler) scale() (x, y float64) {
	if s.opts.scaleX != 0 || s.opts.scaleY != 0 {
		return s.opts.scaleX, s.opts.scaleY
	}
	if r, ok := s.engine.(interface{ Scale() (float64, float64) }); ok {
		return r.Scale()
	}
	upem := float64(s.engine.UnitsPerEm())
	return upem, upem
}

// bitmapTransform returns the transform from strike pixels to device pixels.
func (s *Scaler) bitmapTransform() Matrix {
	if s.opts.bitmapTransform != nil {
		return *s.opts.bitmapTransform
	}
	if r, ok := s.engine.(interface{ BitmapTransform() Matrix }); ok {
		return r.BitmapTransform()
	}
	return Identity()
}

// GeneratePath returns the outline of id as a path in pixels relative to
// the glyph origin, y down. Embedded bitmaps are ignored.
func (s *Scaler) GeneratePath(id GlyphID) (*Path, error) {
	o, err := s.engine.LoadOutline(id)
	if err != nil {
		return nil, engineError("load outline", id, err)
	}
	return PathFromOutline(o)
}

// GenerateImage renders g.ID into g.Image in g.Format.
//
// Outline glyphs are rasterized by the engine, or painted through the
// backend for FormatARGB32. Bitmap glyphs are converted directly or, under a
// non-identity bitmap transform, resampled through the backend.
//
// On failure the image is zeroed, except for color glyphs, which leave it
// untouched.
func (s *Scaler) GenerateImage(g *Glyph) error {
	m := g.mask()
	if err := m.Validate(); err != nil {
		return err
	}

	slot, err := s.engine.LoadGlyph(g.ID)
	if err != nil {
		m.Clear()
		return engineError("load glyph", g.ID, err)
	}

	switch slot.Format {
	case GlyphFormatOutline:
		err = s.generateFromOutline(g, m, slot.Outline)
	case GlyphFormatBitmap:
		err = s.generateFromBitmap(g, m, slot.Bitmap)
	default:
		m.Clear()
		Logger().Debug("glyphmask: unknown glyph format",
			slog.Uint64("glyph", uint64(g.ID)), slog.Int("format", int(slot.Format)))
		return ErrUnknownGlyphFormat
	}
	if err != nil {
		return err
	}

	if g.Format == FormatA8 && s.opts.preBlend != nil {
		s.opts.preBlend.applyA8(m)
	}
	return nil
}

func (s *Scaler) generateFromOutline(g *Glyph, m *Mask, o *Outline) error {
	if o == nil {
		m.Clear()
		return engineError("load glyph", g.ID, errors.New("outline glyph without outline"))
	}
	switch g.Format {
	case FormatARGB32:
		return s.generateColor(g, m)
	case FormatLCD16:
		return s.generateLCD(g, m, o)
	default:
		return s.generateCoverage(g, m, o)
	}
}

// subpixelOffset returns the device-space (y down) pen offset of g, or zero
// when subpixel positioning is off. Outlines are y up and negate dy.
func (s *Scaler) subpixelOffset(g *Glyph) (dx, dy fixed.Int26_6) {
	if !s.opts.subpixel {
		return 0, 0
	}
	return g.SubX, g.SubY
}

// generateColor paints a color glyph. The mask is only written when
// something was drawn.
func (s *Scaler) generateColor(g *Glyph, m *Mask) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	upem := s.engine.UnitsPerEm()
	if upem <= 0 {
		Logger().Debug("glyphmask: font has no units per em", slog.Uint64("glyph", uint64(g.ID)))
		return ErrNoColorLayers
	}
	palette, err := s.engine.Palette(0)
	if err != nil || len(palette) == 0 {
		Logger().Warn("glyphmask: missing palette", slog.Uint64("glyph", uint64(g.ID)), slog.Any("err", err))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoPalette, err)
		}
		return ErrNoPalette
	}

	canvas, err := s.backend.NewCanvas(m)
	if err != nil {
		return err
	}
	canvas.Clear(color.NRGBA{})
	canvas.Translate(float64(-g.Left), float64(-g.Top))
	if dx, dy := s.subpixelOffset(g); dx != 0 || dy != 0 {
		canvas.Translate(float64(dx)/64, float64(dy)/64)
	}

	sx, sy := s.scale()
	p := &colrPainter{
		canvas:    canvas,
		font:      s.engine,
		palette:   palette,
		glyphPath: s.GeneratePath,
		upem:      float64(upem),
		sx:        sx,
		sy:        sy,
		maxDepth:  s.opts.maxPaintDepth,
	}
	if !p.drawColrGlyph(g.ID) && !p.drawColrLayers(g.ID) {
		return ErrNoColorLayers
	}
	return canvas.Flush()
}

// generateLCD renders at three times the resolution along one axis and
// packs the overlap with the glyph bounds into RGB565.
func (s *Scaler) generateLCD(g *Glyph, m *Mask, o *Outline) error {
	o = o.Clone()
	dx, dy := s.subpixelOffset(g)
	o.Translate(dx, -dy)

	bm, err := s.engine.RenderLCD(o, s.opts.lcdVertical)
	if err != nil {
		m.Clear()
		return engineError("render lcd", g.ID, err)
	}
	m.Clear()

	src := image.Rect(bm.Left, -bm.Top, bm.Left+bm.PixelWidth(), -bm.Top+bm.PixelRows())
	common := src.Intersect(m.Bounds)
	if common.Empty() {
		return nil
	}

	// Crop both sides to the common rectangle.
	x, y := common.Min.X-src.Min.X, common.Min.Y-src.Min.Y
	w, h := common.Dx(), common.Dy()
	switch bm.Mode {
	case PixelLCD:
		bm = bm.Crop(3*x, y, 3*w, h)
	case PixelLCDV:
		bm = bm.Crop(x, 3*y, w, 3*h)
	default:
		bm = bm.Crop(x, y, w, h)
	}
	return CopyToLCD16(bm, m.SubMask(common), LCDOptions{
		BGR:      s.opts.lcdBGR,
		PreBlend: s.opts.preBlend,
	})
}

// generateCoverage renders BW and A8 masks. The outline is shifted so that
// its control box starts inside the first pixel of the image.
func (s *Scaler) generateCoverage(g *Glyph, m *Mask, o *Outline) error {
	o = o.Clone()
	dx, dy := s.subpixelOffset(g)
	dy = -dy
	box := o.CBox()
	o.Translate(dx-((box.Min.X+dx)&^63), dy-((box.Min.Y+dy)&^63))

	m.Clear()
	if err := s.engine.RenderOutline(o, m); err != nil {
		m.Clear()
		return engineError("render outline", g.ID, err)
	}
	return nil
}

func (s *Scaler) generateFromBitmap(g *Glyph, m *Mask, bm SourceBitmap) error {
	if err := bm.Validate(); err != nil {
		m.Clear()
		return engineError("load bitmap", g.ID, err)
	}
	t := s.bitmapTransform()
	if t.IsIdentity() {
		return CopyBitmap(bm, m)
	}
	if s.backend == nil {
		m.Clear()
		return ErrNoBackend
	}

	// Convert at strike size first.
	stagingFormat := FormatA8
	if bm.Mode == PixelBGRA {
		stagingFormat = FormatARGB32
	}
	staging := NewMask(image.Rect(0, 0, bm.PixelWidth(), bm.PixelRows()), stagingFormat)
	if err := CopyBitmap(bm, staging); err != nil {
		m.Clear()
		return err
	}

	target := m
	if g.Format == FormatBW || g.Format == FormatLCD16 {
		target = NewMask(m.Bounds, FormatA8)
	}

	canvas, err := s.backend.NewCanvas(target)
	if err != nil {
		m.Clear()
		return err
	}
	canvas.Clear(color.NRGBA{})
	canvas.Translate(float64(-g.Left), float64(-g.Top))
	canvas.Concat(t)
	canvas.Translate(float64(bm.Left), float64(-bm.Top))

	filter := FilterLow
	if t.MinScale() < 0.5 {
		filter = FilterMedium
	}
	canvas.DrawMask(staging, filter)
	if err := canvas.Flush(); err != nil {
		m.Clear()
		return err
	}

	switch g.Format {
	case FormatBW:
		return PackA8ToA1(m, target)
	case FormatLCD16:
		return CopyToLCD16(target.AsSourceBitmap(), m, LCDOptions{BGR: s.opts.lcdBGR})
	}
	return nil
}

// engineError wraps err as an *EngineError unless it already is one.
func engineError(op string, id GlyphID, err error) error {
	var ee *EngineError
	if errors.As(err, &ee) {
		return err
	}
	Logger().Warn("glyphmask: engine failure",
		slog.String("op", op), slog.Uint64("glyph", uint64(id)), slog.Any("err", err))
	return &EngineError{Op: op, Glyph: id, Code: CodeCannotRender, Err: err}
}
