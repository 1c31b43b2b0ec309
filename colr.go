package glyphmask

import (
	"image/color"
	"log/slog"
	"math"
	"slices"
)

// defaultMaxPaintDepth bounds paint graph recursion.
const defaultMaxPaintDepth = 64

// colrPainter walks one color glyph's paint graph and issues the matching
// canvas commands. Paint coordinates are font units with y up; the painter
// maps them to pixels with (x*sx/upem, -y*sy/upem).
type colrPainter struct {
	canvas    Canvas
	font      ColorFont
	palette   Palette
	glyphPath func(GlyphID) (*Path, error)

	upem     float64
	sx, sy   float64
	maxDepth int

	depth    int
	visiting map[GlyphID]bool
}

func (p *colrPainter) toPixels(pt Point) Point {
	return Pt(pt.X*p.sx/p.upem, -pt.Y*p.sy/p.upem)
}

// unitMatrix maps font units to pixels.
func (p *colrPainter) unitMatrix() Matrix {
	return Scale(p.sx/p.upem, -p.sy/p.upem)
}

// neutralize conjugates a font unit transform by the unit mapping so that
// it can be concatenated onto a canvas already working in pixels.
func (p *colrPainter) neutralize(m Matrix) Matrix {
	u := p.unitMatrix()
	inv, ok := u.Invert()
	if !ok {
		return Identity()
	}
	return u.Multiply(m).Multiply(inv)
}

// drawColrGlyph draws the paint graph rooted at id. It reports whether the
// glyph has a paint graph; failures inside the graph only drop branches.
func (p *colrPainter) drawColrGlyph(id GlyphID) bool {
	ref, ok := p.font.ColorGlyphPaint(id)
	if !ok {
		return false
	}
	if p.visiting == nil {
		p.visiting = make(map[GlyphID]bool)
	}
	if p.visiting[id] {
		Logger().Warn("glyphmask: color glyph references itself", slog.Uint64("glyph", uint64(id)))
		return false
	}
	p.visiting[id] = true
	defer delete(p.visiting, id)

	p.traverse(ref)
	return true
}

// drawColrLayers draws the flat layers of id, each glyph filled with one
// palette color.
func (p *colrPainter) drawColrLayers(id GlyphID) bool {
	layers, ok := p.font.ColorLayers(id)
	if !ok || len(layers) == 0 {
		return false
	}
	for _, l := range layers {
		c, ok := p.resolveColor(ColorIndex{PaletteIndex: l.PaletteIndex, Alpha: F2Dot14One})
		if !ok {
			continue
		}
		path, err := p.glyphPath(l.Glyph)
		if err != nil {
			Logger().Debug("glyphmask: skipping color layer",
				slog.Uint64("glyph", uint64(l.Glyph)), slog.Any("err", err))
			continue
		}
		p.canvas.DrawPath(path, Paint{Color: c, AntiAlias: true})
	}
	return true
}

// traverse draws the node behind ref and reports whether it succeeded.
func (p *colrPainter) traverse(ref PaintRef) bool {
	if p.depth >= p.maxDepth {
		Logger().Warn("glyphmask: paint graph too deep", slog.Int("limit", p.maxDepth))
		return false
	}
	p.depth++
	defer func() { p.depth-- }()

	node, ok := p.font.Paint(ref)
	if !ok {
		return false
	}

	switch n := node.(type) {
	case PaintColrLayers:
		for i := range n.NumLayers {
			child, ok := p.font.PaintLayer(n, i)
			if !ok {
				break
			}
			p.traverse(child)
		}
		return true
	case PaintGlyph:
		path, err := p.glyphPath(n.Glyph)
		if err != nil {
			Logger().Debug("glyphmask: missing clip glyph",
				slog.Uint64("glyph", uint64(n.Glyph)), slog.Any("err", err))
			return false
		}
		p.canvas.SaveLayer(BlendSrcOver)
		p.canvas.ClipPath(path, true)
		ok := p.traverse(n.Child)
		p.canvas.Restore()
		return ok
	case PaintColrGlyph:
		return p.drawColrGlyph(n.Glyph)
	case PaintTransform:
		m := Matrix{
			A: n.XX.Float(), B: n.XY.Float(), C: n.DX.Float(),
			D: n.YX.Float(), E: n.YY.Float(), F: n.DY.Float(),
		}
		return p.transformed(m, n.Child)
	case PaintRotate:
		m := RotateDegrees(n.Angle.Float()*180, n.CenterX.Float(), n.CenterY.Float())
		return p.transformed(m, n.Child)
	case PaintSkew:
		cx, cy := n.CenterX.Float(), n.CenterY.Float()
		kx := math.Tan(-n.XSkewAngle.Float() * math.Pi)
		ky := math.Tan(n.YSkewAngle.Float() * math.Pi)
		m := Translate(cx, cy).Multiply(Shear(kx, ky)).Multiply(Translate(-cx, -cy))
		return p.transformed(m, n.Child)
	case PaintComposite:
		p.canvas.SaveLayer(BlendSrcOver)
		backdrop := p.traverse(n.Backdrop)
		p.canvas.SaveLayer(compositeBlendMode(n.Mode))
		source := p.traverse(n.Source)
		p.canvas.Restore()
		p.canvas.Restore()
		return backdrop && source
	default:
		paint, ok := p.shade(node)
		if !ok {
			return false
		}
		p.canvas.DrawPaint(paint)
		return true
	}
}

// transformed draws child with m, given in font units, applied.
func (p *colrPainter) transformed(m Matrix, child PaintRef) bool {
	p.canvas.SaveLayer(BlendSrcOver)
	p.canvas.Concat(p.neutralize(m))
	ok := p.traverse(child)
	p.canvas.Restore()
	return ok
}

// shade builds the paint for a fill node.
func (p *colrPainter) shade(node PaintNode) (Paint, bool) {
	switch n := node.(type) {
	case PaintSolid:
		c, ok := p.resolveColor(n.Color)
		return Paint{Color: c, AntiAlias: true}, ok
	case PaintLinearGradient:
		return p.linearGradient(n)
	case PaintRadialGradient:
		return p.radialGradient(n)
	case PaintSweepGradient:
		return p.sweepGradient(n)
	}
	Logger().Debug("glyphmask: unsupported paint", slog.String("paint", paintName(node)))
	return Paint{}, false
}

func (p *colrPainter) linearGradient(n PaintLinearGradient) (Paint, bool) {
	stops, ok := p.resolveColorLine(n.ColorLine)
	if !ok {
		return Paint{}, false
	}

	// The gradient runs from p0 to p1 projected onto the normal of p0p2.
	p0p1 := n.P1.Sub(n.P0)
	normal := n.P2.Sub(n.P0).Perp()
	if p0p1.Dot(normal) == 0 {
		Logger().Debug("glyphmask: degenerate linear gradient")
		return Paint{}, false
	}
	p3 := n.P0.Add(p0p1.Project(normal))

	start, end := n.P0, p3
	if first, last, ok := stops.normalize(); ok {
		d := p3.Sub(n.P0)
		start = n.P0.Add(d.Mul(first))
		end = n.P0.Add(d.Mul(last))
	}
	return Paint{
		Shader: LinearGradient{
			Start:   p.toPixels(start),
			End:     p.toPixels(end),
			Colors:  stops.colors,
			Offsets: stops.offsets,
			Tile:    stops.tile,
		},
		AntiAlias: true,
	}, true
}

func (p *colrPainter) radialGradient(n PaintRadialGradient) (Paint, bool) {
	stops, ok := p.resolveColorLine(n.ColorLine)
	if !ok {
		return Paint{}, false
	}
	c0, r0, c1, r1 := n.C0, n.R0, n.C1, n.R1
	if first, last, ok := stops.normalize(); ok {
		dc, dr := n.C1.Sub(n.C0), n.R1-n.R0
		c0, r0 = n.C0.Add(dc.Mul(first)), n.R0+dr*first
		c1, r1 = n.C0.Add(dc.Mul(last)), n.R0+dr*last
	}
	scale := p.sx / p.upem
	return Paint{
		Shader: TwoPointConicalGradient{
			Start:       p.toPixels(c0),
			StartRadius: r0 * scale,
			End:         p.toPixels(c1),
			EndRadius:   r1 * scale,
			Colors:      stops.colors,
			Offsets:     stops.offsets,
			Tile:        stops.tile,
		},
		AntiAlias: true,
	}, true
}

func (p *colrPainter) sweepGradient(n PaintSweepGradient) (Paint, bool) {
	stops, ok := p.resolveColorLine(n.ColorLine)
	if !ok {
		return Paint{}, false
	}
	start := (n.StartAngle.Float() + 1) * 180
	end := (n.EndAngle.Float() + 1) * 180
	if first, last, ok := stops.normalize(); ok {
		span := end - start
		start, end = start+span*first, start+span*last
	}
	// Counter-clockwise in font units is clockwise once y points down.
	return Paint{
		Shader: SweepGradient{
			Center:     p.toPixels(n.Center),
			StartAngle: -start,
			EndAngle:   -end,
			Colors:     stops.colors,
			Offsets:    stops.offsets,
			Tile:       stops.tile,
		},
		AntiAlias: true,
	}, true
}

// resolveColor looks up a palette color and scales its alpha.
func (p *colrPainter) resolveColor(ci ColorIndex) (color.NRGBA, bool) {
	var c color.NRGBA
	switch {
	case ci.PaletteIndex == ForegroundPaletteIndex:
		c = color.NRGBA{A: 0xFF}
	case int(ci.PaletteIndex) < len(p.palette):
		c = p.palette[ci.PaletteIndex]
	default:
		Logger().Debug("glyphmask: palette index out of range",
			slog.Int("index", int(ci.PaletteIndex)), slog.Int("palette", len(p.palette)))
		return c, false
	}
	a := float64(c.A) * ci.Alpha.Float()
	c.A = uint8(max(0, min(255, int(a))))
	return c, true
}

type resolvedStops struct {
	colors  []color.NRGBA
	offsets []float64
	tile    TileMode
}

func (p *colrPainter) resolveColorLine(cl ColorLine) (resolvedStops, bool) {
	if len(cl.Stops) == 0 {
		return resolvedStops{}, false
	}
	sorted := slices.Clone(cl.Stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		return int(a.Offset) - int(b.Offset)
	})
	rs := resolvedStops{
		colors:  make([]color.NRGBA, len(sorted)),
		offsets: make([]float64, len(sorted)),
		tile:    extendTileMode(cl.Extend),
	}
	for i, s := range sorted {
		c, ok := p.resolveColor(s.Color)
		if !ok {
			return resolvedStops{}, false
		}
		rs.colors[i] = c
		rs.offsets[i] = s.Offset.Float()
	}
	return rs, true
}

// normalize rescales the offsets onto [0, 1] and returns the original
// first and last offsets, so the caller can move the gradient geometry to
// match. ok is false when the stops already span [0, 1] or span nothing.
func (s *resolvedStops) normalize() (first, last float64, ok bool) {
	first, last = s.offsets[0], s.offsets[len(s.offsets)-1]
	if (first == 0 && last == 1) || last <= first {
		return 0, 1, false
	}
	span := last - first
	for i, o := range s.offsets {
		s.offsets[i] = (o - first) / span
	}
	return first, last, true
}

func extendTileMode(e Extend) TileMode {
	switch e {
	case ExtendRepeat:
		return TileRepeat
	case ExtendReflect:
		return TileMirror
	default:
		return TileClamp
	}
}

// compositeBlendMode maps a paint graph composite mode to the canvas blend
// mode. Unknown modes clear.
func compositeBlendMode(m CompositeMode) BlendMode {
	switch m {
	case CompositeClear:
		return BlendClear
	case CompositeSrc:
		return BlendSrc
	case CompositeDest:
		return BlendDst
	case CompositeSrcOver:
		return BlendSrcOver
	case CompositeDestOver:
		return BlendDstOver
	case CompositeSrcIn:
		return BlendSrcIn
	case CompositeDestIn:
		return BlendDstIn
	case CompositeSrcOut:
		return BlendSrcOut
	case CompositeDestOut:
		return BlendDstOut
	case CompositeSrcAtop:
		return BlendSrcAtop
	case CompositeDestAtop:
		return BlendDstAtop
	case CompositeXor:
		return BlendXor
	case CompositePlus:
		return BlendPlus
	case CompositeScreen:
		return BlendScreen
	case CompositeOverlay:
		return BlendOverlay
	case CompositeDarken:
		return BlendDarken
	case CompositeLighten:
		return BlendLighten
	case CompositeColorDodge:
		return BlendColorDodge
	case CompositeColorBurn:
		return BlendColorBurn
	case CompositeHardLight:
		return BlendHardLight
	case CompositeSoftLight:
		return BlendSoftLight
	case CompositeDifference:
		return BlendDifference
	case CompositeExclusion:
		return BlendExclusion
	case CompositeMultiply:
		return BlendMultiply
	case CompositeHue:
		return BlendHue
	case CompositeSaturation:
		return BlendSaturation
	case CompositeColor:
		return BlendColor
	case CompositeLuminosity:
		return BlendLuminosity
	default:
		return BlendClear
	}
}
