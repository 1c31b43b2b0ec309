package gotext

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/glyphmask"
)

// Palette implements glyphmask.ColorFont.
func (e *Engine) Palette(i int) (glyphmask.Palette, error) {
	cpal := e.face.CPAL
	if i < 0 || i >= len(cpal) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoPalette, i, len(cpal))
	}
	out := make(glyphmask.Palette, len(cpal[i]))
	for j, c := range cpal[i] {
		out[j] = color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}
	}
	return out, nil
}

// ColorGlyphPaint implements glyphmask.ColorFont. Glyphs that only have
// COLR version 0 layers report false; see ColorLayers.
func (e *Engine) ColorGlyphPaint(id glyphmask.GlyphID) (glyphmask.PaintRef, bool) {
	g, err := gid(id)
	if err != nil {
		return glyphmask.PaintRef{}, false
	}
	p, ok := e.face.COLR.Search(g)
	if !ok {
		return glyphmask.PaintRef{}, false
	}
	if _, legacy := p.(tables.PaintColrLayersResolved); legacy {
		return glyphmask.PaintRef{}, false
	}
	return glyphmask.NewPaintRef(p), true
}

// ColorLayers implements glyphmask.ColorFont.
func (e *Engine) ColorLayers(id glyphmask.GlyphID) ([]glyphmask.ColorLayer, bool) {
	g, err := gid(id)
	if err != nil {
		return nil, false
	}
	p, ok := e.face.COLR.Search(g)
	if !ok {
		return nil, false
	}
	layers, ok := p.(tables.PaintColrLayersResolved)
	if !ok {
		return nil, false
	}
	out := make([]glyphmask.ColorLayer, len(layers))
	for i, l := range layers {
		out[i] = glyphmask.ColorLayer{Glyph: glyphmask.GlyphID(l.GlyphID), PaletteIndex: l.PaletteIndex}
	}
	return out, true
}

// PaintLayer implements glyphmask.ColorFont.
func (e *Engine) PaintLayer(layers glyphmask.PaintColrLayers, i int) (glyphmask.PaintRef, bool) {
	if e.face.COLR == nil || i < 0 || i >= layers.NumLayers || layers.NumLayers > 0xFF {
		return glyphmask.PaintRef{}, false
	}
	list, err := e.face.COLR.LayerList.Resolve(tables.PaintColrLayers{
		NumLayers:       uint8(layers.NumLayers),
		FirstLayerIndex: layers.FirstLayer,
	})
	if err != nil {
		glyphmask.Logger().Debug("gotext: bad layer list", slog.Any("err", err))
		return glyphmask.PaintRef{}, false
	}
	if list[i] == nil {
		return glyphmask.PaintRef{}, false
	}
	return glyphmask.NewPaintRef(list[i]), true
}

// Paint implements glyphmask.ColorFont. It accepts references produced by
// this engine and converts the go-text paint table into a node. Variable
// paints are read at the default instance, and translate and scale forms
// become transforms.
func (e *Engine) Paint(ref glyphmask.PaintRef) (glyphmask.PaintNode, bool) {
	p, ok := ref.Value().(tables.PaintTable)
	if !ok || p == nil {
		return nil, false
	}
	return convertPaint(p)
}

func child(p tables.PaintTable) glyphmask.PaintRef {
	if p == nil {
		return glyphmask.PaintRef{}
	}
	return glyphmask.NewPaintRef(p)
}

func f214(v tables.Fixed214) glyphmask.F2Dot14 { return glyphmask.F2Dot14(v) }

// angle converts a 2.14 half-turn count to 16.16.
func angle(v tables.Fixed214) glyphmask.Fixed {
	return glyphmask.FixedFromFloat(f214(v).Float())
}

func units(v int16) glyphmask.Fixed { return glyphmask.Fixed(int32(v) << 16) }

func fx(v float64) glyphmask.Fixed { return glyphmask.FixedFromFloat(v) }

func colorLine(cl tables.ColorLine) glyphmask.ColorLine {
	out := glyphmask.ColorLine{
		Extend: glyphmask.Extend(cl.Extend),
		Stops:  make([]glyphmask.ColorStop, len(cl.ColorStops)),
	}
	for i, s := range cl.ColorStops {
		out.Stops[i] = glyphmask.ColorStop{
			Offset: f214(s.StopOffset),
			Color:  glyphmask.ColorIndex{PaletteIndex: s.PaletteIndex, Alpha: f214(s.Alpha)},
		}
	}
	return out
}

func varColorLine(cl tables.VarColorLine) glyphmask.ColorLine {
	out := glyphmask.ColorLine{
		Extend: glyphmask.Extend(cl.Extend),
		Stops:  make([]glyphmask.ColorStop, len(cl.ColorStops)),
	}
	for i, s := range cl.ColorStops {
		out.Stops[i] = glyphmask.ColorStop{
			Offset: f214(s.StopOffset),
			Color:  glyphmask.ColorIndex{PaletteIndex: s.PaletteIndex, Alpha: f214(s.Alpha)},
		}
	}
	return out
}

func pt(x, y int16) glyphmask.Point { return glyphmask.Pt(float64(x), float64(y)) }

// scaleAround returns a scale by (sx, sy) about (cx, cy) in font units.
func scaleAround(sx, sy float64, cx, cy int16, c tables.PaintTable) glyphmask.PaintTransform {
	x, y := float64(cx), float64(cy)
	return glyphmask.PaintTransform{
		XX: fx(sx), YY: fx(sy),
		DX: fx(x - sx*x), DY: fx(y - sy*y),
		Child: child(c),
	}
}

func translate(dx, dy int16, c tables.PaintTable) glyphmask.PaintTransform {
	return glyphmask.PaintTransform{
		XX: fx(1), YY: fx(1),
		DX: units(dx), DY: units(dy),
		Child: child(c),
	}
}

func convertPaint(p tables.PaintTable) (glyphmask.PaintNode, bool) {
	switch v := p.(type) {
	case tables.PaintColrLayers:
		return glyphmask.PaintColrLayers{FirstLayer: v.FirstLayerIndex, NumLayers: int(v.NumLayers)}, true
	case tables.PaintSolid:
		return glyphmask.PaintSolid{Color: glyphmask.ColorIndex{PaletteIndex: v.PaletteIndex, Alpha: f214(v.Alpha)}}, true
	case tables.PaintVarSolid:
		return glyphmask.PaintSolid{Color: glyphmask.ColorIndex{PaletteIndex: v.PaletteIndex, Alpha: f214(v.Alpha)}}, true
	case tables.PaintLinearGradient:
		return glyphmask.PaintLinearGradient{
			ColorLine: colorLine(v.ColorLine),
			P0:        pt(v.X0, v.Y0), P1: pt(v.X1, v.Y1), P2: pt(v.X2, v.Y2),
		}, true
	case tables.PaintVarLinearGradient:
		return glyphmask.PaintLinearGradient{
			ColorLine: varColorLine(v.ColorLine),
			P0:        pt(v.X0, v.Y0), P1: pt(v.X1, v.Y1), P2: pt(v.X2, v.Y2),
		}, true
	case tables.PaintRadialGradient:
		return glyphmask.PaintRadialGradient{
			ColorLine: colorLine(v.ColorLine),
			C0:        pt(v.X0, v.Y0), R0: float64(v.Radius0),
			C1: pt(v.X1, v.Y1), R1: float64(v.Radius1),
		}, true
	case tables.PaintVarRadialGradient:
		return glyphmask.PaintRadialGradient{
			ColorLine: varColorLine(v.ColorLine),
			C0:        pt(v.X0, v.Y0), R0: float64(v.Radius0),
			C1: pt(v.X1, v.Y1), R1: float64(v.Radius1),
		}, true
	case tables.PaintSweepGradient:
		return glyphmask.PaintSweepGradient{
			ColorLine:  colorLine(v.ColorLine),
			Center:     pt(v.CenterX, v.CenterY),
			StartAngle: f214(v.StartAngle), EndAngle: f214(v.EndAngle),
		}, true
	case tables.PaintVarSweepGradient:
		return glyphmask.PaintSweepGradient{
			ColorLine:  varColorLine(v.ColorLine),
			Center:     pt(v.CenterX, v.CenterY),
			StartAngle: f214(v.StartAngle), EndAngle: f214(v.EndAngle),
		}, true
	case tables.PaintGlyph:
		return glyphmask.PaintGlyph{Glyph: glyphmask.GlyphID(v.GlyphID), Child: child(v.Paint)}, true
	case tables.PaintColrGlyph:
		return glyphmask.PaintColrGlyph{Glyph: glyphmask.GlyphID(v.GlyphID)}, true
	case tables.PaintTransform:
		t := v.Transform
		return glyphmask.PaintTransform{
			XX: fx(float64(t.Xx)), YX: fx(float64(t.Yx)),
			XY: fx(float64(t.Xy)), YY: fx(float64(t.Yy)),
			DX: fx(float64(t.Dx)), DY: fx(float64(t.Dy)),
			Child: child(v.Paint),
		}, true
	case tables.PaintVarTransform:
		t := v.Transform
		return glyphmask.PaintTransform{
			XX: fx(float64(t.Xx)), YX: fx(float64(t.Yx)),
			XY: fx(float64(t.Xy)), YY: fx(float64(t.Yy)),
			DX: fx(float64(t.Dx)), DY: fx(float64(t.Dy)),
			Child: child(v.Paint),
		}, true
	case tables.PaintTranslate:
		return translate(v.Dx, v.Dy, v.Paint), true
	case tables.PaintVarTranslate:
		return translate(v.Dx, v.Dy, v.Paint), true
	case tables.PaintScale:
		return scaleAround(f214(v.ScaleX).Float(), f214(v.ScaleY).Float(), 0, 0, v.Paint), true
	case tables.PaintVarScale:
		return scaleAround(f214(v.ScaleX).Float(), f214(v.ScaleY).Float(), 0, 0, v.Paint), true
	case tables.PaintScaleAroundCenter:
		return scaleAround(f214(v.ScaleX).Float(), f214(v.ScaleY).Float(), v.CenterX, v.CenterY, v.Paint), true
	case tables.PaintVarScaleAroundCenter:
		return scaleAround(f214(v.ScaleX).Float(), f214(v.ScaleY).Float(), v.CenterX, v.CenterY, v.Paint), true
	case tables.PaintScaleUniform:
		s := f214(v.Scale).Float()
		return scaleAround(s, s, 0, 0, v.Paint), true
	case tables.PaintVarScaleUniform:
		s := f214(v.Scale).Float()
		return scaleAround(s, s, 0, 0, v.Paint), true
	case tables.PaintScaleUniformAroundCenter:
		s := f214(v.Scale).Float()
		return scaleAround(s, s, v.CenterX, v.CenterY, v.Paint), true
	case tables.PaintVarScaleUniformAroundCenter:
		s := f214(v.Scale).Float()
		return scaleAround(s, s, v.CenterX, v.CenterY, v.Paint), true
	case tables.PaintRotate:
		return glyphmask.PaintRotate{Angle: angle(v.Angle), Child: child(v.Paint)}, true
	case tables.PaintVarRotate:
		return glyphmask.PaintRotate{Angle: angle(v.Angle), Child: child(v.Paint)}, true
	case tables.PaintRotateAroundCenter:
		return glyphmask.PaintRotate{
			Angle: angle(v.Angle), CenterX: units(v.CenterX), CenterY: units(v.CenterY),
			Child: child(v.Paint),
		}, true
	case tables.PaintVarRotateAroundCenter:
		return glyphmask.PaintRotate{
			Angle: angle(v.Angle), CenterX: units(v.CenterX), CenterY: units(v.CenterY),
			Child: child(v.Paint),
		}, true
	case tables.PaintSkew:
		return glyphmask.PaintSkew{
			XSkewAngle: angle(v.XSkewAngle), YSkewAngle: angle(v.YSkewAngle),
			Child: child(v.Paint),
		}, true
	case tables.PaintVarSkew:
		return glyphmask.PaintSkew{
			XSkewAngle: angle(v.XSkewAngle), YSkewAngle: angle(v.YSkewAngle),
			Child: child(v.Paint),
		}, true
	case tables.PaintSkewAroundCenter:
		return glyphmask.PaintSkew{
			XSkewAngle: angle(v.XSkewAngle), YSkewAngle: angle(v.YSkewAngle),
			CenterX: units(v.CenterX), CenterY: units(v.CenterY),
			Child: child(v.Paint),
		}, true
	case tables.PaintVarSkewAroundCenter:
		return glyphmask.PaintSkew{
			XSkewAngle: angle(v.XSkewAngle), YSkewAngle: angle(v.YSkewAngle),
			CenterX: units(v.CenterX), CenterY: units(v.CenterY),
			Child: child(v.Paint),
		}, true
	case tables.PaintComposite:
		return glyphmask.PaintComposite{
			Mode:     glyphmask.CompositeMode(v.CompositeMode),
			Backdrop: child(v.BackdropPaint),
			Source:   child(v.SourcePaint),
		}, true
	}
	return nil, false
}

// colorBounds returns the device bounds of a color glyph from its COLR
// clip box, or from the union of its layer outlines.
func (e *Engine) colorBounds(g tables.GlyphID) (image.Rectangle, bool) {
	colr := e.face.COLR
	p, ok := colr.Search(g)
	if !ok {
		return image.Rectangle{}, false
	}
	scale := e.size / float64(e.upem)
	if box, ok := colr.ClipList.Search(g); ok {
		var xMin, yMin, xMax, yMax int16
		switch b := box.(type) {
		case tables.ClipBoxFormat1:
			xMin, yMin, xMax, yMax = b.XMin, b.YMin, b.XMax, b.YMax
		case tables.ClipBoxFormat2:
			xMin, yMin, xMax, yMax = b.XMin, b.YMin, b.XMax, b.YMax
		}
		if xMin < xMax && yMin < yMax {
			return image.Rect(
				int(math.Floor(float64(xMin)*scale)), -int(math.Ceil(float64(yMax)*scale)),
				int(math.Ceil(float64(xMax)*scale)), -int(math.Floor(float64(yMin)*scale)),
			), true
		}
	}

	var r image.Rectangle
	e.collectGlyphBounds(p, &r, 0)
	return r, !r.Empty()
}

// collectGlyphBounds unions the pixel bounds of the outlines a paint graph
// clips to. Transforms are not applied, so the result is an estimate for
// transformed paints.
func (e *Engine) collectGlyphBounds(p tables.PaintTable, r *image.Rectangle, depth int) {
	if p == nil || depth > maxBoundsDepth {
		return
	}
	add := func(id tables.GlyphID) {
		if o, err := e.outline(glyphmask.GlyphID(id)); err == nil {
			*r = r.Union(pixelBounds(o))
		}
	}
	switch v := p.(type) {
	case tables.PaintColrLayersResolved:
		for _, l := range v {
			add(l.GlyphID)
		}
	case tables.PaintColrLayers:
		list, err := e.face.COLR.LayerList.Resolve(v)
		if err != nil {
			return
		}
		for _, c := range list {
			e.collectGlyphBounds(c, r, depth+1)
		}
	case tables.PaintGlyph:
		add(v.GlyphID)
	case tables.PaintColrGlyph:
		if c, ok := e.face.COLR.Search(v.GlyphID); ok {
			e.collectGlyphBounds(c, r, depth+1)
		}
	case tables.PaintComposite:
		e.collectGlyphBounds(v.BackdropPaint, r, depth+1)
		e.collectGlyphBounds(v.SourcePaint, r, depth+1)
	default:
		if n, ok := convertPaint(p); ok {
			if c, ok := childOf(n).Value().(tables.PaintTable); ok {
				e.collectGlyphBounds(c, r, depth+1)
			}
		}
	}
}

const maxBoundsDepth = 64

func childOf(n glyphmask.PaintNode) glyphmask.PaintRef {
	switch v := n.(type) {
	case glyphmask.PaintTransform:
		return v.Child
	case glyphmask.PaintRotate:
		return v.Child
	case glyphmask.PaintSkew:
		return v.Child
	}
	return glyphmask.PaintRef{}
}
