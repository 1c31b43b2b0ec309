package raster

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/glyphmask"
	"github.com/gogpu/glyphmask/internal/blend"
)

// state is the part of the canvas restored by Restore.
type state struct {
	ctm glyphmask.Matrix
	// clip is the clip coverage over the canvas, nil when unclipped.
	// Clip images are never modified once installed.
	clip *image.Alpha
}

type saveRecord struct {
	st    state
	layer bool
	mode  glyphmask.BlendMode
}

// Canvas is a software glyphmask.Canvas. Device space is the target mask
// with its top-left pixel at (0, 0).
type Canvas struct {
	dst    *glyphmask.Mask
	bounds image.Rectangle
	pool   *pool

	layers []*image.RGBA
	st     state
	stack  []saveRecord
}

var _ glyphmask.Canvas = (*Canvas)(nil)

func (c *Canvas) top() *image.RGBA {
	return c.layers[len(c.layers)-1]
}

// Save pushes the transform and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, saveRecord{st: c.st})
}

// SaveLayer pushes the transform and clip and starts a transparent layer.
func (c *Canvas) SaveLayer(mode glyphmask.BlendMode) {
	c.stack = append(c.stack, saveRecord{st: c.st, layer: true, mode: mode})
	c.layers = append(c.layers, c.pool.get(c.bounds))
}

// Restore pops the most recent save, compositing its layer if it has one.
// Restore without a matching save does nothing.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	rec := c.stack[n-1]
	c.stack = c.stack[:n-1]
	c.st = rec.st
	if !rec.layer {
		return
	}
	src := c.top()
	c.layers = c.layers[:len(c.layers)-1]
	composite(c.top(), src, blendFunc(rec.mode), rec.st.clip)
	c.pool.put(src)
}

// Translate implements glyphmask.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.st.ctm = c.st.ctm.Multiply(glyphmask.Translate(dx, dy))
}

// Concat implements glyphmask.Canvas.
func (c *Canvas) Concat(m glyphmask.Matrix) {
	c.st.ctm = c.st.ctm.Multiply(m)
}

// Transform returns the current transform.
func (c *Canvas) Transform() glyphmask.Matrix {
	return c.st.ctm
}

// ClipPath intersects the clip with p.
func (c *Canvas) ClipPath(p *glyphmask.Path, antiAlias bool) {
	cov := c.coverage(p, antiAlias)
	if c.st.clip != nil {
		intersectAlpha(cov, c.st.clip)
	}
	c.st.clip = cov
}

// DrawPath fills p with paint.
func (c *Canvas) DrawPath(p *glyphmask.Path, paint glyphmask.Paint) {
	c.fill(c.coverage(p, paint.AntiAlias), paint)
}

// DrawPaint fills the clip with paint.
func (c *Canvas) DrawPaint(paint glyphmask.Paint) {
	c.fill(nil, paint)
}

// Clear sets every pixel of the current layer to col.
func (c *Canvas) Clear(col color.NRGBA) {
	pm := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.top().Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = pm.R, pm.G, pm.B, pm.A
	}
}

// Flush writes the bottom layer to the target mask. Layers that were never
// restored are not included.
func (c *Canvas) Flush() error {
	if len(c.stack) > 0 {
		glyphmask.Logger().Debug("raster: flush with unbalanced saves", slog.Int("depth", len(c.stack)))
	}
	storeMask(c.dst, c.layers[0])
	return nil
}

// blendFunc maps a canvas blend mode to its compositing function.
func blendFunc(m glyphmask.BlendMode) blend.Func {
	if int(m) < len(blendModes) {
		return blend.Get(blendModes[m])
	}
	return blend.Get(blend.SrcOver)
}

var blendModes = [...]blend.Mode{
	glyphmask.BlendClear:      blend.Clear,
	glyphmask.BlendSrc:        blend.Src,
	glyphmask.BlendDst:        blend.Dst,
	glyphmask.BlendSrcOver:    blend.SrcOver,
	glyphmask.BlendDstOver:    blend.DstOver,
	glyphmask.BlendSrcIn:      blend.SrcIn,
	glyphmask.BlendDstIn:      blend.DstIn,
	glyphmask.BlendSrcOut:     blend.SrcOut,
	glyphmask.BlendDstOut:     blend.DstOut,
	glyphmask.BlendSrcAtop:    blend.SrcAtop,
	glyphmask.BlendDstAtop:    blend.DstAtop,
	glyphmask.BlendXor:        blend.Xor,
	glyphmask.BlendPlus:       blend.Plus,
	glyphmask.BlendScreen:     blend.Screen,
	glyphmask.BlendOverlay:    blend.Overlay,
	glyphmask.BlendDarken:     blend.Darken,
	glyphmask.BlendLighten:    blend.Lighten,
	glyphmask.BlendColorDodge: blend.ColorDodge,
	glyphmask.BlendColorBurn:  blend.ColorBurn,
	glyphmask.BlendHardLight:  blend.HardLight,
	glyphmask.BlendSoftLight:  blend.SoftLight,
	glyphmask.BlendDifference: blend.Difference,
	glyphmask.BlendExclusion:  blend.Exclusion,
	glyphmask.BlendMultiply:   blend.Multiply,
	glyphmask.BlendHue:        blend.Hue,
	glyphmask.BlendSaturation: blend.Saturation,
	glyphmask.BlendColor:      blend.Color,
	glyphmask.BlendLuminosity: blend.Luminosity,
}
