package raster

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/glyphmask"
	"github.com/gogpu/glyphmask/internal/blend"
)

// fill draws paint source-over through cov, or through the clip alone when
// cov is nil.
func (c *Canvas) fill(cov *image.Alpha, paint glyphmask.Paint) {
	dst := c.top()
	clip := c.st.clip

	var inv glyphmask.Matrix
	if paint.Shader != nil {
		var ok bool
		if inv, ok = c.st.ctm.Invert(); !ok {
			glyphmask.Logger().Debug("raster: singular transform, shader skipped")
			return
		}
	}
	solid := color.RGBAModel.Convert(paint.Color).(color.RGBA)
	over := blend.Get(blend.SrcOver)

	b := c.bounds
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := y*b.Dx() + x
			m := uint8(0xFF)
			if cov != nil {
				m = cov.Pix[i]
			}
			if clip != nil {
				m = mul255(m, clip.Pix[i])
			}
			if m == 0 {
				continue
			}
			src := solid
			if paint.Shader != nil {
				p := inv.TransformPoint(glyphmask.Pt(float64(x)+0.5, float64(y)+0.5))
				src = paint.Shader.ColorAt(p.X, p.Y)
			}
			if m != 0xFF {
				src = color.RGBA{R: mul255(src.R, m), G: mul255(src.G, m), B: mul255(src.B, m), A: mul255(src.A, m)}
			}
			if src.A == 0 {
				continue
			}
			d := dst.Pix[dst.PixOffset(x, y):]
			d[0], d[1], d[2], d[3] = over(src.R, src.G, src.B, src.A, d[0], d[1], d[2], d[3])
		}
	}
}

// composite blends src onto dst with f. Where clip is partial the result
// is mixed with the original destination.
func composite(dst, src *image.RGBA, f blend.Func, clip *image.Alpha) {
	b := dst.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := uint8(0xFF)
			if clip != nil {
				cov = clip.Pix[clip.PixOffset(x, y)]
				if cov == 0 {
					continue
				}
			}
			s := src.Pix[src.PixOffset(x, y):]
			d := dst.Pix[dst.PixOffset(x, y):]
			r, g, bl, a := f(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			if cov != 0xFF {
				r, g, bl, a = lerp(d[0], r, cov), lerp(d[1], g, cov), lerp(d[2], bl, cov), lerp(d[3], a, cov)
			}
			d[0], d[1], d[2], d[3] = r, g, bl, a
		}
	}
}

// lerp returns from + (to-from)*t/255.
func lerp(from, to, t uint8) uint8 {
	return uint8((uint32(from)*uint32(255-t) + uint32(to)*uint32(t) + 127) / 255)
}

func logSkipped(what string, err error) {
	glyphmask.Logger().Debug("raster: "+what+" skipped", slog.Any("err", err))
}
