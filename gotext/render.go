package gotext

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphmask"
)

// maxOverscan bounds how far outside the target the rasterizer area grows.
const maxOverscan = 4096

// sampleGrid maps 26.6 outline points, y up, onto a w by h grid of samples,
// y down: sample x = (X - ox) * sx and sample y = (oy - Y) * sy, with the
// point and the origin in pixels.
type sampleGrid struct {
	w, h   int
	ox, oy float64
	sx, sy float64
}

func (g sampleGrid) apply(p fixed.Point26_6) (x, y float64) {
	return (float64(p.X)/64 - g.ox) * g.sx, (g.oy - float64(p.Y)/64) * g.sy
}

// vectorSink feeds outline verbs into a vector.Rasterizer, shifted by the
// rasterizer area's origin.
type vectorSink struct {
	z       *vector.Rasterizer
	grid    sampleGrid
	dx, dy  float64
	started bool
}

func (s *vectorSink) pt(p fixed.Point26_6) (float32, float32) {
	x, y := s.grid.apply(p)
	return float32(x - s.dx), float32(y - s.dy)
}

func (s *vectorSink) MoveTo(p fixed.Point26_6) error {
	if s.started {
		s.z.ClosePath()
	}
	s.started = true
	s.z.MoveTo(s.pt(p))
	return nil
}

func (s *vectorSink) LineTo(p fixed.Point26_6) error {
	s.z.LineTo(s.pt(p))
	return nil
}

func (s *vectorSink) QuadTo(c, p fixed.Point26_6) error {
	cx, cy := s.pt(c)
	px, py := s.pt(p)
	s.z.QuadTo(cx, cy, px, py)
	return nil
}

func (s *vectorSink) CubeTo(c1, c2, p fixed.Point26_6) error {
	ax, ay := s.pt(c1)
	bx, by := s.pt(c2)
	px, py := s.pt(p)
	s.z.CubeTo(ax, ay, bx, by, px, py)
	return nil
}

// rasterize renders o into an Alpha image covering the grid, using the
// non-zero winding rule. The rasterizer area covers the outline too, so
// points left of or above the grid keep their winding contribution.
func rasterize(o *glyphmask.Outline, g sampleGrid) (*image.Alpha, error) {
	target := image.Rect(0, 0, g.w, g.h)
	if len(o.Segments) == 0 || target.Empty() {
		return image.NewAlpha(target), nil
	}

	b := o.CBox()
	x0, y0 := g.apply(fixed.Point26_6{X: b.Min.X, Y: b.Max.Y})
	x1, y1 := g.apply(fixed.Point26_6{X: b.Max.X, Y: b.Min.Y})
	area := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	).Union(target).Intersect(target.Inset(-maxOverscan))

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Src
	sink := &vectorSink{z: z, grid: g, dx: float64(area.Min.X), dy: float64(area.Min.Y)}
	if err := o.Decompose(sink); err != nil {
		return nil, err
	}
	if sink.started {
		z.ClosePath()
	}

	dst := image.NewAlpha(area)
	z.Draw(dst, area, image.Opaque, image.Point{})
	return dst.SubImage(target).(*image.Alpha), nil
}

// RenderOutline implements glyphmask.FontEngine. A8 masks receive gray
// coverage; BW masks set a bit where coverage reaches one half.
func (e *Engine) RenderOutline(o *glyphmask.Outline, dst *glyphmask.Mask) error {
	if dst.Format != glyphmask.FormatA8 && dst.Format != glyphmask.FormatBW {
		return fmt.Errorf("gotext: render outline: %w", &glyphmask.ConversionError{From: glyphmask.PixelGray, To: dst.Format})
	}
	w, h := dst.Width(), dst.Height()
	cov, err := rasterize(o, sampleGrid{w: w, h: h, oy: float64(h), sx: 1, sy: 1})
	if err != nil {
		return err
	}
	for y := range h {
		src := cov.Pix[cov.PixOffset(0, y) : cov.PixOffset(0, y)+w]
		row := dst.Row(y)
		if dst.Format == glyphmask.FormatA8 {
			copy(row[:w], src)
			continue
		}
		clear(row[:(w+7)>>3])
		for x, v := range src {
			if v >= 0x80 {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return nil
}

// RenderLCD implements glyphmask.FontEngine. The outline is rendered at
// three samples per pixel along one axis into a bitmap sized to its pixel
// bounds, widened by one pixel on each side of that axis when the LCD
// filter is on.
func (e *Engine) RenderLCD(o *glyphmask.Outline, vertical bool) (glyphmask.SourceBitmap, error) {
	mode := glyphmask.PixelLCD
	if vertical {
		mode = glyphmask.PixelLCDV
	}
	r := pixelBounds(o)
	if r.Empty() {
		return glyphmask.SourceBitmap{Mode: mode}, nil
	}
	if e.lcdFilter {
		if vertical {
			r.Min.Y--
			r.Max.Y++
		} else {
			r.Min.X--
			r.Max.X++
		}
	}

	g := sampleGrid{
		w: r.Dx(), h: r.Dy(),
		ox: float64(r.Min.X), oy: float64(-r.Min.Y),
		sx: 1, sy: 1,
	}
	if vertical {
		g.h *= 3
		g.sy = 3
	} else {
		g.w *= 3
		g.sx = 3
	}
	cov, err := rasterize(o, g)
	if err != nil {
		return glyphmask.SourceBitmap{}, err
	}

	buf := make([]byte, g.w*g.h)
	for y := range g.h {
		copy(buf[y*g.w:(y+1)*g.w], cov.Pix[cov.PixOffset(0, y):])
	}
	if e.lcdFilter {
		if vertical {
			firFilter(buf, g.h, g.w, g.w, 1)
		} else {
			firFilter(buf, g.w, g.h, 1, g.w)
		}
	}
	bm := glyphmask.NewSourceBitmap(buf, g.w, g.h, g.w, mode)
	bm.Left = r.Min.X
	bm.Top = -r.Min.Y
	return bm, nil
}

// lcdWeights is the default five-tap LCD filter; the taps sum to 256.
var lcdWeights = [5]int{0x08, 0x4D, 0x56, 0x4D, 0x08}

// firFilter runs lcdWeights over lines of n samples. Samples of a line are
// step bytes apart and consecutive lines start stride bytes apart.
func firFilter(buf []byte, n, lines, step, stride int) {
	line := make([]int, n)
	for l := range lines {
		base := l * stride
		for i := range n {
			line[i] = int(buf[base+i*step])
		}
		for i := range n {
			sum := 0
			for k, w := range lcdWeights {
				j := i + k - 2
				if j >= 0 && j < n {
					sum += w * line[j]
				}
			}
			buf[base+i*step] = byte(min((sum+0x80)>>8, 0xFF))
		}
	}
}
