package raster

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/glyphmask"
	"github.com/gogpu/glyphmask/internal/blend"
)

// DrawMask resamples src through the current transform and draws it
// source-over. A8 masks draw black with their coverage as alpha.
func (c *Canvas) DrawMask(src *glyphmask.Mask, filter glyphmask.FilterQuality) {
	img, err := maskImage(src)
	if err != nil {
		logSkipped("mask draw", err)
		return
	}
	if img.Rect.Empty() {
		return
	}
	tmp := c.pool.get(c.bounds)
	defer c.pool.put(tmp)

	m := c.st.ctm
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	interpolator(filter).Transform(tmp, aff, img, img.Rect, xdraw.Src, nil)
	composite(c.top(), tmp, blend.Get(blend.SrcOver), c.st.clip)
}

// interpolator picks the resampling kernel for a filter quality.
func interpolator(q glyphmask.FilterQuality) xdraw.Interpolator {
	switch q {
	case glyphmask.FilterNone:
		return xdraw.NearestNeighbor
	case glyphmask.FilterLow:
		return xdraw.ApproxBiLinear
	default:
		return xdraw.CatmullRom
	}
}

// maskImage converts an A8 or ARGB32 mask into an RGBA image with its
// top-left pixel at the origin.
func maskImage(m *glyphmask.Mask) (*image.RGBA, error) {
	if m.Format != glyphmask.FormatA8 && m.Format != glyphmask.FormatARGB32 {
		return nil, fmt.Errorf("%w: cannot draw %v mask", glyphmask.ErrUnsupportedConversion, m.Format)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	loadMask(img, m)
	return img, nil
}
