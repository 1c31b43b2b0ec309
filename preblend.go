package glyphmask

import "github.com/gogpu/glyphmask/internal/color"

// PreBlend holds per-channel coverage tables applied before LCD packing and,
// for A8 glyphs, in a final pass over the image (G table only).
// A nil *PreBlend disables correction.
type PreBlend struct {
	R, G, B [256]uint8
}

// NewPreBlend builds tables that boost coverage by contrast (0 to 1) and
// then apply 1/gamma. NewPreBlend(0, 1) returns nil, which disables
// correction.
func NewPreBlend(contrast, gamma float64) *PreBlend {
	if contrast <= 0 && gamma == 1 {
		return nil
	}
	t := color.ContrastGamma(contrast, gamma)
	return &PreBlend{R: t, G: t, B: t}
}

// NewSRGBPreBlend builds tables that encode linear coverage as sRGB.
func NewSRGBPreBlend() *PreBlend {
	t := color.SRGBEncode()
	return &PreBlend{R: t, G: t, B: t}
}

// applyA8 remaps every pixel of an A8 mask through the G table.
func (p *PreBlend) applyA8(m *Mask) {
	w := m.Width()
	for y := range m.Height() {
		row := m.Row(y)[:w]
		for i, v := range row {
			row[i] = p.G[v]
		}
	}
}
