package raster

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/gogpu/glyphmask"
)

// Backend creates software canvases. The zero value is not usable; call
// NewBackend. A Backend is safe for concurrent use, its canvases are not.
type Backend struct {
	layers *pool
}

// NewBackend returns a Backend that recycles layer buffers.
func NewBackend() *Backend {
	return &Backend{layers: newPool(8)}
}

// NewCanvas implements glyphmask.Backend.
func (b *Backend) NewCanvas(dst *glyphmask.Mask) (glyphmask.Canvas, error) {
	if dst.Format != glyphmask.FormatA8 && dst.Format != glyphmask.FormatARGB32 {
		return nil, fmt.Errorf("raster: %w: canvas over %v mask", glyphmask.ErrUnsupportedConversion, dst.Format)
	}
	if err := dst.Validate(); err != nil {
		return nil, err
	}
	c := &Canvas{
		dst:    dst,
		bounds: image.Rect(0, 0, dst.Width(), dst.Height()),
		pool:   b.layers,
		st:     state{ctm: glyphmask.Identity()},
	}
	root := image.NewRGBA(c.bounds)
	loadMask(root, dst)
	c.layers = []*image.RGBA{root}
	return c, nil
}

// loadMask copies a mask into a premultiplied RGBA image of the same size.
func loadMask(img *image.RGBA, m *glyphmask.Mask) {
	for y := range m.Height() {
		row := m.Row(y)
		pix := img.Pix[y*img.Stride:]
		for x := range m.Width() {
			p := pix[4*x : 4*x+4]
			switch m.Format {
			case glyphmask.FormatA8:
				p[0], p[1], p[2], p[3] = 0, 0, 0, row[x]
			case glyphmask.FormatARGB32:
				a, r, g, b := glyphmask.UnpackARGB32(binary.LittleEndian.Uint32(row[4*x:]))
				p[0], p[1], p[2], p[3] = r, g, b, a
			}
		}
	}
}

// storeMask writes img back into the mask.
func storeMask(m *glyphmask.Mask, img *image.RGBA) {
	for y := range m.Height() {
		row := m.Row(y)
		pix := img.Pix[y*img.Stride:]
		for x := range m.Width() {
			p := pix[4*x : 4*x+4]
			switch m.Format {
			case glyphmask.FormatA8:
				row[x] = p[3]
			case glyphmask.FormatARGB32:
				binary.LittleEndian.PutUint32(row[4*x:], glyphmask.PackARGB32(p[3], p[0], p[1], p[2]))
			}
		}
	}
}
