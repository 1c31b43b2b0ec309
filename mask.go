package glyphmask

import (
	"encoding/binary"
	"fmt"
	"image"
)

// MaskFormat is the pixel encoding of a Mask.
type MaskFormat uint8

const (
	// FormatBW is 1 bit per pixel, packed most significant bit first.
	FormatBW MaskFormat = iota
	// FormatA8 is 8 bits of coverage per pixel.
	FormatA8
	// FormatLCD16 is 16-bit little-endian RGB565 subpixel coverage.
	FormatLCD16
	// FormatARGB32 is a 32-bit little-endian premultiplied 0xAARRGGBB word.
	FormatARGB32
)

// String returns the format name.
func (f MaskFormat) String() string {
	switch f {
	case FormatBW:
		return "BW"
	case FormatA8:
		return "A8"
	case FormatLCD16:
		return "LCD16"
	case FormatARGB32:
		return "ARGB32"
	default:
		return fmt.Sprintf("MaskFormat(%d)", uint8(f))
	}
}

// BytesPerPixel returns the pixel size in bytes, or 0 for FormatBW.
func (f MaskFormat) BytesPerPixel() int {
	switch f {
	case FormatA8:
		return 1
	case FormatLCD16:
		return 2
	case FormatARGB32:
		return 4
	default:
		return 0
	}
}

// MinRowBytes returns the smallest valid stride for a row of width pixels.
func (f MaskFormat) MinRowBytes(width int) int {
	if f == FormatBW {
		return (width + 7) >> 3
	}
	return width * f.BytesPerPixel()
}

// Mask is a rectangle of pixels in one of the mask formats.
// Pix holds Bounds.Dy() rows of RowBytes bytes each; the first byte of Pix
// is the pixel at Bounds.Min.
type Mask struct {
	Pix      []byte
	Bounds   image.Rectangle
	RowBytes int
	Format   MaskFormat
}

// NewMask allocates a zeroed mask with the minimum stride for format.
func NewMask(bounds image.Rectangle, format MaskFormat) *Mask {
	rb := format.MinRowBytes(bounds.Dx())
	return &Mask{
		Pix:      make([]byte, rb*bounds.Dy()),
		Bounds:   bounds,
		RowBytes: rb,
		Format:   format,
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.Bounds.Dx() }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.Bounds.Dy() }

// Validate checks the stride and buffer size invariants.
func (m *Mask) Validate() error {
	if m.Bounds.Empty() {
		return nil
	}
	if m.RowBytes < m.Format.MinRowBytes(m.Width()) {
		return fmt.Errorf("%w: row bytes %d < %d for %d %v pixels",
			ErrInvalidMask, m.RowBytes, m.Format.MinRowBytes(m.Width()), m.Width(), m.Format)
	}
	need := m.RowBytes*(m.Height()-1) + m.Format.MinRowBytes(m.Width())
	if len(m.Pix) < need {
		return fmt.Errorf("%w: buffer has %d bytes, need %d", ErrInvalidMask, len(m.Pix), need)
	}
	return nil
}

// Row returns the bytes of row y, counted from the top of the mask.
func (m *Mask) Row(y int) []byte {
	start := y * m.RowBytes
	end := start + m.RowBytes
	if end > len(m.Pix) {
		end = len(m.Pix)
	}
	return m.Pix[start:end]
}

// Clear zeroes every pixel.
func (m *Mask) Clear() {
	clear(m.Pix)
}

// SubMask returns a view of the part of m inside r, sharing m's buffer.
// For FormatBW the left edge of r is rounded down to a byte boundary.
func (m *Mask) SubMask(r image.Rectangle) *Mask {
	r = r.Intersect(m.Bounds)
	if r.Empty() {
		return &Mask{Bounds: r, RowBytes: m.RowBytes, Format: m.Format}
	}
	dx := r.Min.X - m.Bounds.Min.X
	var xoff int
	if m.Format == FormatBW {
		xoff = dx >> 3
		r.Min.X -= dx & 7
	} else {
		xoff = dx * m.Format.BytesPerPixel()
	}
	off := (r.Min.Y-m.Bounds.Min.Y)*m.RowBytes + xoff
	return &Mask{
		Pix:      m.Pix[off:],
		Bounds:   r,
		RowBytes: m.RowBytes,
		Format:   m.Format,
	}
}

// AlphaAt returns the A8 coverage at (x, y) in mask-local coordinates.
func (m *Mask) AlphaAt(x, y int) uint8 {
	return m.Pix[y*m.RowBytes+x]
}

// BitAt reports whether the FormatBW pixel at (x, y) is set.
func (m *Mask) BitAt(x, y int) bool {
	return m.Pix[y*m.RowBytes+x>>3]&(0x80>>(x&7)) != 0
}

// RGB16At returns the FormatLCD16 pixel at (x, y).
func (m *Mask) RGB16At(x, y int) uint16 {
	return binary.LittleEndian.Uint16(m.Pix[y*m.RowBytes+2*x:])
}

// ARGBAt returns the FormatARGB32 pixel at (x, y).
func (m *Mask) ARGBAt(x, y int) uint32 {
	return binary.LittleEndian.Uint32(m.Pix[y*m.RowBytes+4*x:])
}

// SetARGB stores a FormatARGB32 pixel at (x, y).
func (m *Mask) SetARGB(x, y int, c uint32) {
	binary.LittleEndian.PutUint32(m.Pix[y*m.RowBytes+4*x:], c)
}

// PackARGB32 packs premultiplied channels into a FormatARGB32 word.
func PackARGB32(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB32 splits a FormatARGB32 word into its channels.
func UnpackARGB32(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// PackRGB16 packs 8-bit channels into RGB565.
func PackRGB16(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// UnpackRGB16 expands an RGB565 value to 8-bit channels.
func UnpackRGB16(c uint16) (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1f)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
