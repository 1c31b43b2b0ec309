package glyphmask

import "fmt"

// PixelMode is the encoding of a SourceBitmap produced by a font engine.
type PixelMode uint8

const (
	// PixelNone marks an empty or unknown bitmap.
	PixelNone PixelMode = iota
	// PixelMono is 1 bit per pixel, most significant bit first.
	PixelMono
	// PixelGray is 8 bits of coverage per pixel.
	PixelGray
	// PixelLCD stores horizontal subpixel triples; Width is 3x the pixel width.
	PixelLCD
	// PixelLCDV stores vertical subpixel triples; Rows is 3x the pixel height.
	PixelLCDV
	// PixelBGRA is premultiplied 32-bit color in B, G, R, A byte order.
	PixelBGRA
)

// String returns the pixel mode name.
func (p PixelMode) String() string {
	switch p {
	case PixelNone:
		return "none"
	case PixelMono:
		return "mono"
	case PixelGray:
		return "gray"
	case PixelLCD:
		return "lcd"
	case PixelLCDV:
		return "lcd-v"
	case PixelBGRA:
		return "bgra"
	default:
		return fmt.Sprintf("PixelMode(%d)", uint8(p))
	}
}

// minPitch returns the bytes needed for width samples.
func (p PixelMode) minPitch(width int) int {
	switch p {
	case PixelMono:
		return (width + 7) >> 3
	case PixelBGRA:
		return width * 4
	default:
		return width
	}
}

// SourceBitmap is a read-only view of a bitmap owned by a font engine.
//
// Row 0 starts at Buf[Origin] and each following row starts Pitch bytes
// later. A negative Pitch describes a bottom-up buffer, in which case Origin
// points at the last row in memory. Width and Rows count samples, so a
// PixelLCD bitmap has a Width three times its pixel width.
type SourceBitmap struct {
	Buf    []byte
	Origin int
	Pitch  int
	Width  int
	Rows   int
	Mode   PixelMode

	// Left and Top are the bitmap's bearings in pixels: the distance from the
	// glyph origin to the left edge, and from the baseline up to the top row.
	Left, Top int
}

// NewSourceBitmap wraps buf. For a negative pitch the first logical row is
// taken to be the last one in memory.
func NewSourceBitmap(buf []byte, width, rows, pitch int, mode PixelMode) SourceBitmap {
	origin := 0
	if pitch < 0 && rows > 0 {
		origin = (rows - 1) * -pitch
	}
	return SourceBitmap{
		Buf:    buf,
		Origin: origin,
		Pitch:  pitch,
		Width:  width,
		Rows:   rows,
		Mode:   mode,
	}
}

// absPitch returns |Pitch|.
func (b SourceBitmap) absPitch() int {
	if b.Pitch < 0 {
		return -b.Pitch
	}
	return b.Pitch
}

// Row returns up to |Pitch| bytes of row y.
func (b SourceBitmap) Row(y int) []byte {
	start := b.Origin + y*b.Pitch
	end := start + b.absPitch()
	if end > len(b.Buf) {
		end = len(b.Buf)
	}
	return b.Buf[start:end]
}

// PixelWidth returns the width in device pixels.
func (b SourceBitmap) PixelWidth() int {
	if b.Mode == PixelLCD {
		return b.Width / 3
	}
	return b.Width
}

// PixelRows returns the height in device pixels.
func (b SourceBitmap) PixelRows() int {
	if b.Mode == PixelLCDV {
		return b.Rows / 3
	}
	return b.Rows
}

// Validate checks that the pitch covers a row and the buffer covers every row.
func (b SourceBitmap) Validate() error {
	if b.Width == 0 || b.Rows == 0 {
		return nil
	}
	if b.absPitch() < b.Mode.minPitch(b.Width) {
		return fmt.Errorf("%w: pitch %d too small for %d %v samples", ErrInvalidBitmap, b.Pitch, b.Width, b.Mode)
	}
	first, last := b.Origin, b.Origin+(b.Rows-1)*b.Pitch
	if first > last {
		first, last = last, first
	}
	if first < 0 || last+b.Mode.minPitch(b.Width) > len(b.Buf) {
		return fmt.Errorf("%w: %d rows at pitch %d overrun %d byte buffer", ErrInvalidBitmap, b.Rows, b.Pitch, len(b.Buf))
	}
	return nil
}

// Crop returns a view that skips the first x samples and y rows and keeps at
// most width samples and rows rows. The receiver is not modified. For
// PixelMono, x must be a multiple of 8.
func (b SourceBitmap) Crop(x, y, width, rows int) SourceBitmap {
	var xoff int
	switch b.Mode {
	case PixelMono:
		xoff = x >> 3
	case PixelBGRA:
		xoff = x * 4
	default:
		xoff = x
	}
	v := b
	v.Origin = b.Origin + y*b.Pitch + xoff
	v.Width = min(width, b.Width-x)
	v.Rows = min(rows, b.Rows-y)
	return v
}
