package glyphmask

import (
	"encoding/binary"
	"log/slog"
)

// a1Cutoff is the smallest 8-bit coverage that packs to a set bit. A quarter
// of full scale keeps thin strokes visible in 1-bit output.
const a1Cutoff = 0x40

func a8ToA1(v byte) byte {
	if v >= a1Cutoff {
		return 1
	}
	return 0
}

func pack8ToA1(src []byte) byte {
	return a8ToA1(src[0])<<7 | a8ToA1(src[1])<<6 | a8ToA1(src[2])<<5 | a8ToA1(src[3])<<4 |
		a8ToA1(src[4])<<3 | a8ToA1(src[5])<<2 | a8ToA1(src[6])<<1 | a8ToA1(src[7])
}

// PackA8ToA1 thresholds the A8 mask src into the FormatBW mask dst.
// Pixels are packed most significant bit first; a trailing partial byte is
// left-aligned and zero padded. Row padding on either side is skipped.
func PackA8ToA1(dst, src *Mask) error {
	if dst.Format != FormatBW || src.Format != FormatA8 {
		return &ConversionError{From: formatMode(src.Format), To: dst.Format}
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return err
	}
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return ErrSizeMismatch
	}

	width := dst.Width()
	octs := width >> 3
	leftOver := width & 7
	for y := range dst.Height() {
		s := src.Row(y)
		d := dst.Row(y)
		for i := range octs {
			d[i] = pack8ToA1(s[i*8:])
		}
		if leftOver > 0 {
			var bits byte
			shift := 7
			for _, v := range s[octs*8 : octs*8+leftOver] {
				bits |= a8ToA1(v) << shift
				shift--
			}
			d[octs] = bits
		}
	}
	return nil
}

// LCDOptions controls CopyToLCD16.
type LCDOptions struct {
	// BGR reverses the subpixel order.
	BGR bool
	// PreBlend, when non-nil, remaps each channel before packing.
	PreBlend *PreBlend
}

// CopyToLCD16 packs src into the FormatLCD16 mask dst. An invalid dst or
// src is reported before any pixel is read.
//
// Mono bits become 0xFFFF or 0x0000, gray coverage is replicated into all
// three channels, PixelLCD consumes three adjacent bytes per pixel and
// PixelLCDV reads three sub-rows one pitch apart. src must be at least as
// large as dst in pixels; extra source pixels are ignored.
func CopyToLCD16(src SourceBitmap, dst *Mask, opts LCDOptions) error {
	if dst.Format != FormatLCD16 {
		return &ConversionError{From: src.Mode, To: dst.Format}
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		dst.Clear()
		return err
	}
	width, height := dst.Width(), dst.Height()
	if src.PixelWidth() < width || src.PixelRows() < height {
		dst.Clear()
		return ErrSizeMismatch
	}

	pb := opts.PreBlend
	pack := func(r, g, b byte) uint16 {
		if pb != nil {
			r, g, b = pb.R[r], pb.G[g], pb.B[b]
		}
		return PackRGB16(r, g, b)
	}

	switch src.Mode {
	case PixelMono:
		for y := range height {
			s := src.Row(y)
			d := dst.Row(y)
			for x := range width {
				var v uint16
				if s[x>>3]&(0x80>>(x&7)) != 0 {
					v = 0xFFFF
				}
				binary.LittleEndian.PutUint16(d[2*x:], v)
			}
		}
	case PixelGray:
		for y := range height {
			s := src.Row(y)
			d := dst.Row(y)
			for x := range width {
				binary.LittleEndian.PutUint16(d[2*x:], grayToRGB16(s[x]))
			}
		}
	case PixelLCD:
		for y := range height {
			s := src.Row(y)
			d := dst.Row(y)
			for x := range width {
				t := s[3*x : 3*x+3]
				var v uint16
				if opts.BGR {
					v = pack(t[2], t[1], t[0])
				} else {
					v = pack(t[0], t[1], t[2])
				}
				binary.LittleEndian.PutUint16(d[2*x:], v)
			}
		}
	case PixelLCDV:
		for y := range height {
			sr, sg, sb := src.Row(3*y), src.Row(3*y+1), src.Row(3*y+2)
			if opts.BGR {
				sr, sb = sb, sr
			}
			d := dst.Row(y)
			for x := range width {
				binary.LittleEndian.PutUint16(d[2*x:], pack(sr[x], sg[x], sb[x]))
			}
		}
	default:
		dst.Clear()
		Logger().Debug("glyphmask: unsupported LCD source",
			slog.String("from", src.Mode.String()))
		return &ConversionError{From: src.Mode, To: FormatLCD16}
	}
	return nil
}

// formatMode names the source encoding that matches a mask format.
func formatMode(f MaskFormat) PixelMode {
	switch f {
	case FormatBW:
		return PixelMono
	case FormatA8:
		return PixelGray
	case FormatLCD16:
		return PixelLCD
	case FormatARGB32:
		return PixelBGRA
	default:
		return PixelNone
	}
}

func grayToRGB16(g byte) uint16 {
	return PackRGB16(g, g, g)
}

// AsSourceBitmap returns a SourceBitmap view of a BW or A8 mask.
func (m *Mask) AsSourceBitmap() SourceBitmap {
	mode := PixelGray
	switch m.Format {
	case FormatBW:
		mode = PixelMono
	case FormatARGB32:
		mode = PixelBGRA
	case FormatLCD16:
		mode = PixelNone
	}
	return SourceBitmap{
		Buf:   m.Pix,
		Pitch: m.RowBytes,
		Width: m.Width(),
		Rows:  m.Height(),
		Mode:  mode,
	}
}
