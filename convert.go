package glyphmask

import (
	"encoding/binary"
	"log/slog"
)

// CopyBitmap copies src into dst, converting the pixel encoding.
//
// Supported pairs are mono to BW, gray to A8, mono to A8 and BGRA to ARGB32.
// An LCD16 destination is always produced by CopyToLCD16 without pre-blend.
// Any other pair zero-fills dst and returns a *ConversionError. A dst that
// fails Mask.Validate is returned untouched; an invalid src zero-fills dst.
func CopyBitmap(src SourceBitmap, dst *Mask) error {
	if dst.Format == FormatLCD16 {
		return CopyToLCD16(src, dst, LCDOptions{})
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		dst.Clear()
		return err
	}
	if src.PixelWidth() != dst.Width() || src.PixelRows() != dst.Height() {
		dst.Clear()
		return ErrSizeMismatch
	}

	switch {
	case src.Mode == PixelMono && dst.Format == FormatBW,
		src.Mode == PixelGray && dst.Format == FormatA8:
		copyRows(src, dst)
	case src.Mode == PixelMono && dst.Format == FormatA8:
		expandMonoToA8(src, dst)
	case src.Mode == PixelBGRA && dst.Format == FormatARGB32:
		reorderBGRAToARGB(src, dst)
	default:
		dst.Clear()
		Logger().Debug("glyphmask: unsupported bitmap conversion",
			slog.String("from", src.Mode.String()),
			slog.String("to", dst.Format.String()))
		return &ConversionError{From: src.Mode, To: dst.Format}
	}
	return nil
}

// copyRows copies min(|pitch|, RowBytes) bytes per row, following the
// source pitch so that bottom-up buffers land top-down in dst.
func copyRows(src SourceBitmap, dst *Mask) {
	n := min(src.absPitch(), dst.RowBytes)
	for y := range dst.Height() {
		d := dst.Row(y)
		copy(d[:min(n, len(d))], src.Row(y))
	}
}

func expandMonoToA8(src SourceBitmap, dst *Mask) {
	w := dst.Width()
	for y := range dst.Height() {
		s := src.Row(y)
		d := dst.Row(y)
		for x := range w {
			if s[x>>3]&(0x80>>(x&7)) != 0 {
				d[x] = 0xFF
			} else {
				d[x] = 0x00
			}
		}
	}
}

// reorderBGRAToARGB repacks premultiplied BGRA bytes as ARGB32 words.
// The channels are already premultiplied so no scaling is applied.
func reorderBGRAToARGB(src SourceBitmap, dst *Mask) {
	w := dst.Width()
	for y := range dst.Height() {
		s := src.Row(y)
		d := dst.Row(y)
		for x := range w {
			p := s[4*x : 4*x+4]
			binary.LittleEndian.PutUint32(d[4*x:], PackARGB32(p[3], p[2], p[1], p[0]))
		}
	}
}
