package glyphmask

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func filled(m *Mask, v byte) *Mask {
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

func TestCopyBitmapMonoToBW(t *testing.T) {
	// Source rows are padded to 4 bytes.
	src := NewSourceBitmap([]byte{
		0xFF, 0x80, 0xAA, 0xAA,
		0x01, 0x00, 0xAA, 0xAA,
	}, 9, 2, 4, PixelMono)
	dst := NewMask(image.Rect(0, 0, 9, 2), FormatBW)
	if err := CopyBitmap(src, dst); err != nil {
		t.Fatalf("CopyBitmap() error = %v", err)
	}
	want := []byte{0xFF, 0x80, 0x01, 0x00}
	if !bytes.Equal(dst.Pix, want) {
		t.Errorf("Pix = %x, want %x", dst.Pix, want)
	}
}

func TestCopyBitmapGrayBottomUp(t *testing.T) {
	src := NewSourceBitmap([]byte{
		7, 8, 9,
		1, 2, 3,
	}, 3, 2, -3, PixelGray)
	dst := NewMask(image.Rect(0, 0, 3, 2), FormatA8)
	if err := CopyBitmap(src, dst); err != nil {
		t.Fatalf("CopyBitmap() error = %v", err)
	}
	want := []byte{1, 2, 3, 7, 8, 9}
	if !bytes.Equal(dst.Pix, want) {
		t.Errorf("Pix = %v, want %v", dst.Pix, want)
	}
}

func TestCopyBitmapMonoToA8(t *testing.T) {
	src := NewSourceBitmap([]byte{0xA0, 0x80}, 9, 1, 2, PixelMono)
	dst := NewMask(image.Rect(0, 0, 9, 1), FormatA8)
	if err := CopyBitmap(src, dst); err != nil {
		t.Fatalf("CopyBitmap() error = %v", err)
	}
	want := []byte{0xFF, 0, 0xFF, 0, 0, 0, 0, 0, 0xFF}
	if !bytes.Equal(dst.Pix, want) {
		t.Errorf("Pix = %x, want %x", dst.Pix, want)
	}
}

func TestCopyBitmapBGRAIsByteIdentical(t *testing.T) {
	buf := []byte{
		10, 20, 30, 40, 0, 0, 0, 0,
		255, 255, 255, 255, 1, 2, 3, 4,
	}
	src := NewSourceBitmap(buf, 2, 2, 8, PixelBGRA)
	dst := NewMask(image.Rect(0, 0, 2, 2), FormatARGB32)
	if err := CopyBitmap(src, dst); err != nil {
		t.Fatalf("CopyBitmap() error = %v", err)
	}
	if !bytes.Equal(dst.Pix, buf) {
		t.Errorf("Pix = %v, want %v", dst.Pix, buf)
	}
	a, r, g, b := UnpackARGB32(dst.ARGBAt(0, 0))
	if a != 40 || r != 30 || g != 20 || b != 10 {
		t.Errorf("ARGBAt(0, 0) = (%d, %d, %d, %d), want (40, 30, 20, 10)", a, r, g, b)
	}
}

func TestCopyBitmapUnsupportedPairs(t *testing.T) {
	tests := []struct {
		mode   PixelMode
		format MaskFormat
	}{
		{PixelGray, FormatBW},
		{PixelGray, FormatARGB32},
		{PixelBGRA, FormatA8},
		{PixelLCD, FormatA8},
		{PixelMono, FormatARGB32},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"-"+tt.format.String(), func(t *testing.T) {
			w := 2
			if tt.mode == PixelLCD {
				w = 6
			}
			src := NewSourceBitmap(make([]byte, 64), w, 2, 16, tt.mode)
			dst := filled(NewMask(image.Rect(0, 0, 2, 2), tt.format), 0xEE)

			err := CopyBitmap(src, dst)
			if !errors.Is(err, ErrUnsupportedConversion) {
				t.Fatalf("CopyBitmap() error = %v, want ErrUnsupportedConversion", err)
			}
			var ce *ConversionError
			if !errors.As(err, &ce) || ce.From != tt.mode || ce.To != tt.format {
				t.Errorf("ConversionError = %+v, want %v to %v", ce, tt.mode, tt.format)
			}
			for i, b := range dst.Pix {
				if b != 0 {
					t.Fatalf("Pix[%d] = %#x, want zero fill", i, b)
				}
			}
		})
	}
}

func TestCopyBitmapSizeMismatch(t *testing.T) {
	src := NewSourceBitmap(make([]byte, 9), 3, 3, 3, PixelGray)
	dst := filled(NewMask(image.Rect(0, 0, 2, 3), FormatA8), 1)
	if err := CopyBitmap(src, dst); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("CopyBitmap() error = %v, want ErrSizeMismatch", err)
	}
	if dst.Pix[0] != 0 {
		t.Error("destination not cleared on size mismatch")
	}
}

func TestCopyBitmapInvalidGeometry(t *testing.T) {
	tests := []struct {
		name  string
		src   SourceBitmap
		dst   *Mask
		want  error
		clear bool
	}{
		{
			name:  "pitch below width",
			src:   NewSourceBitmap(make([]byte, 16), 4, 4, 2, PixelGray),
			dst:   NewMask(image.Rect(0, 0, 4, 4), FormatA8),
			want:  ErrInvalidBitmap,
			clear: true,
		},
		{
			name:  "rows overrun buffer",
			src:   NewSourceBitmap(make([]byte, 8), 4, 4, 4, PixelGray),
			dst:   NewMask(image.Rect(0, 0, 4, 4), FormatA8),
			want:  ErrInvalidBitmap,
			clear: true,
		},
		{
			name:  "bottom-up pitch below width",
			src:   NewSourceBitmap(make([]byte, 8), 2, 2, -4, PixelBGRA),
			dst:   NewMask(image.Rect(0, 0, 2, 2), FormatARGB32),
			want:  ErrInvalidBitmap,
			clear: true,
		},
		{
			name: "short destination",
			src:  NewSourceBitmap(make([]byte, 16), 4, 4, 4, PixelGray),
			dst: func() *Mask {
				m := NewMask(image.Rect(0, 0, 4, 4), FormatA8)
				m.Pix = m.Pix[:12]
				return m
			}(),
			want: ErrInvalidMask,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled(tt.dst, 0x33)
			if err := CopyBitmap(tt.src, tt.dst); !errors.Is(err, tt.want) {
				t.Fatalf("CopyBitmap() error = %v, want %v", err, tt.want)
			}
			want := byte(0x33)
			if tt.clear {
				want = 0
			}
			if tt.dst.Pix[0] != want {
				t.Errorf("Pix[0] = %#x, want %#x", tt.dst.Pix[0], want)
			}
		})
	}
}

func TestCopyBitmapLCD16UsesPacker(t *testing.T) {
	src := NewSourceBitmap([]byte{0xFF, 0x00, 0x00}, 3, 1, 3, PixelLCD)
	dst := NewMask(image.Rect(0, 0, 1, 1), FormatLCD16)
	if err := CopyBitmap(src, dst); err != nil {
		t.Fatalf("CopyBitmap() error = %v", err)
	}
	if got := dst.RGB16At(0, 0); got != 0xF800 {
		t.Errorf("RGB16At(0, 0) = %#04x, want 0xf800", got)
	}
}

func BenchmarkCopyBitmapBGRA(b *testing.B) {
	src := NewSourceBitmap(make([]byte, 64*64*4), 64, 64, 256, PixelBGRA)
	dst := NewMask(image.Rect(0, 0, 64, 64), FormatARGB32)
	for b.Loop() {
		_ = CopyBitmap(src, dst)
	}
}
