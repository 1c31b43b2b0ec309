package glyphmask

import (
	"errors"
	"testing"
)

func TestSourceBitmapValidate(t *testing.T) {
	tests := []struct {
		name string
		bm   SourceBitmap
		ok   bool
	}{
		{"empty", SourceBitmap{Mode: PixelGray}, true},
		{"gray", NewSourceBitmap(make([]byte, 6), 3, 2, 3, PixelGray), true},
		{"bottom up", NewSourceBitmap(make([]byte, 6), 3, 2, -3, PixelGray), true},
		{"mono", NewSourceBitmap(make([]byte, 4), 9, 2, 2, PixelMono), true},
		{"mono pitch", NewSourceBitmap(make([]byte, 4), 9, 2, 1, PixelMono), false},
		{"bgra pitch", NewSourceBitmap(make([]byte, 16), 2, 2, 7, PixelBGRA), false},
		{"short buffer", NewSourceBitmap(make([]byte, 5), 3, 2, 3, PixelGray), false},
		{"short bottom up", NewSourceBitmap(make([]byte, 5), 3, 2, -3, PixelGray), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bm.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidBitmap) {
				t.Errorf("Validate() error = %v, want ErrInvalidBitmap", err)
			}
		})
	}
}

func TestSourceBitmapNegativePitch(t *testing.T) {
	// Memory holds the bottom row first.
	buf := []byte{1, 2, 3, 4, 5, 6}
	bm := NewSourceBitmap(buf, 3, 2, -3, PixelGray)
	if got := bm.Row(0); got[0] != 4 {
		t.Errorf("Row(0)[0] = %d, want 4", got[0])
	}
	if got := bm.Row(1); got[0] != 1 {
		t.Errorf("Row(1)[0] = %d, want 1", got[0])
	}
}

func TestSourceBitmapPixelSize(t *testing.T) {
	lcd := SourceBitmap{Width: 12, Rows: 2, Mode: PixelLCD}
	if lcd.PixelWidth() != 4 || lcd.PixelRows() != 2 {
		t.Errorf("PixelLCD size = %dx%d, want 4x2", lcd.PixelWidth(), lcd.PixelRows())
	}
	lcdv := SourceBitmap{Width: 4, Rows: 6, Mode: PixelLCDV}
	if lcdv.PixelWidth() != 4 || lcdv.PixelRows() != 2 {
		t.Errorf("PixelLCDV size = %dx%d, want 4x2", lcdv.PixelWidth(), lcdv.PixelRows())
	}
}

func TestSourceBitmapCrop(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = byte(i)
	}
	bm := NewSourceBitmap(buf, 4, 4, 4, PixelGray)
	c := bm.Crop(1, 2, 2, 5)
	if c.Width != 2 || c.Rows != 2 {
		t.Fatalf("Crop size = %dx%d, want 2x2", c.Width, c.Rows)
	}
	if got := c.Row(0)[0]; got != 9 {
		t.Errorf("Row(0)[0] = %d, want 9", got)
	}
	if got := c.Row(1)[1]; got != 14 {
		t.Errorf("Row(1)[1] = %d, want 14", got)
	}
	if bm.Origin != 0 || bm.Width != 4 {
		t.Error("Crop modified the receiver")
	}

	bgra := NewSourceBitmap(make([]byte, 32), 4, 2, 16, PixelBGRA)
	if got := bgra.Crop(2, 1, 2, 1).Origin; got != 24 {
		t.Errorf("BGRA Crop Origin = %d, want 24", got)
	}
	mono := NewSourceBitmap(make([]byte, 4), 16, 2, 2, PixelMono)
	if got := mono.Crop(8, 1, 8, 1).Origin; got != 3 {
		t.Errorf("mono Crop Origin = %d, want 3", got)
	}
}

func TestPixelModeString(t *testing.T) {
	if got := PixelLCDV.String(); got != "lcd-v" {
		t.Errorf("String() = %q, want lcd-v", got)
	}
	if got := PixelMode(42).String(); got != "PixelMode(42)" {
		t.Errorf("String() = %q, want PixelMode(42)", got)
	}
}
