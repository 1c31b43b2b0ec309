package gotext

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphmask"
)

// square returns an outline covering [x0,x1]x[y0,y1] pixels, y up.
func square(x0, y0, x1, y1 int) *glyphmask.Outline {
	p := func(x, y int) [3]fixed.Point26_6 {
		return [3]fixed.Point26_6{{X: fixed.I(x), Y: fixed.I(y)}}
	}
	return &glyphmask.Outline{Segments: []glyphmask.Segment{
		{Op: glyphmask.SegmentMoveTo, Args: p(x0, y0)},
		{Op: glyphmask.SegmentLineTo, Args: p(x1, y0)},
		{Op: glyphmask.SegmentLineTo, Args: p(x1, y1)},
		{Op: glyphmask.SegmentLineTo, Args: p(x0, y1)},
	}}
}

func TestRenderOutlineA8(t *testing.T) {
	e := loadRegular(t, 12)
	m := glyphmask.NewMask(image.Rect(0, 0, 4, 3), glyphmask.FormatA8)
	if err := e.RenderOutline(square(1, 0, 3, 2), m); err != nil {
		t.Fatalf("RenderOutline: %v", err)
	}
	// y up from the bottom-left corner: rows 1 and 2 (from the top), columns 1 and 2.
	want := [][]byte{
		{0, 0, 0, 0},
		{0, 0xFF, 0xFF, 0},
		{0, 0xFF, 0xFF, 0},
	}
	for y, row := range want {
		for x, v := range row {
			if got := m.AlphaAt(x, y); got != v {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, v)
			}
		}
	}
}

func TestRenderOutlineOutsideTarget(t *testing.T) {
	e := loadRegular(t, 12)
	m := glyphmask.NewMask(image.Rect(0, 0, 2, 2), glyphmask.FormatA8)
	// Covers the whole target and extends past every edge.
	if err := e.RenderOutline(square(-5, -5, 7, 7), m); err != nil {
		t.Fatalf("RenderOutline: %v", err)
	}
	for _, v := range m.Pix {
		if v != 0xFF {
			t.Fatalf("pixels = %v, want all 0xFF", m.Pix)
		}
	}
}

func TestRenderOutlineBW(t *testing.T) {
	e := loadRegular(t, 12)
	m := glyphmask.NewMask(image.Rect(0, 0, 10, 1), glyphmask.FormatBW)
	if err := e.RenderOutline(square(0, 0, 9, 1), m); err != nil {
		t.Fatalf("RenderOutline: %v", err)
	}
	if m.Pix[0] != 0xFF || m.Pix[1] != 0x80 {
		t.Errorf("bits = %08b %08b, want 11111111 10000000", m.Pix[0], m.Pix[1])
	}
}

func TestRenderOutlineRejectsColorTarget(t *testing.T) {
	e := loadRegular(t, 12)
	m := glyphmask.NewMask(image.Rect(0, 0, 1, 1), glyphmask.FormatARGB32)
	if err := e.RenderOutline(square(0, 0, 1, 1), m); err == nil {
		t.Error("RenderOutline into ARGB32 should fail")
	}
}

func TestRenderLCD(t *testing.T) {
	tests := []struct {
		name      string
		filter    bool
		vertical  bool
		w, rows   int
		left, top int
	}{
		{"horizontal", false, false, 6, 2, 0, 2},
		{"horizontal filtered", true, false, 12, 2, -1, 2},
		{"vertical", false, true, 2, 6, 0, 2},
		{"vertical filtered", true, true, 2, 12, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := loadRegular(t, 12, WithLCDFilter(tt.filter))
			bm, err := e.RenderLCD(square(0, 0, 2, 2), tt.vertical)
			if err != nil {
				t.Fatalf("RenderLCD: %v", err)
			}
			if bm.Width != tt.w || bm.Rows != tt.rows {
				t.Errorf("size = %dx%d, want %dx%d", bm.Width, bm.Rows, tt.w, tt.rows)
			}
			if bm.Left != tt.left || bm.Top != tt.top {
				t.Errorf("bearings = (%d, %d), want (%d, %d)", bm.Left, bm.Top, tt.left, tt.top)
			}
			if err := bm.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.filter {
				for _, v := range bm.Buf {
					if v != 0xFF {
						t.Fatalf("unfiltered samples = %v, want all 0xFF", bm.Buf)
					}
				}
			}
		})
	}
}

func TestRenderLCDEmpty(t *testing.T) {
	e := loadRegular(t, 12)
	bm, err := e.RenderLCD(&glyphmask.Outline{}, false)
	if err != nil {
		t.Fatalf("RenderLCD: %v", err)
	}
	if bm.Width != 0 || bm.Rows != 0 || bm.Mode != glyphmask.PixelLCD {
		t.Errorf("empty render = %+v", bm)
	}
}

func TestFIRFilter(t *testing.T) {
	buf := []byte{0, 0, 0xFF, 0, 0}
	firFilter(buf, 5, 1, 1, 5)
	want := []byte{0x08, 0x4D, 0x56, 0x4D, 0x08}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf = %#v, want %#v", buf, want)
			break
		}
	}

	// Full coverage stays full away from the edges.
	flat := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	firFilter(flat, 5, 1, 1, 5)
	if flat[2] != 0xFF {
		t.Errorf("center of flat line = %#x, want 0xFF", flat[2])
	}
}

func TestScalerWithEngine(t *testing.T) {
	e := loadRegular(t, 24)
	s := glyphmask.NewScaler(e, nil)
	id := glyphFor(t, e, 'O')

	for _, format := range []glyphmask.MaskFormat{glyphmask.FormatBW, glyphmask.FormatA8, glyphmask.FormatLCD16} {
		t.Run(format.String(), func(t *testing.T) {
			g := glyphmask.Glyph{ID: id, Format: format}
			g.SetBounds(e.GlyphBounds(id, format))
			if err := s.GenerateImage(&g); err != nil {
				t.Fatalf("GenerateImage: %v", err)
			}
			inked := false
			for _, v := range g.Image {
				if v != 0 {
					inked = true
					break
				}
			}
			if !inked {
				t.Error("glyph image is blank")
			}
		})
	}
}
