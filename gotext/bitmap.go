package gotext

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/glyphmask"
)

type bitmapResult struct {
	bm glyphmask.SourceBitmap
	ok bool
}

// bitmap returns the decoded embedded bitmap of a glyph at the engine's
// strike, with its bearings in strike pixels.
func (e *Engine) bitmap(id glyphmask.GlyphID, g tables.GlyphID) (glyphmask.SourceBitmap, bool) {
	if e.strike == 0 {
		return glyphmask.SourceBitmap{}, false
	}
	res := e.bitmaps.GetOrCreate(id, func() bitmapResult {
		data, ok := e.face.GlyphDataBitmap(g)
		if !ok {
			return bitmapResult{}
		}
		bm, err := decodeBitmap(data)
		if err != nil {
			glyphmask.Logger().Debug("gotext: skipping embedded bitmap",
				slog.Uint64("glyph", uint64(id)), slog.Any("err", err))
			return bitmapResult{}
		}
		if ext, ok := e.face.GlyphExtents(font.GID(g)); ok && e.upem > 0 {
			k := float64(e.strike) / float64(e.upem)
			bm.Left = int(math.Round(float64(ext.XBearing) * k))
			bm.Top = int(math.Round(float64(ext.YBearing) * k))
		}
		return bitmapResult{bm: bm, ok: true}
	})
	return res.bm, res.ok
}

// decodeBitmap turns embedded bitmap data into a SourceBitmap. Compressed
// images become premultiplied BGRA; black and white data becomes mono rows.
func decodeBitmap(data font.GlyphBitmap) (glyphmask.SourceBitmap, error) {
	var (
		img image.Image
		err error
	)
	switch data.Format {
	case font.BlackAndWhite:
		return repackMono(data.Data, data.Width, data.Height)
	case font.PNG:
		img, err = png.Decode(bytes.NewReader(data.Data))
	case font.JPG:
		img, err = jpeg.Decode(bytes.NewReader(data.Data))
	case font.TIFF:
		img, err = tiff.Decode(bytes.NewReader(data.Data))
	default:
		return glyphmask.SourceBitmap{}, fmt.Errorf("%w: format %d", ErrBitmapFormat, data.Format)
	}
	if err != nil {
		return glyphmask.SourceBitmap{}, fmt.Errorf("%w: %w", ErrBitmapFormat, err)
	}
	return imageToBGRA(img), nil
}

// imageToBGRA converts img to premultiplied BGRA rows.
func imageToBGRA(img image.Image) glyphmask.SourceBitmap {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	for i := 0; i+3 < len(rgba.Pix); i += 4 {
		rgba.Pix[i], rgba.Pix[i+2] = rgba.Pix[i+2], rgba.Pix[i]
	}
	return glyphmask.NewSourceBitmap(rgba.Pix, b.Dx(), b.Dy(), rgba.Stride, glyphmask.PixelBGRA)
}

// repackMono converts bit-aligned rows, where each row starts right after
// the previous one, into byte-aligned rows.
func repackMono(src []byte, width, height int) (glyphmask.SourceBitmap, error) {
	if width < 0 || height < 0 || len(src)*8 < width*height {
		return glyphmask.SourceBitmap{}, fmt.Errorf("%w: %d bytes for %dx%d bits", ErrBitmapFormat, len(src), width, height)
	}
	pitch := (width + 7) >> 3
	dst := make([]byte, pitch*height)
	for y := range height {
		row := dst[y*pitch:]
		for x := range width {
			i := y*width + x
			if src[i>>3]&(0x80>>(i&7)) != 0 {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return glyphmask.NewSourceBitmap(dst, width, height, pitch, glyphmask.PixelMono), nil
}
