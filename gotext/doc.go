// Package gotext implements glyphmask.FontEngine on go-text/typesetting.
//
// An Engine wraps one font face at one pixel size. It loads outlines from
// the glyf, CFF and CFF2 tables, embedded bitmaps from sbix, CBDT and EBDT,
// color glyphs from COLR (versions 0 and 1) with CPAL palettes, and
// rasterizes outlines with golang.org/x/image/vector.
//
//	e, err := gotext.Load(ttf, 32)
//	if err != nil {
//	    return err
//	}
//	s := glyphmask.NewScaler(e, raster.NewBackend())
//	g := glyphmask.Glyph{ID: id, Format: glyphmask.FormatA8}
//	g.SetBounds(e.GlyphBounds(id, g.Format))
//	err = s.GenerateImage(&g)
//
// An Engine is not safe for concurrent use; create one per goroutine from a
// shared *font.Font with New.
package gotext
