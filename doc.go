// Package glyphmask turns font-engine glyph output into fixed-format masks.
//
// # Overview
//
// glyphmask sits between a font rasterization engine and a 2D rendering
// pipeline. Given a glyph, it asks the engine for an outline or a
// pre-rendered bitmap and produces a pixel buffer in one of four mask
// formats:
//
//   - FormatBW: 1 bit per pixel, most significant bit first
//   - FormatA8: 8-bit coverage
//   - FormatLCD16: RGB565 subpixel coverage
//   - FormatARGB32: premultiplied 32-bit color
//
// Color glyphs are rendered by interpreting the font's COLR paint graph
// (solid fills, gradients, transforms, compositing and glyph clips) against a
// Canvas provided by a graphics Backend. Fonts without a paint graph fall back
// to the flat layer model.
//
// # Quick Start
//
//	engine, _ := gotext.Load(fontData, 32)
//	s := glyphmask.NewScaler(engine, raster.NewBackend())
//
//	g := &glyphmask.Glyph{ID: gid, Format: glyphmask.FormatA8}
//	g.SetBounds(engine.GlyphBounds(gid, glyphmask.FormatA8))
//	if err := s.GenerateImage(g); err != nil {
//	    // g.Image is zeroed
//	}
//
// # Architecture
//
// The package is organized into:
//   - Core: Mask, SourceBitmap, CopyBitmap, PackA8ToA1, CopyToLCD16
//   - Outlines: Outline, OutlineSink, PathFromOutline, Path
//   - Color: PaintNode variants and the paint graph interpreter
//   - Scaler: the glyph image generator and its options
//   - Collaborators: FontEngine and Backend interfaces
//
// Concrete collaborators live in sub-packages: raster implements Backend on
// the CPU, recording captures canvas commands for inspection and replay, and
// gotext implements FontEngine on go-text/typesetting.
//
// # Coordinate System
//
// Outlines use 26.6 fixed-point coordinates with y increasing upward.
// Paths, masks and canvases use device pixels with y increasing downward.
// Paint graph coordinates are font design units.
package glyphmask
