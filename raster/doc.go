// Package raster is a CPU implementation of glyphmask.Backend.
//
// A Canvas keeps a stack of premultiplied *image.RGBA layers over an A8 or
// ARGB32 glyph mask. Path coverage comes from golang.org/x/image/vector,
// mask resampling from the golang.org/x/image/draw transformers, and layer
// compositing from the Porter-Duff and blend mode functions of
// internal/blend.
//
// The target mask is read when the canvas is created and only written by
// Flush, so a caller can abandon a canvas without touching the mask.
//
//	c, err := raster.NewBackend().NewCanvas(mask)
//	if err != nil {
//	    return err
//	}
//	c.DrawPath(path, glyphmask.Paint{Color: red, AntiAlias: true})
//	return c.Flush()
package raster
