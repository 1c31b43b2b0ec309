package glyphmask

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// SubpixelLevels is the number of fractional positions per pixel used by
// QuantizeSubpixel.
const SubpixelLevels = 4

// QuantizeSubpixel splits a device position into an integer pixel and a
// fractional offset snapped down to one of SubpixelLevels steps. The
// offsets are suitable for Glyph.SubX and Glyph.SubY.
//
// For example x = 10.3 yields 10 and 0.25 (16 in 26.6).
func QuantizeSubpixel(x, y float64) (ix, iy int, subX, subY fixed.Int26_6) {
	ix, subX = quantize(x)
	iy, subY = quantize(y)
	return ix, iy, subX, subY
}

func quantize(pos float64) (int, fixed.Int26_6) {
	floor := math.Floor(pos)
	step := int((pos - floor) * SubpixelLevels)
	step = max(0, min(SubpixelLevels-1, step))
	return int(floor), fixed.Int26_6(step * 64 / SubpixelLevels)
}
