// Package color builds lookup tables that remap 8-bit glyph coverage.
//
// Tables are computed once and shared read-only, so they may be used by
// concurrent rasterizations.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

import "math"

// toLinearLUT maps an sRGB byte to linear light in [0, 1].
var toLinearLUT [256]float32

// fromLinearLUT maps 12-bit linear light to an sRGB byte.
var fromLinearLUT [4096]uint8

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = float32(decodeSRGB(float64(i) / 255))
	}
	for i := range fromLinearLUT {
		fromLinearLUT[i] = quantize(encodeSRGB(float64(i) / 4095))
	}
}

func decodeSRGB(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func encodeSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// quantize rounds v in [0, 1] to a byte, clamping out-of-range input.
func quantize(v float64) uint8 {
	i := int(v*255 + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}

// ToLinear converts an sRGB byte to linear light.
func ToLinear(s uint8) float32 {
	return toLinearLUT[s]
}

// FromLinear converts linear light to an sRGB byte. Input is clamped to [0, 1].
func FromLinear(l float32) uint8 {
	if l <= 0 {
		return fromLinearLUT[0]
	}
	if l >= 1 {
		return fromLinearLUT[4095]
	}
	return fromLinearLUT[int(l*4095+0.5)]
}
