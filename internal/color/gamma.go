package color

import "math"

// Table is a 256-entry coverage remapping.
type Table [256]uint8

// ContrastGamma builds a table that first boosts coverage by contrast and
// then applies 1/gamma. contrast is clamped to [0, 1] and gamma must be
// positive; ContrastGamma(0, 1) is the identity. The result is monotonic.
func ContrastGamma(contrast, gamma float64) Table {
	contrast = math.Max(0, math.Min(1, contrast))
	if gamma <= 0 {
		gamma = 1
	}
	var t Table
	for i := range t {
		c := float64(i) / 255
		c += contrast * c * (1 - c)
		t[i] = quantize(math.Pow(c, 1/gamma))
	}
	return t
}

// SRGBEncode builds a table that treats coverage as linear light and encodes
// it with the sRGB transfer function.
func SRGBEncode() Table {
	var t Table
	for i := range t {
		t[i] = FromLinear(float32(i) / 255)
	}
	return t
}

// Identity returns the identity table.
func Identity() Table {
	var t Table
	for i := range t {
		t[i] = uint8(i)
	}
	return t
}
