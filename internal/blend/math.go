package blend

// div255 returns x/255 rounded to nearest for all products of two bytes.
// Formula from Jim Blinn: t = x + 128; (t + (t >> 8)) >> 8
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255 rounded to nearest.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp returns a+b saturated at 255.
func addClamp(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

// toByte converts a value in [0, 1] to a byte with rounding.
func toByte(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return byte(v*255 + 0.5)
}
