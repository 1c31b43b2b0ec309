package blend

// rgbFunc is B(Cb, Cs) on whole unpremultiplied colors.
type rgbFunc func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32)

// nonSeparable builds a Func from a whole-color blend using the same
// compositing formula as separable.
func nonSeparable(fn rgbFunc) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		as, ad := float32(sa)/255, float32(da)/255
		unpremul := func(c byte, a float32) float32 { return min(1, float32(c)/255/a) }
		br, bg, bb := fn(unpremul(sr, as), unpremul(sg, as), unpremul(sb, as),
			unpremul(dr, ad), unpremul(dg, ad), unpremul(db, ad))
		mix := func(s, d byte, b float32) byte {
			ps, pd := float32(s)/255, float32(d)/255
			return toByte((1-as)*pd + (1-ad)*ps + as*ad*b)
		}
		return mix(sr, dr, br), mix(sg, dg, bg), mix(sb, db, bb), toByte(as + ad*(1-as))
	}
}

// lum is the BT.601 luma used by the non-separable modes.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components toward the luma.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n, x := min(r, g, b), max(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	c := [3]*float32{&r, &g, &b}
	// Order the components so that *c[0] <= *c[1] <= *c[2].
	if *c[0] > *c[1] {
		c[0], c[1] = c[1], c[0]
	}
	if *c[1] > *c[2] {
		c[1], c[2] = c[2], c[1]
	}
	if *c[0] > *c[1] {
		c[0], c[1] = c[1], c[0]
	}
	lo, mid, hi := *c[0], *c[1], *c[2]
	if hi > lo {
		*c[1] = (mid - lo) * s / (hi - lo)
		*c[2] = s
	} else {
		*c[1], *c[2] = 0, 0
	}
	*c[0] = 0
	return r, g, b
}

func hslHue(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
	return setLum(r, g, b, lum(dr, dg, db))
}

func hslSaturation(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
	return setLum(r, g, b, lum(dr, dg, db))
}

func hslColor(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(sr, sg, sb, lum(dr, dg, db))
}

func hslLuminosity(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(dr, dg, db, lum(sr, sg, sb))
}
