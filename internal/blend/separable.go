package blend

import "math"

// channelFunc is B(Cb, Cs) on unpremultiplied channels in [0, 1], with cs
// the source and cb the backdrop.
type channelFunc func(cs, cb float32) float32

// separable builds a Func from a per-channel blend:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cb, Cs)
//	Ao = Sa + Da*(1 - Sa)
func separable(fn channelFunc) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		as, ad := float32(sa)/255, float32(da)/255
		mix := func(s, d byte) byte {
			ps, pd := float32(s)/255, float32(d)/255
			cs, cb := min(1, ps/as), min(1, pd/ad)
			return toByte((1-as)*pd + (1-ad)*ps + as*ad*fn(cs, cb))
		}
		return mix(sr, dr), mix(sg, dg), mix(sb, db), toByte(as + ad*(1-as))
	}
}

func multiply(cs, cb float32) float32 { return cs * cb }

func screen(cs, cb float32) float32 { return cs + cb - cs*cb }

func overlay(cs, cb float32) float32 { return hardLight(cb, cs) }

func darken(cs, cb float32) float32 { return min(cs, cb) }

func lighten(cs, cb float32) float32 { return max(cs, cb) }

func colorDodge(cs, cb float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cb/(1-cs))
}

func colorBurn(cs, cb float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - min(1, (1-cb)/cs)
}

func hardLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return multiply(2*cs, cb)
	}
	return screen(2*cs-1, cb)
}

func softLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = float32(math.Sqrt(float64(cb)))
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cs, cb float32) float32 {
	if cs > cb {
		return cs - cb
	}
	return cb - cs
}

func exclusion(cs, cb float32) float32 { return cs + cb - 2*cs*cb }
