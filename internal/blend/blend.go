// Package blend implements Porter-Duff compositing operators and the
// separable and non-separable blend modes on premultiplied 8-bit colors.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

// Porter-Duff operators.
const (
	Clear    Mode = iota // 0
	Src                  // S
	Dst                  // D
	SrcOver              // S + D*(1-Sa)
	DstOver              // S*(1-Da) + D
	SrcIn                // S*Da
	DstIn                // D*Sa
	SrcOut               // S*(1-Da)
	DstOut               // D*(1-Sa)
	SrcAtop              // S*Da + D*(1-Sa)
	DstAtop              // S*(1-Da) + D*Sa
	Xor                  // S*(1-Da) + D*(1-Sa)
	Plus                 // min(S + D, 1)
)

// Separable blend modes.
const (
	Screen Mode = iota + Plus + 1
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Multiply
)

// Non-separable blend modes.
const (
	Hue Mode = iota + Multiply + 1
	Saturation
	Color
	Luminosity
)

// Func blends a premultiplied source color onto a premultiplied
// destination color.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [...]Func{
	Clear:      clearFunc,
	Src:        srcFunc,
	Dst:        dstFunc,
	SrcOver:    srcOver,
	DstOver:    dstOver,
	SrcIn:      srcIn,
	DstIn:      dstIn,
	SrcOut:     srcOut,
	DstOut:     dstOut,
	SrcAtop:    srcAtop,
	DstAtop:    dstAtop,
	Xor:        xorFunc,
	Plus:       plus,
	Screen:     separable(screen),
	Overlay:    separable(overlay),
	Darken:     separable(darken),
	Lighten:    separable(lighten),
	ColorDodge: separable(colorDodge),
	ColorBurn:  separable(colorBurn),
	HardLight:  separable(hardLight),
	SoftLight:  separable(softLight),
	Difference: separable(difference),
	Exclusion:  separable(exclusion),
	Multiply:   separable(multiply),
	Hue:        nonSeparable(hslHue),
	Saturation: nonSeparable(hslSaturation),
	Color:      nonSeparable(hslColor),
	Luminosity: nonSeparable(hslLuminosity),
}

// Get returns the function for mode. Unknown modes return source-over.
func Get(mode Mode) Func {
	if int(mode) < len(funcs) {
		return funcs[mode]
	}
	return srcOver
}
