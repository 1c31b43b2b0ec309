package glyphmask

import "fmt"

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// Float returns f as a float64.
func (f Fixed) Float() float64 { return float64(f) / 65536 }

// FixedFromFloat rounds v to the nearest 16.16 value.
func FixedFromFloat(v float64) Fixed {
	if v < 0 {
		return Fixed(v*65536 - 0.5)
	}
	return Fixed(v*65536 + 0.5)
}

// F2Dot14 is a signed 2.14 fixed-point number; 1.0 is 16384.
type F2Dot14 int16

// F2Dot14One is 1.0 in 2.14.
const F2Dot14One F2Dot14 = 1 << 14

// Float returns f as a float64.
func (f F2Dot14) Float() float64 { return float64(f) / 16384 }

// ForegroundPaletteIndex selects the text foreground color instead of a
// palette entry.
const ForegroundPaletteIndex = 0xFFFF

// ColorIndex references a palette entry and scales its alpha.
type ColorIndex struct {
	PaletteIndex uint16
	Alpha        F2Dot14
}

// ColorStop is one stop of a color line.
type ColorStop struct {
	Offset F2Dot14
	Color  ColorIndex
}

// Extend is how a color line behaves outside [0, 1].
type Extend uint8

// Color line extend modes.
const (
	ExtendPad Extend = iota
	ExtendRepeat
	ExtendReflect
)

// ColorLine is the stop list of a gradient.
type ColorLine struct {
	Extend Extend
	Stops  []ColorStop
}

// CompositeMode is a paint graph compositing operator. The values follow
// the order used by COLR v1 fonts.
type CompositeMode uint8

// Composite modes.
const (
	CompositeClear CompositeMode = iota
	CompositeSrc
	CompositeDest
	CompositeSrcOver
	CompositeDestOver
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestOut
	CompositeSrcAtop
	CompositeDestAtop
	CompositeXor
	CompositePlus
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeMultiply
	CompositeHue
	CompositeSaturation
	CompositeColor
	CompositeLuminosity
)

// PaintRef is an opaque handle to a paint node stored by a FontEngine.
// The zero value references nothing.
type PaintRef struct {
	v any
}

// NewPaintRef wraps an engine-specific value.
func NewPaintRef(v any) PaintRef { return PaintRef{v: v} }

// Value returns the wrapped value.
func (r PaintRef) Value() any { return r.v }

// IsZero reports whether r references nothing.
func (r PaintRef) IsZero() bool { return r.v == nil }

// PaintNode is one node of a color glyph paint graph. It is implemented
// only by the Paint* types in this package.
//
// Coordinates are font design units with y pointing up.
type PaintNode interface {
	isPaintNode()
}

// PaintSolid fills the clip with one color.
type PaintSolid struct {
	Color ColorIndex
}

// PaintLinearGradient fills with a linear gradient. P2 sets the rotation of
// the gradient: stops are constant along lines parallel to P0P2.
type PaintLinearGradient struct {
	ColorLine  ColorLine
	P0, P1, P2 Point
}

// PaintRadialGradient fills with a two-circle gradient.
type PaintRadialGradient struct {
	ColorLine ColorLine
	C0        Point
	R0        float64
	C1        Point
	R1        float64
}

// PaintSweepGradient fills with an angular gradient. Angles are in half
// turns counted counter-clockwise, offset so that 0 means 180 degrees.
type PaintSweepGradient struct {
	ColorLine            ColorLine
	Center               Point
	StartAngle, EndAngle F2Dot14
}

// PaintTransform applies an affine transform to its child:
// x' = XX*x + XY*y + DX, y' = YX*x + YY*y + DY.
type PaintTransform struct {
	XX, YX, XY, YY, DX, DY Fixed
	Child                  PaintRef
}

// PaintRotate rotates its child counter-clockwise by Angle half turns
// around the center.
type PaintRotate struct {
	Angle            Fixed
	CenterX, CenterY Fixed
	Child            PaintRef
}

// PaintSkew skews its child by angles in half turns around the center.
type PaintSkew struct {
	XSkewAngle, YSkewAngle Fixed
	CenterX, CenterY       Fixed
	Child                  PaintRef
}

// PaintComposite draws Source over Backdrop with Mode.
type PaintComposite struct {
	Mode             CompositeMode
	Backdrop, Source PaintRef
}

// PaintColrLayers draws a run of the engine's layer list in order.
type PaintColrLayers struct {
	FirstLayer uint32
	NumLayers  int
}

// PaintGlyph clips its child to the outline of Glyph.
type PaintGlyph struct {
	Glyph GlyphID
	Child PaintRef
}

// PaintColrGlyph draws the root paint of another color glyph.
type PaintColrGlyph struct {
	Glyph GlyphID
}

func (PaintSolid) isPaintNode()          {}
func (PaintLinearGradient) isPaintNode() {}
func (PaintRadialGradient) isPaintNode() {}
func (PaintSweepGradient) isPaintNode()  {}
func (PaintTransform) isPaintNode()      {}
func (PaintRotate) isPaintNode()         {}
func (PaintSkew) isPaintNode()           {}
func (PaintComposite) isPaintNode()      {}
func (PaintColrLayers) isPaintNode()     {}
func (PaintGlyph) isPaintNode()          {}
func (PaintColrGlyph) isPaintNode()      {}

// paintName returns a short name for log attributes.
func paintName(n PaintNode) string {
	switch n.(type) {
	case PaintSolid:
		return "solid"
	case PaintLinearGradient:
		return "linear-gradient"
	case PaintRadialGradient:
		return "radial-gradient"
	case PaintSweepGradient:
		return "sweep-gradient"
	case PaintTransform:
		return "transform"
	case PaintRotate:
		return "rotate"
	case PaintSkew:
		return "skew"
	case PaintComposite:
		return "composite"
	case PaintColrLayers:
		return "layers"
	case PaintGlyph:
		return "glyph"
	case PaintColrGlyph:
		return "colr-glyph"
	default:
		return fmt.Sprintf("%T", n)
	}
}
