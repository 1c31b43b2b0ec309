package glyphmask

import "image/color"

// BlendMode is how a saved layer is composited onto the layer below it on
// Restore.
type BlendMode uint8

// Blend modes. The Porter-Duff operators come first, followed by the
// separable and then the non-separable blend modes.
const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
	BlendXor
	BlendPlus
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendNames = [...]string{
	"clear", "src", "dst", "src-over", "dst-over", "src-in", "dst-in",
	"src-out", "dst-out", "src-atop", "dst-atop", "xor", "plus", "screen",
	"overlay", "darken", "lighten", "color-dodge", "color-burn", "hard-light",
	"soft-light", "difference", "exclusion", "multiply", "hue", "saturation",
	"color", "luminosity",
}

// String returns the mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return "unknown"
}

// TileMode is how a shader behaves outside its defined range.
type TileMode uint8

// Tile modes.
const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
)

// FilterQuality selects the resampling filter for DrawMask.
type FilterQuality uint8

// Filter qualities.
const (
	FilterNone FilterQuality = iota
	FilterLow
	FilterMedium
)

// Paint describes how DrawPath and DrawPaint color pixels. When Shader is
// set it replaces Color.
type Paint struct {
	Color     color.NRGBA
	Shader    Shader
	AntiAlias bool
}

// Canvas is a drawing surface over a Mask. Coordinates are device pixels
// with y pointing down, mapped through the current transform.
//
// Save, SaveLayer and Restore nest; Restore pops the most recent save.
type Canvas interface {
	Save()
	// SaveLayer starts an offscreen layer that is composited with mode on
	// the matching Restore.
	SaveLayer(mode BlendMode)
	Restore()

	Translate(dx, dy float64)
	// Concat premultiplies the current transform by m.
	Concat(m Matrix)

	// ClipPath intersects the clip with the interior of p.
	ClipPath(p *Path, antiAlias bool)

	DrawPath(p *Path, paint Paint)
	// DrawPaint fills the whole clip.
	DrawPaint(paint Paint)
	// DrawMask draws an A8 or ARGB32 mask with its top-left pixel at the
	// user space origin.
	DrawMask(src *Mask, filter FilterQuality)

	// Clear replaces every pixel of the current layer, ignoring the clip.
	Clear(c color.NRGBA)

	// Flush writes the drawing back to the target mask.
	Flush() error
}

// Backend creates canvases.
type Backend interface {
	// NewCanvas returns a canvas that draws into dst. dst must be FormatA8
	// or FormatARGB32. dst is only written by Flush.
	NewCanvas(dst *Mask) (Canvas, error)
}
