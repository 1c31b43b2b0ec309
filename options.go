package glyphmask

// Option configures a Scaler.
//
// Example:
//
//	s := glyphmask.NewScaler(engine, raster.NewBackend(),
//	    glyphmask.WithSubpixel(true),
//	    glyphmask.WithPreBlend(glyphmask.NewPreBlend(0.5, 1.2)))
type Option func(*scalerOptions)

type scalerOptions struct {
	scaleX, scaleY  float64
	bitmapTransform *Matrix
	subpixel        bool
	lcdBGR          bool
	lcdVertical     bool
	preBlend        *PreBlend
	maxPaintDepth   int
}

func defaultOptions() scalerOptions {
	return scalerOptions{maxPaintDepth: defaultMaxPaintDepth}
}

// WithScale sets the pixels per em on each axis. Without it the scale is
// taken from an engine that reports one through a Scale() (x, y float64)
// method.
func WithScale(x, y float64) Option {
	return func(o *scalerOptions) {
		o.scaleX, o.scaleY = x, y
	}
}

// WithBitmapTransform sets the transform applied to embedded bitmaps.
// Without it the transform comes from an engine with a BitmapTransform()
// Matrix method, or is the identity.
func WithBitmapTransform(m Matrix) Option {
	return func(o *scalerOptions) {
		o.bitmapTransform = &m
	}
}

// WithSubpixel enables subpixel positioning. When enabled, Glyph.SubX and
// Glyph.SubY shift outline, LCD and color glyphs right and down by that
// fraction of a pixel; when disabled they are ignored for every format.
func WithSubpixel(enabled bool) Option {
	return func(o *scalerOptions) {
		o.subpixel = enabled
	}
}

// WithLCD sets the subpixel order and orientation of LCD16 glyphs.
func WithLCD(bgr, vertical bool) Option {
	return func(o *scalerOptions) {
		o.lcdBGR = bgr
		o.lcdVertical = vertical
	}
}

// WithPreBlend sets the coverage correction tables for LCD16 and A8 glyphs.
func WithPreBlend(pb *PreBlend) Option {
	return func(o *scalerOptions) {
		o.preBlend = pb
	}
}

// WithMaxPaintDepth bounds color glyph paint graph recursion.
// Values below 1 are ignored.
func WithMaxPaintDepth(depth int) Option {
	return func(o *scalerOptions) {
		if depth > 0 {
			o.maxPaintDepth = depth
		}
	}
}
