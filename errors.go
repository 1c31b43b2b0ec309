package glyphmask

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphmask.
var (
	// ErrUnsupportedConversion is returned when a source pixel mode cannot be
	// converted into the requested mask format.
	ErrUnsupportedConversion = errors.New("glyphmask: unsupported pixel conversion")

	// ErrSizeMismatch is returned when source and destination dimensions differ.
	ErrSizeMismatch = errors.New("glyphmask: source and destination sizes differ")

	// ErrInvalidMask is returned when a mask's stride or buffer is too small.
	ErrInvalidMask = errors.New("glyphmask: invalid mask geometry")

	// ErrInvalidBitmap is returned when a source bitmap's pitch or buffer is too small.
	ErrInvalidBitmap = errors.New("glyphmask: invalid source bitmap geometry")

	// ErrOutlineDecompose is returned when an outline cannot be decomposed.
	ErrOutlineDecompose = errors.New("glyphmask: outline decomposition failed")

	// ErrUnknownGlyphFormat is returned when the engine reports a glyph that
	// is neither an outline nor a bitmap.
	ErrUnknownGlyphFormat = errors.New("glyphmask: unknown glyph format")

	// ErrNoPalette is returned when a color glyph is requested from a font
	// without a usable palette.
	ErrNoPalette = errors.New("glyphmask: no color palette")

	// ErrNoColorLayers is returned when a glyph has neither a paint graph nor
	// flat color layers.
	ErrNoColorLayers = errors.New("glyphmask: glyph has no color layers")

	// ErrNoBackend is returned when a glyph needs a canvas but the scaler was
	// created without a Backend.
	ErrNoBackend = errors.New("glyphmask: no graphics backend")
)

// ConversionError reports an unsupported source/destination pairing.
type ConversionError struct {
	From PixelMode
	To   MaskFormat
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("glyphmask: cannot convert %v bitmap to %v mask", e.From, e.To)
}

// Unwrap returns ErrUnsupportedConversion.
func (e *ConversionError) Unwrap() error { return ErrUnsupportedConversion }

// EngineErrorCode classifies font engine failures.
type EngineErrorCode int

// Engine error codes.
const (
	CodeOK EngineErrorCode = iota
	CodeInvalidArgument
	CodeInvalidGlyphIndex
	CodeInvalidOutline
	CodeInvalidTable
	CodeMissingTable
	CodeInvalidPixelSize
	CodeUnimplementedFeature
	CodeCannotRender
	CodeBadImageData
)

// EngineError wraps a failure reported by a FontEngine.
type EngineError struct {
	Op    string
	Glyph GlyphID
	Code  EngineErrorCode
	Err   error
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("glyphmask: %s glyph %d: error 0x%02x", e.Op, e.Glyph, int(e.Code))
	if s := ErrorString(e.Code); s != "" {
		msg += " (" + s + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EngineError) Unwrap() error { return e.Err }
