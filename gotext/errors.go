package gotext

import "errors"

// Sentinel errors for gotext.
var (
	// ErrEmptyFontData is returned by Load for empty input.
	ErrEmptyFontData = errors.New("gotext: empty font data")

	// ErrInvalidSize is returned for a non-positive or non-finite pixel size.
	ErrInvalidSize = errors.New("gotext: invalid pixel size")

	// ErrGlyphRange is returned for glyph IDs that do not fit in 16 bits.
	ErrGlyphRange = errors.New("gotext: glyph ID out of range")

	// ErrNoGlyphData is returned when the font holds no data for a glyph.
	ErrNoGlyphData = errors.New("gotext: no data for glyph")

	// ErrNoPalette is returned when a requested CPAL palette does not exist.
	ErrNoPalette = errors.New("gotext: no such palette")

	// ErrBitmapFormat is returned for embedded bitmaps that cannot be decoded.
	ErrBitmapFormat = errors.New("gotext: unsupported bitmap data")
)
