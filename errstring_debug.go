//go:build glyphmaskdebug

package glyphmask

var engineErrorStrings = [...]string{
	CodeOK:                   "no error",
	CodeInvalidArgument:      "invalid argument",
	CodeInvalidGlyphIndex:    "invalid glyph index",
	CodeInvalidOutline:       "invalid outline",
	CodeInvalidTable:         "broken table",
	CodeMissingTable:         "table missing",
	CodeInvalidPixelSize:     "invalid pixel size",
	CodeUnimplementedFeature: "unimplemented feature",
	CodeCannotRender:         "cannot render this glyph format",
	CodeBadImageData:         "invalid embedded image data",
}

// ErrorString returns a human-readable description of code.
func ErrorString(code EngineErrorCode) string {
	if code < 0 || int(code) >= len(engineErrorStrings) {
		return "unknown error"
	}
	return engineErrorStrings[code]
}
