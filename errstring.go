//go:build !glyphmaskdebug

package glyphmask

// ErrorString returns a human-readable description of code. Descriptions are
// only compiled in with the glyphmaskdebug build tag; otherwise it returns "".
func ErrorString(EngineErrorCode) string { return "" }
