// Package recording captures glyphmask canvas commands for inspection and
// replay.
//
// A Recorder implements glyphmask.Canvas by appending typed command structs
// instead of drawing. Its Recording can later be replayed onto any other
// canvas, which makes it useful for debugging color glyph paint graphs and
// for testing code that drives a canvas.
//
//	b := recording.NewBackend()
//	s := glyphmask.NewScaler(engine, b)
//	_ = s.GenerateImage(&g)
//	for _, cmd := range b.Last().Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// Paths and masks are referenced, not copied; callers must not modify them
// while a Recording is in use.
package recording
