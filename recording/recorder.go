package recording

import (
	"image/color"

	"github.com/gogpu/glyphmask"
)

// Recorder is a glyphmask.Canvas that records commands.
type Recorder struct {
	commands []Command
	depth    int
	onFlush  func(*Recording)
}

var _ glyphmask.Canvas = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 32)}
}

func (r *Recorder) add(c Command) {
	r.commands = append(r.commands, c)
}

// Save implements glyphmask.Canvas.
func (r *Recorder) Save() {
	r.depth++
	r.add(SaveCommand{})
}

// SaveLayer implements glyphmask.Canvas.
func (r *Recorder) SaveLayer(mode glyphmask.BlendMode) {
	r.depth++
	r.add(SaveLayerCommand{Mode: mode})
}

// Restore implements glyphmask.Canvas. Unmatched restores are not recorded.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.add(RestoreCommand{})
}

// Translate implements glyphmask.Canvas.
func (r *Recorder) Translate(dx, dy float64) {
	r.add(TranslateCommand{DX: dx, DY: dy})
}

// Concat implements glyphmask.Canvas.
func (r *Recorder) Concat(m glyphmask.Matrix) {
	r.add(ConcatCommand{Matrix: m})
}

// ClipPath implements glyphmask.Canvas.
func (r *Recorder) ClipPath(p *glyphmask.Path, antiAlias bool) {
	r.add(ClipPathCommand{Path: p, AntiAlias: antiAlias})
}

// DrawPath implements glyphmask.Canvas.
func (r *Recorder) DrawPath(p *glyphmask.Path, paint glyphmask.Paint) {
	r.add(DrawPathCommand{Path: p, Paint: paint})
}

// DrawPaint implements glyphmask.Canvas.
func (r *Recorder) DrawPaint(paint glyphmask.Paint) {
	r.add(DrawPaintCommand{Paint: paint})
}

// DrawMask implements glyphmask.Canvas.
func (r *Recorder) DrawMask(src *glyphmask.Mask, filter glyphmask.FilterQuality) {
	r.add(DrawMaskCommand{Mask: src, Filter: filter})
}

// Clear implements glyphmask.Canvas.
func (r *Recorder) Clear(c color.NRGBA) {
	r.add(ClearCommand{Color: c})
}

// Flush hands the recording to the owning Backend, if any.
func (r *Recorder) Flush() error {
	if r.onFlush != nil {
		r.onFlush(r.Finish())
	}
	return nil
}

// Finish returns the commands recorded so far.
func (r *Recorder) Finish() *Recording {
	return &Recording{commands: append([]Command(nil), r.commands...)}
}

// Recording is an immutable list of canvas commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands have type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto c. It does not flush c.
func (r *Recording) Playback(c glyphmask.Canvas) {
	for _, cmd := range r.commands {
		switch v := cmd.(type) {
		case SaveCommand:
			c.Save()
		case SaveLayerCommand:
			c.SaveLayer(v.Mode)
		case RestoreCommand:
			c.Restore()
		case TranslateCommand:
			c.Translate(v.DX, v.DY)
		case ConcatCommand:
			c.Concat(v.Matrix)
		case ClipPathCommand:
			c.ClipPath(v.Path, v.AntiAlias)
		case DrawPathCommand:
			c.DrawPath(v.Path, v.Paint)
		case DrawPaintCommand:
			c.DrawPaint(v.Paint)
		case DrawMaskCommand:
			c.DrawMask(v.Mask, v.Filter)
		case ClearCommand:
			c.Clear(v.Color)
		}
	}
}
