package recording

import (
	"sync"

	"github.com/gogpu/glyphmask"
)

// Backend is a glyphmask.Backend whose canvases record instead of draw.
// Target masks are never written. Optionally each flushed recording is
// replayed onto a canvas from a second backend, so drawing still happens
// while the commands are captured.
type Backend struct {
	next glyphmask.Backend

	mu   sync.Mutex
	last *Recording
}

// NewBackend returns a recording-only Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// NewTeeBackend returns a Backend that records and then replays each
// flushed recording through next.
func NewTeeBackend(next glyphmask.Backend) *Backend {
	return &Backend{next: next}
}

// NewCanvas implements glyphmask.Backend.
func (b *Backend) NewCanvas(dst *glyphmask.Mask) (glyphmask.Canvas, error) {
	var target glyphmask.Canvas
	if b.next != nil {
		c, err := b.next.NewCanvas(dst)
		if err != nil {
			return nil, err
		}
		target = c
	}
	r := NewRecorder()
	r.onFlush = func(rec *Recording) {
		b.mu.Lock()
		b.last = rec
		b.mu.Unlock()
	}
	if target == nil {
		return r, nil
	}
	return &teeCanvas{Recorder: r, target: target}, nil
}

// Last returns the most recently flushed recording, or nil.
func (b *Backend) Last() *Recording {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// teeCanvas records and replays onto target at Flush.
type teeCanvas struct {
	*Recorder
	target glyphmask.Canvas
}

func (t *teeCanvas) Flush() error {
	rec := t.Recorder.Finish()
	if err := t.Recorder.Flush(); err != nil {
		return err
	}
	rec.Playback(t.target)
	return t.target.Flush()
}
