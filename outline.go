package glyphmask

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// SegmentOp is the verb of an outline segment.
type SegmentOp uint8

// Outline segment verbs.
const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// Segment is one outline verb with up to three points. MoveTo and LineTo use
// Args[0]; QuadTo uses Args[0:2]; CubeTo uses all three.
type Segment struct {
	Op   SegmentOp
	Args [3]fixed.Point26_6
}

// Outline is a glyph outline in 26.6 device pixels with y pointing up.
type Outline struct {
	Segments []Segment
}

// OutlineSink receives the verbs of a decomposed outline.
// Returning an error stops decomposition.
type OutlineSink interface {
	MoveTo(p fixed.Point26_6) error
	LineTo(p fixed.Point26_6) error
	QuadTo(c, p fixed.Point26_6) error
	CubeTo(c1, c2, p fixed.Point26_6) error
}

// Decomposer is anything that can replay an outline into a sink.
type Decomposer interface {
	Decompose(sink OutlineSink) error
}

// Decompose replays o into sink.
func (o *Outline) Decompose(sink OutlineSink) error {
	for i, s := range o.Segments {
		var err error
		switch s.Op {
		case SegmentMoveTo:
			err = sink.MoveTo(s.Args[0])
		case SegmentLineTo:
			err = sink.LineTo(s.Args[0])
		case SegmentQuadTo:
			err = sink.QuadTo(s.Args[0], s.Args[1])
		case SegmentCubeTo:
			err = sink.CubeTo(s.Args[0], s.Args[1], s.Args[2])
		default:
			err = fmt.Errorf("segment %d: unknown op %d", i, s.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Translate offsets every point of o in place.
func (o *Outline) Translate(dx, dy fixed.Int26_6) {
	d := fixed.Point26_6{X: dx, Y: dy}
	for i := range o.Segments {
		for j := range o.Segments[i].Args {
			o.Segments[i].Args[j] = o.Segments[i].Args[j].Add(d)
		}
	}
}

// Clone returns a deep copy of o.
func (o *Outline) Clone() *Outline {
	return &Outline{Segments: append([]Segment(nil), o.Segments...)}
}

// CBox returns the control box: the bounds of every point, including
// off-curve control points. An empty outline has an empty box.
func (o *Outline) CBox() fixed.Rectangle26_6 {
	var r fixed.Rectangle26_6
	first := true
	for _, s := range o.Segments {
		n := s.Op.points()
		for _, p := range s.Args[:n] {
			if first {
				r = fixed.Rectangle26_6{Min: p, Max: p}
				first = false
				continue
			}
			r.Min.X = min(r.Min.X, p.X)
			r.Min.Y = min(r.Min.Y, p.Y)
			r.Max.X = max(r.Max.X, p.X)
			r.Max.Y = max(r.Max.Y, p.Y)
		}
	}
	return r
}

func (op SegmentOp) points() int {
	switch op {
	case SegmentQuadTo:
		return 2
	case SegmentCubeTo:
		return 3
	default:
		return 1
	}
}

// PathFromOutline converts an outline into a Path in device pixels with y
// pointing down.
//
// Segments that do not move the pen are dropped. A move closes any open
// subpath, and the move itself is only emitted once a segment follows it,
// so a lone move produces nothing. The final subpath is closed.
func PathFromOutline(o Decomposer) (*Path, error) {
	s := &pathSink{path: NewPath()}
	if err := o.Decompose(s); err != nil {
		s.path.Reset()
		return s.path, fmt.Errorf("%w: %w", ErrOutlineDecompose, err)
	}
	if s.started {
		s.path.Close()
	}
	return s.path, nil
}

type pathSink struct {
	path    *Path
	cur     fixed.Point26_6
	started bool
}

func toPoint(p fixed.Point26_6) Point {
	return Pt(float64(p.X)/64, -float64(p.Y)/64)
}

func (s *pathSink) MoveTo(p fixed.Point26_6) error {
	if s.started {
		s.path.Close()
		s.started = false
	}
	s.cur = p
	return nil
}

// goingTo emits the pending move before the first segment of a subpath.
func (s *pathSink) goingTo(p fixed.Point26_6) {
	if !s.started {
		s.started = true
		m := toPoint(s.cur)
		s.path.MoveTo(m.X, m.Y)
	}
	s.cur = p
}

func (s *pathSink) LineTo(p fixed.Point26_6) error {
	if p == s.cur {
		return nil
	}
	s.goingTo(p)
	q := toPoint(p)
	s.path.LineTo(q.X, q.Y)
	return nil
}

func (s *pathSink) QuadTo(c, p fixed.Point26_6) error {
	if c == s.cur && p == s.cur {
		return nil
	}
	s.goingTo(p)
	cc, q := toPoint(c), toPoint(p)
	s.path.QuadTo(cc.X, cc.Y, q.X, q.Y)
	return nil
}

func (s *pathSink) CubeTo(c1, c2, p fixed.Point26_6) error {
	if c1 == s.cur && c2 == s.cur && p == s.cur {
		return nil
	}
	s.goingTo(p)
	a, b, q := toPoint(c1), toPoint(c2), toPoint(p)
	s.path.CubicTo(a.X, a.Y, b.X, b.Y, q.X, q.Y)
	return nil
}
