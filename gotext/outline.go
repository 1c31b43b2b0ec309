package gotext

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphmask"
)

// convertOutline scales a go-text outline from font units to 26.6 pixels.
// Both keep y pointing up.
func convertOutline(data font.GlyphOutline, scale float64) *glyphmask.Outline {
	out := &glyphmask.Outline{Segments: make([]glyphmask.Segment, 0, len(data.Segments))}
	for _, s := range data.Segments {
		var seg glyphmask.Segment
		n := 1
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = glyphmask.SegmentMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = glyphmask.SegmentLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = glyphmask.SegmentQuadTo
			n = 2
		case ot.SegmentOpCubeTo:
			seg.Op = glyphmask.SegmentCubeTo
			n = 3
		default:
			continue
		}
		for i := range n {
			seg.Args[i] = fixed.Point26_6{
				X: toFixed(s.Args[i].X, scale),
				Y: toFixed(s.Args[i].Y, scale),
			}
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}
