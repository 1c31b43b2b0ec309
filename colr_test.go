package glyphmask

import (
	"image/color"
	"math"
	"testing"
)

var one = ColorIndex{Alpha: F2Dot14One}

func newPainter(e *fakeEngine, c Canvas) *colrPainter {
	return &colrPainter{
		canvas:  c,
		font:    e,
		palette: e.palette,
		glyphPath: func(id GlyphID) (*Path, error) {
			o, err := e.LoadOutline(id)
			if err != nil {
				return nil, err
			}
			return PathFromOutline(o)
		},
		upem:     100,
		sx:       100,
		sy:       100,
		maxDepth: defaultMaxPaintDepth,
	}
}

// colrFixture has glyph 1 as a paint graph whose root is "root", and glyph
// 2 as a clip square.
func colrFixture(root PaintNode) *fakeEngine {
	e := newFakeEngine(100)
	e.palette = Palette{red, blue}
	e.outlines[2] = squareOutline(0, 0, 10)
	e.roots[1] = "root"
	e.nodes["root"] = root
	e.nodes["red"] = PaintSolid{Color: one}
	e.nodes["blue"] = PaintSolid{Color: ColorIndex{PaletteIndex: 1, Alpha: F2Dot14One}}
	return e
}

func draw(t *testing.T, e *fakeEngine) *logCanvas {
	t.Helper()
	c := &logCanvas{}
	if !newPainter(e, c).drawColrGlyph(1) {
		t.Fatal("drawColrGlyph() = false, want true")
	}
	return c
}

func TestColrSolidInGlyph(t *testing.T) {
	c := draw(t, colrFixture(PaintGlyph{Glyph: 2, Child: ref("red")}))
	if got, want := c.String(), "layer src-over; clip; paint; restore"; got != want {
		t.Errorf("ops = %q, want %q", got, want)
	}
	if c.paints[0].Color != red {
		t.Errorf("color = %v, want %v", c.paints[0].Color, red)
	}
}

func TestColrSolidAlpha(t *testing.T) {
	e := colrFixture(PaintSolid{Color: ColorIndex{Alpha: F2Dot14One / 2}})
	c := draw(t, e)
	if got := c.paints[0].Color.A; got != 127 {
		t.Errorf("alpha = %d, want 127", got)
	}

	e.nodes["root"] = PaintSolid{Color: ColorIndex{PaletteIndex: ForegroundPaletteIndex, Alpha: F2Dot14One}}
	c = draw(t, e)
	if got := c.paints[0].Color; got != (color.NRGBA{A: 0xFF}) {
		t.Errorf("foreground color = %v, want opaque black", got)
	}
}

func TestColrPaletteIndexOutOfRange(t *testing.T) {
	e := colrFixture(PaintGlyph{Glyph: 2, Child: ref("bad")})
	e.nodes["bad"] = PaintSolid{Color: ColorIndex{PaletteIndex: 9, Alpha: F2Dot14One}}
	c := draw(t, e)
	if got, want := c.String(), "layer src-over; clip; restore"; got != want {
		t.Errorf("ops = %q, want %q", got, want)
	}
}

func TestColrComposite(t *testing.T) {
	tests := []struct {
		mode CompositeMode
		want string
	}{
		{CompositeSrcIn, "layer src-over; paint; layer src-in; paint; restore; restore"},
		{CompositeClear, "layer src-over; paint; layer clear; paint; restore; restore"},
		{CompositeMode(200), "layer src-over; paint; layer clear; paint; restore; restore"},
	}
	for _, tt := range tests {
		c := draw(t, colrFixture(PaintComposite{Mode: tt.mode, Backdrop: ref("red"), Source: ref("blue")}))
		if got := c.String(); got != tt.want {
			t.Errorf("mode %d: ops = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCompositeBlendModeOrder(t *testing.T) {
	for m := CompositeClear; m <= CompositeLuminosity; m++ {
		if got := compositeBlendMode(m); got != BlendMode(m) {
			t.Errorf("compositeBlendMode(%d) = %v, want %v", m, got, BlendMode(m))
		}
	}
}

func TestColrLayers(t *testing.T) {
	e := colrFixture(PaintColrLayers{FirstLayer: 1, NumLayers: 2})
	e.layerList = []string{"blue", "red", "blue"}
	c := draw(t, e)
	if len(c.paints) != 2 || c.paints[0].Color != red || c.paints[1].Color != blue {
		t.Errorf("paints = %v, want red then blue", c.paints)
	}

	// A run past the end of the layer list stops at the end.
	e.nodes["root"] = PaintColrLayers{FirstLayer: 2, NumLayers: 5}
	c = draw(t, e)
	if len(c.paints) != 1 {
		t.Errorf("len(paints) = %d, want 1", len(c.paints))
	}
}

func TestColrLinearGradient(t *testing.T) {
	e := colrFixture(PaintLinearGradient{
		ColorLine: ColorLine{Stops: []ColorStop{
			{Offset: 12288, Color: ColorIndex{PaletteIndex: 1, Alpha: F2Dot14One}},
			{Offset: 4096, Color: one},
		}},
		P0: Pt(0, 0),
		P1: Pt(100, 0),
		P2: Pt(0, 100),
	})
	c := draw(t, e)
	lg, ok := c.paints[0].Shader.(LinearGradient)
	if !ok {
		t.Fatalf("shader = %T, want LinearGradient", c.paints[0].Shader)
	}
	if !pointNear(lg.Start, Pt(25, 0)) || !pointNear(lg.End, Pt(75, 0)) {
		t.Errorf("gradient line = %v..%v, want (25,0)..(75,0)", lg.Start, lg.End)
	}
	if lg.Offsets[0] != 0 || lg.Offsets[1] != 1 {
		t.Errorf("offsets = %v, want [0 1]", lg.Offsets)
	}
	if lg.Colors[0] != red || lg.Colors[1] != blue {
		t.Errorf("colors = %v, want red then blue", lg.Colors)
	}
}

func TestColrLinearGradientRotated(t *testing.T) {
	// P2 tilted: stops stay constant along P0P2, so the gradient runs along
	// the normal of P0P2.
	e := colrFixture(PaintLinearGradient{
		ColorLine: ColorLine{Stops: []ColorStop{{Offset: 0, Color: one}, {Offset: F2Dot14One, Color: one}}},
		P0:        Pt(0, 0),
		P1:        Pt(100, 0),
		P2:        Pt(100, 100),
	})
	lg := draw(t, e).paints[0].Shader.(LinearGradient)
	if !pointNear(lg.End, Pt(50, 50)) {
		t.Errorf("End = %v, want (50, 50)", lg.End)
	}
}

func TestColrDegenerateGradientDrawsNothing(t *testing.T) {
	e := colrFixture(PaintGlyph{Glyph: 2, Child: ref("grad")})
	e.nodes["grad"] = PaintLinearGradient{
		ColorLine: ColorLine{Stops: []ColorStop{{Offset: 0, Color: one}}},
		P0:        Pt(0, 0),
		P1:        Pt(10, 0),
		P2:        Pt(10, 0),
	}
	c := draw(t, e)
	if got, want := c.String(), "layer src-over; clip; restore"; got != want {
		t.Errorf("ops = %q, want %q", got, want)
	}
}

// Degeneracy is decided by P0P1 against the normal of P0P2: a gradient
// vector at right angles to P0P2 is the regular case, a parallel one has
// no extent.
func TestColrLinearGradientDegeneracy(t *testing.T) {
	full := ColorLine{Stops: []ColorStop{{Offset: 0, Color: one}, {Offset: F2Dot14One, Color: one}}}
	tests := []struct {
		name   string
		p1, p2 Point
		want   string
		end    Point
	}{
		{"p0p1 perpendicular to p0p2", Pt(100, 0), Pt(0, 100), "layer src-over; clip; paint; restore", Pt(100, 0)},
		{"p0p1 parallel to p0p2", Pt(10, 0), Pt(20, 0), "layer src-over; clip; restore", Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := colrFixture(PaintGlyph{Glyph: 2, Child: ref("grad")})
			e.nodes["grad"] = PaintLinearGradient{ColorLine: full, P0: Pt(0, 0), P1: tt.p1, P2: tt.p2}
			c := draw(t, e)
			if got := c.String(); got != tt.want {
				t.Fatalf("ops = %q, want %q", got, tt.want)
			}
			if len(c.paints) == 0 {
				return
			}
			if lg := c.paints[0].Shader.(LinearGradient); !pointNear(lg.End, tt.end) {
				t.Errorf("End = %v, want %v", lg.End, tt.end)
			}
		})
	}
}

func TestColrEmptyColorLine(t *testing.T) {
	c := draw(t, colrFixture(PaintRadialGradient{R1: 10}))
	if len(c.paints) != 0 {
		t.Errorf("paints = %v, want none", c.paints)
	}
}

func TestColrRadialGradient(t *testing.T) {
	e := colrFixture(PaintRadialGradient{
		ColorLine: ColorLine{Extend: ExtendReflect, Stops: []ColorStop{{Offset: 0, Color: one}, {Offset: F2Dot14One, Color: one}}},
		C0:        Pt(10, 10),
		C1:        Pt(10, 10),
		R1:        50,
	})
	e.upem = 200
	p := newPainter(e, &logCanvas{})
	p.upem = 200
	if !p.drawColrGlyph(1) {
		t.Fatal("drawColrGlyph() = false")
	}
	g := p.canvas.(*logCanvas).paints[0].Shader.(TwoPointConicalGradient)
	if g.EndRadius != 25 || !pointNear(g.End, Pt(5, -5)) {
		t.Errorf("end circle = %v r %v, want (5,-5) r 25", g.End, g.EndRadius)
	}
	if g.Tile != TileMirror {
		t.Errorf("Tile = %v, want TileMirror", g.Tile)
	}
}

func TestColrSweepGradient(t *testing.T) {
	e := colrFixture(PaintSweepGradient{
		ColorLine:  ColorLine{Extend: ExtendRepeat, Stops: []ColorStop{{Offset: 0, Color: one}, {Offset: F2Dot14One, Color: one}}},
		Center:     Pt(10, 20),
		StartAngle: 0,
		EndAngle:   F2Dot14One / 2,
	})
	g := draw(t, e).paints[0].Shader.(SweepGradient)
	if g.StartAngle != -180 || g.EndAngle != -270 {
		t.Errorf("angles = %v..%v, want -180..-270", g.StartAngle, g.EndAngle)
	}
	if !pointNear(g.Center, Pt(10, -20)) {
		t.Errorf("Center = %v, want (10, -20)", g.Center)
	}
	if g.Tile != TileRepeat {
		t.Errorf("Tile = %v, want TileRepeat", g.Tile)
	}
}

func matrixNear(a, b Matrix) bool {
	vals := [][2]float64{{a.A, b.A}, {a.B, b.B}, {a.C, b.C}, {a.D, b.D}, {a.E, b.E}, {a.F, b.F}}
	for _, v := range vals {
		if math.Abs(v[0]-v[1]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestColrTransforms(t *testing.T) {
	tests := []struct {
		name string
		node PaintNode
		want Matrix
	}{
		{
			name: "translate",
			node: PaintTransform{XX: 1 << 16, YY: 1 << 16, DX: 10 << 16, DY: 10 << 16, Child: ref("red")},
			want: Translate(10, -10),
		},
		{
			name: "scale",
			node: PaintTransform{XX: 2 << 16, YY: 1 << 15, Child: ref("red")},
			want: Scale(2, 0.5),
		},
		{
			name: "rotate quarter turn",
			node: PaintRotate{Angle: 1 << 15, Child: ref("red")},
			want: Matrix{B: 1, D: -1},
		},
		{
			name: "skew",
			node: PaintSkew{XSkewAngle: 1 << 14, Child: ref("red")},
			want: Shear(1, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := draw(t, colrFixture(tt.node))
			if got, want := c.String(), "layer src-over; concat; paint; restore"; got != want {
				t.Fatalf("ops = %q, want %q", got, want)
			}
			if !matrixNear(c.matrix[0], tt.want) {
				t.Errorf("matrix = %+v, want %+v", c.matrix[0], tt.want)
			}
		})
	}
}

func TestColrDepthLimit(t *testing.T) {
	e := colrFixture(PaintTransform{XX: 1 << 16, YY: 1 << 16, Child: ref("t2")})
	e.nodes["t2"] = PaintTransform{XX: 1 << 16, YY: 1 << 16, Child: ref("t3")}
	e.nodes["t3"] = PaintTransform{XX: 1 << 16, YY: 1 << 16, Child: ref("red")}

	c := &logCanvas{}
	p := newPainter(e, c)
	p.maxDepth = 3
	p.drawColrGlyph(1)
	if len(c.paints) != 0 {
		t.Errorf("paint drawn past the depth limit: %q", c.String())
	}

	c = &logCanvas{}
	p = newPainter(e, c)
	p.maxDepth = 4
	p.drawColrGlyph(1)
	if len(c.paints) != 1 {
		t.Errorf("ops = %q, want one paint at depth 4", c.String())
	}
	if p.depth != 0 {
		t.Errorf("depth = %d after drawing, want 0", p.depth)
	}
}

func TestColrGlyphCycle(t *testing.T) {
	e := colrFixture(PaintColrGlyph{Glyph: 3})
	e.roots[3] = "back"
	e.nodes["back"] = PaintColrGlyph{Glyph: 1}
	c := draw(t, e)
	if len(c.ops) != 0 {
		t.Errorf("ops = %q, want none", c.String())
	}

	self := colrFixture(PaintColrGlyph{Glyph: 1})
	if c := draw(t, self); len(c.ops) != 0 {
		t.Errorf("self reference ops = %q, want none", c.String())
	}
}

func TestColrGlyphReuse(t *testing.T) {
	// The same glyph may appear twice as long as it does not nest.
	e := colrFixture(PaintColrLayers{NumLayers: 2})
	e.layerList = []string{"use", "use"}
	e.nodes["use"] = PaintColrGlyph{Glyph: 3}
	e.roots[3] = "red"
	c := draw(t, e)
	if len(c.paints) != 2 {
		t.Errorf("ops = %q, want two paints", c.String())
	}
}

func TestColrMissingClipGlyph(t *testing.T) {
	c := draw(t, colrFixture(PaintGlyph{Glyph: 99, Child: ref("red")}))
	if len(c.ops) != 0 {
		t.Errorf("ops = %q, want none", c.String())
	}
}

func TestColrFlatLayers(t *testing.T) {
	e := newFakeEngine(100)
	e.palette = Palette{red}
	e.outlines[2] = squareOutline(0, 0, 4)
	e.outlines[4] = squareOutline(2, 2, 4)
	e.colrLayers[1] = []ColorLayer{
		{Glyph: 2, PaletteIndex: 0},
		{Glyph: 3, PaletteIndex: 0},
		{Glyph: 2, PaletteIndex: 7},
		{Glyph: 4, PaletteIndex: ForegroundPaletteIndex},
	}
	c := &logCanvas{}
	p := newPainter(e, c)
	if p.drawColrGlyph(1) {
		t.Fatal("drawColrGlyph() = true for a glyph without a paint graph")
	}
	if !p.drawColrLayers(1) {
		t.Fatal("drawColrLayers() = false")
	}
	if len(c.paints) != 2 {
		t.Fatalf("ops = %q, want two paths", c.String())
	}
	if c.paints[0].Color != red || c.paints[1].Color != (color.NRGBA{A: 0xFF}) {
		t.Errorf("colors = %v, %v, want red and black", c.paints[0].Color, c.paints[1].Color)
	}
	if p.drawColrLayers(5) {
		t.Error("drawColrLayers() = true for a glyph without layers")
	}
}
