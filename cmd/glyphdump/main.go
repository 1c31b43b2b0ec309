// Command glyphdump renders a line of text through glyphmask and writes the
// glyph masks to a PNG file.
//
// Usage:
//
//	glyphdump -text "Hamburgefonstiv" -size 32 -format lcd -output lcd.png
//
// Without -font the Go Regular font is used.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphmask"
	"github.com/gogpu/glyphmask/gotext"
	"github.com/gogpu/glyphmask/internal/parallel"
	"github.com/gogpu/glyphmask/raster"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType or OpenType font file (default Go Regular)")
		size     = flag.Float64("size", 32, "pixels per em")
		text     = flag.String("text", "Hamburgefonstiv", "text to render")
		format   = flag.String("format", "a8", "mask format: bw, a8, lcd, lcdv or argb")
		bgr      = flag.Bool("bgr", false, "BGR subpixel order for lcd formats")
		contrast = flag.Float64("contrast", 0, "coverage contrast boost, 0 to 1")
		gamma    = flag.Float64("gamma", 1, "coverage gamma")
		workers  = flag.Int("workers", 0, "render workers (default GOMAXPROCS)")
		output   = flag.String("output", "glyphs.png", "output file")
		verbose  = flag.Bool("v", false, "log glyph diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		glyphmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data := goregular.TTF
	if *fontPath != "" {
		var err error
		if data, err = os.ReadFile(*fontPath); err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}

	cfg, err := parseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	cfg.bgr = *bgr
	cfg.preBlend = glyphmask.NewPreBlend(*contrast, *gamma)

	line, err := renderLine(data, *size, []rune(*text), cfg, *workers)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, compose(line)); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %d glyphs to %s\n", len(line.glyphs), *output)
}

// config selects the mask format and LCD options.
type config struct {
	format   glyphmask.MaskFormat
	vertical bool
	bgr      bool
	preBlend *glyphmask.PreBlend
}

func parseFormat(s string) (config, error) {
	switch s {
	case "bw":
		return config{format: glyphmask.FormatBW}, nil
	case "a8":
		return config{format: glyphmask.FormatA8}, nil
	case "lcd":
		return config{format: glyphmask.FormatLCD16}, nil
	case "lcdv":
		return config{format: glyphmask.FormatLCD16, vertical: true}, nil
	case "argb":
		return config{format: glyphmask.FormatARGB32}, nil
	}
	return config{}, fmt.Errorf("unknown format %q", s)
}

func (c config) options() []glyphmask.Option {
	return []glyphmask.Option{
		glyphmask.WithLCD(c.bgr, c.vertical),
		glyphmask.WithPreBlend(c.preBlend),
		glyphmask.WithSubpixel(true),
	}
}

// placed is a rendered glyph and its pen position in the line.
type placed struct {
	glyph *glyphmask.Glyph
	x     int
	err   error
}

type line struct {
	glyphs   []placed
	width    int
	ascent   int
	descent  int
	format   glyphmask.MaskFormat
	rendered int
}

// renderLine lays out runes on one baseline and renders them in parallel.
// Each worker owns its engine; engines cache glyph data and are only shared
// through the pool's worker index.
func renderLine(data []byte, size float64, runes []rune, cfg config, workers int) (*line, error) {
	layout, err := gotext.Load(data, size)
	if err != nil {
		return nil, err
	}
	ext, _ := layout.Face().FontHExtents()
	scale := size / float64(layout.UnitsPerEm())

	ln := &line{
		glyphs:  make([]placed, len(runes)),
		ascent:  int(float64(ext.Ascender)*scale + 0.5),
		descent: int(float64(-ext.Descender)*scale + 0.5),
		format:  cfg.format,
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()
	engines := make([]*gotext.Engine, pool.Workers())

	pen := 0.0
	tasks := make([]parallel.Task, 0, len(runes))
	for i, r := range runes {
		gid, ok := layout.Face().NominalGlyph(r)
		if !ok {
			glyphmask.Logger().Debug("glyphdump: no glyph", slog.String("rune", string(r)))
		}
		ix, _, subX, _ := glyphmask.QuantizeSubpixel(pen, 0)
		pen += float64(layout.Face().HorizontalAdvance(gid)) * scale
		ln.glyphs[i] = placed{x: ix}

		id := glyphmask.GlyphID(gid)
		tasks = append(tasks, func(worker int) {
			e := engines[worker]
			if e == nil {
				var err error
				if e, err = gotext.Load(data, size); err != nil {
					ln.glyphs[i].err = err
					return
				}
				engines[worker] = e
			}
			ln.glyphs[i].glyph, ln.glyphs[i].err = renderGlyph(e, id, subX, cfg)
		})
	}
	ln.width = int(pen+0.5) + 2

	pool.ExecuteAll(tasks)

	for _, p := range ln.glyphs {
		if p.err != nil {
			glyphmask.Logger().Warn("glyphdump: glyph failed", slog.Any("err", p.err))
			continue
		}
		ln.rendered++
	}
	return ln, nil
}

func renderGlyph(e *gotext.Engine, id glyphmask.GlyphID, subX fixed.Int26_6, cfg config) (*glyphmask.Glyph, error) {
	g := &glyphmask.Glyph{ID: id, Format: cfg.format, SubX: subX}
	r := e.GlyphBounds(id, cfg.format)
	if subX != 0 && !r.Empty() {
		r.Max.X++
	}
	g.SetBounds(r)
	if r.Empty() {
		return g, nil
	}
	s := glyphmask.NewScaler(e, raster.NewBackend(), cfg.options()...)
	if err := s.GenerateImage(g); err != nil {
		return nil, err
	}
	return g, nil
}

// compose draws every glyph of the line onto a white strip.
func compose(ln *line) image.Image {
	const margin = 4
	h := ln.ascent + ln.descent + 2*margin
	dst := newCanvas(ln.width+2*margin, h)
	baseline := margin + ln.ascent
	for _, p := range ln.glyphs {
		if p.glyph == nil {
			continue
		}
		dst.drawGlyph(p.glyph, margin+p.x, baseline)
	}
	return dst.img
}
