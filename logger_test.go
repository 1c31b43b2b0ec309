package glyphmask

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nopHandler.Enabled() = true, want false")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() error = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("k", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dst := NewMask(image.Rect(0, 0, 4, 1), FormatBW)
	src := NewSourceBitmap(make([]byte, 4*4), 4, 1, 16, PixelBGRA)
	_ = CopyBitmap(src, dst)

	out := buf.String()
	if !strings.Contains(out, "unsupported bitmap conversion") {
		t.Errorf("log output = %q, want conversion message", out)
	}
	if !strings.Contains(out, "from=bgra") || !strings.Contains(out, "to=BW") {
		t.Errorf("log output = %q, want from and to attributes", out)
	}
}

func TestWarnLevelFontProblems(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	tests := []struct {
		name   string
		engine func() *fakeEngine
		format MaskFormat
		want   string
	}{
		{"engine failure", func() *fakeEngine {
			e := newFakeEngine(1000)
			e.loadErr = errors.New("corrupt font")
			return e
		}, FormatA8, "engine failure"},
		{"missing palette", func() *fakeEngine {
			e := colrFixture(PaintSolid{Color: one})
			e.outlines[1] = squareOutline(0, 0, 2)
			e.palette = nil
			return e
		}, FormatARGB32, "missing palette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

			g := glyphFor(1, tt.format, image.Rect(0, -2, 2, 0))
			if err := NewScaler(tt.engine(), &logBackend{}).GenerateImage(g); err == nil {
				t.Fatal("GenerateImage() error = nil, want error")
			}
			if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, tt.want) {
				t.Errorf("log output = %q, want a WARN %q record", out, tt.want)
			}
		})
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger enabled after SetLogger(nil)")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(nopHandler{}))
			} else {
				Logger().Debug("concurrent", slog.Int("i", i))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabled(b *testing.B) {
	for b.Loop() {
		Logger().Debug("glyphmask: bench", slog.Int("glyph", 7))
	}
}
