package termsink

import "image/color"
import "testing"

import "github.com/gdamore/tcell/v2"

import "github.com/tinne26/ftxt/sink"

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	err := screen.Init()
	if err != nil { t.Fatalf("screen init: %s", err) }
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestPresentHalfBlocks(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	termSink := New(screen)
	w, h := termSink.Canvas().Screen().Bounds().Dx(), termSink.Canvas().Screen().Bounds().Dy()
	if w != 4 || h != 4 { t.Fatalf("expected 4x4 canvas, got %dx%d", w, h) }

	img, err := termSink.Upload(sink.CoverageToRGBA([]byte{255}), 1, 1)
	if err != nil { t.Fatalf("upload: %s", err) }
	err = termSink.Draw(img, 1, 1, color.RGBA{255, 0, 0, 255})
	if err != nil { t.Fatalf("draw: %s", err) }
	termSink.Present()

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != halfBlock { t.Fatalf("expected half block, got %q", mainc) }
	fg, bg, _ := style.Decompose()
	if r, g, b := fg.RGB(); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black top pixel, got %d %d %d", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Fatalf("expected red bottom pixel, got %d %d %d", r, g, b)
	}
}

func TestPresentBackground(t *testing.T) {
	screen := newTestScreen(t, 2, 1)
	termSink := New(screen)
	termSink.SetBackground(color.RGBA{0, 0, 255, 255})
	termSink.Present()

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if r, g, b := fg.RGB(); r != 0 || g != 0 || b != 255 {
		t.Fatalf("expected blue background, got %d %d %d", r, g, b)
	}
}
