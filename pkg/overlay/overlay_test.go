package overlay

import (
	"image"
	"strings"
	"testing"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/view"
)

var testViewport = view.Viewport{
	Center:    types.Pointf64{X: -0.75, Y: 0.1},
	RealRange: 3.5,
	ImagRange: 2.5,
}

func TestLines(t *testing.T) {
	lines := Lines(testViewport)
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "-0.75") || !strings.Contains(lines[0], "+0.1i") {
		t.Errorf("center line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "3.5 x 2.5") {
		t.Errorf("range line = %q", lines[1])
	}
}

func TestDraw(t *testing.T) {
	const w, h = 320, 120
	buf, err := fractal.NewPixelBuffer(w, h, fractal.LayoutRGBA8888)
	if err != nil {
		t.Fatal(err)
	}
	bg := fractal.Color{R: 200, G: 100, B: 50}
	for y := 0; y < h; y += 1 {
		for x := 0; x < w; x += 1 {
			buf.SetColor(x, y, bg)
		}
	}

	box := Draw(buf, testViewport)
	if box.Empty() || box.Min != (image.Point{}) {
		t.Fatalf("box = %v", box)
	}
	if !box.In(buf.Bounds()) {
		t.Fatalf("box %v outside frame", box)
	}

	changed := 0
	for y := 0; y < h; y += 1 {
		for x := 0; x < w; x += 1 {
			inBox := (image.Point{X: x, Y: y}).In(box)
			same := buf.ColorAt(x, y) == bg
			if !inBox && !same {
				t.Fatalf("pixel (%d, %d) outside the box changed", x, y)
			}
			if inBox && !same {
				changed += 1
			}
		}
	}
	if changed != box.Dx()*box.Dy() {
		t.Errorf("%d of %d box pixels changed", changed, box.Dx()*box.Dy())
	}
}

func TestDrawClipsToSmallFrame(t *testing.T) {
	buf, err := fractal.NewPixelBuffer(10, 5, fractal.LayoutRGBA32)
	if err != nil {
		t.Fatal(err)
	}
	box := Draw(buf, testViewport)
	if box != buf.Bounds() {
		t.Errorf("box = %v, want %v", box, buf.Bounds())
	}
}
