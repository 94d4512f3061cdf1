package view

import (
	"math"
	"testing"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
)

const tolerance = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func testViewport() Viewport {
	return Viewport{
		Center:    types.Pointf64{X: -0.6, Y: 0.25},
		RealRange: 3.6,
		ImagRange: 2.7,
	}
}

func TestViewportRect(t *testing.T) {
	r := testViewport().Rect()
	if !near(r.RealLo, -2.4) || !near(r.RealHi, 1.2) || !near(r.ImagLo, -1.1) || !near(r.ImagHi, 1.6) {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestPanReversible(t *testing.T) {
	tests := []struct {
		name    string
		there   Direction
		back    Direction
		axisX   bool
		forward float64
	}{
		{"right-left", Right, Left, true, 0.36},
		{"left-right", Left, Right, true, -0.36},
		{"down-up", Down, Up, false, 0.27},
		{"up-down", Up, Down, false, -0.27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testViewport()
			orig := v.Center
			v.Pan(tt.there)
			moved := v.Center.Y - orig.Y
			if tt.axisX {
				moved = v.Center.X - orig.X
			}
			if !near(moved, tt.forward) {
				t.Errorf("pan moved %v, want %v", moved, tt.forward)
			}
			v.Pan(tt.back)
			if !near(v.Center.X, orig.X) || !near(v.Center.Y, orig.Y) {
				t.Errorf("center = %+v, want %+v", v.Center, orig)
			}
		})
	}
}

func TestZoomReversible(t *testing.T) {
	v := testViewport()
	v.ZoomIn(ZoomRatio)
	if v.RealRange >= 3.6 || v.ImagRange >= 2.7 {
		t.Errorf("zoom in did not shrink: %+v", v)
	}
	v.ZoomOut(ZoomRatio)
	if !near(v.RealRange, 3.6) || !near(v.ImagRange, 2.7) {
		t.Errorf("ranges = %v, %v after zoom in/out", v.RealRange, v.ImagRange)
	}
	if v.Center != testViewport().Center {
		t.Errorf("zoom moved the center to %+v", v.Center)
	}
}

func TestRecenterMidpoint(t *testing.T) {
	for _, size := range []types.Pointi{{X: 800, Y: 600}, {X: 640, Y: 480}, {X: 100, Y: 300}} {
		v := testViewport()
		orig := v.Center
		v.Recenter(types.Pointi{X: size.X / 2, Y: size.Y / 2}, size.X, size.Y)
		if !near(v.Center.X, orig.X) || !near(v.Center.Y, orig.Y) {
			t.Errorf("%dx%d: center = %+v, want %+v", size.X, size.Y, v.Center, orig)
		}
	}
}

func TestRecenterCorner(t *testing.T) {
	v := testViewport()
	v.Recenter(types.Pointi{X: 0, Y: 0}, 800, 600)
	if !near(v.Center.X, -2.4) || !near(v.Center.Y, -1.1) {
		t.Errorf("center = %+v, want (-2.4, -1.1)", v.Center)
	}
	// ranges are untouched
	if v.RealRange != 3.6 || v.ImagRange != 2.7 {
		t.Errorf("ranges changed: %v, %v", v.RealRange, v.ImagRange)
	}
}

func TestRecenterUsesHeightForImag(t *testing.T) {
	v := testViewport()
	// bottom row of a wide window must land near ImagHi, not past it
	v.Recenter(types.Pointi{X: 400, Y: 599}, 800, 600)
	r := testViewport().Rect()
	if v.Center.Y >= r.ImagHi || v.Center.Y < r.ImagHi-2.7/100 {
		t.Errorf("center.Y = %v, want just below %v", v.Center.Y, r.ImagHi)
	}
}

func TestDrag(t *testing.T) {
	v := testViewport()
	v.Drag(types.Pointi{X: 80, Y: -60}, 800, 600)
	if !near(v.Center.X, -0.6+0.36) || !near(v.Center.Y, 0.25-0.27) {
		t.Errorf("center = %+v", v.Center)
	}
}
