// Package view holds the visible region of the complex plane and the
// input-driven state machine that moves it.
package view

import (
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/joshvictor1024/sdl-mandelbrot/pkg/types"
)

const (
	// MoveRatio: a pan step is range / MoveRatio.
	MoveRatio = 10
	ZoomRatio = 1.1
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Viewport is the rectangle of the plane centred on Center.
// Both ranges stay positive.
type Viewport struct {
	Center    types.Pointf64
	RealRange float64
	ImagRange float64
}

func (v Viewport) Rect() fractal.Rect {
	return fractal.Rect{
		RealLo: v.Center.X - v.RealRange/2,
		RealHi: v.Center.X + v.RealRange/2,
		ImagLo: v.Center.Y - v.ImagRange/2,
		ImagHi: v.Center.Y + v.ImagRange/2,
	}
}

// Pan moves the center by a tenth of the range. Up heads towards ImagLo,
// which is the top row on screen.
func (v *Viewport) Pan(d Direction) {
	switch d {
	case Up:
		v.Center.Y -= v.ImagRange / MoveRatio
	case Down:
		v.Center.Y += v.ImagRange / MoveRatio
	case Left:
		v.Center.X -= v.RealRange / MoveRatio
	case Right:
		v.Center.X += v.RealRange / MoveRatio
	}
}

func (v *Viewport) ZoomIn(ratio float64) {
	v.RealRange /= ratio
	v.ImagRange /= ratio
}

func (v *Viewport) ZoomOut(ratio float64) {
	v.RealRange *= ratio
	v.ImagRange *= ratio
}

// PlanePoint is the plane coordinate under pixel p of a w x h screen.
func (v Viewport) PlanePoint(p types.Pointi, w, h int) types.Pointf64 {
	c := v.Rect().Point(p.X, p.Y, w, h)
	return types.Pointf64{X: real(c), Y: imag(c)}
}

// Recenter makes the plane point under pixel p the new center.
func (v *Viewport) Recenter(p types.Pointi, w, h int) {
	v.Center = v.PlanePoint(p, w, h)
}

// Drag shifts the center by a pixel delta.
func (v *Viewport) Drag(delta types.Pointi, w, h int) {
	v.Center.X += float64(delta.X) * v.RealRange / float64(w)
	v.Center.Y += float64(delta.Y) * v.ImagRange / float64(h)
}
