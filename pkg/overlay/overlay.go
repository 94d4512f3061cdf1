// Package overlay draws the viewport status box onto a rendered frame.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/view"
)

const (
	margin     = 4
	lineHeight = 16
)

var (
	textColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	boxColor  = color.RGBA{A: 0xa0}
)

// Lines is the text shown for v.
func Lines(v view.Viewport) []string {
	return []string{
		fmt.Sprintf("center %.8g %+.8gi", v.Center.X, v.Center.Y),
		fmt.Sprintf("range  %.4g x %.4g", v.RealRange, v.ImagRange),
	}
}

// Draw paints the status box into the top-left corner of dst and returns
// the area it covered.
func Draw(dst draw.Image, v view.Viewport) image.Rectangle {
	lines := Lines(v)
	meas := &font.Drawer{Face: basicfont.Face7x13}
	width := 0
	for _, l := range lines {
		if w := meas.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	box := image.Rect(0, 0, width+2*margin, len(lines)*lineHeight+margin).
		Add(dst.Bounds().Min).
		Intersect(dst.Bounds())
	draw.Draw(dst, box, image.NewUniform(boxColor), image.Point{}, draw.Over)

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(textColor), Face: basicfont.Face7x13}
	for i, l := range lines {
		d.Dot = fixed.P(box.Min.X+margin, box.Min.Y+(i+1)*lineHeight-margin)
		d.DrawString(l)
	}
	return box
}
