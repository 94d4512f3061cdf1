package fractal

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of bytes per pixel.
const Channels = 4

// Layout gives the byte offset of each channel inside one pixel.
type Layout struct {
	R, G, B, A int
}

var (
	// LayoutRGBA8888 is SDL's PIXELFORMAT_RGBA8888 (packed 0xRRGGBBAA)
	// as it sits in little-endian memory.
	LayoutRGBA8888 = Layout{R: 3, G: 2, B: 1, A: 0}
	// LayoutRGBA32 stores bytes in R, G, B, A order, like image.RGBA.
	LayoutRGBA32 = Layout{R: 0, G: 1, B: 2, A: 3}
)

// PixelBuffer is a row-major frame, top row first.
type PixelBuffer struct {
	Width  int
	Height int
	Stride int
	Layout Layout
	Pix    []byte
}

func NewPixelBuffer(width, height int, l Layout) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid pixel buffer size %dx%d", width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Stride: Channels * width,
		Layout: l,
		Pix:    make([]byte, Channels*width*height),
	}, nil
}

func (b *PixelBuffer) offset(x, y int) int {
	return y*b.Stride + x*Channels
}

// SetColor writes an opaque pixel.
func (b *PixelBuffer) SetColor(x, y int, c Color) {
	o := b.offset(x, y)
	b.Pix[o+b.Layout.R] = c.R
	b.Pix[o+b.Layout.G] = c.G
	b.Pix[o+b.Layout.B] = c.B
	b.Pix[o+b.Layout.A] = 0xff
}

func (b *PixelBuffer) ColorAt(x, y int) Color {
	o := b.offset(x, y)
	return Color{
		R: b.Pix[o+b.Layout.R],
		G: b.Pix[o+b.Layout.G],
		B: b.Pix[o+b.Layout.B],
	}
}

func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	return b.ColorAt(x, y)
}

// Set makes PixelBuffer a draw.Image. Translucent colors are blended over
// the existing pixel.
func (b *PixelBuffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	r, g, bl, a := c.RGBA()
	if a == 0 {
		return
	}
	if a != 0xffff {
		dst := b.ColorAt(x, y)
		r += uint32(dst.R) * 0x101 * (0xffff - a) / 0xffff
		g += uint32(dst.G) * 0x101 * (0xffff - a) / 0xffff
		bl += uint32(dst.B) * 0x101 * (0xffff - a) / 0xffff
	}
	b.SetColor(x, y, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)})
}
