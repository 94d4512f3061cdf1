package fractal

import (
	"fmt"
	"image/color"
)

// Color is an RGB triple. Its packed form is 0xRRGGBB.
type Color struct {
	R, G, B uint8
}

func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

const (
	PaletteStart = 0x000022
	PaletteEnd   = 0xd62f2f
	InSetColor   = 0x050505
)

// Palette maps an escape iteration to a color. The last entry is used for
// points in the set.
type Palette []Color

// BuildPalette steps each channel from start by a fixed integer increment,
// floor(|end - start| / steps), so the last escape color usually falls short
// of end. inSet is appended as the sentinel.
func BuildPalette(start, end Color, steps int, inSet Color) (Palette, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("palette needs a positive number of steps, got %d", steps)
	}
	rStep := channelStep(start.R, end.R, steps)
	gStep := channelStep(start.G, end.G, steps)
	bStep := channelStep(start.B, end.B, steps)

	p := make(Palette, steps+1)
	for i := 0; i < steps; i += 1 {
		p[i] = Color{
			R: uint8(int(start.R) + i*rStep),
			G: uint8(int(start.G) + i*gStep),
			B: uint8(int(start.B) + i*bStep),
		}
	}
	p[steps] = inSet
	return p, nil
}

// DefaultPalette is the palette both variants share.
func DefaultPalette() (Palette, error) {
	return BuildPalette(
		ColorFromHex(PaletteStart),
		ColorFromHex(PaletteEnd),
		MaxIteration,
		ColorFromHex(InSetColor),
	)
}

func channelStep(from, to uint8, steps int) int {
	d := int(to) - int(from)
	if d < 0 {
		d = -d
	}
	return d / steps
}

func (p Palette) InSet() Color {
	return p[len(p)-1]
}

// Lookup picks the color for an Evaluate result.
func (p Palette) Lookup(iteration int, escaped bool) Color {
	if !escaped {
		return p.InSet()
	}
	return p[iteration]
}
