package fractal

import "fmt"

// Rect is a rectangle of the complex plane.
type Rect struct {
	RealLo, RealHi float64
	ImagLo, ImagHi float64
}

// Point maps pixel (x, y) of a width x height grid into r. Pixel (0, 0) is
// (RealLo, ImagLo); the high edges are never reached.
func (r Rect) Point(x, y, width, height int) complex128 {
	return complex(
		r.RealLo+float64(x)*(r.RealHi-r.RealLo)/float64(width),
		r.ImagLo+float64(y)*(r.ImagHi-r.ImagLo)/float64(height),
	)
}

// Render evaluates every pixel of a width x height frame covering r.
func Render(r Rect, width, height int, p Palette, l Layout) (*PixelBuffer, error) {
	if len(p) != MaxIteration+1 {
		return nil, fmt.Errorf("palette has %d entries, want %d", len(p), MaxIteration+1)
	}
	buf, err := NewPixelBuffer(width, height, l)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y += 1 {
		for x := 0; x < width; x += 1 {
			it, escaped := Evaluate(r.Point(x, y, width, height))
			buf.SetColor(x, y, p.Lookup(it, escaped))
		}
	}
	return buf, nil
}
