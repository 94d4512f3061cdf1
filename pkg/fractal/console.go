package fractal

import (
	"bufio"
	"io"
)

const (
	// AxisDivisions is how many samples the console grid takes per axis.
	AxisDivisions = 46

	InGlyph   = '*'
	OutGlyph  = ' '
	Separator = ' '
)

// ConsoleRect is the region the console variant prints.
var ConsoleRect = Rect{RealLo: -2, RealHi: 1, ImagLo: -1.5, ImagHi: 1.5}

// Print writes an ASCII picture of r to w, one line per grid row from
// ImagLo downwards, each sample followed by Separator.
func Print(w io.Writer, r Rect) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < AxisDivisions; row += 1 {
		for col := 0; col < AxisDivisions; col += 1 {
			glyph := byte(OutGlyph)
			if Member(r.Point(col, row, AxisDivisions, AxisDivisions)) {
				glyph = InGlyph
			}
			bw.WriteByte(glyph)
			bw.WriteByte(Separator)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
