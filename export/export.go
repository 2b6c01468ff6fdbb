// Package export renders ink frame snapshots into vector document
// formats. Unlike the raster exporter built into the engine, these
// exporters keep strokes as resolution-independent curves.
//
// Vector formats have no destination-out compositing, so eraser strokes
// are approximated by drawing them in the background color.
package export

import (
	"fmt"

	ink "github.com/gogpu/ink"
)

// rgb255 converts a color component range [0, 1] to the [0, 255] ints
// most document formats expect.
func rgb255(c ink.RGBA) (int, int, int) {
	return int(clamp(c.R*255, 0, 255)), int(clamp(c.G*255, 0, 255)), int(clamp(c.B*255, 0, 255))
}

// hexColor formats a color as #RRGGBB.
func hexColor(c ink.RGBA) string {
	r, g, b := rgb255(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// strokeColor resolves the draw color for a stroke, substituting the
// background for eraser strokes.
func strokeColor(p *ink.Paint, background ink.RGBA) ink.RGBA {
	if p.BlendMode == ink.BlendDestinationOut {
		bg := background
		bg.A = p.Color.A
		return bg
	}
	return p.Color
}
