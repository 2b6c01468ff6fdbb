package ink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

// SoftwareRasterizer is the default pure-Go implementation of Rasterizer.
// It renders each stroke as a coverage mask (round dabs stamped along the
// flattened path, filled circles for single-tap dots), composites strokes
// per layer with source-over or destination-out, applies the airbrush
// blur, and encodes the result.
//
// It is optimized for correctness over speed; it serves exports, not the
// interactive draw loop. Blend modes other than normal and
// destination-out are approximated as normal.
type SoftwareRasterizer struct{}

// NewSoftwareRasterizer creates the default export rasterizer.
func NewSoftwareRasterizer() *SoftwareRasterizer {
	return &SoftwareRasterizer{}
}

// Rasterize implements Rasterizer.
func (r *SoftwareRasterizer) Rasterize(frame *FrameSnapshot, opts ExportOptions) ([]byte, error) {
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("ink: invalid frame dimensions")
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("ink: negative export scale %v", scale)
	}
	w := int(math.Round(float64(frame.Width) * scale))
	h := int(math.Round(float64(frame.Height) * scale))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("ink: export scale %v yields empty image", scale)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(frame.Background.Color()), image.Point{}, draw.Src)

	for _, lf := range frame.Layers {
		if lf.Opacity <= 0 || len(lf.Strokes) == 0 {
			continue
		}
		layerImg := image.NewNRGBA(canvas.Bounds())
		for _, sr := range lf.Strokes {
			if sr.Path == nil || sr.Paint == nil || sr.Path.IsEmpty() {
				continue
			}
			mask := strokeMask(sr.Path, sr.Paint, scale, w, h)
			if sr.Paint.BlurRadius > 0 {
				mask = blurMask(mask, sr.Paint.BlurRadius*scale)
			}
			if sr.Paint.BlendMode == BlendDestinationOut {
				compositeOut(layerImg, mask, sr.Paint.Color.A)
			} else {
				compositeOver(layerImg, mask, sr.Paint.Color)
			}
		}
		compositeLayer(canvas, layerImg, lf.Opacity)
	}

	var buf bytes.Buffer
	switch opts.Format {
	case FormatPNG:
		if err := png.Encode(&buf, canvas); err != nil {
			return nil, fmt.Errorf("ink: png encode: %w", err)
		}
	case FormatJPEG:
		q := opts.Quality
		if q == 0 {
			q = 90
		}
		if q < 1 || q > 100 {
			return nil, fmt.Errorf("ink: jpeg quality %d out of range [1, 100]", opts.Quality)
		}
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: q}); err != nil {
			return nil, fmt.Errorf("ink: jpeg encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("ink: unknown export format %d", opts.Format)
	}
	return buf.Bytes(), nil
}

// strokeMask rasterizes one stroke into an alpha coverage mask.
// Overlapping dabs saturate, so the mask stays uniform inside the stroke.
func strokeMask(p *Path, paint *Paint, scale float64, w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	if paint.Style == PaintFill {
		addPath(z, p, scale)
	} else {
		radius := math.Max(paint.LineWidth*scale/2, 0.5)
		for _, line := range flattenPath(p, scale) {
			stampPolyline(z, line, radius)
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})
	return mask
}

// addPath feeds path elements to the rasterizer for filling.
func addPath(z *vector.Rasterizer, p *Path, s float64) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			z.MoveTo(float32(e.Point.X*s), float32(e.Point.Y*s))
		case LineTo:
			z.LineTo(float32(e.Point.X*s), float32(e.Point.Y*s))
		case QuadTo:
			z.QuadTo(float32(e.Control.X*s), float32(e.Control.Y*s),
				float32(e.Point.X*s), float32(e.Point.Y*s))
		case CubicTo:
			z.CubeTo(float32(e.Control1.X*s), float32(e.Control1.Y*s),
				float32(e.Control2.X*s), float32(e.Control2.Y*s),
				float32(e.Point.X*s), float32(e.Point.Y*s))
		case Close:
			z.ClosePath()
		}
	}
}

// flattenPath converts a path into scaled polylines, one per subpath.
func flattenPath(p *Path, scale float64) [][]Vec {
	var subpaths [][]Vec
	var cur []Vec
	var pos Vec

	flush := func() {
		if len(cur) > 0 {
			subpaths = append(subpaths, cur)
			cur = nil
		}
	}

	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			flush()
			pos = e.Point.Mul(scale)
			cur = append(cur, pos)
		case LineTo:
			pos = e.Point.Mul(scale)
			cur = append(cur, pos)
		case QuadTo:
			p0 := pos
			c := e.Control.Mul(scale)
			p1 := e.Point.Mul(scale)
			n := curveSegments(p0.Distance(c) + c.Distance(p1))
			for i := 1; i <= n; i++ {
				cur = append(cur, evalQuad(p0, c, p1, float64(i)/float64(n)))
			}
			pos = p1
		case CubicTo:
			p0 := pos
			c1 := e.Control1.Mul(scale)
			c2 := e.Control2.Mul(scale)
			p1 := e.Point.Mul(scale)
			n := curveSegments(p0.Distance(c1) + c1.Distance(c2) + c2.Distance(p1))
			for i := 1; i <= n; i++ {
				cur = append(cur, evalCubic(p0, c1, c2, p1, float64(i)/float64(n)))
			}
			pos = p1
		case Close:
			if len(cur) > 1 {
				cur = append(cur, cur[0])
			}
		}
	}
	flush()
	return subpaths
}

// curveSegments picks a subdivision count from the control net length.
func curveSegments(netLength float64) int {
	n := int(math.Ceil(netLength / 3))
	if n < 4 {
		n = 4
	}
	if n > 64 {
		n = 64
	}
	return n
}

func evalQuad(p0, c, p1 Vec, t float64) Vec {
	u := 1 - t
	return p0.Mul(u * u).Add(c.Mul(2 * u * t)).Add(p1.Mul(t * t))
}

func evalCubic(p0, c1, c2, p1 Vec, t float64) Vec {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(c1.Mul(3 * u * u * t)).
		Add(c2.Mul(3 * u * t * t)).
		Add(p1.Mul(t * t * t))
}

// stampPolyline adds round dabs along the polyline, spaced at half the
// dab radius so coverage stays continuous.
func stampPolyline(z *vector.Rasterizer, line []Vec, radius float64) {
	if len(line) == 0 {
		return
	}
	step := math.Max(radius/2, 0.5)
	stampCircle(z, line[0], radius)
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		d := a.Distance(b)
		for t := step; t < d; t += step {
			stampCircle(z, a.Lerp(b, t/d), radius)
		}
		stampCircle(z, b, radius)
	}
}

// stampCircle adds one circular contour built from four cubic Beziers.
func stampCircle(z *vector.Rasterizer, c Vec, r float64) {
	const k = 0.5522847498307936
	o := r * k
	x, y := c.X, c.Y
	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y+o), float32(x+o), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x-o), float32(y+r), float32(x-r), float32(y+o), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y-o), float32(x-o), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x+o), float32(y-r), float32(x+r), float32(y-o), float32(x+r), float32(y))
	z.ClosePath()
}

// blurMask applies a Gaussian blur to the coverage mask.
func blurMask(mask *image.Alpha, radius float64) *image.Alpha {
	if radius <= 0 {
		return mask
	}
	b := mask.Bounds()
	rgba := image.NewRGBA(b)
	for i, a := range mask.Pix {
		rgba.Pix[i*4+3] = a
	}
	blurred := blur.Gaussian(rgba, radius)
	out := image.NewAlpha(b)
	for i := range out.Pix {
		out.Pix[i] = blurred.Pix[i*4+3]
	}
	return out
}

// compositeOver draws color c over dst through the coverage mask,
// straight-alpha source-over.
func compositeOver(dst *image.NRGBA, mask *image.Alpha, c RGBA) {
	for i := 0; i < len(mask.Pix); i++ {
		cov := float64(mask.Pix[i]) / 255
		if cov == 0 {
			continue
		}
		sa := cov * c.A
		j := i * 4
		dr := float64(dst.Pix[j]) / 255
		dg := float64(dst.Pix[j+1]) / 255
		db := float64(dst.Pix[j+2]) / 255
		da := float64(dst.Pix[j+3]) / 255

		oa := sa + da*(1-sa)
		if oa == 0 {
			dst.Pix[j+3] = 0
			continue
		}
		dst.Pix[j] = uint8(clamp255((c.R*sa + dr*da*(1-sa)) / oa * 255))
		dst.Pix[j+1] = uint8(clamp255((c.G*sa + dg*da*(1-sa)) / oa * 255))
		dst.Pix[j+2] = uint8(clamp255((c.B*sa + db*da*(1-sa)) / oa * 255))
		dst.Pix[j+3] = uint8(clamp255(oa * 255))
	}
}

// compositeOut removes destination alpha where the mask is covered
// (Porter-Duff destination-out), implementing the eraser.
func compositeOut(dst *image.NRGBA, mask *image.Alpha, alpha float64) {
	for i := 0; i < len(mask.Pix); i++ {
		cov := float64(mask.Pix[i]) / 255 * alpha
		if cov == 0 {
			continue
		}
		j := i*4 + 3
		da := float64(dst.Pix[j]) / 255
		dst.Pix[j] = uint8(clamp255(da * (1 - cov) * 255))
	}
}

// compositeLayer composites a finished layer image onto the canvas with
// the layer opacity.
func compositeLayer(dst, src *image.NRGBA, opacity float64) {
	for j := 0; j < len(src.Pix); j += 4 {
		sa := float64(src.Pix[j+3]) / 255 * opacity
		if sa == 0 {
			continue
		}
		sr := float64(src.Pix[j]) / 255
		sg := float64(src.Pix[j+1]) / 255
		sb := float64(src.Pix[j+2]) / 255
		dr := float64(dst.Pix[j]) / 255
		dg := float64(dst.Pix[j+1]) / 255
		db := float64(dst.Pix[j+2]) / 255
		da := float64(dst.Pix[j+3]) / 255

		oa := sa + da*(1-sa)
		if oa == 0 {
			dst.Pix[j+3] = 0
			continue
		}
		dst.Pix[j] = uint8(clamp255((sr*sa + dr*da*(1-sa)) / oa * 255))
		dst.Pix[j+1] = uint8(clamp255((sg*sa + dg*da*(1-sa)) / oa * 255))
		dst.Pix[j+2] = uint8(clamp255((sb*sa + db*da*(1-sa)) / oa * 255))
		dst.Pix[j+3] = uint8(clamp255(oa * 255))
	}
}
