package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	ink "github.com/gogpu/ink"
)

// PDF renders the frame into a single-page PDF document sized to the
// canvas in points. Strokes stay vector curves: quadratic spline segments
// map directly to PDF curve operators.
func PDF(frame *ink.FrameSnapshot) ([]byte, error) {
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("export: invalid frame dimensions")
	}
	w := float64(frame.Width)
	h := float64(frame.Height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	br, bg, bb := rgb255(frame.Background)
	pdf.SetFillColor(br, bg, bb)
	pdf.Rect(0, 0, w, h, "F")

	for _, lf := range frame.Layers {
		if lf.Opacity <= 0 {
			continue
		}
		for _, sr := range lf.Strokes {
			if sr.Path == nil || sr.Paint == nil || sr.Path.IsEmpty() {
				continue
			}
			drawPDFStroke(pdf, sr, lf.Opacity, frame.Background)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPDFStroke(pdf *gofpdf.Fpdf, sr ink.StrokeRender, layerOpacity float64, background ink.RGBA) {
	c := strokeColor(sr.Paint, background)
	r, g, b := rgb255(c)
	alpha := clamp(c.A*layerOpacity, 0, 1)
	pdf.SetAlpha(alpha, "Normal")

	for _, el := range sr.Path.Elements() {
		switch e := el.(type) {
		case ink.MoveTo:
			pdf.MoveTo(e.Point.X, e.Point.Y)
		case ink.LineTo:
			pdf.LineTo(e.Point.X, e.Point.Y)
		case ink.QuadTo:
			pdf.CurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case ink.CubicTo:
			pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y,
				e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ink.Close:
			pdf.ClosePath()
		}
	}

	if sr.Paint.Style == ink.PaintFill {
		pdf.SetFillColor(r, g, b)
		pdf.DrawPath("F")
	} else {
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(sr.Paint.LineWidth)
		pdf.DrawPath("D")
	}
	pdf.SetAlpha(1, "Normal")
}
