package export

import (
	"fmt"
	"strings"

	ink "github.com/gogpu/ink"
)

// SVG renders the frame into an SVG document. Layers become groups
// carrying the layer opacity; strokes become path elements with round
// caps and joins.
func SVG(frame *ink.FrameSnapshot) ([]byte, error) {
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("export: invalid frame dimensions")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		frame.Width, frame.Height, frame.Width, frame.Height)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`,
		frame.Width, frame.Height, hexColor(frame.Background))
	sb.WriteByte('\n')

	for _, lf := range frame.Layers {
		if lf.Opacity <= 0 {
			continue
		}
		fmt.Fprintf(&sb, `<g opacity="%s">`, trimFloat(lf.Opacity))
		sb.WriteByte('\n')
		for _, sr := range lf.Strokes {
			if sr.Path == nil || sr.Paint == nil || sr.Path.IsEmpty() {
				continue
			}
			writeSVGStroke(&sb, sr, frame.Background)
		}
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>\n")
	return []byte(sb.String()), nil
}

func writeSVGStroke(sb *strings.Builder, sr ink.StrokeRender, background ink.RGBA) {
	c := strokeColor(sr.Paint, background)
	d := pathData(sr.Path)

	if sr.Paint.Style == ink.PaintFill {
		fmt.Fprintf(sb, `<path d="%s" fill="%s" fill-opacity="%s"/>`,
			d, hexColor(c), trimFloat(c.A))
	} else {
		fmt.Fprintf(sb,
			`<path d="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`,
			d, hexColor(c), trimFloat(c.A), trimFloat(sr.Paint.LineWidth))
	}
	sb.WriteByte('\n')
}

// pathData converts path elements to an SVG path data string.
func pathData(p *ink.Path) string {
	var sb strings.Builder
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case ink.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", trimFloat(e.Point.X), trimFloat(e.Point.Y))
		case ink.LineTo:
			fmt.Fprintf(&sb, "L%s %s", trimFloat(e.Point.X), trimFloat(e.Point.Y))
		case ink.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				trimFloat(e.Control.X), trimFloat(e.Control.Y),
				trimFloat(e.Point.X), trimFloat(e.Point.Y))
		case ink.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				trimFloat(e.Control1.X), trimFloat(e.Control1.Y),
				trimFloat(e.Control2.X), trimFloat(e.Control2.Y),
				trimFloat(e.Point.X), trimFloat(e.Point.Y))
		case ink.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// trimFloat formats a float compactly, dropping trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
