package ink

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Vec
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Vec
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Vec
	Point   Vec
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Vec
	Control2 Vec
	Point    Vec
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a backend-agnostic description of stroke geometry, consumed by
// an external rasterizer together with a Paint.
type Path struct {
	elements []PathElement
	start    Vec // Starting point of current subpath
	current  Vec // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := V(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := V(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := V(cx, cy)
	pt := V(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := V(c1x, c1y)
	ctrl2 := V(c2x, c2y)
	pt := V(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Vec{}
	p.current = Vec{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Vec {
	return p.current
}

// BuildStrokePath converts an ordered point sequence into a renderable
// curve description. It is a pure function of its input.
//
// The produced geometry depends on the number of samples:
//   - 0 points: an empty path.
//   - 1 point: a filled circle of radius width/2 centered at the point,
//     so a single tap is visible.
//   - 2 points: a straight segment.
//   - 3 or more points: a quadratic spline where each interior point is
//     the control point of a curve ending at the midpoint of that point
//     and the next, finished with a straight segment to the last point.
//     The rolling-midpoint technique guarantees C1 continuity without a
//     fitting pass.
//
// The path is recomputed from scratch for every new sample of the
// in-progress stroke; stroke length is bounded by drawing duration, not
// by canvas lifetime, so the rebuild stays cheap.
func BuildStrokePath(points []Point, width float64) *Path {
	p := NewPath()
	switch len(points) {
	case 0:
		return p
	case 1:
		p.Circle(points[0].X, points[0].Y, width/2)
		return p
	case 2:
		p.MoveTo(points[0].X, points[0].Y)
		p.LineTo(points[1].X, points[1].Y)
		return p
	}

	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points)-1; i++ {
		mid := points[i].Pos().Midpoint(points[i+1].Pos())
		p.QuadraticTo(points[i].X, points[i].Y, mid.X, mid.Y)
	}
	last := points[len(points)-1]
	p.LineTo(last.X, last.Y)
	return p
}
