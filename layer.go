package ink

import "github.com/google/uuid"

// Layer is an ordered, independently toggle-able collection of strokes,
// composited in Order. A layer owns its strokes exclusively.
type Layer struct {
	ID   string
	Name string

	// Strokes in draw order.
	Strokes []*Stroke

	// Opacity in [0, 1], applied when compositing the whole layer.
	Opacity float64

	BlendMode BlendMode
	Visible   bool

	// Locked layers reject stroke starts as a no-op.
	Locked bool

	// Order is the compositing position; ties break by insertion order.
	Order int
}

// newLayer creates a visible, unlocked, fully opaque layer.
func newLayer(name string, order int) *Layer {
	return &Layer{
		ID:      uuid.NewString(),
		Name:    name,
		Opacity: 1,
		Visible: true,
		Order:   order,
	}
}

// StrokeCount returns the number of completed strokes on the layer.
func (l *Layer) StrokeCount() int {
	return len(l.Strokes)
}
