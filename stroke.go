package ink

import "github.com/google/uuid"

// Stroke is one continuous pointer-down-to-up drawing gesture, recorded
// as an ordered list of points plus the brush, color, and opacity in
// effect when it was drawn.
//
// A stroke is created when a pointer-down event is accepted, mutated only
// while it is the engine's current stroke, and becomes immutable the
// instant it is appended to a layer.
//
// The render path and paint are caches, never a source of truth: they are
// always re-derivable from Points, Brush, Color, Size, Opacity, and
// BlendMode, and are rebuilt after a history restore.
type Stroke struct {
	ID      string
	LayerID string

	// Points are the smoothed samples, at least one. Accumulation is
	// unbounded; the caller's sampling rate bounds memory, not the engine.
	Points []Point

	// Brush is the settings snapshot copied at stroke start.
	Brush BrushSettings

	Color     RGBA
	Size      float64 // effective width after pressure dynamics
	Opacity   float64 // effective opacity after pressure dynamics
	BlendMode BlendMode

	TimestampMs uint64

	// Derived caches. Unexported so history snapshots never carry them.
	renderPath  *Path
	renderPaint *Paint
}

// newStroke creates a stroke from its first sample, with the current
// brush and color copied by value.
func newStroke(layerID string, brush BrushSettings, color RGBA, first Point) *Stroke {
	s := &Stroke{
		ID:          uuid.NewString(),
		LayerID:     layerID,
		Points:      []Point{first},
		Brush:       brush,
		Color:       color,
		Size:        EffectiveSize(first.Pressure, brush),
		Opacity:     EffectiveOpacity(first.Pressure, brush),
		BlendMode:   brush.BlendMode,
		TimestampMs: first.TimestampMs,
	}
	s.rebuild()
	return s
}

// appendPoint smooths and records a sample, recomputes the pressure
// dynamics for it, and rebuilds the render geometry.
func (s *Stroke) appendPoint(sample Point) {
	smoothed := SmoothPoint(sample, s.Points, s.Brush)
	s.Points = append(s.Points, smoothed)
	s.Size = EffectiveSize(smoothed.Pressure, s.Brush)
	s.Opacity = EffectiveOpacity(smoothed.Pressure, s.Brush)
	s.rebuild()
}

// rebuild recomputes the derived path and paint from the source fields.
func (s *Stroke) rebuild() {
	s.renderPath = BuildStrokePath(s.Points, s.Size)
	s.renderPaint = s.buildPaint()
}

// buildPaint derives the paint description for the stroke.
func (s *Stroke) buildPaint() *Paint {
	p := NewPaint()
	p.Color = s.Color
	p.Color.A *= s.Opacity
	p.LineWidth = s.Size
	p.BlendMode = s.BlendMode
	if s.Brush.Type == BrushEraser {
		p.BlendMode = BlendDestinationOut
	}
	if s.Brush.Type == BrushAirbrush {
		p.BlurRadius = s.Size * (1 - s.Brush.Hardness)
	}
	if len(s.Points) == 1 {
		// A single tap renders as a filled circle, see BuildStrokePath.
		p.Style = PaintFill
	}
	return p
}

// RenderPath returns the derived geometry, rebuilding it when absent
// (for example after a history restore).
func (s *Stroke) RenderPath() *Path {
	if s.renderPath == nil {
		s.rebuild()
	}
	return s.renderPath
}

// RenderPaint returns the derived paint description, rebuilding it when
// absent.
func (s *Stroke) RenderPaint() *Paint {
	if s.renderPaint == nil {
		s.rebuild()
	}
	return s.renderPaint
}
