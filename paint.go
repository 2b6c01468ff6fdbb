package ink

// PaintStyle specifies whether a path is stroked or filled.
type PaintStyle int

const (
	// PaintStroke strokes the path outline.
	PaintStroke PaintStyle = iota
	// PaintFill fills the path interior. Used for single-tap dots.
	PaintFill
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// BlendMode defines how stroke or layer pixels are composited onto the
// destination.
type BlendMode int

const (
	// BlendNormal is standard source-over compositing.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination.
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
	// BlendOverlay combines multiply and screen.
	BlendOverlay
	// BlendDarken keeps the darker of source and destination.
	BlendDarken
	// BlendLighten keeps the lighter of source and destination.
	BlendLighten
	// BlendDestinationOut removes destination where the source is drawn.
	// Used by the eraser brush.
	BlendDestinationOut
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	case BlendDestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Paint is a backend-agnostic description of stroke styling, consumed by
// an external rasterizer together with a Path. Color.A already includes
// the stroke opacity.
type Paint struct {
	// Style selects stroking or filling.
	Style PaintStyle

	// Color is the stroke color; its alpha carries the combined color
	// and stroke opacity.
	Color RGBA

	// LineWidth is the stroke width in canvas units.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// Antialias enables anti-aliasing.
	Antialias bool

	// BlendMode specifies compositing onto the layer.
	BlendMode BlendMode

	// BlurRadius is the mask blur in canvas units. Non-zero only for
	// airbrush strokes.
	BlurRadius float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Style:      PaintStroke,
		Color:      Black,
		LineWidth:  1.0,
		LineCap:    LineCapRound,
		LineJoin:   LineJoinRound,
		MiterLimit: 10.0,
		Antialias:  true,
		BlendMode:  BlendNormal,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	return &q
}
