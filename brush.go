package ink

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BrushType identifies a family of brush behavior.
type BrushType int

const (
	// BrushPencil is a thin, hard, slightly transparent tip.
	BrushPencil BrushType = iota
	// BrushPen is a crisp, fully opaque line.
	BrushPen
	// BrushPaintbrush is a soft, wide, pressure-responsive bristle.
	BrushPaintbrush
	// BrushMarker is a broad semi-transparent chisel.
	BrushMarker
	// BrushAirbrush is a soft spray with a blurred edge.
	BrushAirbrush
	// BrushEraser removes previously drawn content on its layer.
	BrushEraser
)

// String returns the name of the brush type.
func (t BrushType) String() string {
	switch t {
	case BrushPencil:
		return "pencil"
	case BrushPen:
		return "pen"
	case BrushPaintbrush:
		return "brush"
	case BrushMarker:
		return "marker"
	case BrushAirbrush:
		return "airbrush"
	case BrushEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// BrushSettings is the configuration of a brush. It is copied by value
// into each stroke when the stroke starts, so historic strokes are
// unaffected by later brush edits.
type BrushSettings struct {
	ID   string
	Name string
	Type BrushType

	// Size is the base stroke width in canvas units.
	Size float64 `validate:"gt=0"`

	// Opacity is the base stroke opacity.
	Opacity float64 `validate:"gte=0,lte=1"`

	// Flow is the paint flow rate.
	Flow float64 `validate:"gte=0,lte=1"`

	// Hardness controls edge softness; airbrush blur derives from it.
	Hardness float64 `validate:"gte=0,lte=1"`

	// Spacing controls input smoothing. Values near 0 yield a literal
	// trace; values approaching 1 yield heavier smoothing (more lag,
	// less jitter). Must stay below 1 or the stroke never advances.
	Spacing float64 `validate:"gte=0,lt=1"`

	// Scattering is the random offset amplitude for scatter brushes.
	Scattering float64 `validate:"gte=0"`

	// PressureSize scales stroke width by stylus pressure.
	PressureSize bool

	// PressureOpacity scales stroke opacity by stylus pressure.
	PressureOpacity bool

	// PressureFlow scales paint flow by stylus pressure.
	PressureFlow bool

	// AngleJitter is the random tip rotation amplitude in radians.
	AngleJitter float64 `validate:"gte=0"`

	// BlendMode is the compositing mode for strokes drawn with this brush.
	BlendMode BlendMode
}

var brushValidator = validator.New()

// Validate checks the settings against their range constraints.
// Engine.SetBrush rejects settings for which Validate returns an error.
func (b BrushSettings) Validate() error {
	return brushValidator.Struct(b)
}

// NewBrush creates a preset for the given brush type. The presets mirror
// the feel of common drawing tools; callers are free to tweak any field
// and re-validate.
func NewBrush(t BrushType) BrushSettings {
	b := BrushSettings{
		ID:       uuid.NewString(),
		Name:     t.String(),
		Type:     t,
		Size:     3,
		Opacity:  1,
		Flow:     1,
		Hardness: 1,
		Spacing:  0.5,
	}
	switch t {
	case BrushPencil:
		b.Size = 2
		b.Opacity = 0.9
		b.Flow = 0.8
		b.Hardness = 0.9
		b.Spacing = 0.35
		b.PressureSize = true
		b.PressureOpacity = true
	case BrushPen:
		b.PressureSize = true
	case BrushPaintbrush:
		b.Size = 8
		b.Opacity = 0.85
		b.Flow = 0.7
		b.Hardness = 0.6
		b.Spacing = 0.25
		b.PressureSize = true
		b.PressureOpacity = true
		b.PressureFlow = true
	case BrushMarker:
		b.Size = 12
		b.Opacity = 0.6
		b.Flow = 0.9
		b.Hardness = 0.8
		b.Spacing = 0.6
	case BrushAirbrush:
		b.Size = 20
		b.Opacity = 0.4
		b.Flow = 0.3
		b.Hardness = 0.2
		b.Spacing = 0.15
		b.PressureOpacity = true
		b.PressureFlow = true
	case BrushEraser:
		b.Size = 16
		b.PressureSize = true
		b.BlendMode = BlendDestinationOut
	}
	return b
}

// DefaultBrush returns the engine's initial brush, a pen.
func DefaultBrush() BrushSettings {
	return NewBrush(BrushPen)
}
