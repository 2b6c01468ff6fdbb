package ink

import "errors"

// StrokeRender pairs a stroke's derived geometry with its paint
// description. This is the unit a rendering backend consumes.
type StrokeRender struct {
	Path  *Path
	Paint *Paint
}

// LayerFrame is the render output of one visible layer: its compositing
// attributes plus one StrokeRender per stroke, in draw order.
type LayerFrame struct {
	LayerID   string
	Name      string
	Opacity   float64
	BlendMode BlendMode
	Strokes   []StrokeRender
}

// FrameSnapshot is a complete render description of the canvas: the
// ordered visible layers over a background color. It is the input to
// every exporter and rasterizer.
type FrameSnapshot struct {
	Width      int
	Height     int
	Background RGBA
	Layers     []LayerFrame
}

// ExportFormat selects the raster encoding for ExportSnapshot.
type ExportFormat int

const (
	// FormatPNG encodes lossless PNG. Quality is ignored.
	FormatPNG ExportFormat = iota
	// FormatJPEG encodes JPEG at the requested quality.
	FormatJPEG
)

// ExportOptions configures ExportSnapshot.
type ExportOptions struct {
	Format ExportFormat

	// Quality is the JPEG quality in [1, 100]. Zero means 90.
	Quality int

	// Scale multiplies the output resolution. Zero means 1.
	Scale float64
}

// ErrNoRasterizer is returned by ExportSnapshot when the engine was
// built with WithRasterizer(nil).
var ErrNoRasterizer = errors.New("ink: no rasterizer configured")

// Rasterizer turns a frame snapshot into encoded image bytes. It is the
// external rendering capability the engine delegates exports to; the
// built-in SoftwareRasterizer is the default implementation.
//
// Rasterize must not mutate the frame.
type Rasterizer interface {
	Rasterize(frame *FrameSnapshot, opts ExportOptions) ([]byte, error)
}
