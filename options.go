package ink

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Default 1024x768 canvas with a white background.
//	e := ink.NewEngine()
//
//	// Custom canvas and deeper undo history.
//	e := ink.NewEngine(
//	    ink.WithCanvasSize(2048, 1536),
//	    ink.WithHistoryCapacity(200),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	width            int
	height           int
	background       RGBA
	historyCapacity  int
	rasterizer       Rasterizer
	rasterizerSet    bool
	initialLayerName string
	brush            BrushSettings
	color            RGBA
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		width:            1024,
		height:           768,
		background:       White,
		historyCapacity:  DefaultHistoryCapacity,
		initialLayerName: "Layer 1",
		brush:            DefaultBrush(),
		color:            Black,
	}
}

// WithCanvasSize sets the canvas dimensions. Non-positive values are
// ignored.
func WithCanvasSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		if width > 0 && height > 0 {
			o.width = width
			o.height = height
		}
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c RGBA) EngineOption {
	return func(o *engineOptions) {
		o.background = c
	}
}

// WithHistoryCapacity bounds the undo history to n snapshots.
// Values below 1 keep the default.
func WithHistoryCapacity(n int) EngineOption {
	return func(o *engineOptions) {
		if n >= 1 {
			o.historyCapacity = n
		}
	}
}

// WithRasterizer sets the rendering capability ExportSnapshot delegates
// to. Use this for dependency injection of GPU or custom exporters.
// Passing nil makes ExportSnapshot fail with ErrNoRasterizer.
func WithRasterizer(r Rasterizer) EngineOption {
	return func(o *engineOptions) {
		o.rasterizer = r
		o.rasterizerSet = true
	}
}

// WithInitialLayerName names the layer every engine starts with.
func WithInitialLayerName(name string) EngineOption {
	return func(o *engineOptions) {
		if name != "" {
			o.initialLayerName = name
		}
	}
}

// WithBrush sets the initial brush. Invalid settings are ignored and the
// default pen is kept.
func WithBrush(b BrushSettings) EngineOption {
	return func(o *engineOptions) {
		if b.Validate() == nil {
			o.brush = b
		}
	}
}

// WithColor sets the initial stroke color.
func WithColor(c RGBA) EngineOption {
	return func(o *engineOptions) {
		o.color = c
	}
}
