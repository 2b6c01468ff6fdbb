// Package ink provides a backend-agnostic vector drawing engine for Go.
//
// # Overview
//
// ink turns raw pointer/stylus samples into persisted vector strokes,
// organizes them into layers, applies pressure-responsive brush dynamics,
// and maintains bounded snapshot undo/redo over the whole canvas state.
// It is the model layer of a drawing application: the rendering backend
// (rasterization, compositing) is an external collaborator that consumes
// the (Path, Paint) descriptor pairs the engine emits.
//
// # Quick Start
//
//	import "github.com/gogpu/ink"
//
//	e := ink.NewEngine(ink.WithCanvasSize(1024, 768))
//
//	e.SetBrush(ink.NewBrush(ink.BrushPen))
//	e.SetColor(ink.RGB(0, 0, 0))
//
//	// One stroke is one pointer-down-to-up gesture.
//	e.StartStroke(ink.NewPoint(10, 10, 0.5, 0))
//	e.AddStrokePoint(ink.NewPoint(40, 30, 0.7, 16))
//	e.AddStrokePoint(ink.NewPoint(90, 35, 0.9, 33))
//	e.EndStroke()
//
//	e.Undo()
//	e.Redo()
//
//	// Rasterize the canvas with the built-in software exporter.
//	png, err := e.ExportSnapshot(ink.ExportOptions{Format: ink.FormatPNG})
//
// # Architecture
//
// The engine is organized into:
//   - Geometry: BuildStrokePath converts point sequences into smoothed
//     quadratic spline paths (rolling-midpoint technique).
//   - Dynamics: EffectiveSize, EffectiveOpacity, and SmoothPoint map
//     stylus pressure and brush configuration to stroke appearance.
//   - Layers: an ordered collection of stroke lists with visibility,
//     opacity, lock, and order attributes.
//   - History: bounded deep-copy snapshots of the canvas state with a
//     cursor, providing linear undo/redo.
//   - Engine: the single orchestrator owning layers, the active brush
//     and color, the in-progress stroke, and the history.
//
// # Rendering
//
// Engine.Frame returns, for each visible layer in order, a (Path, Paint)
// pair per stroke. Paths use MoveTo/LineTo/QuadTo/CubicTo elements; Paint
// carries color, alpha, stroke width, round caps and joins, blend mode,
// and a blur radius for airbrush strokes. Any rasterizer can consume
// these descriptors; the included software rasterizer (PNG/JPEG) and the
// export subpackage (PDF/SVG) are reference consumers.
//
// # Concurrency
//
// An Engine is a single shared mutable resource with a synchronous,
// run-to-completion operation surface. Confine each instance to one
// goroutine or guard every call (including notification dispatch) with a
// mutex. ExportSnapshot does not mutate drawing state but requires the
// same serialization discipline with respect to mutations.
package ink
