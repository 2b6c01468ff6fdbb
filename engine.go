package ink

// Engine is the single owner of the canvas: its layers, the active brush
// and color, the in-progress stroke, and the undo history. It exposes the
// operation surface consumed by a UI layer and emits typed change
// notifications.
//
// Every operation runs to completion before the next is accepted; there
// is no suspension inside engine methods and no operation blocks on I/O.
// An Engine must be confined to one goroutine or guarded by a mutex held
// for the duration of each call, including notification dispatch.
//
// Calling a method from the wrong state (adding points while idle,
// deleting the sole remaining layer, unknown identifiers) is a boolean
// no-op, never an error: the UI layer stays simple and tolerant of
// double-fired gesture events, and no failure inside the engine can lose
// unsaved strokes.
type Engine struct {
	width      int
	height     int
	background RGBA

	state *CanvasState
	brush BrushSettings
	color RGBA

	// current is the in-progress stroke; nil when idle. It is excluded
	// from history snapshots.
	current *Stroke

	history *history

	// dirty reports that the live state has mutated since the last
	// history push, so the first step back must capture it for redo.
	dirty bool

	obs    observers
	raster Rasterizer
}

// NewEngine creates an engine with one empty layer. Construct one engine
// per canvas; independent canvases (and tests) run in isolation.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	raster := o.rasterizer
	if !o.rasterizerSet {
		raster = NewSoftwareRasterizer()
	}
	return &Engine{
		width:      o.width,
		height:     o.height,
		background: o.background,
		state:      newCanvasState(o.initialLayerName),
		brush:      o.brush,
		color:      o.color,
		history:    newHistory(o.historyCapacity),
		raster:     raster,
	}
}

// Width returns the canvas width.
func (e *Engine) Width() int { return e.width }

// Height returns the canvas height.
func (e *Engine) Height() int { return e.height }

// Background returns the canvas background color.
func (e *Engine) Background() RGBA { return e.background }

// Brush returns the active brush settings.
func (e *Engine) Brush() BrushSettings { return e.brush }

// Color returns the active stroke color.
func (e *Engine) Color() RGBA { return e.color }

// IsDrawing reports whether a stroke is in progress.
func (e *Engine) IsDrawing() bool { return e.current != nil }

// SetCanvasSize resizes the canvas. Non-positive dimensions are rejected
// as a no-op. Stroke geometry is untouched; resizing only changes the
// export viewport.
func (e *Engine) SetCanvasSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	e.width = width
	e.height = height
	e.obs.emit(Event{Type: EventCanvasResized})
	return true
}

// SetBackground sets the canvas background color.
func (e *Engine) SetBackground(c RGBA) {
	e.background = c
	e.obs.emit(Event{Type: EventCanvasBackgroundChanged})
}

// SetBrush replaces the active brush. Settings that fail validation are
// rejected as a no-op.
func (e *Engine) SetBrush(b BrushSettings) bool {
	if err := b.Validate(); err != nil {
		Logger().Warn("ink: rejected brush settings", "err", err)
		return false
	}
	e.brush = b
	e.obs.emit(Event{Type: EventBrushChanged})
	return true
}

// SetBrushSize sets the active brush's base size. Non-positive sizes are
// rejected as a no-op.
func (e *Engine) SetBrushSize(size float64) bool {
	if size <= 0 {
		return false
	}
	e.brush.Size = size
	e.obs.emit(Event{Type: EventBrushSizeChanged})
	return true
}

// SetBrushOpacity sets the active brush's base opacity, clamped to [0, 1].
func (e *Engine) SetBrushOpacity(opacity float64) {
	e.brush.Opacity = clamp01(opacity)
	e.obs.emit(Event{Type: EventBrushOpacityChanged})
}

// SetColor sets the active stroke color.
func (e *Engine) SetColor(c RGBA) {
	e.color = c
	e.obs.emit(Event{Type: EventColorChanged})
}

// StartStroke begins a stroke at the given sample. It is a no-op while a
// stroke is already in progress, and when the active layer is missing or
// locked.
//
// A history snapshot is taken immediately on stroke start, so a stroke
// that is started and released without movement still produces an
// undoable unit consistent with completed strokes. History granularity
// is one entry per stroke, not one entry per mutation.
func (e *Engine) StartStroke(p Point) bool {
	if e.current != nil {
		return false
	}
	layer := e.state.ActiveLayer()
	if layer == nil || layer.Locked {
		return false
	}

	e.history.push(e.state)
	e.dirty = false

	s := newStroke(layer.ID, e.brush, e.color, p)
	e.current = s
	e.obs.emit(Event{Type: EventStrokeStarted, Stroke: s, Layer: layer})
	return true
}

// AddStrokePoint feeds a sample to the in-progress stroke: the position
// is smoothed, pressure dynamics recomputed, and the render path rebuilt.
// No-op while idle.
func (e *Engine) AddStrokePoint(p Point) bool {
	if e.current == nil {
		return false
	}
	e.current.appendPoint(p)
	e.obs.emit(Event{Type: EventStrokeUpdated, Stroke: e.current})
	return true
}

// EndStroke finalizes the in-progress stroke and appends it to its layer,
// freezing it. No-op while idle. Pointer-cancel events must be mapped to
// EndStroke as well, or the engine stays in the drawing state and rejects
// subsequent StartStroke calls.
func (e *Engine) EndStroke() bool {
	if e.current == nil {
		return false
	}
	s := e.current
	e.current = nil

	layer := e.state.Layer(s.LayerID)
	if layer == nil {
		// The owning layer vanished mid-stroke; drop the stroke.
		return false
	}
	s.rebuild()
	layer.Strokes = append(layer.Strokes, s)
	e.dirty = true
	e.obs.emit(Event{Type: EventStrokeCompleted, Stroke: s, Layer: layer})
	return true
}

// CreateLayer appends a new layer at the top of the stack. An empty name
// gets a generated one. Layer creation is not history-snapshotted; only
// layer-content mutations are.
func (e *Engine) CreateLayer(name string) *Layer {
	if name == "" {
		name = e.state.nextLayerName()
	}
	l := newLayer(name, len(e.state.Layers))
	e.state.Layers = append(e.state.Layers, l)
	e.obs.emit(Event{Type: EventLayerCreated, Layer: l})
	return l
}

// DeleteLayer removes a layer. Deleting the sole remaining layer, or an
// unknown id, is a no-op so the canvas always keeps at least one layer.
// When the deleted layer was active, the first layer by order becomes
// active.
func (e *Engine) DeleteLayer(id string) bool {
	if len(e.state.Layers) <= 1 {
		return false
	}
	idx := -1
	for i, l := range e.state.Layers {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	deleted := e.state.Layers[idx]
	e.state.Layers = append(e.state.Layers[:idx], e.state.Layers[idx+1:]...)

	if e.current != nil && e.current.LayerID == id {
		e.current = nil
	}
	if e.state.ActiveLayerID == id {
		e.state.ActiveLayerID = e.state.Ordered()[0].ID
	}
	e.obs.emit(Event{Type: EventLayerDeleted, Layer: deleted})
	return true
}

// SetActiveLayer makes the layer with the given id the stroke target.
func (e *Engine) SetActiveLayer(id string) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	e.state.ActiveLayerID = id
	e.obs.emit(Event{Type: EventLayerActivated, Layer: l})
	return true
}

// SetLayerOpacity sets a layer's opacity, clamped to [0, 1]. Cosmetic
// layer changes are intentionally excluded from undo history.
func (e *Engine) SetLayerOpacity(id string, opacity float64) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	l.Opacity = clamp01(opacity)
	e.obs.emit(Event{Type: EventLayerOpacityChanged, Layer: l})
	return true
}

// SetLayerVisibility toggles a layer in and out of the composite.
func (e *Engine) SetLayerVisibility(id string, visible bool) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	l.Visible = visible
	e.obs.emit(Event{Type: EventLayerVisibilityChanged, Layer: l})
	return true
}

// SetLayerLocked toggles a layer's lock. Locked layers reject stroke
// starts; drawing tools should check the lock before offering the gesture.
func (e *Engine) SetLayerLocked(id string, locked bool) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	l.Locked = locked
	e.obs.emit(Event{Type: EventLayerLockChanged, Layer: l})
	return true
}

// RenameLayer sets a layer's name. Empty names are rejected.
func (e *Engine) RenameLayer(id, name string) bool {
	l := e.state.Layer(id)
	if l == nil || name == "" {
		return false
	}
	l.Name = name
	e.obs.emit(Event{Type: EventLayerRenamed, Layer: l})
	return true
}

// ReorderLayer assigns a layer a new compositing position.
func (e *Engine) ReorderLayer(id string, order int) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	l.Order = order
	e.obs.emit(Event{Type: EventLayerReordered, Layer: l})
	return true
}

// Layers returns the layers sorted by order, ties broken by insertion
// order. The layers themselves are shared; treat them as read-only.
func (e *Engine) Layers() []*Layer {
	return e.state.Ordered()
}

// ActiveLayer returns the layer strokes are appended to.
func (e *Engine) ActiveLayer() *Layer {
	return e.state.ActiveLayer()
}

// ClearCanvas snapshots the state, then empties every layer's stroke
// list. One snapshot covers the whole operation, so clearing is a single
// undoable unit. Clearing twice in a row yields the same state as once.
// Any in-progress stroke is dropped.
func (e *Engine) ClearCanvas() {
	e.current = nil
	e.history.push(e.state)
	for _, l := range e.state.Layers {
		l.Strokes = nil
	}
	e.dirty = true
	e.obs.emit(Event{Type: EventCanvasCleared})
}

// ClearLayer empties one layer's stroke list as a single undoable unit.
func (e *Engine) ClearLayer(id string) bool {
	l := e.state.Layer(id)
	if l == nil {
		return false
	}
	if e.current != nil && e.current.LayerID == id {
		e.current = nil
	}
	e.history.push(e.state)
	l.Strokes = nil
	e.dirty = true
	e.obs.emit(Event{Type: EventLayerCleared, Layer: l})
	return true
}

// Undo restores the previous history snapshot. Returns false when there
// is nothing to undo. Any in-progress stroke is cancelled first: a
// restored state has no notion of a partial stroke.
//
// When the live state has mutated since the last snapshot it is pushed
// first, so a later Redo can return to it.
func (e *Engine) Undo() bool {
	e.current = nil
	if e.dirty {
		e.history.push(e.state)
		e.dirty = false
	}
	st, ok := e.history.stepBack()
	if !ok {
		return false
	}
	e.restore(st)
	e.obs.emit(Event{Type: EventHistoryUndo})
	return true
}

// Redo restores the next history snapshot. Returns false at the newest
// entry. Any in-progress stroke is cancelled first.
func (e *Engine) Redo() bool {
	e.current = nil
	st, ok := e.history.stepForward()
	if !ok {
		return false
	}
	e.restore(st)
	e.obs.emit(Event{Type: EventHistoryRedo})
	return true
}

// CanUndo reports whether Undo would restore a snapshot.
func (e *Engine) CanUndo() bool {
	return e.dirty || e.history.canStepBack()
}

// CanRedo reports whether Redo would restore a snapshot.
func (e *Engine) CanRedo() bool {
	return e.history.canStepForward()
}

// restore installs a snapshot as the live state and rebuilds the derived
// render geometry for every stroke; derived fields are never snapshotted.
func (e *Engine) restore(st *CanvasState) {
	st.rebuildDerived()
	e.state = st
	e.dirty = false
}

// Frame returns the render output: for each visible layer in order, a
// (Path, Paint) pair per stroke. The in-progress stroke is included on
// its layer so callers can draw a live preview.
func (e *Engine) Frame() []LayerFrame {
	return e.frame(true)
}

// Snapshot returns a complete export description of the canvas. The
// in-progress stroke is excluded; exports cover persisted state only.
// Snapshot does not mutate drawing state.
func (e *Engine) Snapshot() *FrameSnapshot {
	return &FrameSnapshot{
		Width:      e.width,
		Height:     e.height,
		Background: e.background,
		Layers:     e.frame(false),
	}
}

func (e *Engine) frame(includeCurrent bool) []LayerFrame {
	var out []LayerFrame
	for _, l := range e.state.Ordered() {
		if !l.Visible {
			continue
		}
		lf := LayerFrame{
			LayerID:   l.ID,
			Name:      l.Name,
			Opacity:   l.Opacity,
			BlendMode: l.BlendMode,
			Strokes:   make([]StrokeRender, 0, len(l.Strokes)+1),
		}
		for _, s := range l.Strokes {
			lf.Strokes = append(lf.Strokes, StrokeRender{Path: s.RenderPath(), Paint: s.RenderPaint()})
		}
		if includeCurrent && e.current != nil && e.current.LayerID == l.ID {
			lf.Strokes = append(lf.Strokes, StrokeRender{
				Path:  e.current.RenderPath(),
				Paint: e.current.RenderPaint(),
			})
		}
		out = append(out, lf)
	}
	return out
}

// ExportSnapshot rasterizes the ordered, visible, opacity-weighted layers
// into encoded image bytes, delegating to the configured Rasterizer. It
// does not mutate drawing state. Failures are reported as errors so the
// UI can offer a retry.
func (e *Engine) ExportSnapshot(opts ExportOptions) ([]byte, error) {
	if e.raster == nil {
		return nil, ErrNoRasterizer
	}
	return e.raster.Rasterize(e.Snapshot(), opts)
}

// Stats summarizes the engine state for status displays and tests.
type Stats struct {
	Width         int
	Height        int
	LayerCount    int
	StrokeCount   int
	HistorySize   int
	ActiveLayerID string
	Drawing       bool
}

// Stats returns a summary of the engine state.
func (e *Engine) Stats() Stats {
	return Stats{
		Width:         e.width,
		Height:        e.height,
		LayerCount:    len(e.state.Layers),
		StrokeCount:   e.state.StrokeCount(),
		HistorySize:   e.history.size(),
		ActiveLayerID: e.state.ActiveLayerID,
		Drawing:       e.current != nil,
	}
}

// Subscribe registers a handler for one event type and returns a handle
// for removal. Handlers for the same event type fire in subscription
// order; no ordering is guaranteed across different event types.
func (e *Engine) Subscribe(t EventType, fn Handler) Handle {
	return e.obs.subscribe(t, fn)
}

// Unsubscribe removes a previously registered handler.
func (e *Engine) Unsubscribe(h Handle) bool {
	return e.obs.unsubscribe(h)
}
