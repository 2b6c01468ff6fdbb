package ink

// EventType names a canvas change notification.
type EventType string

// Event types emitted by the engine. Every mutating call emits its typed
// notification after the mutation has completed.
const (
	EventStrokeStarted   EventType = "stroke:started"
	EventStrokeUpdated   EventType = "stroke:updated"
	EventStrokeCompleted EventType = "stroke:completed"

	EventLayerCreated           EventType = "layer:created"
	EventLayerDeleted           EventType = "layer:deleted"
	EventLayerActivated         EventType = "layer:activated"
	EventLayerCleared           EventType = "layer:cleared"
	EventLayerOpacityChanged    EventType = "layer:opacity_changed"
	EventLayerVisibilityChanged EventType = "layer:visibility_changed"
	EventLayerLockChanged       EventType = "layer:lock_changed"
	EventLayerRenamed           EventType = "layer:renamed"
	EventLayerReordered         EventType = "layer:reordered"

	EventCanvasCleared           EventType = "canvas:cleared"
	EventCanvasResized           EventType = "canvas:resized"
	EventCanvasBackgroundChanged EventType = "canvas:background_changed"

	EventHistoryUndo EventType = "history:undo"
	EventHistoryRedo EventType = "history:redo"

	EventBrushChanged        EventType = "brush:changed"
	EventBrushSizeChanged    EventType = "brush:size_changed"
	EventBrushOpacityChanged EventType = "brush:opacity_changed"
	EventColorChanged        EventType = "color:changed"
)

// Event is a change notification. Stroke is set for stroke events and
// Layer for layer events; observers must treat both as read-only.
type Event struct {
	Type   EventType
	Stroke *Stroke
	Layer  *Layer
}

// Handler receives events for the type it subscribed to.
type Handler func(Event)

// Handle identifies a subscription for later removal.
type Handle int

type subscription struct {
	handle Handle
	fn     Handler
}

// observers is an explicit registry of event handlers. Handlers for the
// same event type fire in subscription order. A panicking handler is
// recovered and logged; it never aborts engine state mutation, which has
// already completed before dispatch, and never prevents later handlers
// from running.
type observers struct {
	next Handle
	subs map[EventType][]subscription
}

// subscribe registers fn for events of type t and returns its handle.
func (o *observers) subscribe(t EventType, fn Handler) Handle {
	if o.subs == nil {
		o.subs = make(map[EventType][]subscription)
	}
	o.next++
	o.subs[t] = append(o.subs[t], subscription{handle: o.next, fn: fn})
	return o.next
}

// unsubscribe removes the subscription with the given handle. Returns
// false for unknown handles.
func (o *observers) unsubscribe(h Handle) bool {
	for t, list := range o.subs {
		for i, s := range list {
			if s.handle == h {
				o.subs[t] = append(list[:i:i], list[i+1:]...)
				return true
			}
		}
	}
	return false
}

// emit dispatches ev to the handlers subscribed to its type, in
// subscription order. The list is copied first so handlers may subscribe
// or unsubscribe during dispatch.
func (o *observers) emit(ev Event) {
	list := o.subs[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]subscription, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		dispatch(s, ev)
	}
}

// dispatch invokes one handler, isolating panics per callback.
func dispatch(s subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("ink: observer panicked",
				"event", string(ev.Type), "panic", r)
		}
	}()
	s.fn(ev)
}
