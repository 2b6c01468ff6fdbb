package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservers_SubscriptionOrder(t *testing.T) {
	var o observers
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		o.subscribe(EventStrokeStarted, func(Event) { got = append(got, i) })
	}

	o.emit(Event{Type: EventStrokeStarted})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got, "handlers fire in subscription order")
}

func TestObservers_TypeFiltering(t *testing.T) {
	var o observers
	calls := 0
	o.subscribe(EventLayerCreated, func(Event) { calls++ })

	o.emit(Event{Type: EventStrokeStarted})
	o.emit(Event{Type: EventLayerDeleted})
	assert.Equal(t, 0, calls, "handler only sees its subscribed type")

	o.emit(Event{Type: EventLayerCreated})
	assert.Equal(t, 1, calls)
}

func TestObservers_Unsubscribe(t *testing.T) {
	var o observers
	calls := 0
	h := o.subscribe(EventStrokeCompleted, func(Event) { calls++ })

	o.emit(Event{Type: EventStrokeCompleted})
	require.True(t, o.unsubscribe(h))
	o.emit(Event{Type: EventStrokeCompleted})

	assert.Equal(t, 1, calls)
	assert.False(t, o.unsubscribe(h), "double unsubscribe reports false")
	assert.False(t, o.unsubscribe(Handle(999)), "unknown handle reports false")
}

func TestObservers_PanicIsolation(t *testing.T) {
	var o observers
	o.subscribe(EventCanvasCleared, func(Event) { panic("observer bug") })
	survived := false
	o.subscribe(EventCanvasCleared, func(Event) { survived = true })

	assert.NotPanics(t, func() {
		o.emit(Event{Type: EventCanvasCleared})
	})
	assert.True(t, survived, "a panicking handler must not starve later handlers")
}

func TestObservers_UnsubscribeDuringDispatch(t *testing.T) {
	var o observers
	calls := 0
	var h Handle
	h = o.subscribe(EventHistoryUndo, func(Event) {
		calls++
		o.unsubscribe(h)
	})
	o.subscribe(EventHistoryUndo, func(Event) { calls++ })

	o.emit(Event{Type: EventHistoryUndo})
	assert.Equal(t, 2, calls, "removal mid-dispatch does not skip later handlers")

	o.emit(Event{Type: EventHistoryUndo})
	assert.Equal(t, 3, calls, "removed handler stays removed on later emits")
}

func TestEngine_EventPayloads(t *testing.T) {
	e := NewEngine()
	var ev Event
	e.Subscribe(EventStrokeCompleted, func(got Event) { ev = got })

	drawStroke(t, e, line(10)...)

	require.NotNil(t, ev.Stroke)
	require.NotNil(t, ev.Layer)
	assert.Equal(t, ev.Layer.ID, ev.Stroke.LayerID)
	assert.Len(t, ev.Stroke.Points, 3)
}
