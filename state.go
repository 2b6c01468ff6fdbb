package ink

import (
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
)

// CanvasState is the unit of history: the full set of layers plus the
// active-layer pointer. The in-progress stroke is excluded; undo and redo
// never target partial strokes.
type CanvasState struct {
	Layers        []*Layer
	ActiveLayerID string
}

// newCanvasState creates a state with one initial layer, which is also
// the active layer. At least one layer exists at all times.
func newCanvasState(layerName string) *CanvasState {
	l := newLayer(layerName, 0)
	return &CanvasState{
		Layers:        []*Layer{l},
		ActiveLayerID: l.ID,
	}
}

// Clone returns a deep copy of the state. Derived stroke caches are held
// in unexported fields, so the copy carries only source-of-truth data and
// render geometry is rebuilt on restore.
func (cs *CanvasState) Clone() *CanvasState {
	out := &CanvasState{}
	err := copier.CopyWithOption(out, cs, copier.Option{DeepCopy: true})
	if err != nil {
		// Cannot happen for these types; keep the snapshot usable anyway.
		Logger().Warn("ink: state deep copy failed", "err", err)
	}
	return out
}

// Layer returns the layer with the given id, or nil.
func (cs *CanvasState) Layer(id string) *Layer {
	for _, l := range cs.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// ActiveLayer returns the active layer, or nil when the pointer is stale.
func (cs *CanvasState) ActiveLayer() *Layer {
	return cs.Layer(cs.ActiveLayerID)
}

// Ordered returns the layers sorted by Order, ties broken by insertion
// order. The returned slice is freshly allocated; the layers are shared.
func (cs *CanvasState) Ordered() []*Layer {
	out := make([]*Layer, len(cs.Layers))
	copy(out, cs.Layers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// StrokeCount returns the total number of completed strokes across layers.
func (cs *CanvasState) StrokeCount() int {
	n := 0
	for _, l := range cs.Layers {
		n += len(l.Strokes)
	}
	return n
}

// rebuildDerived recomputes render geometry for every stroke. Called after
// a history restore, because snapshots never carry derived fields.
func (cs *CanvasState) rebuildDerived() {
	for _, l := range cs.Layers {
		for _, s := range l.Strokes {
			s.rebuild()
		}
	}
}

// nextLayerName returns a name for an implicitly named layer.
func (cs *CanvasState) nextLayerName() string {
	return fmt.Sprintf("Layer %d", len(cs.Layers)+1)
}
