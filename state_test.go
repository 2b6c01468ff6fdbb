package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasState_New(t *testing.T) {
	cs := newCanvasState("Background")
	require.Len(t, cs.Layers, 1)
	assert.Equal(t, "Background", cs.Layers[0].Name)
	assert.Equal(t, cs.Layers[0].ID, cs.ActiveLayerID)
	require.NotNil(t, cs.ActiveLayer())
}

func TestCanvasState_CloneIsDeep(t *testing.T) {
	cs := stateWithStrokes(t, 2)
	cs.Layers[0].Name = "original"

	cp := cs.Clone()
	require.Len(t, cp.Layers, 1)
	require.Len(t, cp.Layers[0].Strokes, 2)

	// Layers and strokes must be distinct objects, not shared pointers.
	assert.NotSame(t, cs.Layers[0], cp.Layers[0])
	assert.NotSame(t, cs.Layers[0].Strokes[0], cp.Layers[0].Strokes[0])

	cp.Layers[0].Name = "copy"
	cp.Layers[0].Strokes[0].Points[0].X = 999
	assert.Equal(t, "original", cs.Layers[0].Name)
	assert.NotEqual(t, 999.0, cs.Layers[0].Strokes[0].Points[0].X)
}

func TestCanvasState_ClonePreservesIdentity(t *testing.T) {
	cs := stateWithStrokes(t, 1)
	cp := cs.Clone()

	assert.Equal(t, cs.ActiveLayerID, cp.ActiveLayerID)
	assert.Equal(t, cs.Layers[0].ID, cp.Layers[0].ID)
	assert.Equal(t, cs.Layers[0].Strokes[0].ID, cp.Layers[0].Strokes[0].ID)
	assert.Equal(t, cs.Layers[0].Strokes[0].Brush, cp.Layers[0].Strokes[0].Brush)
}

func TestCanvasState_CloneDropsDerivedCaches(t *testing.T) {
	cs := stateWithStrokes(t, 1)
	require.NotNil(t, cs.Layers[0].Strokes[0].renderPath)

	cp := cs.Clone()
	s := cp.Layers[0].Strokes[0]
	assert.Nil(t, s.renderPath, "snapshots carry source data only")
	assert.Nil(t, s.renderPaint)

	cp.rebuildDerived()
	assert.NotNil(t, s.renderPath)
	assert.NotNil(t, s.renderPaint)
}

func TestCanvasState_Ordered(t *testing.T) {
	cs := newCanvasState("a")
	b := newLayer("b", 2)
	c := newLayer("c", 1)
	cs.Layers = append(cs.Layers, b, c)

	got := cs.Ordered()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
	assert.Equal(t, "b", got[2].Name)

	// Ordered returns a fresh slice; the backing list is untouched.
	assert.Equal(t, "b", cs.Layers[1].Name)
}

func TestCanvasState_LayerLookup(t *testing.T) {
	cs := newCanvasState("a")
	assert.Nil(t, cs.Layer("missing"))

	cs.ActiveLayerID = "missing"
	assert.Nil(t, cs.ActiveLayer(), "stale active pointer resolves to nil")
}

func TestCanvasState_NextLayerName(t *testing.T) {
	cs := newCanvasState("Layer 1")
	assert.Equal(t, "Layer 2", cs.nextLayerName())
	cs.Layers = append(cs.Layers, newLayer("Layer 2", 1))
	assert.Equal(t, "Layer 3", cs.nextLayerName())
}
