package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithStrokes(t *testing.T, n int) *CanvasState {
	t.Helper()
	cs := newCanvasState("test")
	layer := cs.ActiveLayer()
	require.NotNil(t, layer)
	brush := NewBrush(BrushPen)
	for i := 0; i < n; i++ {
		layer.Strokes = append(layer.Strokes,
			newStroke(layer.ID, brush, Black, PointAt(float64(i), 0, uint64(i))))
	}
	return cs
}

func TestHistory_PushAndStepBack(t *testing.T) {
	h := newHistory(10)
	h.push(stateWithStrokes(t, 0))
	h.push(stateWithStrokes(t, 1))
	h.push(stateWithStrokes(t, 2))

	require.Equal(t, 3, h.size())

	st, ok := h.stepBack()
	require.True(t, ok)
	assert.Equal(t, 1, st.StrokeCount())

	st, ok = h.stepBack()
	require.True(t, ok)
	assert.Equal(t, 0, st.StrokeCount())

	_, ok = h.stepBack()
	assert.False(t, ok, "stepBack at the first entry must no-op")
}

func TestHistory_StepForward(t *testing.T) {
	h := newHistory(10)
	h.push(stateWithStrokes(t, 0))
	h.push(stateWithStrokes(t, 1))

	_, ok := h.stepForward()
	assert.False(t, ok, "stepForward at the last entry must no-op")

	_, ok = h.stepBack()
	require.True(t, ok)

	st, ok := h.stepForward()
	require.True(t, ok)
	assert.Equal(t, 1, st.StrokeCount())
}

func TestHistory_PushTruncatesRedoBranch(t *testing.T) {
	h := newHistory(10)
	h.push(stateWithStrokes(t, 0))
	h.push(stateWithStrokes(t, 1))
	h.push(stateWithStrokes(t, 2))

	_, ok := h.stepBack()
	require.True(t, ok)
	_, ok = h.stepBack()
	require.True(t, ok)

	h.push(stateWithStrokes(t, 7))
	assert.Equal(t, 2, h.size(), "entries beyond the cursor are discarded on push")

	_, ok = h.stepForward()
	assert.False(t, ok, "redo branch must be gone after push")
}

func TestHistory_CapacityEviction(t *testing.T) {
	h := newHistory(5)
	for i := 0; i < 8; i++ {
		h.push(stateWithStrokes(t, i))
	}
	require.Equal(t, 5, h.size())

	// Walk back to the oldest surviving entry.
	steps := 0
	for {
		st, ok := h.stepBack()
		if !ok {
			break
		}
		steps++
		if steps == 4 {
			// Oldest retained snapshot is the 4th push (3 strokes).
			assert.Equal(t, 3, st.StrokeCount())
		}
	}
	assert.Equal(t, 4, steps)
}

func TestHistory_SnapshotsAreDeepCopies(t *testing.T) {
	h := newHistory(10)
	cs := stateWithStrokes(t, 1)
	h.push(cs)

	// Mutating the live state after the push must not affect the snapshot.
	cs.Layers[0].Strokes = nil
	h.push(cs)

	st, ok := h.stepBack()
	require.True(t, ok)
	assert.Equal(t, 1, st.StrokeCount())
}

func TestHistory_RestoredCopiesAreIndependent(t *testing.T) {
	h := newHistory(10)
	h.push(stateWithStrokes(t, 1))
	h.push(stateWithStrokes(t, 2))

	st, ok := h.stepBack()
	require.True(t, ok)
	st.Layers[0].Strokes = nil

	// A second restore of the same entry is unaffected.
	_, ok = h.stepForward()
	require.True(t, ok)
	st2, ok := h.stepBack()
	require.True(t, ok)
	assert.Equal(t, 1, st2.StrokeCount())
}
