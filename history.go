package ink

import "time"

// DefaultHistoryCapacity is the number of snapshots retained before the
// oldest entries are evicted. Bounding the history bounds memory at the
// cost of unlimited-depth undo.
const DefaultHistoryCapacity = 50

// historyEntry is a full deep copy of the canvas state plus a timestamp.
type historyEntry struct {
	state *CanvasState
	at    time.Time
}

// history is a bounded ordered sequence of snapshots with a cursor.
// Entries beyond the cursor are discarded whenever a new entry is pushed:
// standard linear-undo discipline, no redo branching.
type history struct {
	entries  []historyEntry
	cursor   int // index of the entry matching the state as of the last push or restore
	capacity int
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &history{cursor: -1, capacity: capacity}
}

// push truncates any entries after the cursor, appends a deep copy of
// state, and advances the cursor. When the entry count exceeds capacity
// the oldest entries are evicted and the cursor decremented accordingly.
func (h *history) push(state *CanvasState) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, historyEntry{state: state.Clone(), at: time.Now()})
	h.cursor = len(h.entries) - 1

	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
		h.cursor -= over
	}
}

// stepBack moves the cursor back one entry and returns a copy of that
// snapshot. Returns false at the first entry.
func (h *history) stepBack() (*CanvasState, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor].state.Clone(), true
}

// stepForward moves the cursor forward one entry and returns a copy of
// that snapshot. Returns false at the last entry.
func (h *history) stepForward() (*CanvasState, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return h.entries[h.cursor].state.Clone(), true
}

// size returns the number of retained entries.
func (h *history) size() int {
	return len(h.entries)
}

// canStepBack reports whether stepBack would succeed.
func (h *history) canStepBack() bool {
	return h.cursor > 0
}

// canStepForward reports whether stepForward would succeed.
func (h *history) canStepForward() bool {
	return h.cursor < len(h.entries)-1
}
