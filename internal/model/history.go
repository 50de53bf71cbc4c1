package model

// History is a linear undo/redo stack of full element-set snapshots.
// The cursor indexes the snapshot currently shown; -1 is the pseudo-step
// below the first snapshot, modeling "back to empty canvas".
type History struct {
	snapshots [][]Element
	cursor    int
}

// NewHistory returns an empty history, cursor on the pseudo-empty step.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Seed installs the imported element set as the first snapshot.
func (h *History) Seed(els []Element) {
	h.snapshots = [][]Element{CloneAll(els)}
	h.cursor = 0
}

// Commit truncates every snapshot after the cursor, appends a copy of
// els and advances the cursor. This is the only way state becomes
// undoable; previews never commit.
func (h *History) Commit(els []Element) {
	h.snapshots = append(h.snapshots[:h.cursor+1], CloneAll(els))
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back and returns the snapshot to show. Undoing
// at the first snapshot yields the empty set; undoing below that is a
// no-op reported by ok=false.
func (h *History) Undo() (els []Element, ok bool) {
	switch {
	case h.cursor > 0:
		h.cursor--
		return CloneAll(h.snapshots[h.cursor]), true
	case h.cursor == 0:
		h.cursor = -1
		return nil, true
	default:
		return nil, false
	}
}

// Redo advances the cursor and returns the snapshot to show, or
// ok=false when already at the newest snapshot.
func (h *History) Redo() (els []Element, ok bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return CloneAll(h.snapshots[h.cursor]), true
}

// CanUndo reports whether Undo would change state.
func (h *History) CanUndo() bool { return h.cursor >= 0 }

// CanRedo reports whether Redo would change state.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Len returns the number of committed snapshots.
func (h *History) Len() int { return len(h.snapshots) }
