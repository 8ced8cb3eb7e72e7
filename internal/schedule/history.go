package schedule

// History is a linear undo/redo stack of full schedule snapshots.
// Pushing a new snapshot discards the redo stack, so there is never a
// branching history.
type History struct {
	past   [][]Segment
	future [][]Segment
}

// Push records a pre-mutation snapshot and clears the redo stack.
func (h *History) Push(snapshot []Segment) {
	h.past = append(h.past, CloneList(snapshot))
	h.future = nil
}

// Undo exchanges the current state for the most recent snapshot.
// The current state moves to the front of the redo stack.
func (h *History) Undo(current []Segment) ([]Segment, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	h.future = append([][]Segment{CloneList(current)}, h.future...)
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return CloneList(prev), true
}

// Redo exchanges the current state for the first undone snapshot.
// The current state moves to the end of the undo stack.
func (h *History) Redo(current []Segment) ([]Segment, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	h.past = append(h.past, CloneList(current))
	next := h.future[0]
	h.future = h.future[1:]
	return CloneList(next), true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Clear drops both stacks.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// Snapshots returns copies of both stacks, oldest first, for
// persistence across invocations.
func (h *History) Snapshots() (past, future [][]Segment) {
	return cloneStack(h.past), cloneStack(h.future)
}

// Restore replaces both stacks with previously persisted snapshots.
func (h *History) Restore(past, future [][]Segment) {
	h.past = cloneStack(past)
	h.future = cloneStack(future)
}

func cloneStack(stack [][]Segment) [][]Segment {
	if stack == nil {
		return nil
	}
	out := make([][]Segment, len(stack))
	for i, s := range stack {
		out[i] = CloneList(s)
	}
	return out
}
