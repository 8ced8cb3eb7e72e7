package schedule

import (
	"reflect"
	"testing"
)

func snapshot(titles ...string) []Segment {
	out := make([]Segment, len(titles))
	for i, title := range titles {
		out[i] = Segment{Title: title}
	}
	return out
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History

	a := snapshot("a")
	b := snapshot("a", "b")
	c := snapshot("a", "b", "c")

	h.Push(a)
	h.Push(b)

	// current state is c; undo brings back b, current moves to redo.
	got, ok := h.Undo(c)
	if !ok || !reflect.DeepEqual(got, b) {
		t.Fatalf("Undo = %v, %v, want %v, true", got, ok, b)
	}

	got, ok = h.Redo(b)
	if !ok || !reflect.DeepEqual(got, c) {
		t.Fatalf("Redo = %v, %v, want %v, true", got, ok, c)
	}
}

func TestHistoryEmptyStacksAreNoOps(t *testing.T) {
	var h History

	if _, ok := h.Undo(snapshot("x")); ok {
		t.Error("Undo on empty history succeeded")
	}
	if _, ok := h.Redo(snapshot("x")); ok {
		t.Error("Redo on empty history succeeded")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports available snapshots")
	}
}

func TestHistoryPushClearsFuture(t *testing.T) {
	var h History

	h.Push(snapshot("a"))
	if _, ok := h.Undo(snapshot("a", "b")); !ok {
		t.Fatal("Undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("expected a redo snapshot after undo")
	}

	h.Push(snapshot("a", "x"))
	if h.CanRedo() {
		t.Error("Push did not clear the redo stack")
	}
}

// Undo followed by redo must restore the exact pre-undo state, for any
// interleaving of pushes and undos.
func TestHistoryUndoRedoRestores(t *testing.T) {
	var h History

	states := [][]Segment{
		snapshot("a"),
		snapshot("a", "b"),
		snapshot("a", "b", "c"),
		snapshot("b", "c"),
	}

	current := states[0]
	for _, next := range states[1:] {
		h.Push(current)
		current = next
	}

	for i := 0; i < 3; i++ {
		preUndo := CloneList(current)
		prev, ok := h.Undo(current)
		if !ok {
			t.Fatalf("undo %d failed", i)
		}
		redone, ok := h.Redo(prev)
		if !ok || !reflect.DeepEqual(redone, preUndo) {
			t.Fatalf("undo/redo %d: got %v, want %v", i, redone, preUndo)
		}
		// Walk back down for the next iteration.
		current, _ = h.Undo(redone)
	}
}

func TestHistorySnapshotsAreIndependent(t *testing.T) {
	var h History

	state := snapshot("a")
	h.Push(state)
	state[0].Title = "mutated"

	got, ok := h.Undo(snapshot("b"))
	if !ok || got[0].Title != "a" {
		t.Errorf("history snapshot was aliased to the live list: %v", got)
	}
}

func TestHistorySnapshotsRoundTrip(t *testing.T) {
	var h History
	h.Push(snapshot("a"))
	h.Push(snapshot("a", "b"))
	if _, ok := h.Undo(snapshot("a", "b", "c")); !ok {
		t.Fatal("Undo failed")
	}

	past, future := h.Snapshots()

	var restored History
	restored.Restore(past, future)
	if !restored.CanUndo() || !restored.CanRedo() {
		t.Fatal("restored history lost a stack")
	}
	gotPast, gotFuture := restored.Snapshots()
	if !reflect.DeepEqual(gotPast, past) || !reflect.DeepEqual(gotFuture, future) {
		t.Error("restored stacks differ from persisted snapshots")
	}
}
