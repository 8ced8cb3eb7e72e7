package schedule

import (
	"errors"
	"strings"

	"showflow/internal/timeutil"
)

// Domain errors.
var (
	ErrIndexOutOfRange = errors.New("segment index out of range")
	ErrSamePosition    = errors.New("segment is already at that position")
)

// Editor owns the working schedule and its history. Every structural
// mutation snapshots the pre-mutation list, produces a fresh list and
// recalculates start times, so snapshots already in history are never
// altered by later edits.
type Editor struct {
	segments        []Segment
	history         History
	dayStart        int // fallback anchor, minutes since midnight
	defaultDuration int // minutes applied to imported rows without one
}

// NewEditor creates an Editor with the given day-start anchor and
// default duration, both in minutes.
func NewEditor(dayStart, defaultDuration int) *Editor {
	return &Editor{dayStart: dayStart, defaultDuration: defaultDuration}
}

// Segments returns a copy of the working list.
func (e *Editor) Segments() []Segment {
	return CloneList(e.segments)
}

// Len returns the number of segments.
func (e *Editor) Len() int { return len(e.segments) }

// History exposes the undo/redo stacks for persistence.
func (e *Editor) History() *History { return &e.history }

// Load replaces the schedule with imported rows, recalculating in
// preserve mode so user-supplied times survive. Rows missing a
// duration get the configured default.
func (e *Editor) Load(segments []Segment) {
	e.history.Push(e.segments)
	loaded := CloneList(segments)
	for i := range loaded {
		if strings.TrimSpace(loaded[i].Duration) == "" {
			loaded[i].Duration = timeutil.FormatDuration(e.defaultDuration)
		}
	}
	e.segments = Recalculate(loaded, ModePreserve, e.dayStart)
}

// Replace swaps in a new list wholesale (for example after an
// auto-clean), recalculating in cascade mode.
func (e *Editor) Replace(segments []Segment) {
	e.apply(CloneList(segments))
}

// Restore installs previously persisted state without touching history
// stacks or recalculating.
func (e *Editor) Restore(segments []Segment, past, future [][]Segment) {
	e.segments = CloneList(segments)
	e.history.Restore(past, future)
}

// Add inserts a blank segment at index. Indexes are clamped to the
// list bounds.
func (e *Editor) Add(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(e.segments) {
		index = len(e.segments)
	}
	next := CloneList(e.segments)
	blank := Segment{Duration: "0", Title: "New Segment"}
	next = append(next[:index], append([]Segment{blank}, next[index:]...)...)
	e.apply(next)
}

// Remove deletes the segment at index.
func (e *Editor) Remove(index int) error {
	if index < 0 || index >= len(e.segments) {
		return ErrIndexOutOfRange
	}
	next := CloneList(e.segments)
	next = append(next[:index], next[index+1:]...)
	e.apply(next)
	return nil
}

// Move reorders the segment at from to position to.
func (e *Editor) Move(from, to int) error {
	if from < 0 || from >= len(e.segments) || to < 0 || to >= len(e.segments) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return ErrSamePosition
	}
	next := CloneList(e.segments)
	moved := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]Segment{moved}, next[to:]...)...)
	e.apply(next)
	return nil
}

// Duplicate copies the segment at index to the position after it.
func (e *Editor) Duplicate(index int) error {
	if index < 0 || index >= len(e.segments) {
		return ErrIndexOutOfRange
	}
	next := CloneList(e.segments)
	dup := next[index]
	next = append(next[:index+1], append([]Segment{dup}, next[index+1:]...)...)
	e.apply(next)
	return nil
}

// Update replaces the segment at index with the edited values.
func (e *Editor) Update(index int, seg Segment) error {
	if index < 0 || index >= len(e.segments) {
		return ErrIndexOutOfRange
	}
	next := CloneList(e.segments)
	next[index] = seg
	e.apply(next)
	return nil
}

// SetNotes updates only the notes of the segment at index.
func (e *Editor) SetNotes(index int, notes string) error {
	if index < 0 || index >= len(e.segments) {
		return ErrIndexOutOfRange
	}
	next := CloneList(e.segments)
	next[index].Notes = notes
	e.apply(next)
	return nil
}

// Undo reverts the last mutation. Returns false when there is nothing
// to undo.
func (e *Editor) Undo() bool {
	prev, ok := e.history.Undo(e.segments)
	if !ok {
		return false
	}
	e.segments = prev
	return true
}

// Redo reapplies the last undone mutation.
func (e *Editor) Redo() bool {
	next, ok := e.history.Redo(e.segments)
	if !ok {
		return false
	}
	e.segments = next
	return true
}

// Reset clears the schedule and both history stacks.
func (e *Editor) Reset() {
	e.segments = nil
	e.history.Clear()
}

// apply pushes the pre-mutation snapshot, installs next and
// recalculates in cascade mode.
func (e *Editor) apply(next []Segment) {
	e.history.Push(e.segments)
	e.segments = Recalculate(next, ModeCascade, e.dayStart)
}
