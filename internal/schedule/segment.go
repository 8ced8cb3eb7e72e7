// Package schedule defines the run-of-show domain types and the
// operations that keep derived start times consistent under edits.
package schedule

import "strings"

// StorageKey is the well-known key the canonical segment list is
// persisted under.
const StorageKey = "showflow-schedule"

// Segment is one row of the run of show: a time-bounded activity with
// a title, presenter and notes. Order in the containing slice is the
// execution order.
type Segment struct {
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	Title     string `json:"segment"`
	Presenter string `json:"presenter"`
	Notes     string `json:"notes"`
}

// IsBlank reports whether the segment carries no time and no title.
func (s Segment) IsBlank() bool {
	return strings.TrimSpace(s.Time) == "" && strings.TrimSpace(s.Title) == ""
}

// CloneList returns an independent copy of a segment list. Snapshots
// handed to history must never alias the working slice.
func CloneList(list []Segment) []Segment {
	if list == nil {
		return nil
	}
	out := make([]Segment, len(list))
	copy(out, list)
	return out
}
