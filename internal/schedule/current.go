package schedule

import "showflow/internal/timeutil"

// CurrentIndex returns the index of the segment running at now
// (minutes since midnight), or -1 when nothing has started. A segment
// is current when its start has passed and the immediately following
// segment's start has not. The caller supplies now so the engine stays
// deterministic.
func CurrentIndex(list []Segment, now int) int {
	for i, seg := range list {
		start, ok := timeutil.ParseTime(seg.Time)
		if !ok {
			continue
		}
		if start > now {
			continue
		}
		next, nextOK := nextStart(list, i)
		if !nextOK || now < next {
			return i
		}
	}
	return -1
}

// OverrunIndex returns the index of the current segment when now has
// already passed its planned end (start plus duration), or -1.
func OverrunIndex(list []Segment, now int) int {
	idx := CurrentIndex(list, now)
	if idx < 0 {
		return -1
	}
	start, ok := timeutil.ParseTime(list[idx].Time)
	if !ok {
		return -1
	}
	d, ok := timeutil.ParseDuration(list[idx].Duration)
	if !ok {
		return -1
	}
	if now > start+d {
		return idx
	}
	return -1
}

func nextStart(list []Segment, i int) (int, bool) {
	if i+1 >= len(list) {
		return 0, false
	}
	return timeutil.ParseTime(list[i+1].Time)
}
