package schedule

import "showflow/internal/timeutil"

// Mode selects the recalculation policy.
type Mode int

const (
	// ModeCascade recomputes every start time from a single anchor,
	// overwriting all existing times. Used for edits.
	ModeCascade Mode = iota
	// ModePreserve keeps every already-valid time as a new anchor and
	// only fills in the gaps. Used on first import so user-supplied
	// times are never silently replaced.
	ModePreserve
)

// DefaultDayStart is the anchor used when no segment carries a
// parseable time: 9:00 AM in minutes since midnight.
const DefaultDayStart = 9 * 60

// Recalculate returns a new list with every segment's start time
// derived from the running clock and its duration. The input list is
// never mutated. dayStart is the fallback anchor in minutes since
// midnight; values outside a day fall back to DefaultDayStart.
// Durations that fail to parse advance the clock by zero.
func Recalculate(list []Segment, mode Mode, dayStart int) []Segment {
	if len(list) == 0 {
		return nil
	}
	if dayStart < 0 || dayStart >= timeutil.MinutesPerDay {
		dayStart = DefaultDayStart
	}

	clock := dayStart
	if mode == ModeCascade {
		if m, ok := timeutil.ParseTime(list[0].Time); ok {
			clock = m
		}
	} else {
		for _, seg := range list {
			if m, ok := timeutil.ParseTime(seg.Time); ok {
				clock = m
				break
			}
		}
	}

	out := make([]Segment, len(list))
	for i, seg := range list {
		if mode == ModePreserve {
			if m, ok := timeutil.ParseTime(seg.Time); ok {
				clock = m
			}
		}
		d, ok := timeutil.ParseDuration(seg.Duration)
		if !ok || d < 0 {
			d = 0
		}
		seg.Time = timeutil.FormatTime(clock)
		seg.Duration = timeutil.FormatDuration(d)
		out[i] = seg
		clock += d
	}
	return out
}
