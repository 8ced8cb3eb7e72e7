package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxDurationMinutes is the longest duration a segment may carry (12 hours).
const MaxDurationMinutes = 720

// durationRule pairs a matcher with an extractor, tried in order.
type durationRule struct {
	pattern *regexp.Regexp
	extract func(m []string) (int, bool)
}

var durationRules = []durationRule{
	// 30, 45 (plain minute counts)
	{regexp.MustCompile(`^(\d+)$`), extractMinutes},
	// 30 min, 45 mins, 30m, 20 minutes
	{regexp.MustCompile(`^(\d+)\s*[Mm](?:in(?:ute)?s?)?$`), extractMinutes},
	// 1 hr, 2 hrs, 1 hour, 3h
	{regexp.MustCompile(`^(\d+)\s*[Hh](?:r|rs|our|ours)?$`), extractHours},
	// 1h30m, 1h 30m, 2h05
	{regexp.MustCompile(`^(\d+)[Hh]\s*(\d{1,2})[Mm]?$`), extractHoursMinutes},
	// 1:30 - accepted as a duration only for small hour values, since
	// larger ones almost certainly mean a time of day
	{regexp.MustCompile(`^(\d{1,2}):(\d{2})$`), extractColonDuration},
	// 1.5, 90.0 (decimal minute counts, floored)
	{regexp.MustCompile(`^(\d+\.\d+)$`), extractDecimalMinutes},
}

// timeOfDayPattern matches clock values that must never be read as
// durations: anything carrying a meridiem or a seconds component.
var timeOfDayPattern = regexp.MustCompile(`^\d{1,2}[:.]\d{2}(?::\d{2})?\s*[AaPp][Mm]$|^\d{1,2}:\d{2}:\d{2}$`)

var colonClock = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// colonDurationMaxHours is the h:m disambiguation cutoff: "2:30" is a
// duration, "5:30" is a time of day.
const colonDurationMaxHours = 4

// ParseDuration converts duration text to whole minutes.
// Values matching a time-of-day pattern and values outside
// [0, MaxDurationMinutes] are rejected, never clamped.
func ParseDuration(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || IsTimeOfDay(s) {
		return 0, false
	}
	for _, rule := range durationRules {
		if m := rule.pattern.FindStringSubmatch(s); m != nil {
			return rule.extract(m)
		}
	}
	return 0, false
}

// FormatDuration renders minutes in the canonical "<n> min" form.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// IsTimeOfDay reports whether s is unambiguously a clock time rather
// than a duration: it carries a meridiem, a seconds component, or an
// h:m value above the duration cutoff.
func IsTimeOfDay(raw string) bool {
	s := strings.TrimSpace(raw)
	if timeOfDayPattern.MatchString(s) {
		return true
	}
	if m := colonClock.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours > colonDurationMaxHours
	}
	return false
}

func extractMinutes(m []string) (int, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return boundedDuration(n)
}

func extractHours(m []string) (int, bool) {
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return boundedDuration(hours * 60)
}

func extractHoursMinutes(m []string) (int, bool) {
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if minutes > 59 {
		return 0, false
	}
	return boundedDuration(hours*60 + minutes)
}

func extractColonDuration(m []string) (int, bool) {
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > colonDurationMaxHours || minutes > 59 {
		return 0, false
	}
	return boundedDuration(hours*60 + minutes)
}

func extractDecimalMinutes(m []string) (int, bool) {
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return boundedDuration(int(f))
}

func boundedDuration(n int) (int, bool) {
	if n < 0 || n > MaxDurationMinutes {
		return 0, false
	}
	return n, true
}
