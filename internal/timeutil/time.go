// Package timeutil converts wall-clock and duration text to and from
// minutes since midnight.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a wall-clock day.
const MinutesPerDay = 24 * 60

// timeRule pairs a matcher with an extractor. Rules are tried in order
// and the first matching pattern decides the result.
type timeRule struct {
	pattern *regexp.Regexp
	extract func(m []string) (int, bool)
}

var timeRules = []timeRule{
	// 9:00 AM, 12:30 pm
	{regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`), extractClock12},
	// 9:00, 14:30 (24-hour)
	{regexp.MustCompile(`^(\d{1,2}):(\d{2})$`), extractClock24},
	// 9.00 AM
	{regexp.MustCompile(`^(\d{1,2})\.(\d{2})\s*([AaPp][Mm])$`), extractClock12},
	// 9:00:00 AM, 14:30:00 - seconds are dropped
	{regexp.MustCompile(`^(\d{1,2}):(\d{2}):\d{2}\s*([AaPp][Mm])?$`), extractClockOptionalMeridiem},
	// 9h00
	{regexp.MustCompile(`^(\d{1,2})[Hh](\d{2})$`), extractClock24},
	// 900, 1430 (military time)
	{regexp.MustCompile(`^(\d{3,4})$`), extractMilitary},
}

var numberGroups = regexp.MustCompile(`\d+`)

// ParseTime converts a time string to minutes since midnight.
// It tries each known format in order, then falls back to extracting
// the leading numeric groups as hour and minute. Returns false when no
// interpretation stays within a 24-hour clock.
func ParseTime(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	for _, rule := range timeRules {
		if m := rule.pattern.FindStringSubmatch(s); m != nil {
			return rule.extract(m)
		}
	}

	// Fallback: take the first one or two numbers and treat them as
	// hour and minute. A lone number above 100 is split as military time.
	nums := numberGroups.FindAllString(s, 2)
	if len(nums) == 0 {
		return 0, false
	}
	hours, _ := strconv.Atoi(nums[0])
	minutes := 0
	if len(nums) > 1 {
		minutes, _ = strconv.Atoi(nums[1])
	} else if hours > 100 {
		minutes = hours % 100
		hours /= 100
	}
	return clockMinutes(hours, minutes)
}

// MatchesTimePattern reports whether s matches one of the known time
// formats outright, without the numeric-extraction fallback.
func MatchesTimePattern(raw string) bool {
	s := strings.TrimSpace(raw)
	for _, rule := range timeRules {
		if rule.pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FormatTime renders minutes since midnight as a 12-hour clock string:
// no leading zero on the hour, two-digit minute, uppercase meridiem.
// Values outside a single day wrap around midnight.
func FormatTime(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hours := m / 60
	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m%60, meridiem)
}

// FromDayFraction converts a spreadsheet day-fraction value in (0,1)
// to minutes since midnight.
func FromDayFraction(f float64) (int, bool) {
	if f <= 0 || f >= 1 {
		return 0, false
	}
	total := int(math.Round(f * MinutesPerDay))
	if total >= MinutesPerDay {
		return 0, false
	}
	return total, true
}

// FromClock extracts minutes since midnight from a date/time value.
func FromClock(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func extractClock12(m []string) (int, bool) {
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return clockMinutes(meridiemHours(hours, m[3]), minutes)
}

func extractClock24(m []string) (int, bool) {
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return clockMinutes(hours, minutes)
}

func extractClockOptionalMeridiem(m []string) (int, bool) {
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if m[3] != "" {
		hours = meridiemHours(hours, m[3])
	}
	return clockMinutes(hours, minutes)
}

func extractMilitary(m []string) (int, bool) {
	n, _ := strconv.Atoi(m[1])
	return clockMinutes(n/100, n%100)
}

// meridiemHours converts a 12-hour value to 24-hour given an AM/PM marker.
func meridiemHours(hours int, meridiem string) int {
	switch strings.ToUpper(meridiem) {
	case "PM":
		if hours != 12 {
			return hours + 12
		}
	case "AM":
		if hours == 12 {
			return 0
		}
	}
	return hours
}

func clockMinutes(hours, minutes int) (int, bool) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
