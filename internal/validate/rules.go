// Package validate checks schedule rows against per-field rules and
// cross-row constraints, collecting errors, warnings and suggested
// fixes instead of aborting on the first bad value.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

// Issue kinds.
const (
	KindError   = "error"
	KindWarning = "warning"
)

// Issue represents a single validation finding on a schedule row.
type Issue struct {
	Kind    string // "error" or "warning"
	Field   string // Field name, or "schedule" for list-level issues
	Row     int    // 1-based row index, 0 for list-level issues
	Message string // Human-readable message
}

// String returns a formatted message suitable for terminal output.
func (i Issue) String() string {
	if i.Row == 0 {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("row %d: %s - %s", i.Row, i.Field, i.Message)
}

// RowResult contains the findings for one row.
type RowResult struct {
	Valid       bool
	Errors      []Issue
	Warnings    []Issue
	Suggestions map[string]string // field -> suggested replacement value
}

// Result aggregates findings across an entire schedule.
type Result struct {
	Valid       bool
	Errors      []Issue
	Warnings    []Issue
	Suggestions map[int]map[string]string // row -> field -> suggestion
	TotalRows   int
}

// fieldRule pairs a validity check with a fixer that proposes a
// replacement value when the check fails.
type fieldRule struct {
	field    string
	value    func(schedule.Segment) string
	validate func(string) (bool, string)
	suggest  func(string) string
}

const (
	maxTitleLen     = 200
	maxPresenterLen = 100
	maxNotesLen     = 500
	longDurationMin = 480
	largeGapMin     = 120
)

var digitGroups = regexp.MustCompile(`\d+`)

var fieldRules = []fieldRule{
	{
		field: "time",
		value: func(s schedule.Segment) string { return s.Time },
		validate: func(v string) (bool, string) {
			if strings.TrimSpace(v) == "" {
				return false, "Time is required"
			}
			if !timeutil.MatchesTimePattern(v) {
				return false, `Invalid time format. Use formats like "9:00 AM" or "14:30"`
			}
			return true, ""
		},
		suggest: suggestTime,
	},
	{
		field: "duration",
		value: func(s schedule.Segment) string { return s.Duration },
		validate: func(v string) (bool, string) {
			if strings.TrimSpace(v) == "" {
				return true, ""
			}
			if _, ok := timeutil.ParseDuration(v); !ok {
				return false, `Invalid duration format. Use formats like "30", "30 min", or "1:30"`
			}
			return true, ""
		},
		suggest: suggestDuration,
	},
	{
		field: "segment",
		value: func(s schedule.Segment) string { return s.Title },
		validate: func(v string) (bool, string) {
			if strings.TrimSpace(v) == "" {
				return false, "Segment name is required"
			}
			if utf8.RuneCountInString(v) > maxTitleLen {
				return false, fmt.Sprintf("Segment name is too long (max %d characters)", maxTitleLen)
			}
			return true, ""
		},
		suggest: func(v string) string {
			if strings.TrimSpace(v) == "" {
				return "Untitled Segment"
			}
			return truncate(strings.TrimSpace(v), maxTitleLen)
		},
	},
	{
		field: "presenter",
		value: func(s schedule.Segment) string { return s.Presenter },
		validate: func(v string) (bool, string) {
			if utf8.RuneCountInString(v) > maxPresenterLen {
				return false, fmt.Sprintf("Presenter name is too long (max %d characters)", maxPresenterLen)
			}
			return true, ""
		},
		suggest: func(v string) string { return truncate(strings.TrimSpace(v), maxPresenterLen) },
	},
	{
		field: "notes",
		value: func(s schedule.Segment) string { return s.Notes },
		validate: func(v string) (bool, string) {
			if utf8.RuneCountInString(v) > maxNotesLen {
				return false, fmt.Sprintf("Notes are too long (max %d characters)", maxNotesLen)
			}
			return true, ""
		},
		suggest: func(v string) string { return truncate(strings.TrimSpace(v), maxNotesLen) },
	},
}

// suggestTime reformats whatever numeric groups the raw value carries
// into canonical clock text, falling back to a plain default.
func suggestTime(v string) string {
	if strings.TrimSpace(v) == "" {
		return "9:00 AM"
	}
	nums := digitGroups.FindAllString(v, 2)
	if len(nums) == 0 {
		return v
	}
	hours, _ := strconv.Atoi(nums[0])
	minutes := 0
	if len(nums) > 1 {
		minutes, _ = strconv.Atoi(nums[1])
	}
	if hours > 23 || minutes > 59 {
		return v
	}
	return timeutil.FormatTime(hours*60 + minutes)
}

func suggestDuration(v string) string {
	if num := digitGroups.FindString(v); num != "" {
		return num
	}
	return "30"
}

// truncate cuts s to limit characters on a rune boundary, so
// multibyte text never yields an invalid suggestion.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// ValidateRow applies the per-field rules to one segment. index is the
// 1-based row position used in reported issues.
func ValidateRow(seg schedule.Segment, index int) RowResult {
	res := RowResult{Suggestions: map[string]string{}}

	for _, rule := range fieldRules {
		value := rule.value(seg)
		ok, msg := rule.validate(value)
		if ok {
			continue
		}
		res.Errors = append(res.Errors, Issue{
			Kind:    KindError,
			Field:   rule.field,
			Row:     index,
			Message: msg,
		})
		res.Suggestions[rule.field] = rule.suggest(value)
	}

	res.Warnings = append(res.Warnings, rowWarnings(seg, index)...)
	res.Valid = len(res.Errors) == 0
	return res
}

// rowWarnings covers sanity checks that need both a time and a
// duration present on the row.
func rowWarnings(seg schedule.Segment, index int) []Issue {
	if strings.TrimSpace(seg.Time) == "" || strings.TrimSpace(seg.Duration) == "" {
		return nil
	}

	raw := strings.TrimSpace(seg.Duration)
	minutes := resolveDuration(raw)

	var warnings []Issue
	if minutes > longDurationMin {
		warnings = append(warnings, Issue{
			Kind:  KindWarning,
			Field: "duration",
			Row:   index,
			Message: fmt.Sprintf("Duration seems unusually long (%d minutes = %.1f hours)",
				minutes, float64(minutes)/60),
		})
	}
	if minutes == 0 && raw != "0" {
		warnings = append(warnings, Issue{
			Kind:    KindWarning,
			Field:   "duration",
			Row:     index,
			Message: "Duration could not be parsed or is zero",
		})
	}
	return warnings
}

// resolveDuration mirrors how the recalculator will read the value:
// the codec first, then a bare digit-strip as a last resort so that
// near-miss formats still trip the long-duration warning.
func resolveDuration(raw string) int {
	if m, ok := timeutil.ParseDuration(raw); ok {
		return m
	}
	digits := digitGroups.FindString(raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// ValidateSchedule runs every row rule plus list-level checks:
// emptiness, duplicate titles, and adjacent overlap or gap detection.
func ValidateSchedule(list []schedule.Segment) Result {
	res := Result{
		Suggestions: map[int]map[string]string{},
		TotalRows:   len(list),
	}

	for i, seg := range list {
		row := ValidateRow(seg, i+1)
		res.Errors = append(res.Errors, row.Errors...)
		res.Warnings = append(res.Warnings, row.Warnings...)
		if len(row.Suggestions) > 0 {
			res.Suggestions[i+1] = row.Suggestions
		}
	}

	if len(list) == 0 {
		res.Errors = append(res.Errors, Issue{
			Kind:    KindError,
			Field:   "schedule",
			Row:     0,
			Message: "Schedule is empty",
		})
	}

	if dups := duplicateTitles(list); len(dups) > 0 {
		res.Warnings = append(res.Warnings, Issue{
			Kind:    KindWarning,
			Field:   "schedule",
			Row:     0,
			Message: "Duplicate segments found: " + strings.Join(dups, ", "),
		})
	}

	res.Warnings = append(res.Warnings, timeConflicts(list)...)

	res.Valid = len(res.Errors) == 0
	return res
}

// duplicateTitles reports each title that appears more than once,
// compared case-insensitively after trimming, in first-seen order.
func duplicateTitles(list []schedule.Segment) []string {
	seen := map[string]int{}
	var dups []string
	for _, seg := range list {
		name := strings.ToLower(strings.TrimSpace(seg.Title))
		if name == "" {
			continue
		}
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// timeConflicts walks adjacent pairs of rows that both carry a
// parseable time and flags overlaps and outsized gaps between them.
func timeConflicts(list []schedule.Segment) []Issue {
	type timed struct {
		seg   schedule.Segment
		row   int
		start int
	}

	var rows []timed
	for i, seg := range list {
		if strings.TrimSpace(seg.Time) == "" {
			continue
		}
		start, ok := timeutil.ParseTime(seg.Time)
		if !ok {
			continue
		}
		rows = append(rows, timed{seg: seg, row: i + 1, start: start})
	}

	var issues []Issue
	for i := 0; i+1 < len(rows); i++ {
		current, next := rows[i], rows[i+1]
		end := current.start + resolveDuration(current.seg.Duration)

		if end > next.start {
			issues = append(issues, Issue{
				Kind:  KindWarning,
				Field: "schedule",
				Row:   current.row,
				Message: fmt.Sprintf("Potential time conflict between %q and %q",
					current.seg.Title, next.seg.Title),
			})
		}
		if gap := next.start - end; gap > largeGapMin {
			issues = append(issues, Issue{
				Kind:  KindWarning,
				Field: "schedule",
				Row:   current.row,
				Message: fmt.Sprintf("Large time gap (%dh %dm) between %q and %q",
					gap/60, gap%60, current.seg.Title, next.seg.Title),
			})
		}
	}
	return issues
}

// AutoClean applies each failing field's suggested value, leaving
// fields that already pass untouched. The input list is not modified.
func AutoClean(list []schedule.Segment) []schedule.Segment {
	out := schedule.CloneList(list)
	for i := range out {
		row := ValidateRow(out[i], i+1)
		for field, value := range row.Suggestions {
			switch field {
			case "time":
				out[i].Time = value
			case "duration":
				out[i].Duration = value
			case "segment":
				out[i].Title = value
			case "presenter":
				out[i].Presenter = value
			case "notes":
				out[i].Notes = value
			}
		}
	}
	return out
}
