package ui

import (
	"fmt"
	"strings"

	"showflow/internal/ingest"
	"showflow/internal/schedule"
	"showflow/internal/timeutil"
	"showflow/internal/validate"
)

// PrintOpts configures schedule printing behavior.
type PrintOpts struct {
	Verbose       bool // Show notes under each row
	CurrentIndex  int  // Highlighted segment, -1 for none
	OverrunIndex  int  // Segment running past its end, -1 for none
	MaxTitleWidth int  // Maximum title width (0 = auto)
}

// CalcTitleWidth derives the title column width from the terminal.
func (o PrintOpts) CalcTitleWidth() int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	// Base: "  ▶  99. 12:00 PM  999 min  " plus presenter column
	available := termWidth() - 50
	if available < 20 {
		return 20
	}
	if available > 60 {
		return 60
	}
	return available
}

// PrintSchedule prints every segment with an optional current-segment
// marker and a total running time line.
func PrintSchedule(list []schedule.Segment, opts PrintOpts) {
	width := opts.CalcTitleWidth()
	for i, seg := range list {
		printSegmentRow(i, seg, opts, width)
	}

	fmt.Println()
	fmt.Printf("%s\n", formatMuted(fmt.Sprintf("%d segments, %s total", len(list), totalRunTime(list))))
}

func printSegmentRow(i int, seg schedule.Segment, opts PrintOpts, titleWidth int) {
	marker := "  "
	switch i {
	case opts.OverrunIndex:
		marker = formatWarn("▶!")
	case opts.CurrentIndex:
		marker = formatCurrent("▶ ")
	}

	title := clipTitle(seg.Title, titleWidth)

	line := fmt.Sprintf("  %s %2d. %-8s  %-8s  %-*s  %s",
		marker, i+1, seg.Time, seg.Duration, titleWidth, title, seg.Presenter)
	if i == opts.CurrentIndex {
		line = formatCurrent(line)
	}
	fmt.Println(strings.TrimRight(line, " "))

	if opts.Verbose && seg.Notes != "" {
		fmt.Printf("       %s\n", formatMuted(seg.Notes))
	}
}

// clipTitle shortens a title to fit width with an ellipsis, cutting on
// a rune boundary so multibyte titles stay valid text.
func clipTitle(title string, width int) string {
	r := []rune(title)
	if len(r) <= width {
		return title
	}
	return string(r[:width-3]) + "..."
}

// totalRunTime sums the parseable durations across the schedule.
func totalRunTime(list []schedule.Segment) string {
	total := 0
	for _, seg := range list {
		if m, ok := timeutil.ParseDuration(seg.Duration); ok {
			total += m
		}
	}
	hours := total / 60
	mins := total % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// PrintMapping prints how source columns were assigned to fields,
// flagging low-confidence assignments.
func PrintMapping(mapping []ingest.FieldMapping) {
	if len(mapping) == 0 {
		fmt.Println(formatMuted("No columns recognized; positional defaults applied."))
		return
	}

	fmt.Println(formatHeader("Column mapping:"))
	for _, m := range mapping {
		confidence := fmt.Sprintf("%3.0f%%", m.Confidence*100)
		if m.Confidence < 0.8 {
			confidence = formatWarn(confidence)
		} else {
			confidence = formatGood(confidence)
		}
		fmt.Printf("  %-10s <- column %d %-24q %s\n",
			m.Field, m.SourceColumn+1, m.SourceHeader, confidence)
	}
}

// PrintReport renders a quality report for terminal review.
func PrintReport(report validate.QualityReport) {
	score := fmt.Sprintf("%.0f/100", report.Score)
	switch {
	case report.Score >= 90:
		score = formatGood(score)
	case report.Score >= 60:
		score = formatWarn(score)
	default:
		score = formatError(score)
	}
	fmt.Printf("%s %s  (%d of %d rows clean)\n\n",
		formatHeader("Quality score:"), score, report.ValidRows, report.TotalRows)

	if len(report.Errors) > 0 {
		fmt.Println(formatHeader("Errors:"))
		for _, issue := range report.Errors {
			fmt.Printf("  %s %s\n", formatError("✗"), issue)
		}
		fmt.Println()
	}

	if len(report.Warnings) > 0 {
		fmt.Println(formatHeader("Warnings:"))
		for _, issue := range report.Warnings {
			fmt.Printf("  %s %s\n", formatWarn("!"), issue)
		}
		fmt.Println()
	}

	if len(report.Suggestions) > 0 {
		fmt.Println(formatHeader("Suggested fixes:"))
		for row, fields := range report.Suggestions {
			for field, value := range fields {
				fmt.Printf("  row %d: %s -> %q\n", row, field, value)
			}
		}
		fmt.Println()
	}

	for _, rec := range report.Recommendations {
		tag := formatWarn("[" + rec.Priority + "]")
		if rec.Priority == validate.PriorityHigh {
			tag = formatError("[" + rec.Priority + "]")
		}
		fmt.Printf("%s %s\n        %s\n", tag, rec.Message, formatMuted(rec.Action))
	}
}
