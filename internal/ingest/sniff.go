package ingest

import (
	"regexp"
	"strings"

	"showflow/internal/timeutil"
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// splitter divides a line into trimmed cells.
type splitter func(line string) []string

// sniffSplitter inspects one line and returns the splitter that yields
// the most columns, trying tab, semicolon, pipe, comma and runs of two
// or more spaces. Earlier candidates win ties.
func sniffSplitter(line string) splitter {
	type candidate struct {
		name  string
		split splitter
	}
	candidates := []candidate{
		{"tab", delimiterSplitter("\t")},
		{"semicolon", delimiterSplitter(";")},
		{"pipe", delimiterSplitter("|")},
		{"comma", delimiterSplitter(",")},
		{"spaces", multiSpaceSplitter},
	}

	best := candidates[3].split // comma when nothing else divides the line
	bestColumns := 1
	for _, c := range candidates {
		if n := len(c.split(line)); n > bestColumns {
			bestColumns = n
			best = c.split
		}
	}
	return best
}

// sniffDelimiter returns the single-character delimiter that yields
// the most columns, for callers that hand the line to a CSV reader.
// ok is false when runs of spaces divide the line better than any
// delimiter does.
func sniffDelimiter(line string) (delim rune, ok bool) {
	delim = ','
	columns := 1
	for _, d := range []rune{'\t', ';', '|', ','} {
		if n := len(strings.Split(line, string(d))); n > columns {
			delim, columns = d, n
		}
	}
	if len(multiSpaceSplitter(line)) > columns {
		return 0, false
	}
	return delim, true
}

func delimiterSplitter(delim string) splitter {
	return func(line string) []string {
		return trimCells(strings.Split(line, delim))
	}
}

func multiSpaceSplitter(line string) []string {
	return trimCells(multiSpace.Split(line, -1))
}

func trimCells(cells []string) []string {
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// splitLines breaks text into trimmed non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// headerRowSearch is how many leading rows are checked for a header.
const headerRowSearch = 3

var alphabetic = regexp.MustCompile(`[A-Za-z]`)

// headerRowIndex returns the first of the first three rows containing
// an alphabetic cell, or -1 when none qualifies.
func headerRowIndex(rows [][]string) int {
	limit := len(rows)
	if limit > headerRowSearch {
		limit = headerRowSearch
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if alphabetic.MatchString(cell) {
				return i
			}
		}
	}
	return -1
}

// looksLikeData reports whether a row reads as schedule data rather
// than headers: any cell matching a time format or parsing as a
// duration.
func looksLikeData(row []string) bool {
	for _, cell := range row {
		if cell == "" {
			continue
		}
		if timeutil.MatchesTimePattern(cell) {
			return true
		}
		if _, ok := timeutil.ParseDuration(cell); ok {
			return true
		}
	}
	return false
}
