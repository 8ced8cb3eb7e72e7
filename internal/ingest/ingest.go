package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

// Structural errors abort the whole ingestion; partial failures inside
// a row never do.
var (
	ErrEmptyInput  = errors.New("input contains no data")
	ErrNoHeaderRow = errors.New("no header row detected")
	ErrNoWorksheet = errors.New("workbook has no worksheets")
)

// Result is the outcome of an ingestion: draft segments plus the
// column mapping that produced them, surfaced for review before the
// import is committed.
type Result struct {
	Segments []schedule.Segment
	Mapping  []FieldMapping
}

// MappingFor returns the mapping assigned to a field, if any.
func (r *Result) MappingFor(field Field) (FieldMapping, bool) {
	for _, m := range r.Mapping {
		if m.Field == field {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// LowConfidence reports whether any column was mapped below the given
// confidence.
func (r *Result) LowConfidence(threshold float64) bool {
	for _, m := range r.Mapping {
		if m.Confidence < threshold {
			return true
		}
	}
	return false
}

// ParseText ingests pasted delimited text. When the first row already
// reads as data, synthetic "Column N" headers are generated so nothing
// is lost.
func ParseText(text string) (*Result, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	split := sniffSplitter(lines[0])
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = split(line)
	}

	headers := rows[0]
	dataRows := rows[1:]
	if looksLikeData(rows[0]) {
		headers = syntheticHeaders(len(rows[0]))
		dataRows = rows
	}
	return buildResult(headers, dataRows)
}

// ParseCSV ingests CSV file content. The delimiter is sniffed from the
// first non-empty line and the records go through encoding/csv, so
// quoted cells may carry the delimiter. The header row is the first of
// the first three rows with alphabetic content.
func ParseCSV(data []byte) (*Result, error) {
	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty csv", ErrEmptyInput)
	}

	var rows [][]string
	if delim, ok := sniffDelimiter(lines[0]); ok {
		reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
		reader.Comma = delim
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		records, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rows = records
		for i := range rows {
			rows[i] = trimCells(rows[i])
		}
	} else {
		rows = make([][]string, len(lines))
		for i, line := range lines {
			rows[i] = multiSpaceSplitter(line)
		}
	}

	idx := headerRowIndex(rows)
	if idx < 0 {
		return nil, ErrNoHeaderRow
	}
	return buildResult(rows[idx], rows[idx+1:])
}

func syntheticHeaders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Column %d", i+1)
	}
	return out
}

// buildResult maps the header row and converts each data row into a
// draft segment. Rows that are entirely blank, or end up with neither
// a time nor a title, are dropped.
func buildResult(headers []string, rows [][]string) (*Result, error) {
	mapping := MapColumns(headers)

	var segments []schedule.Segment
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		seg := draftSegment(row, mapping)
		if seg.IsBlank() {
			continue
		}
		segments = append(segments, seg)
	}
	return &Result{Segments: segments, Mapping: mapping}, nil
}

// draftSegment applies the codecs per mapped field. Parse failures
// degrade to the raw value (time, duration) or empty (time-like text
// in a duration column); they never abort the row.
func draftSegment(row []string, mapping []FieldMapping) schedule.Segment {
	var seg schedule.Segment
	for _, m := range mapping {
		if m.SourceColumn >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[m.SourceColumn])
		switch m.Field {
		case FieldTime:
			seg.Time = convertTime(value)
		case FieldDuration:
			seg.Duration = convertDuration(value)
		case FieldSegment:
			seg.Title = value
		case FieldPresenter:
			seg.Presenter = value
		case FieldNotes:
			seg.Notes = value
		}
	}
	return seg
}

func convertTime(value string) string {
	if value == "" {
		return ""
	}
	if m, ok := timeutil.ParseTime(value); ok {
		return timeutil.FormatTime(m)
	}
	return value
}

func convertDuration(value string) string {
	if value == "" {
		return ""
	}
	if n, ok := timeutil.ParseDuration(value); ok {
		return strconv.Itoa(n)
	}
	if timeutil.IsTimeOfDay(value) {
		// A clock value landed in the duration column; mapping noise,
		// not a duration.
		return ""
	}
	return value
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
