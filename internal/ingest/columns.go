// Package ingest turns raw schedule rows from pasted text, CSV content
// or spreadsheet worksheets into canonical segments. It performs no
// I/O; callers hand it text, bytes or a reader.
package ingest

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Field is a canonical schedule column.
type Field string

// Canonical fields, in mapping priority order.
const (
	FieldTime      Field = "time"
	FieldDuration  Field = "duration"
	FieldSegment   Field = "segment"
	FieldPresenter Field = "presenter"
	FieldNotes     Field = "notes"
)

var fieldOrder = []Field{FieldTime, FieldDuration, FieldSegment, FieldPresenter, FieldNotes}

// FieldMapping records how one source column was assigned to a field,
// with the mapper's confidence surfaced for human review.
type FieldMapping struct {
	Field        Field   `json:"field"`
	SourceColumn int     `json:"sourceColumnIndex"`
	SourceHeader string  `json:"sourceHeader"`
	Confidence   float64 `json:"confidence"`
}

// Header vocabulary per field. Matching happens on the normalized
// forms, so entries here keep their human spelling.
var fieldKeywords = map[Field][]string{
	FieldTime: {
		"time", "start", "begin", "when", "schedule", "hour", "clock",
		"starttime", "start_time", "time_start", "session_time", "event_time",
	},
	FieldDuration: {
		"duration", "length", "minutes", "mins", "runtime", "period",
		"how_long", "session_length", "event_duration", "min",
	},
	FieldSegment: {
		"segment", "session", "topic", "title", "subject", "activity", "event",
		"agenda", "item", "description", "what", "content", "session_name",
		"agenda_item", "event_name", "activity_name",
	},
	FieldPresenter: {
		"presenter", "speaker", "host", "facilitator", "instructor", "leader",
		"moderator", "teacher", "who", "presenter_name", "speaker_name",
		"facilitated_by", "led_by", "conducted_by",
	},
	FieldNotes: {
		"notes", "note", "comments", "remarks", "details", "info", "information",
		"description", "additional", "misc", "other", "feedback", "observations",
	},
}

const (
	// containmentConfidence is the floor when one normalized string
	// contains the other.
	containmentConfidence = 0.8
	// fuzzyThreshold is the minimum confidence for a fuzzy assignment.
	fuzzyThreshold = 0.6
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// normalizeHeader lowercases a header cell and strips everything that
// is not a letter or digit.
func normalizeHeader(h string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "")
}

// MapColumns assigns source columns to canonical fields. The exact
// pass claims columns whose normalized text equals a keyword; the
// fuzzy pass scores the remaining columns by containment and
// Levenshtein similarity. No column is ever assigned to two fields.
func MapColumns(headers []string) []FieldMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	assigned := make(map[Field]FieldMapping)
	claimed := make(map[int]bool)

	// Exact pass.
	for _, field := range fieldOrder {
		for i, header := range normalized {
			if header == "" || claimed[i] {
				continue
			}
			if containsExact(fieldKeywords[field], header) {
				assigned[field] = FieldMapping{Field: field, SourceColumn: i, SourceHeader: headers[i], Confidence: 1.0}
				claimed[i] = true
				break
			}
		}
	}

	// Fuzzy pass for the rest.
	for _, field := range fieldOrder {
		if _, ok := assigned[field]; ok {
			continue
		}
		best := FieldMapping{Field: field, SourceColumn: -1}
		for i, header := range normalized {
			if header == "" || claimed[i] {
				continue
			}
			for _, keyword := range fieldKeywords[field] {
				confidence := headerConfidence(header, normalizeHeader(keyword))
				if confidence > fuzzyThreshold && confidence > best.Confidence {
					best = FieldMapping{Field: field, SourceColumn: i, SourceHeader: headers[i], Confidence: confidence}
				}
			}
		}
		if best.SourceColumn >= 0 {
			assigned[field] = best
			claimed[best.SourceColumn] = true
		}
	}

	out := make([]FieldMapping, 0, len(assigned))
	for _, field := range fieldOrder {
		if m, ok := assigned[field]; ok {
			out = append(out, m)
		}
	}
	return out
}

func containsExact(keywords []string, header string) bool {
	for _, k := range keywords {
		if normalizeHeader(k) == header {
			return true
		}
	}
	return false
}

// headerConfidence scores a normalized header against a normalized
// keyword: Levenshtein similarity, with a floor when either string
// contains the other.
func headerConfidence(header, keyword string) float64 {
	if header == "" || keyword == "" {
		return 0
	}
	confidence := similarity(header, keyword)
	if strings.Contains(header, keyword) || strings.Contains(keyword, header) {
		if confidence < containmentConfidence {
			confidence = containmentConfidence
		}
	}
	return confidence
}

// similarity is (maxLen - distance) / maxLen over the two strings.
func similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-d) / float64(maxLen)
}
