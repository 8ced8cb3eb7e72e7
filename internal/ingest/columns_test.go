package ingest

import "testing"

func mappingByField(mappings []FieldMapping) map[Field]FieldMapping {
	out := make(map[Field]FieldMapping, len(mappings))
	for _, m := range mappings {
		out[m.Field] = m
	}
	return out
}

func TestMapColumnsExact(t *testing.T) {
	headers := []string{"Time", "Duration", "Segment", "Presenter", "Notes"}
	got := mappingByField(MapColumns(headers))

	want := map[Field]int{
		FieldTime:      0,
		FieldDuration:  1,
		FieldSegment:   2,
		FieldPresenter: 3,
		FieldNotes:     4,
	}
	for field, col := range want {
		m, ok := got[field]
		if !ok {
			t.Fatalf("field %s not mapped", field)
		}
		if m.SourceColumn != col || m.Confidence != 1.0 {
			t.Errorf("field %s mapped to column %d with confidence %v, want column %d, 1.0",
				field, m.SourceColumn, m.Confidence, col)
		}
	}
}

func TestMapColumnsFuzzy(t *testing.T) {
	headers := []string{"Start Time", "How Long", "What", "Who's Presenting", "Additional Info"}
	got := mappingByField(MapColumns(headers))

	want := map[Field]int{
		FieldTime:      0,
		FieldDuration:  1,
		FieldSegment:   2,
		FieldPresenter: 3,
		FieldNotes:     4,
	}
	for field, col := range want {
		m, ok := got[field]
		if !ok {
			t.Fatalf("field %s not mapped", field)
		}
		if m.SourceColumn != col {
			t.Errorf("field %s mapped to column %d, want %d", field, m.SourceColumn, col)
		}
		if m.Confidence < fuzzyThreshold {
			t.Errorf("field %s confidence %v below threshold", field, m.Confidence)
		}
	}
}

func TestMapColumnsNormalization(t *testing.T) {
	headers := []string{"  START_TIME  ", "Session-Length", "Agenda Item"}
	got := mappingByField(MapColumns(headers))

	if m, ok := got[FieldTime]; !ok || m.SourceColumn != 0 || m.Confidence != 1.0 {
		t.Errorf("punctuated exact header not claimed: %+v", m)
	}
	if m, ok := got[FieldDuration]; !ok || m.SourceColumn != 1 {
		t.Errorf("session-length not mapped to duration: %+v", m)
	}
	if m, ok := got[FieldSegment]; !ok || m.SourceColumn != 2 {
		t.Errorf("agenda item not mapped to segment: %+v", m)
	}
}

// No source column may ever be claimed by two fields, even when its
// header appears in several keyword lists.
func TestMapColumnsNoDoubleClaims(t *testing.T) {
	headerSets := [][]string{
		{"description"}, // keyword of both segment and notes
		{"Time", "Time", "Segment"},
		{"min", "minutes", "Session"},
		{"Start Time", "How Long", "What", "Who's Presenting", "Additional Info"},
		{"", "Info", ""},
	}

	for _, headers := range headerSets {
		seen := make(map[int]Field)
		for _, m := range MapColumns(headers) {
			if prev, dup := seen[m.SourceColumn]; dup {
				t.Errorf("headers %v: column %d claimed by %s and %s", headers, m.SourceColumn, prev, m.Field)
			}
			seen[m.SourceColumn] = m.Field
		}
	}
}

func TestMapColumnsPriorityOrder(t *testing.T) {
	// "description" is in both the segment and notes vocabularies;
	// segment comes first in priority order.
	got := mappingByField(MapColumns([]string{"Description"}))
	if m, ok := got[FieldSegment]; !ok || m.SourceColumn != 0 {
		t.Fatalf("description claimed by %v, want segment", got)
	}
	if _, ok := got[FieldNotes]; ok {
		t.Error("notes also claimed the description column")
	}
}

func TestMapColumnsIgnoresUnrelatedHeaders(t *testing.T) {
	got := MapColumns([]string{"zzz", "qqq"})
	if len(got) != 0 {
		t.Errorf("unrelated headers produced mappings: %+v", got)
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Start Time", "starttime"},
		{"  WHO'S Presenting?  ", "whospresenting"},
		{"session_length", "sessionlength"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeHeader(tt.input); got != tt.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
