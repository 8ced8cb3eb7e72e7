package validate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"showflow/internal/schedule"
)

func TestValidateRow(t *testing.T) {
	tests := []struct {
		name        string
		seg         schedule.Segment
		wantValid   bool
		wantField   string // field of the first expected error
		wantSuggest string // suggestion for that field
	}{
		{
			name:      "fully valid row",
			seg:       schedule.Segment{Time: "9:00 AM", Duration: "30", Title: "Welcome", Presenter: "Alex"},
			wantValid: true,
		},
		{
			name:        "missing time",
			seg:         schedule.Segment{Title: "Welcome"},
			wantField:   "time",
			wantSuggest: "9:00 AM",
		},
		{
			name:        "garbled time reformatted from digits",
			seg:         schedule.Segment{Time: "around 9ish", Title: "Welcome"},
			wantField:   "time",
			wantSuggest: "9:00 AM",
		},
		{
			name:        "unusable time kept as-is",
			seg:         schedule.Segment{Time: "9999:99", Title: "Welcome"},
			wantField:   "time",
			wantSuggest: "9999:99",
		},
		{
			name:        "bad duration",
			seg:         schedule.Segment{Time: "9:00 AM", Duration: "soon", Title: "Welcome"},
			wantField:   "duration",
			wantSuggest: "30",
		},
		{
			name:        "clock value in duration column",
			seg:         schedule.Segment{Time: "9:00 AM", Duration: "2:30 PM", Title: "Welcome"},
			wantField:   "duration",
			wantSuggest: "2",
		},
		{
			name:        "missing title",
			seg:         schedule.Segment{Time: "9:00 AM"},
			wantField:   "segment",
			wantSuggest: "Untitled Segment",
		},
		{
			name:        "overlong title truncated",
			seg:         schedule.Segment{Time: "9:00 AM", Title: strings.Repeat("x", 201)},
			wantField:   "segment",
			wantSuggest: strings.Repeat("x", 200),
		},
		{
			name:        "overlong presenter",
			seg:         schedule.Segment{Time: "9:00 AM", Title: "Welcome", Presenter: strings.Repeat("p", 101)},
			wantField:   "presenter",
			wantSuggest: strings.Repeat("p", 100),
		},
		{
			name:        "overlong notes",
			seg:         schedule.Segment{Time: "9:00 AM", Title: "Welcome", Notes: strings.Repeat("n", 501)},
			wantField:   "notes",
			wantSuggest: strings.Repeat("n", 500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRow(tt.seg, 1)
			if tt.wantValid {
				if !got.Valid {
					t.Fatalf("row reported invalid: %v", got.Errors)
				}
				return
			}
			if got.Valid {
				t.Fatal("row reported valid, want error")
			}
			if got.Errors[0].Field != tt.wantField {
				t.Errorf("first error field = %q, want %q", got.Errors[0].Field, tt.wantField)
			}
			if s := got.Suggestions[tt.wantField]; s != tt.wantSuggest {
				t.Errorf("suggestion = %q, want %q", s, tt.wantSuggest)
			}
		})
	}
}

func TestValidateRowMultibyteSuggestions(t *testing.T) {
	seg := schedule.Segment{
		Time:      "9:00 AM",
		Title:     strings.Repeat("日", 205),
		Presenter: strings.Repeat("é", 101),
	}
	res := ValidateRow(seg, 1)

	title := res.Suggestions["segment"]
	if got := utf8.RuneCountInString(title); got != 200 {
		t.Errorf("title truncated to %d characters, want 200", got)
	}
	if !utf8.ValidString(title) {
		t.Errorf("title suggestion is not valid UTF-8: %q", title)
	}

	presenter := res.Suggestions["presenter"]
	if got := utf8.RuneCountInString(presenter); got != 100 {
		t.Errorf("presenter truncated to %d characters, want 100", got)
	}
	if !utf8.ValidString(presenter) {
		t.Errorf("presenter suggestion is not valid UTF-8: %q", presenter)
	}
}

func TestValidateRowWarnings(t *testing.T) {
	t.Run("unusually long duration", func(t *testing.T) {
		got := ValidateRow(schedule.Segment{Time: "9:00 AM", Duration: "500", Title: "Marathon"}, 1)
		if len(got.Warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(got.Warnings), got.Warnings)
		}
		if !strings.Contains(got.Warnings[0].Message, "unusually long") {
			t.Errorf("warning = %q", got.Warnings[0].Message)
		}
	})

	t.Run("unparseable duration", func(t *testing.T) {
		got := ValidateRow(schedule.Segment{Time: "9:00 AM", Duration: "soon", Title: "Welcome"}, 1)
		found := false
		for _, w := range got.Warnings {
			if strings.Contains(w.Message, "could not be parsed") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a could-not-be-parsed warning, got %v", got.Warnings)
		}
	})

	t.Run("literal zero is fine", func(t *testing.T) {
		got := ValidateRow(schedule.Segment{Time: "9:00 AM", Duration: "0", Title: "Marker"}, 1)
		if len(got.Warnings) != 0 {
			t.Errorf("got warnings %v, want none", got.Warnings)
		}
	})
}

func TestValidateScheduleEmpty(t *testing.T) {
	got := ValidateSchedule(nil)
	if got.Valid {
		t.Fatal("empty schedule reported valid")
	}
	if len(got.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(got.Errors), got.Errors)
	}
	e := got.Errors[0]
	if e.Field != "schedule" || e.Message != "Schedule is empty" {
		t.Errorf("error = %+v", e)
	}
}

func TestValidateScheduleDuplicates(t *testing.T) {
	list := []schedule.Segment{
		{Time: "9:00 AM", Duration: "30", Title: "Welcome"},
		{Time: "9:30 AM", Duration: "30", Title: "welcome "},
	}
	got := ValidateSchedule(list)

	dupes := 0
	for _, w := range got.Warnings {
		if strings.Contains(w.Message, "Duplicate segments") {
			dupes++
			if !strings.Contains(w.Message, "welcome") {
				t.Errorf("warning does not name the duplicate: %q", w.Message)
			}
		}
	}
	if dupes != 1 {
		t.Errorf("got %d duplicate warnings, want exactly 1", dupes)
	}
}

func TestValidateScheduleTimeConflicts(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		list := []schedule.Segment{
			{Time: "9:00 AM", Duration: "90", Title: "Keynote"},
			{Time: "10:00 AM", Duration: "30", Title: "Panel"},
		}
		got := ValidateSchedule(list)
		if !containsWarning(got.Warnings, "time conflict") {
			t.Errorf("expected an overlap warning, got %v", got.Warnings)
		}
	})

	t.Run("large gap", func(t *testing.T) {
		list := []schedule.Segment{
			{Time: "9:00 AM", Duration: "30", Title: "Welcome"},
			{Time: "1:00 PM", Duration: "30", Title: "Lunch Recap"},
		}
		got := ValidateSchedule(list)
		if !containsWarning(got.Warnings, "Large time gap (3h 30m)") {
			t.Errorf("expected a gap warning, got %v", got.Warnings)
		}
	})

	t.Run("back to back is clean", func(t *testing.T) {
		list := []schedule.Segment{
			{Time: "9:00 AM", Duration: "30", Title: "Welcome"},
			{Time: "9:30 AM", Duration: "30", Title: "Keynote"},
		}
		got := ValidateSchedule(list)
		if containsWarning(got.Warnings, "conflict") || containsWarning(got.Warnings, "gap") {
			t.Errorf("unexpected warnings: %v", got.Warnings)
		}
	})

	t.Run("unparseable times skipped", func(t *testing.T) {
		list := []schedule.Segment{
			{Time: "9:00 AM", Duration: "600", Title: "All Day"},
			{Time: "whenever", Duration: "30", Title: "Mystery"},
		}
		got := ValidateSchedule(list)
		if containsWarning(got.Warnings, "conflict") {
			t.Errorf("conflict reported against an unparseable time: %v", got.Warnings)
		}
	})
}

func containsWarning(warnings []Issue, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestAutoClean(t *testing.T) {
	list := []schedule.Segment{
		{Time: "", Duration: "30 minutes or so", Title: "", Presenter: "Alex"},
		{Time: "9:30 AM", Duration: "45", Title: "Keynote"},
	}
	got := AutoClean(list)

	if got[0].Time != "9:00 AM" {
		t.Errorf("time = %q, want %q", got[0].Time, "9:00 AM")
	}
	if got[0].Title != "Untitled Segment" {
		t.Errorf("title = %q, want %q", got[0].Title, "Untitled Segment")
	}
	if got[0].Presenter != "Alex" {
		t.Errorf("presenter = %q, want untouched %q", got[0].Presenter, "Alex")
	}
	if got[1] != list[1] {
		t.Errorf("clean row changed: %+v", got[1])
	}
	if list[0].Time != "" || list[0].Title != "" {
		t.Error("input list was mutated")
	}
}
