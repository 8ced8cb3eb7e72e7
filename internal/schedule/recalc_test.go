package schedule

import (
	"testing"

	"showflow/internal/timeutil"
)

func TestRecalculateCascade(t *testing.T) {
	tests := []struct {
		name      string
		input     []Segment
		wantTimes []string
	}{
		{
			name: "anchors on first time and cascades",
			input: []Segment{
				{Time: "9:00 AM", Duration: "30", Title: "Welcome"},
				{Time: "", Duration: "45", Title: "Keynote"},
			},
			wantTimes: []string{"9:00 AM", "9:30 AM"},
		},
		{
			name: "overwrites every existing time",
			input: []Segment{
				{Time: "9:00 AM", Duration: "30", Title: "Welcome"},
				{Time: "2:00 PM", Duration: "15", Title: "Break"},
				{Time: "8:00 AM", Duration: "60", Title: "Panel"},
			},
			wantTimes: []string{"9:00 AM", "9:30 AM", "9:45 AM"},
		},
		{
			name: "unparseable anchor falls back to nine",
			input: []Segment{
				{Time: "whenever", Duration: "30", Title: "Welcome"},
				{Time: "", Duration: "45", Title: "Keynote"},
			},
			wantTimes: []string{"9:00 AM", "9:30 AM"},
		},
		{
			name: "unparseable duration advances by zero",
			input: []Segment{
				{Time: "9:00 AM", Duration: "a while", Title: "Welcome"},
				{Time: "", Duration: "45", Title: "Keynote"},
			},
			wantTimes: []string{"9:00 AM", "9:00 AM"},
		},
		{
			name: "out of range duration advances by zero",
			input: []Segment{
				{Time: "9:00 AM", Duration: "999", Title: "Welcome"},
				{Time: "", Duration: "45", Title: "Keynote"},
			},
			wantTimes: []string{"9:00 AM", "9:00 AM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recalculate(tt.input, ModeCascade, DefaultDayStart)
			if len(got) != len(tt.input) {
				t.Fatalf("Recalculate returned %d segments, want %d", len(got), len(tt.input))
			}
			for i, want := range tt.wantTimes {
				if got[i].Time != want {
					t.Errorf("segment %d time = %q, want %q", i, got[i].Time, want)
				}
				if got[i].Time == "" {
					t.Errorf("segment %d has empty time after cascade", i)
				}
			}
		})
	}
}

func TestRecalculatePreserve(t *testing.T) {
	input := []Segment{
		{Time: "", Duration: "30", Title: "Setup"},
		{Time: "10:00 AM", Duration: "45", Title: "Keynote"},
		{Time: "", Duration: "15", Title: "Q&A"},
		{Time: "1:00 PM", Duration: "60", Title: "Workshop"},
	}
	got := Recalculate(input, ModePreserve, DefaultDayStart)

	want := []string{"10:00 AM", "10:00 AM", "10:45 AM", "1:00 PM"}
	for i, w := range want {
		if got[i].Time != w {
			t.Errorf("segment %d time = %q, want %q", i, got[i].Time, w)
		}
	}
}

// Preserve mode must never change the minute value of an
// originally-valid time, only canonicalize its formatting.
func TestRecalculatePreserveKeepsValidTimes(t *testing.T) {
	input := []Segment{
		{Time: "09:00", Duration: "30", Title: "A"},
		{Time: "1430", Duration: "45", Title: "B"},
		{Time: "4:00 PM", Duration: "15", Title: "C"},
	}
	originals := make([]int, len(input))
	for i, seg := range input {
		m, ok := timeutil.ParseTime(seg.Time)
		if !ok {
			t.Fatalf("test input %d not parseable", i)
		}
		originals[i] = m
	}

	got := Recalculate(input, ModePreserve, DefaultDayStart)
	for i, seg := range got {
		m, ok := timeutil.ParseTime(seg.Time)
		if !ok {
			t.Fatalf("segment %d time %q not parseable after preserve", i, seg.Time)
		}
		if m != originals[i] {
			t.Errorf("segment %d minute value changed: %d -> %d", i, originals[i], m)
		}
	}
}

func TestRecalculateEdgeCases(t *testing.T) {
	if got := Recalculate(nil, ModeCascade, DefaultDayStart); len(got) != 0 {
		t.Errorf("Recalculate(nil) returned %d segments, want 0", len(got))
	}

	input := []Segment{{Time: "", Duration: "30", Title: "Only"}}
	got := Recalculate(input, ModePreserve, -1)
	if got[0].Time != "9:00 AM" {
		t.Errorf("invalid dayStart anchor = %q, want %q", got[0].Time, "9:00 AM")
	}
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	input := []Segment{
		{Time: "2:00 PM", Duration: "45 min", Title: "Panel"},
		{Time: "", Duration: "30", Title: "Break"},
	}
	Recalculate(input, ModeCascade, DefaultDayStart)
	if input[1].Time != "" || input[0].Duration != "45 min" {
		t.Error("Recalculate mutated its input slice")
	}
}

func TestRecalculateCanonicalizesDurations(t *testing.T) {
	input := []Segment{{Time: "9:00 AM", Duration: "1h30m", Title: "Workshop"}}
	got := Recalculate(input, ModeCascade, DefaultDayStart)
	if got[0].Duration != "90 min" {
		t.Errorf("duration = %q, want %q", got[0].Duration, "90 min")
	}
}
