package timeutil

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "plain minutes", input: "30", want: 30, ok: true},
		{name: "zero", input: "0", want: 0, ok: true},
		{name: "min suffix", input: "45 min", want: 45, ok: true},
		{name: "mins suffix", input: "45 mins", want: 45, ok: true},
		{name: "minutes suffix", input: "20 minutes", want: 20, ok: true},
		{name: "m suffix", input: "30m", want: 30, ok: true},
		{name: "hr suffix", input: "1 hr", want: 60, ok: true},
		{name: "hours suffix", input: "2 hours", want: 120, ok: true},
		{name: "bare h", input: "3h", want: 180, ok: true},
		{name: "hours and minutes", input: "1h30m", want: 90, ok: true},
		{name: "hours and minutes spaced", input: "1h 30m", want: 90, ok: true},
		{name: "colon within cutoff", input: "1:30", want: 90, ok: true},
		{name: "colon at cutoff", input: "4:00", want: 240, ok: true},
		{name: "decimal floored", input: "90.5", want: 90, ok: true},
		{name: "upper bound", input: "720", want: 720, ok: true},
		{name: "above upper bound", input: "721", want: 0, ok: false},
		{name: "hours above bound", input: "13 hr", want: 0, ok: false},
		{name: "colon above cutoff is a time", input: "5:30", want: 0, ok: false},
		{name: "meridiem is a time", input: "2:30 PM", want: 0, ok: false},
		{name: "meridiem lowercase", input: "9:00 am", want: 0, ok: false},
		{name: "seconds is a time", input: "1:30:00", want: 0, ok: false},
		{name: "not numeric", input: "half an hour", want: 0, ok: false},
		{name: "empty", input: "", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseDuration(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(45); got != "45 min" {
		t.Errorf("FormatDuration(45) = %q, want %q", got, "45 min")
	}
	if got, ok := ParseDuration(FormatDuration(90)); !ok || got != 90 {
		t.Errorf("ParseDuration(FormatDuration(90)) = %d, %v, want 90, true", got, ok)
	}
}

func TestIsTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "meridiem clock", input: "2:30 PM", want: true},
		{name: "seconds clock", input: "14:30:00", want: true},
		{name: "dotted meridiem", input: "9.00 AM", want: true},
		{name: "large hour colon", input: "14:30", want: true},
		{name: "small hour colon", input: "1:30", want: false},
		{name: "plain number", input: "45", want: false},
		{name: "min suffix", input: "30 min", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeOfDay(tt.input); got != tt.want {
				t.Errorf("IsTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
