package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"showflow/internal/schedule"
)

func TestClipTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  string
	}{
		{
			name:  "short title unchanged",
			title: "Welcome",
			width: 20,
			want:  "Welcome",
		},
		{
			name:  "long title gets ellipsis",
			title: "A very long segment title indeed",
			width: 20,
			want:  "A very long segme...",
		},
		{
			name:  "multibyte title cut on a rune boundary",
			title: strings.Repeat("日", 30),
			width: 20,
			want:  strings.Repeat("日", 17) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipTitle(tt.title, tt.width)
			if got != tt.want {
				t.Errorf("clipTitle = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("clipTitle produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestTotalRunTime(t *testing.T) {
	tests := []struct {
		name string
		list []schedule.Segment
		want string
	}{
		{
			name: "minutes only",
			list: []schedule.Segment{{Duration: "30 min"}, {Duration: "15 min"}},
			want: "45m",
		},
		{
			name: "whole hours",
			list: []schedule.Segment{{Duration: "60 min"}, {Duration: "60 min"}},
			want: "2h",
		},
		{
			name: "hours and minutes",
			list: []schedule.Segment{{Duration: "90 min"}, {Duration: "45 min"}},
			want: "2h15m",
		},
		{
			name: "unparseable durations skipped",
			list: []schedule.Segment{{Duration: "30 min"}, {Duration: "soon"}},
			want: "30m",
		},
		{
			name: "empty schedule",
			list: nil,
			want: "0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalRunTime(tt.list); got != tt.want {
				t.Errorf("totalRunTime = %q, want %q", got, tt.want)
			}
		})
	}
}
