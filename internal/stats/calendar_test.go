package stats

import (
	"testing"
	"time"
)

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{hour: 0, expected: "12am"},
		{hour: 1, expected: "1am"},
		{hour: 11, expected: "11am"},
		{hour: 12, expected: "12pm"},
		{hour: 13, expected: "1pm"},
		{hour: 23, expected: "11pm"},
	}

	for _, tt := range tests {
		if got := hourLabel(tt.hour); got != tt.expected {
			t.Errorf("hourLabel(%d) = %q, want %q", tt.hour, got, tt.expected)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		start string
		end   string
	}{
		{
			name:  "mid-month",
			date:  time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			start: "2026-03-01",
			end:   "2026-03-31",
		},
		{
			name:  "february non-leap",
			date:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			start: "2026-02-01",
			end:   "2026-02-28",
		},
		{
			name:  "february leap",
			date:  time.Date(2028, 2, 15, 0, 0, 0, 0, time.UTC),
			start: "2028-02-01",
			end:   "2028-02-29",
		},
		{
			name:  "december",
			date:  time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			start: "2025-12-01",
			end:   "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := monthBounds(tt.date)
			if start != tt.start || end != tt.end {
				t.Errorf("monthBounds() = (%q, %q), want (%q, %q)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		back     int
		expected string
	}{
		{back: 0, expected: "2026-03"},
		{back: 2, expected: "2026-01"},
		{back: 3, expected: "2025-12"},
		{back: 5, expected: "2025-10"},
	}

	for _, tt := range tests {
		if got := monthStart(now, tt.back).Format(monthLayout); got != tt.expected {
			t.Errorf("monthStart(now, %d) = %q, want %q", tt.back, got, tt.expected)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := dayName(0); got != "Sunday" {
		t.Errorf("dayName(0) = %q, want Sunday", got)
	}
	if got := dayName(6); got != "Saturday" {
		t.Errorf("dayName(6) = %q, want Saturday", got)
	}
}
