package listing

import (
	"testing"
	"time"
)

func TestGenerateRefID_LocationCode(t *testing.T) {
	now := time.Date(2024, 7, 3, 10, 5, 0, 0, time.UTC)

	tests := []struct {
		location string
		want     string
	}{
		{"Shop - CWB", "CWB24263" + "0605"},
		{"Causeway Bay", "24263" + "0605"},
		{"", "24263" + "0605"},
		{"Mall-TST Kiosk", "TST24263" + "0605"},
		{"a - b - XY", "XY24263" + "0605"},
	}
	for _, tt := range tests {
		if got := GenerateRefID(tt.location, now); got != tt.want {
			t.Errorf("GenerateRefID(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestGenerateRefID_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	a := GenerateRefID("Shop - CWB", now)
	b := GenerateRefID("Shop - CWB", now)
	if a != b {
		t.Errorf("same inputs produced %q and %q", a, b)
	}
}

func TestGenerateRefID_MidnightPadding(t *testing.T) {
	// 2024-01-07 is the first Sunday of 2024, so week 01, weekday 0.
	now := time.Date(2024, 1, 7, 0, 0, 30, 0, time.UTC)
	if got, want := GenerateRefID("X - AB", now), "AB240100000"; got != want {
		t.Errorf("GenerateRefID = %q, want %q", got, want)
	}
}

func TestGenerateRefID_WeekZero(t *testing.T) {
	// 2027-01-01 is a Friday, before the year's first Sunday.
	now := time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC)
	if got, want := GenerateRefID("- A", now), "A270050720"; got != want {
		t.Errorf("GenerateRefID = %q, want %q", got, want)
	}
}

func TestSundayWeek(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},  // Monday before first Sunday
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 1},  // first Sunday
		{time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), 1}, // Saturday of that week
		{time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 52},
	}
	for _, tt := range tests {
		if got := sundayWeek(tt.day); got != tt.want {
			t.Errorf("sundayWeek(%s) = %d, want %d", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}
