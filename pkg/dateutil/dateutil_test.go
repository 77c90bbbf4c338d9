package dateutil

import (
	"testing"
	"time"
)

func TestParseLocal(t *testing.T) {
	got := ParseLocal("2025-03-01")
	if got == nil {
		t.Fatal("ParseLocal(\"2025-03-01\") returned nil")
	}
	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("ParseLocal(\"2025-03-01\") = %v", got)
	}
}

func TestParseLocalEmpty(t *testing.T) {
	if got := ParseLocal(""); got != nil {
		t.Errorf("ParseLocal(\"\") = %v, want nil", got)
	}
}

func TestParseLocalLenient(t *testing.T) {
	// Invalid calendar dates are normalized, not rejected.
	got := ParseLocal("2024-02-30")
	if got == nil {
		t.Fatal("ParseLocal(\"2024-02-30\") returned nil")
	}
	if FormatLocal(*got) != "2024-03-01" {
		t.Errorf("ParseLocal(\"2024-02-30\") = %s, want 2024-03-01", FormatLocal(*got))
	}
}

func TestFormatLocalZeroPads(t *testing.T) {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	if got := FormatLocal(d); got != "2025-03-01" {
		t.Errorf("FormatLocal = %q, want 2025-03-01", got)
	}
}

func TestAdjustDate(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		delta int
		want  string
	}{
		{"same day", "2025-07-15", 0, "2025-07-15"},
		{"simple forward", "2025-07-15", 3, "2025-07-18"},
		{"simple backward", "2025-07-15", -3, "2025-07-12"},
		{"month rollover non-leap", "2025-02-28", 1, "2025-03-01"},
		{"month rollover leap", "2024-02-28", 1, "2024-02-29"},
		{"year rollover", "2025-12-31", 1, "2026-01-01"},
		{"year rollover backward", "2026-01-01", -1, "2025-12-31"},
		{"long span", "2025-03-01", 365, "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustDate(tt.date, tt.delta); got != tt.want {
				t.Errorf("AdjustDate(%q, %d) = %q, want %q", tt.date, tt.delta, got, tt.want)
			}
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-01", 6}, // Saturday
		{"2025-03-02", 0}, // Sunday
		{"2025-03-03", 1}, // Monday
		{"2025-07-18", 5}, // Friday
	}

	for _, tt := range tests {
		d := ParseLocal(tt.date)
		if got := DayOfWeek(*d); got != tt.want {
			t.Errorf("DayOfWeek(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-07-16 is a Wednesday; the week starts Sunday 2025-07-13.
	d := ParseLocal("2025-07-16")
	if got := FormatLocal(StartOfWeek(*d)); got != "2025-07-13" {
		t.Errorf("StartOfWeek(2025-07-16) = %s, want 2025-07-13", got)
	}

	// A Sunday is its own week start.
	d = ParseLocal("2025-07-13")
	if got := FormatLocal(StartOfWeek(*d)); got != "2025-07-13" {
		t.Errorf("StartOfWeek(2025-07-13) = %s, want 2025-07-13", got)
	}
}
