package lunar

import "testing"

func TestToSolarKnownDates(t *testing.T) {
	conv := NewConverter()

	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		{"Seollal 2025", 2025, 1, 1, "2025-01-29"},
		{"Seollal 2026", 2026, 1, 1, "2026-02-17"},
		{"Chuseok 2025", 2025, 8, 15, "2025-10-06"},
		{"Chuseok 2024", 2024, 8, 15, "2024-09-17"},
		{"Buddha's Birthday 2025", 2025, 4, 8, "2025-05-05"},
		{"Buddha's Birthday 2024", 2024, 4, 8, "2024-05-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := conv.ToSolar(tt.year, tt.month, tt.day)
			if !ok {
				t.Fatalf("ToSolar(%d, %d, %d) not ok", tt.year, tt.month, tt.day)
			}
			if got != tt.want {
				t.Errorf("ToSolar(%d, %d, %d) = %s, want %s", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestToSolarOutOfRange(t *testing.T) {
	conv := NewConverter()

	if _, ok := conv.ToSolar(2025, 13, 1); ok {
		t.Error("ToSolar with month 13 should fail")
	}
	if _, ok := conv.ToSolar(2025, 1, 31); ok {
		t.Error("ToSolar with lunar day 31 should fail")
	}
}
