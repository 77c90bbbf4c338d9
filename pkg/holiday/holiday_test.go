package holiday

import (
	"reflect"
	"strings"
	"testing"
)

// stubConverter gives the tests full control over lunar conversions.
type stubConverter map[[3]int]string

func (s stubConverter) ToSolar(year, month, day int) (string, bool) {
	date, ok := s[[3]int{year, month, day}]
	return date, ok
}

// converter2025 carries the real conversions for academic year 2025.
func converter2025() stubConverter {
	return stubConverter{
		{2025, 4, 8}:  "2025-05-05",
		{2026, 1, 1}:  "2026-02-17",
		{2025, 8, 15}: "2025-10-06",
	}
}

func TestComputeDeterministic(t *testing.T) {
	conv := converter2025()
	first := Compute(2025, conv)
	second := Compute(2025, conv)
	if !reflect.DeepEqual(first, second) {
		t.Error("Compute(2025) is not deterministic across calls")
	}
}

func TestComputeFixedHolidays(t *testing.T) {
	holidays := Compute(2025, converter2025())

	tests := []struct {
		date string
		want string
	}{
		{"2025-03-01", "Independence Movement Day"},
		{"2025-06-06", "Memorial Day"},
		{"2025-08-15", "Liberation Day"},
		{"2025-12-25", "Christmas"},
		// Jan/Feb holidays belong to calendar year Y+1.
		{"2026-01-01", "New Year's Day"},
	}

	for _, tt := range tests {
		if got := holidays.Names(tt.date); got != tt.want {
			t.Errorf("Names(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}

	if holidays.Has("2025-01-01") {
		t.Error("2025-01-01 belongs to academic year 2024, not 2025")
	}
}

func TestSubstituteForSaturdayHoliday(t *testing.T) {
	// Independence Movement Day 2025 is a Saturday; the substitute lands
	// on the following Monday.
	holidays := Compute(2025, converter2025())

	if got := holidays.Names("2025-03-03"); got != "Substitute Holiday (Independence Movement Day)" {
		t.Errorf("Names(2025-03-03) = %q", got)
	}
}

func TestChildrensDayCoincidence(t *testing.T) {
	// Buddha's Birthday 2025 falls on Children's Day (a Monday). The
	// coincidence triggers a substitute for Children's Day only;
	// Buddha's Birthday is weekend-eligible and Monday is not a weekend.
	holidays := Compute(2025, converter2025())

	want := []string{"Children's Day", "Buddha's Birthday"}
	if got := holidays["2025-05-05"]; !reflect.DeepEqual(got, want) {
		t.Errorf("holidays[2025-05-05] = %v, want %v", got, want)
	}
	if got := holidays.Names("2025-05-05"); got != "Children's Day, Buddha's Birthday" {
		t.Errorf("Names(2025-05-05) = %q", got)
	}
	if got := holidays.Names("2025-05-06"); got != "Substitute Holiday (Children's Day)" {
		t.Errorf("Names(2025-05-06) = %q", got)
	}
	for date, names := range holidays {
		for _, name := range names {
			if name == "Substitute Holiday (Buddha's Birthday)" {
				t.Errorf("unexpected Buddha's Birthday substitute on %s", date)
			}
		}
	}
}

func TestChuseokSpanAndSubstitute(t *testing.T) {
	// Chuseok 2025 is Monday 10-06, so the span starts on Sunday 10-05.
	// The Sunday trigger scans past the occupied 10-06 and 10-07 and
	// settles on Wednesday 10-08.
	holidays := Compute(2025, converter2025())

	tests := []struct {
		date string
		want string
	}{
		{"2025-10-05", "Chuseok Holiday"},
		{"2025-10-06", "Chuseok"},
		{"2025-10-07", "Chuseok Holiday"},
		{"2025-10-08", "Substitute Holiday (Chuseok Holiday)"},
	}

	for _, tt := range tests {
		if got := holidays.Names(tt.date); got != tt.want {
			t.Errorf("Names(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestComputeDateCount(t *testing.T) {
	// 10 fixed dates + 3 Seollal + 3 Chuseok + 3 substitutes; Buddha's
	// Birthday shares Children's Day's date.
	holidays := Compute(2025, converter2025())
	if len(holidays) != 19 {
		t.Errorf("len(Compute(2025)) = %d, want 19", len(holidays))
	}
}

func TestSundayKindIgnoresSaturday(t *testing.T) {
	// Force Chuseok onto a Saturday: its kind is sunday-only, so the main
	// day must not earn a substitute. The trailing span day lands on the
	// Sunday and does.
	conv := converter2025()
	conv[[3]int{2025, 8, 15}] = "2025-09-06"

	holidays := Compute(2025, conv)

	for date, names := range holidays {
		for _, name := range names {
			if name == "Substitute Holiday (Chuseok)" {
				t.Errorf("Saturday Chuseok produced a substitute on %s", date)
			}
		}
	}
	if got := holidays.Names("2025-09-08"); got != "Substitute Holiday (Chuseok Holiday)" {
		t.Errorf("Names(2025-09-08) = %q", got)
	}
}

func TestUnconvertibleLunarOmitted(t *testing.T) {
	// An empty converter drops every lunar holiday; the fixed table
	// survives untouched.
	holidays := Compute(2025, stubConverter{})

	for date, names := range holidays {
		joined := strings.Join(names, ", ")
		if strings.Contains(joined, "Chuseok") || strings.Contains(joined, "Lunar New Year") ||
			strings.Contains(joined, "Buddha") {
			t.Errorf("lunar holiday survived an empty converter on %s: %v", date, names)
		}
	}
	if !holidays.Has("2025-03-01") {
		t.Error("fixed holidays missing with an empty converter")
	}
}

func TestNoSharedSubstituteDates(t *testing.T) {
	holidays := Compute(2025, converter2025())

	seen := map[string]bool{}
	for date, names := range holidays {
		count := 0
		for _, name := range names {
			if strings.HasPrefix(name, "Substitute Holiday (") {
				count++
			}
		}
		if count > 1 {
			t.Errorf("%s carries %d substitutes", date, count)
		}
		if count == 1 && seen[date] {
			t.Errorf("substitute date %s allocated twice", date)
		}
		if count == 1 {
			seen[date] = true
		}
	}
}
