package util

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15T10:30:00",
		"2025-12-03T00:00:00+08:00",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01", // bad month
		"2024-01-32", // bad day
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestParseDay_Window(t *testing.T) {
	start, end, err := ParseDay("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDay error = %v", err)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("day window = %v, want 24h", got)
	}
	if start.Year() != 2024 || start.Month() != time.March || start.Day() != 5 {
		t.Errorf("start = %v, want 2024-03-05", start)
	}
}

func TestParseMonth_Window(t *testing.T) {
	start, end, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth error = %v", err)
	}
	if start.Day() != 1 || start.Month() != time.February {
		t.Errorf("start = %v, want first of February", start)
	}
	// 2024 is a leap year
	if got := end.Sub(start); got != 29*24*time.Hour {
		t.Errorf("month window = %v, want 29 days", got)
	}

	if _, _, err := ParseMonth("2024-13"); err == nil {
		t.Error("ParseMonth(2024-13) error = nil, want error")
	}
	if _, _, err := ParseMonth("03-2024"); err == nil {
		t.Error("ParseMonth(03-2024) error = nil, want error")
	}
}

func TestParseYear_Window(t *testing.T) {
	start, end, err := ParseYear("2024")
	if err != nil {
		t.Fatalf("ParseYear error = %v", err)
	}
	if start.Year() != 2024 || end.Year() != 2025 {
		t.Errorf("window = [%v, %v), want 2024..2025", start, end)
	}

	if _, _, err := ParseYear("24"); err == nil {
		t.Error("ParseYear(24) error = nil, want error")
	}
}

func TestValidateType(t *testing.T) {
	for _, ok := range []string{"income", "expense"} {
		if err := ValidateType(ok); err != nil {
			t.Errorf("ValidateType(%q) error = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "Income", "transfer"} {
		if err := ValidateType(bad); err == nil {
			t.Errorf("ValidateType(%q) error = nil, want error", bad)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("food"); err != nil {
		t.Errorf("ValidateCategory(food) error = %v, want nil", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("ValidateCategory(\"\") error = nil, want error")
	}
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateCategory(string(long)); err == nil {
		t.Error("ValidateCategory() with long string error = nil, want error")
	}
}
