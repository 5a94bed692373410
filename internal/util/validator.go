package util

import (
	"fmt"
	"time"
)

// date layouts accepted for an expense date, tried in order
var dateLayouts = []string{
	time.RFC3339,          // 2025-12-03T00:00:00+08:00
	"2006-01-02T15:04:05", // 2025-12-03T00:00:00
	"2006-01-02",          // 2025-12-03
}

// ParseDate parses a caller-supplied expense date.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
}

// ParseDay parses a YYYY-MM-DD string into the [start, end) day window.
func ParseDay(dateStr string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
	}
	return t, t.AddDate(0, 0, 1), nil
}

// ParseMonth parses a YYYY-MM string into the [start, end) month window.
func ParseMonth(monthStr string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", monthStr)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// ParseYear parses a YYYY string into the [start, end) year window.
func ParseYear(yearStr string) (time.Time, time.Time, error) {
	t, err := time.Parse("2006", yearStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid year %q, expected YYYY", yearStr)
	}
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0), nil
}

// ValidateType checks the entry kind.
func ValidateType(t string) error {
	if t != "income" && t != "expense" {
		return fmt.Errorf("type must be income or expense, got %q", t)
	}
	return nil
}

// ValidateCategory checks the category label.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len(category) > 64 {
		return fmt.Errorf("category too long, max 64 characters")
	}
	return nil
}
