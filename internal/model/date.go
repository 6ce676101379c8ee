package model

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates a timestamp to UTC midnight so date-keyed ledger rows
// compare equal regardless of the wall clock they were written at.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// ParseDate converts an ISO YYYY-MM-DD string to a date. Empty input defaults
// to today, matching the UI behavior of omitting the date field.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return Today(), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate renders a date as ISO YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
