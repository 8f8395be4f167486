package models

import "time"

// The legacy web and template layer consumed two different date encodings:
// most entities hand the raw time value to the JSON encoder, while the task,
// study-plan, assignment, submission and notification projections emit
// explicit ISO-8601 strings. Both behaviors are kept as-is; see isoTime and
// isoDate versus passing the *time.Time field through directly.

// isoTime formats a timestamp as an ISO-8601 string, or nil when absent.
func isoTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// isoDate formats a date-only value, or nil when absent.
func isoDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// timeNow returns the current time as a pointer, used for created-at defaults.
func timeNow() *time.Time {
	now := time.Now()
	return &now
}
