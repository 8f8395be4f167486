package models

import "time"

// CalendarEvent is a dated entry on a student's calendar. EventTime is the
// clock time as stored ("HH:MM:SS"); Source records where the entry came
// from (manual, schedule import, reminder).
type CalendarEvent struct {
	EventID   *int64     `json:"Event_ID" db:"event_id"`
	StudentID int64      `json:"Student_ID" db:"student_id"`
	Title     string     `json:"Title" db:"title"`
	Date      *time.Time `json:"Date" db:"event_date"`
	EventTime *string    `json:"Time" db:"event_time"`
	Source    *string    `json:"Source" db:"source"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the event to its JSON projection.
func (c *CalendarEvent) ToMap() map[string]any {
	return map[string]any{
		"Event_ID":   c.EventID,
		"Student_ID": c.StudentID,
		"Title":      c.Title,
		"Date":       c.Date,
		"Time":       c.EventTime,
		"Source":     c.Source,
	}
}
