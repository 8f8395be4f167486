package models

import "time"

// Reminder schedules an alert for a calendar event.
type Reminder struct {
	ReminderID   *int64     `json:"Reminder_ID" db:"reminder_id"`
	StudentID    int64      `json:"Student_ID" db:"student_id"`
	EventID      int64      `json:"Event_ID" db:"event_id"`
	ReminderTime *time.Time `json:"Reminder_Time" db:"reminder_time"`
	Status       string     `json:"Status" db:"status"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the reminder to its JSON projection.
func (r *Reminder) ToMap() map[string]any {
	return map[string]any{
		"Reminder_ID":   r.ReminderID,
		"Student_ID":    r.StudentID,
		"Event_ID":      r.EventID,
		"Reminder_Time": r.ReminderTime,
		"Status":        r.Status,
	}
}
