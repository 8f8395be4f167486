package models

import "time"

// Deadline type and status values
const (
	DeadlineTypeTask       = "task"
	DeadlineTypeAssignment = "assignment"
	DeadlineTypeCalendar   = "calendar"

	DeadlineStatusActive    = "active"
	DeadlineStatusCompleted = "completed"
	DeadlineStatusOverdue   = "overdue"
	DeadlineStatusCancelled = "cancelled"
)

// DeadlineNotification is a tracked deadline synced from a task, assignment
// or calendar event. SourceType and SourceID point back at the entity the
// deadline was derived from; a (source type, source ID) pair is synced at
// most once.
type DeadlineNotification struct {
	NotificationID *int64     `json:"Notification_ID" db:"notification_id"`
	UserID         int64      `json:"User_ID" db:"user_id"`
	DeadlineType   string     `json:"Deadline_Type" db:"deadline_type"`
	SourceID       int64      `json:"Source_ID" db:"source_id"`
	SourceType     string     `json:"Source_Type" db:"source_type"`
	DeadlineDate   *time.Time `json:"Deadline_Date" db:"deadline_date"`
	Title          string     `json:"Title" db:"title"`
	Description    *string    `json:"Description" db:"description"`
	Priority       string     `json:"Priority" db:"priority"`
	Status         string     `json:"Status" db:"status"`
	CreatedAt      *time.Time `json:"Created_At" db:"created_at"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the deadline to its JSON projection.
func (d *DeadlineNotification) ToMap() map[string]any {
	return map[string]any{
		"Notification_ID": d.NotificationID,
		"User_ID":         d.UserID,
		"Deadline_Type":   d.DeadlineType,
		"Source_ID":       d.SourceID,
		"Source_Type":     d.SourceType,
		"Deadline_Date":   isoTime(d.DeadlineDate),
		"Title":           d.Title,
		"Description":     d.Description,
		"Priority":        d.Priority,
		"Status":          d.Status,
		"Created_At":      isoTime(d.CreatedAt),
	}
}
