package models

import "time"

// Notification is an in-app notification addressed to a user.
type Notification struct {
	NotificationID *int64     `json:"notification_id" db:"notification_id"`
	UserID         int64      `json:"user_id" db:"user_id"`
	Title          string     `json:"title" db:"title"`
	Message        string     `json:"message" db:"message"`
	Type           string     `json:"type" db:"type"`
	Priority       string     `json:"priority" db:"priority"`
	IsRead         bool       `json:"is_read" db:"is_read"`
	ActionURL      *string    `json:"action_url" db:"action_url"`
	CreatedAt      *time.Time `json:"created_at" db:"created_at"`
	ReadAt         *time.Time `json:"read_at" db:"read_at"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the notification to its JSON projection.
func (n *Notification) ToMap() map[string]any {
	return map[string]any{
		"notification_id": n.NotificationID,
		"user_id":         n.UserID,
		"title":           n.Title,
		"message":         n.Message,
		"type":            n.Type,
		"priority":        n.Priority,
		"is_read":         n.IsRead,
		"action_url":      n.ActionURL,
		"created_at":      isoTime(n.CreatedAt),
		"read_at":         isoTime(n.ReadAt),
	}
}
