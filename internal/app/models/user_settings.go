package models

import "time"

// UserSettings holds a user's preference toggles. Defaults come from
// DefaultUserSettings, not from the zero value.
type UserSettings struct {
	SettingID *int64 `json:"Setting_ID" db:"setting_id"`
	UserID    int64  `json:"User_ID" db:"user_id"`

	EmailNotifications  bool `json:"email_notifications" db:"email_notifications"`
	PushNotifications   bool `json:"push_notifications" db:"push_notifications"`
	CalendarReminders   bool `json:"calendar_reminders" db:"calendar_reminders"`
	AssignmentDeadlines bool `json:"assignment_deadlines" db:"assignment_deadlines"`

	SyncGoogleCalendar  bool   `json:"sync_google_calendar" db:"sync_google_calendar"`
	CalendarDefaultView string `json:"calendar_default_view" db:"calendar_default_view"`
	Timezone            string `json:"timezone" db:"timezone"`

	Theme          string `json:"theme" db:"theme"`
	Language       string `json:"language" db:"language"`
	ColorblindMode bool   `json:"colorblind_mode" db:"colorblind_mode"`
	DyslexiaFont   bool   `json:"dyslexia_font" db:"dyslexia_font"`

	ProfileVisibility string `json:"profile_visibility" db:"profile_visibility"`
	ShareSchedule     bool   `json:"share_schedule" db:"share_schedule"`

	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`

	Extra map[string]any `json:"-"`
}

// DefaultUserSettings returns the settings a new user starts with
func DefaultUserSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:              userID,
		EmailNotifications:  true,
		PushNotifications:   true,
		CalendarReminders:   true,
		AssignmentDeadlines: true,
		CalendarDefaultView: "week",
		Timezone:            "Africa/Cairo",
		Theme:               "dark",
		Language:            "en",
		ProfileVisibility:   "public",
	}
}

// ToMap converts the settings to their JSON projection. Unlike the flat
// entities, settings group into nested sections.
func (s *UserSettings) ToMap() map[string]any {
	return map[string]any{
		"Setting_ID": s.SettingID,
		"User_ID":    s.UserID,
		"notifications": map[string]any{
			"email":                s.EmailNotifications,
			"push":                 s.PushNotifications,
			"calendar_reminders":   s.CalendarReminders,
			"assignment_deadlines": s.AssignmentDeadlines,
		},
		"calendar": map[string]any{
			"sync_google":  s.SyncGoogleCalendar,
			"default_view": s.CalendarDefaultView,
			"timezone":     s.Timezone,
		},
		"appearance": map[string]any{
			"theme":           s.Theme,
			"language":        s.Language,
			"colorblind_mode": s.ColorblindMode,
			"dyslexia_font":   s.DyslexiaFont,
		},
		"privacy": map[string]any{
			"profile_visibility": s.ProfileVisibility,
			"share_schedule":     s.ShareSchedule,
		},
		"created_at": isoTime(s.CreatedAt),
		"updated_at": isoTime(s.UpdatedAt),
	}
}
