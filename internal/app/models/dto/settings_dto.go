package dto

// UpdateSettingsRequest mirrors the nested settings projection. Omitted
// sections keep their stored values.
type UpdateSettingsRequest struct {
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Calendar      *CalendarSettings     `json:"calendar,omitempty"`
	Appearance    *AppearanceSettings   `json:"appearance,omitempty"`
	Privacy       *PrivacySettings      `json:"privacy,omitempty"`
}

// NotificationSettings groups the notification toggles
type NotificationSettings struct {
	Email               *bool `json:"email,omitempty"`
	Push                *bool `json:"push,omitempty"`
	CalendarReminders   *bool `json:"calendar_reminders,omitempty"`
	AssignmentDeadlines *bool `json:"assignment_deadlines,omitempty"`
}

// CalendarSettings groups the calendar preferences
type CalendarSettings struct {
	SyncGoogle  *bool   `json:"sync_google,omitempty"`
	DefaultView *string `json:"default_view,omitempty" binding:"omitempty,oneof=day week month"`
	Timezone    *string `json:"timezone,omitempty"`
}

// AppearanceSettings groups the appearance preferences
type AppearanceSettings struct {
	Theme          *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
	Language       *string `json:"language,omitempty"`
	ColorblindMode *bool   `json:"colorblind_mode,omitempty"`
	DyslexiaFont   *bool   `json:"dyslexia_font,omitempty"`
}

// PrivacySettings groups the privacy preferences
type PrivacySettings struct {
	ProfileVisibility *string `json:"profile_visibility,omitempty" binding:"omitempty,oneof=public private"`
	ShareSchedule     *bool   `json:"share_schedule,omitempty"`
}
