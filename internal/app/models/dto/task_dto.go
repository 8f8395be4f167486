package dto

// CreateTaskRequest represents a new personal task
type CreateTaskRequest struct {
	Title    string  `json:"title" binding:"required"`
	DueDate  *string `json:"dueDate,omitempty"`
	Priority string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateTaskRequest represents task changes
type UpdateTaskRequest struct {
	Title    string  `json:"title" binding:"required"`
	DueDate  *string `json:"dueDate,omitempty"`
	Priority string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status   string  `json:"status" binding:"omitempty,oneof=pending completed"`
}

// CreateCalendarEventRequest represents a new calendar entry
type CreateCalendarEventRequest struct {
	Title string  `json:"title" binding:"required"`
	Date  string  `json:"date" binding:"required"`
	Time  *string `json:"time,omitempty"`
}

// CreateReminderRequest represents a new reminder on a calendar event
type CreateReminderRequest struct {
	EventID      int64  `json:"eventId" binding:"required,min=1"`
	ReminderTime string `json:"reminderTime" binding:"required"`
}

// StartFocusSessionRequest starts a timed focus session
type StartFocusSessionRequest struct {
	Duration int `json:"duration" binding:"required,min=1,max=480"`
}
