package dto

// SendMessageRequest represents a direct message to another user
type SendMessageRequest struct {
	ReceiverID  int64  `json:"receiverId" binding:"required,min=1"`
	MessageText string `json:"messageText" binding:"required"`
}

// CreateNotificationRequest represents a notification pushed to a user
type CreateNotificationRequest struct {
	UserID    int64   `json:"userId" binding:"required,min=1"`
	Title     string  `json:"title" binding:"required"`
	Message   string  `json:"message" binding:"required"`
	Type      string  `json:"type" binding:"omitempty,oneof=task assignment grade announcement system message"`
	Priority  string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ActionURL *string `json:"actionUrl,omitempty"`
}
