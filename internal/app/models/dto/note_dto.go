package dto

// CreateNoteRequest is the payload for uploading a lecture note
type CreateNoteRequest struct {
	OriginalFile string  `json:"originalFile" binding:"required"`
	SummaryText  *string `json:"summaryText,omitempty"`
}

// UpdateNoteRequest replaces a note's summary text
type UpdateNoteRequest struct {
	SummaryText string `json:"summaryText" binding:"required"`
}
