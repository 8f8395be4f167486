package dto

// CreateAssignmentRequest represents new coursework
type CreateAssignmentRequest struct {
	CourseID         int64   `json:"courseId" binding:"required,min=1"`
	Title            string  `json:"title" binding:"required"`
	Description      *string `json:"description,omitempty"`
	Instructions     *string `json:"instructions,omitempty"`
	DueDate          string  `json:"dueDate" binding:"required"`
	MaxScore         float64 `json:"maxScore" binding:"required,gt=0"`
	AssignmentType   *string `json:"assignmentType,omitempty"`
	AllowedFileTypes *string `json:"allowedFileTypes,omitempty"`
	MaxFileSizeMB    int     `json:"maxFileSizeMb" binding:"omitempty,min=1,max=100"`
	CorrectAnswer    *string `json:"correctAnswer,omitempty"`
	IsAutoGraded     bool    `json:"isAutoGraded"`
}

// SubmitAssignmentRequest represents a student's submission. File uploads
// arrive as multipart alongside this payload; text answers come inline.
type SubmitAssignmentRequest struct {
	SubmissionText *string `json:"submissionText,omitempty"`
}

// GradeSubmissionRequest represents an instructor grading a submission
type GradeSubmissionRequest struct {
	Grade    float64 `json:"grade" binding:"min=0"`
	Feedback *string `json:"feedback,omitempty"`
}

// RequestReviewRequest asks the grader to take a second look
type RequestReviewRequest struct {
	Comment string `json:"comment" binding:"required"`
}
