package models

import "time"

// Submission is a student's answer to an assignment. GradedBy is an
// instructor ID, or -1 when the grade came from auto-grading.
type Submission struct {
	SubmissionID    *int64     `json:"submission_id" db:"submission_id"`
	AssignmentID    int64      `json:"assignment_id" db:"assignment_id"`
	StudentID       int64      `json:"student_id" db:"student_id"`
	FilePath        *string    `json:"file_path" db:"file_path"`
	FileName        *string    `json:"file_name" db:"file_name"`
	SubmittedAt     *time.Time `json:"submitted_at" db:"submitted_at"`
	Status          string     `json:"status" db:"status"`
	Grade           *float64   `json:"grade" db:"grade"`
	Feedback        *string    `json:"feedback" db:"feedback"`
	GradedBy        *int64     `json:"graded_by" db:"graded_by"`
	GradedAt        *time.Time `json:"graded_at" db:"graded_at"`
	SubmissionText  *string    `json:"submission_text" db:"submission_text"`
	ReviewRequested bool       `json:"review_requested" db:"review_requested"`
	ReviewComment   *string    `json:"review_comment" db:"review_comment"`
	IsAIGraded      bool       `json:"is_ai_graded" db:"is_ai_graded"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the submission to its JSON projection.
func (s *Submission) ToMap() map[string]any {
	return map[string]any{
		"submission_id":    s.SubmissionID,
		"assignment_id":    s.AssignmentID,
		"student_id":       s.StudentID,
		"file_path":        s.FilePath,
		"file_name":        s.FileName,
		"submitted_at":     isoTime(s.SubmittedAt),
		"status":           s.Status,
		"grade":            s.Grade,
		"feedback":         s.Feedback,
		"graded_by":        s.GradedBy,
		"graded_at":        isoTime(s.GradedAt),
		"submission_text":  s.SubmissionText,
		"review_requested": s.ReviewRequested,
		"review_comment":   s.ReviewComment,
		"is_ai_graded":     s.IsAIGraded,
	}
}
