package models

import "time"

// Assignment is coursework created by an instructor or TA. The newer tables
// (assignments, submissions, notifications) project lower snake_case keys,
// unlike the older entities.
type Assignment struct {
	AssignmentID     *int64     `json:"assignment_id" db:"assignment_id"`
	CourseID         int64      `json:"course_id" db:"course_id"`
	Title            string     `json:"title" db:"title"`
	Description      *string    `json:"description" db:"description"`
	Instructions     *string    `json:"instructions" db:"instructions"`
	DueDate          *time.Time `json:"due_date" db:"due_date"`
	MaxScore         float64    `json:"max_score" db:"max_score"`
	AssignmentType   *string    `json:"assignment_type" db:"assignment_type"`
	AllowedFileTypes *string    `json:"allowed_file_types" db:"allowed_file_types"`
	MaxFileSizeMB    int        `json:"max_file_size_mb" db:"max_file_size_mb"`
	CreatedBy        *int64     `json:"created_by" db:"created_by"`
	CreatedAt        *time.Time `json:"created_at" db:"created_at"`
	SolutionPath     *string    `json:"solution_path" db:"solution_path"`
	SolutionFileName *string    `json:"solution_file_name" db:"solution_file_name"`
	CorrectAnswer    *string    `json:"correct_answer" db:"correct_answer"`
	IsAutoGraded     bool       `json:"is_auto_graded" db:"is_auto_graded"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the assignment to its JSON projection.
func (a *Assignment) ToMap() map[string]any {
	return map[string]any{
		"assignment_id":      a.AssignmentID,
		"course_id":          a.CourseID,
		"title":              a.Title,
		"description":        a.Description,
		"instructions":       a.Instructions,
		"due_date":           isoTime(a.DueDate),
		"max_score":          a.MaxScore,
		"assignment_type":    a.AssignmentType,
		"allowed_file_types": a.AllowedFileTypes,
		"max_file_size_mb":   a.MaxFileSizeMB,
		"created_by":         a.CreatedBy,
		"created_at":         isoTime(a.CreatedAt),
		"solution_path":      a.SolutionPath,
		"solution_file_name": a.SolutionFileName,
		"correct_answer":     a.CorrectAnswer,
		"is_auto_graded":     a.IsAutoGraded,
	}
}
