package models

// Enrollment represents a student's enrollment in a course.
// Status is one of the EnrollmentStatus* values; membership is not checked.
type Enrollment struct {
	EnrollmentID *int64  `json:"Enrollment_ID" db:"enrollment_id"`
	StudentID    int64   `json:"Student_ID" db:"student_id"`
	CourseID     int64   `json:"Course_ID" db:"course_id"`
	Status       string  `json:"Status" db:"status"`
	Grade        *string `json:"Grade" db:"grade"`
	Semester     *string `json:"Semester" db:"semester"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the enrollment to its JSON projection. Grade and Semester
// are stored and queried but deliberately absent from the projection, which
// downstream consumers rely on.
func (e *Enrollment) ToMap() map[string]any {
	return map[string]any{
		"Enrollment_ID": e.EnrollmentID,
		"Student_ID":    e.StudentID,
		"Course_ID":     e.CourseID,
		"Status":        e.Status,
	}
}
