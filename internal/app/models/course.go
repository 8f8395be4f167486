package models

// Course represents a course taught by an instructor. Schedule is the
// free-text meeting pattern kept on the row itself.
type Course struct {
	CourseID     *int64  `json:"Course_ID" db:"course_id"`
	CourseName   string  `json:"Course_Name" db:"course_name"`
	Credits      int     `json:"Credits" db:"credits"`
	InstructorID int64   `json:"Instructor_ID" db:"instructor_id"`
	Schedule     *string `json:"Schedule" db:"schedule"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the course to its JSON projection.
func (c *Course) ToMap() map[string]any {
	return map[string]any{
		"Course_ID":     c.CourseID,
		"Course_Name":   c.CourseName,
		"Credits":       c.Credits,
		"Instructor_ID": c.InstructorID,
		"Schedule":      c.Schedule,
	}
}
