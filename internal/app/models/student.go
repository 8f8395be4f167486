package models

// Student defines the student model based on the legacy [Student] table.
// Department, YearLevel and GPA are nullable in the schema.
type Student struct {
	StudentID  *int64   `json:"Student_ID" db:"student_id"`
	UserID     int64    `json:"User_ID" db:"user_id"`
	Department *string  `json:"Department" db:"department"`
	YearLevel  *int     `json:"Year_Level" db:"year_level"`
	GPA        *float64 `json:"GPA" db:"gpa"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the student to its JSON projection.
func (s *Student) ToMap() map[string]any {
	return map[string]any{
		"Student_ID": s.StudentID,
		"User_ID":    s.UserID,
		"Department": s.Department,
		"Year_Level": s.YearLevel,
		"GPA":        s.GPA,
	}
}
