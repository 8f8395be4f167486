package models

// Instructor defines the instructor model based on the legacy [Instructor] table.
type Instructor struct {
	InstructorID *int64  `json:"Instructor_ID" db:"instructor_id"`
	UserID       int64   `json:"User_ID" db:"user_id"`
	Department   *string `json:"Department" db:"department"`
	Office       *string `json:"Office" db:"office"`
	Email        *string `json:"Email" db:"email"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the instructor to its JSON projection.
func (i *Instructor) ToMap() map[string]any {
	return map[string]any{
		"Instructor_ID": i.InstructorID,
		"User_ID":       i.UserID,
		"Department":    i.Department,
		"Office":        i.Office,
		"Email":         i.Email,
	}
}
