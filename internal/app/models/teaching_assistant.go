package models

// TeachingAssistant defines a TA record tied to a user and a course.
type TeachingAssistant struct {
	TAID             *int64 `json:"TA_ID" db:"ta_id"`
	UserID           int64  `json:"User_ID" db:"user_id"`
	AssignedCourseID int64  `json:"Assigned_Course_ID" db:"assigned_course_id"`
	Role             string `json:"Role" db:"role"`
	HoursPerWeek     *int   `json:"Hours_Per_Week" db:"hours_per_week"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the teaching assistant to its JSON projection.
func (t *TeachingAssistant) ToMap() map[string]any {
	return map[string]any{
		"TA_ID":              t.TAID,
		"User_ID":            t.UserID,
		"Assigned_Course_ID": t.AssignedCourseID,
		"Role":               t.Role,
		"Hours_Per_Week":     t.HoursPerWeek,
	}
}
