package models

import "time"

// StudyPlan is a generated study plan, optionally focused on one course.
type StudyPlan struct {
	PlanID               *int64     `json:"Plan_ID" db:"plan_id"`
	StudentID            int64      `json:"Student_ID" db:"student_id"`
	CourseID             *int64     `json:"Course_ID" db:"course_id"`
	PlanName             string     `json:"Plan_Name" db:"plan_name"`
	StartDate            *time.Time `json:"Start_Date" db:"start_date"`
	EndDate              *time.Time `json:"End_Date" db:"end_date"`
	Status               string     `json:"Status" db:"status"`
	CompletionPercentage float64    `json:"Completion_Percentage" db:"completion_percentage"`
	CreatedAt            *time.Time `json:"Created_At" db:"created_at"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the plan to its JSON projection. Dates are emitted as
// ISO-8601 strings here, not raw time values.
func (p *StudyPlan) ToMap() map[string]any {
	return map[string]any{
		"Plan_ID":               p.PlanID,
		"Student_ID":            p.StudentID,
		"Course_ID":             p.CourseID,
		"Plan_Name":             p.PlanName,
		"Start_Date":            isoDate(p.StartDate),
		"End_Date":              isoDate(p.EndDate),
		"Status":                p.Status,
		"Completion_Percentage": p.CompletionPercentage,
		"Created_At":            isoTime(p.CreatedAt),
	}
}
