package dto

// GenerateStudyPlanRequest represents a request to generate a study plan.
// Dates default to today and thirty days out when omitted; an omitted plan
// name is derived from the course or the start month.
type GenerateStudyPlanRequest struct {
	CourseID  *int64  `json:"courseId,omitempty"`
	PlanName  string  `json:"planName,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// UpdateStudyTaskRequest represents progress changes on a study task
type UpdateStudyTaskRequest struct {
	Status      string   `json:"status" binding:"required,oneof=pending in_progress completed skipped"`
	ActualHours *float64 `json:"actualHours,omitempty"`
}
