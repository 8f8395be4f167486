package models

import "time"

// StudyTask is a unit of work inside a study plan. A task may nest under a
// parent task; SuggestedResources is a serialized JSON string.
type StudyTask struct {
	TaskID             *int64     `json:"Task_ID" db:"task_id"`
	PlanID             int64      `json:"Plan_ID" db:"plan_id"`
	ParentTaskID       *int64     `json:"Parent_Task_ID" db:"parent_task_id"`
	TaskTitle          string     `json:"Task_Title" db:"task_title"`
	Description        *string    `json:"Description" db:"description"`
	EstimatedHours     *float64   `json:"Estimated_Hours" db:"estimated_hours"`
	ActualHours        *float64   `json:"Actual_Hours" db:"actual_hours"`
	DueDate            *time.Time `json:"Due_Date" db:"due_date"`
	Priority           string     `json:"Priority" db:"priority"`
	Status             string     `json:"Status" db:"status"`
	SuggestedResources *string    `json:"Suggested_Resources" db:"suggested_resources"`
	CreatedAt          *time.Time `json:"Created_At" db:"created_at"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the study task to its JSON projection.
func (t *StudyTask) ToMap() map[string]any {
	return map[string]any{
		"Task_ID":             t.TaskID,
		"Plan_ID":             t.PlanID,
		"Parent_Task_ID":      t.ParentTaskID,
		"Task_Title":          t.TaskTitle,
		"Description":         t.Description,
		"Estimated_Hours":     t.EstimatedHours,
		"Actual_Hours":        t.ActualHours,
		"Due_Date":            isoTime(t.DueDate),
		"Priority":            t.Priority,
		"Status":              t.Status,
		"Suggested_Resources": t.SuggestedResources,
		"Created_At":          isoTime(t.CreatedAt),
	}
}
