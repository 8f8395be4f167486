package models

import "time"

// Task is a personal to-do item belonging to a student.
type Task struct {
	TaskID    *int64     `json:"Task_ID" db:"task_id"`
	StudentID int64      `json:"Student_ID" db:"student_id"`
	TaskTitle string     `json:"Task_Title" db:"task_title"`
	DueDate   *time.Time `json:"Due_Date" db:"due_date"`
	Priority  string     `json:"Priority" db:"priority"`
	Status    string     `json:"Status" db:"status"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the task to its JSON projection. Unlike most entities the
// due date is emitted as an ISO-8601 string.
func (t *Task) ToMap() map[string]any {
	return map[string]any{
		"Task_ID":    t.TaskID,
		"Student_ID": t.StudentID,
		"Task_Title": t.TaskTitle,
		"Due_Date":   isoTime(t.DueDate),
		"Priority":   t.Priority,
		"Status":     t.Status,
	}
}
