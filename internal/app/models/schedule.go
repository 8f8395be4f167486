package models

// Schedule is a student's saved course schedule. CourseList is a serialized
// list of course IDs; Optimized is set by the schedule optimizer endpoint.
type Schedule struct {
	ScheduleID *int64  `json:"Schedule_ID" db:"schedule_id"`
	StudentID  int64   `json:"Student_ID" db:"student_id"`
	CourseList *string `json:"Course_List" db:"course_list"`
	Optimized  bool    `json:"Optimized" db:"optimized"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the schedule to its JSON projection.
func (s *Schedule) ToMap() map[string]any {
	return map[string]any{
		"Schedule_ID": s.ScheduleID,
		"Student_ID":  s.StudentID,
		"Course_List": s.CourseList,
		"Optimized":   s.Optimized,
	}
}
