package models

// CourseScheduleSlot is one timetable slot of a course section, as imported
// from the university timetable. Times are clock strings ("HH:MM").
type CourseScheduleSlot struct {
	SlotID       *int64  `json:"Slot_ID" db:"slot_id"`
	CourseID     *int64  `json:"Course_ID" db:"course_id"`
	CourseCode   string  `json:"Course_Code" db:"course_code"`
	Section      *string `json:"Section" db:"section"`
	Day          string  `json:"Day" db:"day"`
	StartTime    string  `json:"Start_Time" db:"start_time"`
	EndTime      string  `json:"End_Time" db:"end_time"`
	SlotType     *string `json:"Slot_Type" db:"slot_type"`
	SubType      *string `json:"Sub_Type" db:"sub_type"`
	AcademicYear *int    `json:"Academic_Year" db:"academic_year"`
	Term         *string `json:"Term" db:"term"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the slot to its JSON projection.
func (s *CourseScheduleSlot) ToMap() map[string]any {
	return map[string]any{
		"Slot_ID":       s.SlotID,
		"Course_ID":     s.CourseID,
		"Course_Code":   s.CourseCode,
		"Section":       s.Section,
		"Day":           s.Day,
		"Start_Time":    s.StartTime,
		"End_Time":      s.EndTime,
		"Slot_Type":     s.SlotType,
		"Sub_Type":      s.SubType,
		"Academic_Year": s.AcademicYear,
		"Term":          s.Term,
	}
}
