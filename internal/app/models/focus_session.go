package models

import "time"

// FocusSession records a timed focus (pomodoro) session. Duration is minutes.
type FocusSession struct {
	SessionID *int64     `json:"Session_ID" db:"session_id"`
	StudentID int64      `json:"Student_ID" db:"student_id"`
	Duration  int        `json:"Duration" db:"duration"`
	StartTime *time.Time `json:"Start_Time" db:"start_time"`
	EndTime   *time.Time `json:"End_Time" db:"end_time"`
	Completed bool       `json:"Completed" db:"completed"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the session to its JSON projection.
func (f *FocusSession) ToMap() map[string]any {
	return map[string]any{
		"Session_ID": f.SessionID,
		"Student_ID": f.StudentID,
		"Duration":   f.Duration,
		"Start_Time": f.StartTime,
		"End_Time":   f.EndTime,
		"Completed":  f.Completed,
	}
}
