package models

import "time"

// Note is an uploaded lecture note with an optional generated summary.
type Note struct {
	NoteID       *int64     `json:"Note_ID" db:"note_id"`
	StudentID    int64      `json:"Student_ID" db:"student_id"`
	OriginalFile string     `json:"Original_File" db:"original_file"`
	SummaryText  *string    `json:"Summary_Text" db:"summary_text"`
	UploadDate   *time.Time `json:"Upload_Date" db:"upload_date"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the note to its JSON projection.
func (n *Note) ToMap() map[string]any {
	return map[string]any{
		"Note_ID":       n.NoteID,
		"Student_ID":    n.StudentID,
		"Original_File": n.OriginalFile,
		"Summary_Text":  n.SummaryText,
		"Upload_Date":   n.UploadDate,
	}
}
