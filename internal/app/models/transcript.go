package models

import "time"

// Transcript is an issued transcript record pointing at a generated PDF.
type Transcript struct {
	TranscriptID *int64     `json:"Transcript_ID" db:"transcript_id"`
	StudentID    int64      `json:"Student_ID" db:"student_id"`
	GPA          *float64   `json:"GPA" db:"gpa"`
	PDFPath      string     `json:"PDF_Path" db:"pdf_path"`
	IssueDate    *time.Time `json:"Issue_Date" db:"issue_date"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the transcript to its JSON projection.
func (t *Transcript) ToMap() map[string]any {
	return map[string]any{
		"Transcript_ID": t.TranscriptID,
		"Student_ID":    t.StudentID,
		"GPA":           t.GPA,
		"PDF_Path":      t.PDFPath,
		"Issue_Date":    t.IssueDate,
	}
}
