package models

import (
	"fmt"
	"strings"
	"time"
)

// Material type values stored in material_type
const (
	MaterialTypePDF        = "pdf"
	MaterialTypeSlides     = "pptx"
	MaterialTypeVideo      = "video"
	MaterialTypeAssignment = "assignment"
	MaterialTypeLink       = "link"
	MaterialTypeOther      = "other"
)

// CourseMaterial is a file or link an instructor shares with a course.
// Deleting a material deactivates it instead of removing the row.
type CourseMaterial struct {
	MaterialID    *int64     `json:"Material_ID" db:"material_id"`
	CourseID      int64      `json:"Course_ID" db:"course_id"`
	InstructorID  int64      `json:"Instructor_ID" db:"instructor_id"`
	MaterialTitle string     `json:"Material_Title" db:"material_title"`
	MaterialType  string     `json:"Material_Type" db:"material_type"`
	FilePath      *string    `json:"File_Path" db:"file_path"`
	LinkURL       *string    `json:"Link_URL" db:"link_url"`
	Description   *string    `json:"Description" db:"description"`
	WeekNumber    *int       `json:"Week_Number" db:"week_number"`
	Topic         *string    `json:"Topic" db:"topic"`
	UploadDate    *time.Time `json:"Upload_Date" db:"upload_date"`
	FileSize      *int64     `json:"File_Size" db:"file_size"`
	DownloadCount int        `json:"Download_Count" db:"download_count"`
	IsActive      bool       `json:"Is_Active" db:"is_active"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the material to its JSON projection. file_url and is_link
// are recomputed on every call rather than stored.
func (m *CourseMaterial) ToMap() map[string]any {
	var fileURL any
	if m.FilePath != nil && *m.FilePath != "" && m.MaterialID != nil {
		fileURL = fmt.Sprintf("/course-materials/%d/download", *m.MaterialID)
	}

	return map[string]any{
		"Material_ID":    m.MaterialID,
		"Course_ID":      m.CourseID,
		"Instructor_ID":  m.InstructorID,
		"Material_Title": m.MaterialTitle,
		"Material_Type":  m.MaterialType,
		"File_Path":      m.FilePath,
		"Link_URL":       m.LinkURL,
		"Description":    m.Description,
		"Week_Number":    m.WeekNumber,
		"Topic":          m.Topic,
		"Upload_Date":    isoTime(m.UploadDate),
		"File_Size":      m.FileSize,
		"Download_Count": m.DownloadCount,
		"Is_Active":      m.IsActive,
		"file_url":       fileURL,
		"is_link":        m.IsLink(),
	}
}

// IsLink reports whether the material points at an external URL
func (m *CourseMaterial) IsLink() bool {
	return m.MaterialType == MaterialTypeLink || (m.LinkURL != nil && *m.LinkURL != "")
}

// FileExtension returns the lowercased extension of the stored file, or ""
// when the material has no file or the file has no extension.
func (m *CourseMaterial) FileExtension() string {
	if m.FilePath == nil {
		return ""
	}
	idx := strings.LastIndex(*m.FilePath, ".")
	if idx < 0 || idx == len(*m.FilePath)-1 {
		return ""
	}
	return strings.ToLower((*m.FilePath)[idx+1:])
}

// IsPreviewable reports whether a browser can render the material inline
func (m *CourseMaterial) IsPreviewable() bool {
	switch m.MaterialType {
	case MaterialTypePDF, MaterialTypeLink:
		return true
	}
	switch m.FileExtension() {
	case "pdf", "txt", "jpg", "jpeg", "png", "gif":
		return true
	}
	return false
}
