package dto

// UpdateCourseMaterialRequest edits a material's metadata. The stored file
// itself is immutable; re-upload to replace it.
type UpdateCourseMaterialRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=255"`
	MaterialType string  `json:"materialType" binding:"required,oneof=pdf pptx video assignment link other"`
	LinkURL      *string `json:"linkUrl,omitempty"`
	Description  *string `json:"description,omitempty"`
	WeekNumber   *int    `json:"weekNumber,omitempty"`
	Topic        *string `json:"topic,omitempty"`
}
