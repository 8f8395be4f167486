package controllers

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/campushub/internal/app/models"
)

func TestMaterialType(t *testing.T) {
	pdfFile := &multipart.FileHeader{Filename: "week1.pdf"}
	slidesFile := &multipart.FileHeader{Filename: "Week1.PPTX"}
	videoFile := &multipart.FileHeader{Filename: "lecture.mp4"}
	binFile := &multipart.FileHeader{Filename: "data.bin"}

	tests := []struct {
		name      string
		requested string
		file      *multipart.FileHeader
		linkURL   string
		want      string
	}{
		{"explicit type wins", models.MaterialTypeAssignment, pdfFile, "", models.MaterialTypeAssignment},
		{"unknown type falls through", "spreadsheet", pdfFile, "", models.MaterialTypePDF},
		{"link without file", "", nil, "https://example.com", models.MaterialTypeLink},
		{"pdf extension", "", pdfFile, "", models.MaterialTypePDF},
		{"pptx extension case insensitive", "", slidesFile, "", models.MaterialTypeSlides},
		{"video extension", "", videoFile, "", models.MaterialTypeVideo},
		{"unrecognized extension", "", binFile, "", models.MaterialTypeOther},
		{"nothing known", "", nil, "", models.MaterialTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materialType(tt.requested, tt.file, tt.linkURL))
		})
	}
}
