package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToMap(t *testing.T) {
	id := int64(7)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	u := &User{
		UserID:       &id,
		Username:     "demo.student",
		Email:        "demo.student@campushub.app",
		PasswordHash: "hashed",
		CreatedAt:    &created,
	}

	m := u.ToMap()

	assert.Equal(t, &id, m["User_ID"])
	assert.Equal(t, "demo.student", m["Username"])
	assert.Equal(t, "demo.student@campushub.app", m["Email"])
	assert.Equal(t, "hashed", m["Password_Hash"])
	assert.Equal(t, &created, m["Created_At"])
	assert.Len(t, m, 5)
}

func TestStudentToMapNilFields(t *testing.T) {
	s := &Student{UserID: 3}

	m := s.ToMap()

	assert.Nil(t, m["Student_ID"])
	assert.Equal(t, int64(3), m["User_ID"])
	assert.Nil(t, m["Department"])
	assert.Nil(t, m["Year_Level"])
	assert.Nil(t, m["GPA"])
}

func TestUserSettingsToMapNesting(t *testing.T) {
	s := DefaultUserSettings(42)
	m := s.ToMap()

	notifications, ok := m["notifications"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, notifications["email"])
	assert.Equal(t, true, notifications["assignment_deadlines"])

	calendar, ok := m["calendar"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "week", calendar["default_view"])
	assert.Equal(t, "Africa/Cairo", calendar["timezone"])

	appearance, ok := m["appearance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dark", appearance["theme"])
	assert.Equal(t, false, appearance["colorblind_mode"])

	privacy, ok := m["privacy"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "public", privacy["profile_visibility"])

	assert.Nil(t, m["created_at"])
	assert.Nil(t, m["updated_at"])
}

func TestTaskToMapISODates(t *testing.T) {
	id := int64(1)
	due := time.Date(2026, 5, 20, 23, 59, 0, 0, time.UTC)
	task := &Task{
		TaskID:    &id,
		StudentID: 9,
		TaskTitle: "Finish lab report",
		DueDate:   &due,
		Priority:  PriorityHigh,
		Status:    TaskStatusPending,
	}

	m := task.ToMap()

	assert.Equal(t, "2026-05-20T23:59:00Z", m["Due_Date"])
	assert.Equal(t, "high", m["Priority"])
	assert.Equal(t, "pending", m["Status"])
}

func TestTaskToMapNilDueDate(t *testing.T) {
	task := &Task{StudentID: 9, TaskTitle: "x"}

	assert.Nil(t, task.ToMap()["Due_Date"])
}

func TestCourseMaterialToMapComputedFields(t *testing.T) {
	id := int64(12)
	path := "http://localhost:8080/uploads/materials/abc.pdf"
	material := &CourseMaterial{
		MaterialID:    &id,
		CourseID:      3,
		InstructorID:  7,
		MaterialTitle: "Week 1 slides",
		MaterialType:  MaterialTypePDF,
		FilePath:      &path,
		IsActive:      true,
	}

	m := material.ToMap()
	assert.Equal(t, "/course-materials/12/download", m["file_url"])
	assert.Equal(t, false, m["is_link"])
	assert.True(t, material.IsPreviewable())
}

func TestCourseMaterialToMapLink(t *testing.T) {
	id := int64(5)
	url := "https://example.com/lecture"
	material := &CourseMaterial{
		MaterialID:    &id,
		MaterialTitle: "Reference",
		MaterialType:  MaterialTypeOther,
		LinkURL:       &url,
	}

	m := material.ToMap()
	assert.Nil(t, m["file_url"])
	assert.Equal(t, true, m["is_link"])
}

func TestCourseMaterialFileExtension(t *testing.T) {
	path := "uploads/materials/abc.PDF"
	material := &CourseMaterial{FilePath: &path}
	assert.Equal(t, "pdf", material.FileExtension())

	noExt := "uploads/materials/readme"
	material.FilePath = &noExt
	assert.Equal(t, "", material.FileExtension())

	material.FilePath = nil
	assert.Equal(t, "", material.FileExtension())
}

func TestDeadlineNotificationToMapISODates(t *testing.T) {
	id := int64(1)
	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	d := &DeadlineNotification{
		NotificationID: &id,
		UserID:         4,
		DeadlineType:   DeadlineTypeTask,
		SourceID:       9,
		SourceType:     DeadlineTypeTask,
		DeadlineDate:   &due,
		Title:          "Task: Lab report",
		Priority:       PriorityHigh,
		Status:         DeadlineStatusActive,
	}

	m := d.ToMap()
	assert.Equal(t, "2026-10-01T12:00:00Z", m["Deadline_Date"])
	assert.Nil(t, m["Created_At"])
	assert.Equal(t, DeadlineStatusActive, m["Status"])
}
