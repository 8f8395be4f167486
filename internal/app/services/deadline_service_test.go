package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
)

func TestDeadlineFromTask(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	taskID := int64(42)
	due := now.Add(48 * time.Hour)

	task := &models.Task{
		TaskID:    &taskID,
		StudentID: 3,
		TaskTitle: "Lab report",
		DueDate:   &due,
		Priority:  models.PriorityHigh,
		Status:    models.TaskStatusPending,
	}

	deadline := deadlineFromTask(7, task, now)
	require.NotNil(t, deadline)
	assert.Equal(t, int64(7), deadline.UserID)
	assert.Equal(t, models.DeadlineTypeTask, deadline.DeadlineType)
	assert.Equal(t, taskID, deadline.SourceID)
	assert.Equal(t, "Task: Lab report", deadline.Title)
	assert.Equal(t, models.PriorityHigh, deadline.Priority)
	assert.Equal(t, models.DeadlineStatusActive, deadline.Status)
	assert.Equal(t, due, *deadline.DeadlineDate)
}

func TestDeadlineFromTaskSkipsCompletedAndPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	taskID := int64(1)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	completed := &models.Task{TaskID: &taskID, TaskTitle: "Done", DueDate: &future, Status: models.TaskStatusCompleted}
	assert.Nil(t, deadlineFromTask(7, completed, now))

	overdue := &models.Task{TaskID: &taskID, TaskTitle: "Late", DueDate: &past, Status: models.TaskStatusPending}
	assert.Nil(t, deadlineFromTask(7, overdue, now))

	undated := &models.Task{TaskID: &taskID, TaskTitle: "Someday", Status: models.TaskStatusPending}
	assert.Nil(t, deadlineFromTask(7, undated, now))
}

func TestDeadlineFromTaskDefaultsPriority(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	taskID := int64(2)
	due := now.Add(time.Hour)

	task := &models.Task{TaskID: &taskID, TaskTitle: "Untagged", DueDate: &due, Status: models.TaskStatusPending}
	deadline := deadlineFromTask(7, task, now)
	require.NotNil(t, deadline)
	assert.Equal(t, models.PriorityMedium, deadline.Priority)
}

func TestDeadlineFromEventFoldsClockTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	eventID := int64(11)
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	clock := "14:30:00"

	event := &models.CalendarEvent{
		EventID:   &eventID,
		StudentID: 3,
		Title:     "Midterm",
		Date:      &date,
		EventTime: &clock,
	}

	deadline := deadlineFromEvent(7, event, now)
	require.NotNil(t, deadline)
	assert.Equal(t, models.DeadlineTypeCalendar, deadline.DeadlineType)
	assert.Equal(t, "calendar_event", deadline.SourceType)
	assert.Equal(t, "Event: Midterm", deadline.Title)
	assert.Equal(t, time.Date(2026, 9, 3, 14, 30, 0, 0, time.UTC), *deadline.DeadlineDate)
}

func TestDeadlineFromEventSkipsPastAndUndated(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	eventID := int64(1)
	past := now.Add(-24 * time.Hour)

	assert.Nil(t, deadlineFromEvent(7, &models.CalendarEvent{EventID: &eventID, Title: "Old", Date: &past}, now))
	assert.Nil(t, deadlineFromEvent(7, &models.CalendarEvent{EventID: &eventID, Title: "Undated"}, now))
}
