package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
)

func TestBuildStudyTasksFromAssignments(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	due := start.AddDate(0, 0, 10)
	assignments := []*models.Assignment{
		{Title: "Homework 1", MaxScore: 100, DueDate: &due},
	}

	tasks := buildStudyTasks(5, assignments, start, end)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, int64(5), task.PlanID)
	assert.Equal(t, "Study for Homework 1", task.TaskTitle)
	assert.Equal(t, models.StudyTaskStatusPending, task.Status)
	// Scheduled two days ahead of the due date.
	assert.Equal(t, due.AddDate(0, 0, -2), *task.DueDate)
	require.NotNil(t, task.EstimatedHours)
	assert.Equal(t, 8.0, *task.EstimatedHours)
}

func TestBuildStudyTasksKeepsDueDateInsideWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	// Due one day after start; two days earlier would fall before the window.
	due := start.AddDate(0, 0, 1)
	assignments := []*models.Assignment{
		{Title: "Quiz", MaxScore: 20, DueDate: &due},
	}

	tasks := buildStudyTasks(1, assignments, start, end)
	require.Len(t, tasks, 1)
	assert.Equal(t, due, *tasks[0].DueDate)
}

func TestBuildStudyTasksWeeklyFallback(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 28)

	tasks := buildStudyTasks(3, nil, start, end)
	require.Len(t, tasks, 4)

	assert.Equal(t, "Week 1 review", tasks[0].TaskTitle)
	assert.Equal(t, "Week 4 review", tasks[3].TaskTitle)
	for i, task := range tasks {
		assert.Equal(t, start.AddDate(0, 0, 7*(i+1)), *task.DueDate)
		assert.Equal(t, models.PriorityMedium, task.Priority)
	}
}

func TestEstimateHours(t *testing.T) {
	assert.Equal(t, 8.0, estimateHours(150))
	assert.Equal(t, 8.0, estimateHours(100))
	assert.Equal(t, 5.0, estimateHours(50))
	assert.Equal(t, 3.0, estimateHours(10))
}

func TestPriorityForDue(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	assert.Equal(t, models.PriorityHigh, priorityForDue(start.AddDate(0, 0, 5), start, end))
	assert.Equal(t, models.PriorityMedium, priorityForDue(start.AddDate(0, 0, 15), start, end))
	assert.Equal(t, models.PriorityLow, priorityForDue(start.AddDate(0, 0, 25), start, end))

	// Degenerate window falls back to medium.
	assert.Equal(t, models.PriorityMedium, priorityForDue(start, start, start))
}

func TestDerivePlanName(t *testing.T) {
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Study Plan for Data Structures", derivePlanName("Data Structures", start))
	assert.Equal(t, "Study Plan - March 2026", derivePlanName("", start))
}
