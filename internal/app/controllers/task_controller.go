package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// Accepted timestamp layouts for client-supplied dates, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseClientTime parses a client-supplied date or timestamp string
func parseClientTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// TaskController handles personal tasks, calendar events, reminders and
// focus sessions for the authenticated student
type TaskController struct {
	taskRepo     *repositories.TaskRepository
	eventRepo    *repositories.CalendarEventRepository
	reminderRepo *repositories.ReminderRepository
	focusRepo    *repositories.FocusSessionRepository
	studentRepo  *repositories.StudentRepository
	logger       zerolog.Logger
}

// NewTaskController creates a new TaskController
func NewTaskController(
	taskRepo *repositories.TaskRepository,
	eventRepo *repositories.CalendarEventRepository,
	reminderRepo *repositories.ReminderRepository,
	focusRepo *repositories.FocusSessionRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *TaskController {
	return &TaskController{
		taskRepo:     taskRepo,
		eventRepo:    eventRepo,
		reminderRepo: reminderRepo,
		focusRepo:    focusRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// currentStudentID maps the authenticated user to their student profile.
// Writes the error response and returns false when there is none.
func (c *TaskController) currentStudentID(ctx *gin.Context) (int64, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return 0, false
	}

	student, err := c.studentRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	if student == nil || student.StudentID == nil {
		notFound(ctx, "Student profile")
		return 0, false
	}
	return *student.StudentID, true
}

// ListTasks returns the student's tasks
func (c *TaskController) ListTasks(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	tasks, err := c.taskRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(tasks), "Tasks retrieved")
}

// CreateTask adds a task for the student
func (c *TaskController) CreateTask(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateTaskRequest](ctx)
	if !ok {
		return
	}

	task := &models.Task{
		StudentID: studentID,
		TaskTitle: req.Title,
		Priority:  req.Priority,
		Status:    models.TaskStatusPending,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if req.DueDate != nil {
		due, err := parseClientTime(*req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid dueDate format")))
			return
		}
		task.DueDate = &due
	}

	if err := c.taskRepo.Create(ctx.Request.Context(), task); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, task.ToMap(), "Task created")
}

// UpdateTask replaces a task's fields
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateTaskRequest](ctx)
	if !ok {
		return
	}

	task, err := c.taskRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if task == nil {
		notFound(ctx, "Task")
		return
	}

	task.TaskTitle = req.Title
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.DueDate != nil {
		due, err := parseClientTime(*req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid dueDate format")))
			return
		}
		task.DueDate = &due
	}

	if err := c.taskRepo.Update(ctx.Request.Context(), task); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, task.ToMap(), "Task updated")
}

// DeleteTask removes a task
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.taskRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Task")
		return
	}

	respond(ctx, http.StatusOK, nil, "Task deleted")
}

// ListCalendarEvents returns the student's calendar events in date order
func (c *TaskController) ListCalendarEvents(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	events, err := c.eventRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(events), "Calendar events retrieved")
}

// CreateCalendarEvent adds a calendar event for the student
func (c *TaskController) CreateCalendarEvent(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateCalendarEventRequest](ctx)
	if !ok {
		return
	}

	date, err := parseClientTime(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date format")))
		return
	}

	source := "manual"
	event := &models.CalendarEvent{
		StudentID: studentID,
		Title:     req.Title,
		Date:      &date,
		EventTime: req.Time,
		Source:    &source,
	}
	if err := c.eventRepo.Create(ctx.Request.Context(), event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, event.ToMap(), "Calendar event created")
}

// DeleteCalendarEvent removes a calendar event
func (c *TaskController) DeleteCalendarEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.eventRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Calendar event")
		return
	}

	respond(ctx, http.StatusOK, nil, "Calendar event deleted")
}

// ListReminders returns the student's reminders
func (c *TaskController) ListReminders(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	reminders, err := c.reminderRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(reminders), "Reminders retrieved")
}

// CreateReminder adds a reminder tied to a calendar event
func (c *TaskController) CreateReminder(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateReminderRequest](ctx)
	if !ok {
		return
	}

	reminderTime, err := parseClientTime(req.ReminderTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reminderTime format")))
		return
	}

	reminder := &models.Reminder{
		StudentID:    studentID,
		EventID:      req.EventID,
		ReminderTime: &reminderTime,
		Status:       models.ReminderStatusPending,
	}
	if err := c.reminderRepo.Create(ctx.Request.Context(), reminder); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, reminder.ToMap(), "Reminder created")
}

// DeleteReminder removes a reminder
func (c *TaskController) DeleteReminder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.reminderRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Reminder")
		return
	}

	respond(ctx, http.StatusOK, nil, "Reminder deleted")
}

// ListFocusSessions returns the student's focus sessions, newest first
func (c *TaskController) ListFocusSessions(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	sessions, err := c.focusRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(sessions), "Focus sessions retrieved")
}

// StartFocusSession opens a focus session of the requested duration
func (c *TaskController) StartFocusSession(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.StartFocusSessionRequest](ctx)
	if !ok {
		return
	}

	now := time.Now()
	session := &models.FocusSession{
		StudentID: studentID,
		Duration:  req.Duration,
		StartTime: &now,
	}
	if err := c.focusRepo.Create(ctx.Request.Context(), session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, session.ToMap(), "Focus session started")
}

// CompleteFocusSession closes a focus session and marks it completed
func (c *TaskController) CompleteFocusSession(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	session, err := c.focusRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if session == nil {
		notFound(ctx, "Focus session")
		return
	}

	now := time.Now()
	session.EndTime = &now
	session.Completed = true
	if err := c.focusRepo.Update(ctx.Request.Context(), session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, session.ToMap(), "Focus session completed")
}
