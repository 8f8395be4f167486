package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/repositories"
)

const eventTimeLayout = "15:04:05"

// DeadlineService tracks deadlines derived from a student's tasks and
// calendar entries. Each source entity is synced at most once; the overdue
// sweep flags tracked deadlines whose date has passed.
type DeadlineService struct {
	deadlineRepo *repositories.DeadlineNotificationRepository
	studentRepo  *repositories.StudentRepository
	taskRepo     *repositories.TaskRepository
	calendarRepo *repositories.CalendarEventRepository
	settingsRepo *repositories.UserSettingsRepository
	notification *NotificationService
	logger       zerolog.Logger
}

// NewDeadlineService creates a new DeadlineService
func NewDeadlineService(
	repos *repositories.Repositories,
	notification *NotificationService,
	logger zerolog.Logger,
) *DeadlineService {
	return &DeadlineService{
		deadlineRepo: repos.DeadlineNotificationRepository,
		studentRepo:  repos.StudentRepository,
		taskRepo:     repos.TaskRepository,
		calendarRepo: repos.CalendarEventRepository,
		settingsRepo: repos.UserSettingsRepository,
		notification: notification,
		logger:       logger,
	}
}

// SyncResult counts the deadlines created by one sync run
type SyncResult struct {
	Tasks    int `json:"tasks"`
	Calendar int `json:"calendar"`
	Total    int `json:"total"`
}

// SyncDeadlines scans the user's tasks and calendar events and tracks a
// deadline for every future due date not yet tracked. Users without a
// student profile sync nothing.
func (s *DeadlineService) SyncDeadlines(ctx context.Context, userID int64) (SyncResult, error) {
	var result SyncResult

	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return result, err
	}
	if student == nil || student.StudentID == nil {
		return result, nil
	}
	studentID := *student.StudentID
	now := time.Now()

	tasks, err := s.taskRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return result, err
	}
	for _, task := range tasks {
		deadline := deadlineFromTask(userID, task, now)
		if deadline == nil {
			continue
		}
		created, err := s.track(ctx, deadline)
		if err != nil {
			return result, err
		}
		if created {
			result.Tasks++
		}
	}

	events, err := s.calendarRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return result, err
	}
	for _, event := range events {
		deadline := deadlineFromEvent(userID, event, now)
		if deadline == nil {
			continue
		}
		created, err := s.track(ctx, deadline)
		if err != nil {
			return result, err
		}
		if created {
			result.Calendar++
		}
	}

	result.Total = result.Tasks + result.Calendar
	return result, nil
}

// track persists a deadline unless its source was already synced, and
// reports whether a row was created
func (s *DeadlineService) track(ctx context.Context, d *models.DeadlineNotification) (bool, error) {
	existing, err := s.deadlineRepo.GetBySource(ctx, d.SourceType, d.SourceID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if err := s.deadlineRepo.Create(ctx, d); err != nil {
		return false, err
	}

	s.pushDeadlineNotification(ctx, d)
	return true, nil
}

// pushDeadlineNotification sends an in-app notification for a newly tracked
// deadline, honoring the user's assignment_deadlines setting. Failures are
// logged and do not fail the sync.
func (s *DeadlineService) pushDeadlineNotification(ctx context.Context, d *models.DeadlineNotification) {
	settings, err := s.settingsRepo.GetByUserID(ctx, d.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", d.UserID).Msg("Failed to load settings for deadline notification")
		return
	}
	if settings != nil && !settings.AssignmentDeadlines {
		return
	}

	message := d.Title
	if d.DeadlineDate != nil {
		message = fmt.Sprintf("%s is due %s", d.Title, d.DeadlineDate.Format("Jan 2, 2006 15:04"))
	}

	err = s.notification.Create(ctx, &models.Notification{
		UserID:   d.UserID,
		Title:    "Upcoming deadline",
		Message:  message,
		Type:     models.NotificationTypeTask,
		Priority: d.Priority,
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", d.UserID).Msg("Failed to push deadline notification")
	}
}

// MarkCompleted completes a deadline owned by the user. Returns (false,
// nil) when the deadline does not exist or belongs to someone else.
func (s *DeadlineService) MarkCompleted(ctx context.Context, userID, deadlineID int64) (bool, error) {
	deadline, err := s.deadlineRepo.GetByID(ctx, deadlineID)
	if err != nil {
		return false, err
	}
	if deadline == nil || deadline.UserID != userID {
		return false, nil
	}

	return s.deadlineRepo.UpdateStatus(ctx, deadlineID, models.DeadlineStatusCompleted)
}

// CleanupCompleted removes completed deadlines older than the given number
// of days and returns the number removed
func (s *DeadlineService) CleanupCompleted(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.deadlineRepo.DeleteCompletedBefore(ctx, cutoff)
}

// StartOverdueSweep flags overdue deadlines on the given interval until the
// context is cancelled
func (s *DeadlineService) StartOverdueSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				flagged, err := s.deadlineRepo.MarkOverdue(ctx)
				if err != nil {
					s.logger.Error().Err(err).Msg("Overdue deadline sweep failed")
					continue
				}
				if flagged > 0 {
					s.logger.Info().Int64("count", flagged).Msg("Flagged overdue deadlines")
				}
			}
		}
	}()
}

// deadlineFromTask derives a deadline from a task, or nil when the task is
// completed, undated, or already due.
func deadlineFromTask(userID int64, task *models.Task, now time.Time) *models.DeadlineNotification {
	if task.TaskID == nil || task.DueDate == nil || task.Status == models.TaskStatusCompleted {
		return nil
	}
	if !task.DueDate.After(now) {
		return nil
	}

	priority := task.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	due := *task.DueDate
	description := "Task due date"
	return &models.DeadlineNotification{
		UserID:       userID,
		DeadlineType: models.DeadlineTypeTask,
		SourceID:     *task.TaskID,
		SourceType:   models.DeadlineTypeTask,
		DeadlineDate: &due,
		Title:        "Task: " + task.TaskTitle,
		Description:  &description,
		Priority:     priority,
		Status:       models.DeadlineStatusActive,
	}
}

// deadlineFromEvent derives a deadline from a calendar event, or nil when
// the event is undated or in the past. The event's clock time is folded
// into the deadline when it parses.
func deadlineFromEvent(userID int64, event *models.CalendarEvent, now time.Time) *models.DeadlineNotification {
	if event.EventID == nil || event.Date == nil {
		return nil
	}

	when := *event.Date
	if event.EventTime != nil {
		if clock, err := time.Parse(eventTimeLayout, *event.EventTime); err == nil {
			when = time.Date(when.Year(), when.Month(), when.Day(),
				clock.Hour(), clock.Minute(), clock.Second(), 0, when.Location())
		}
	}
	if !when.After(now) {
		return nil
	}

	return &models.DeadlineNotification{
		UserID:       userID,
		DeadlineType: models.DeadlineTypeCalendar,
		SourceID:     *event.EventID,
		SourceType:   "calendar_event",
		DeadlineDate: &when,
		Title:        "Event: " + event.Title,
		Priority:     models.PriorityMedium,
		Status:       models.DeadlineStatusActive,
	}
}
