package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/email"
	"github.com/campushub/campushub/internal/pkg/websocket"
)

// NotificationService creates notifications, pushes them to connected
// clients over the messaging hub, and mails a copy to users who opted in.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	settingsRepo     *repositories.UserSettingsRepository
	userRepo         *repositories.UserRepository
	emailService     email.EmailService
	hub              *websocket.Hub
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService. emailService
// may be nil, in which case no emails are sent.
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	settingsRepo *repositories.UserSettingsRepository,
	userRepo *repositories.UserRepository,
	emailService email.EmailService,
	hub *websocket.Hub,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		hub:              hub,
		logger:           logger,
	}
}

// Create persists a notification and pushes it to the recipient if online
func (s *NotificationService) Create(ctx context.Context, n *models.Notification) error {
	if n.Priority == "" {
		n.Priority = models.PriorityMedium
	}
	if n.Type == "" {
		n.Type = models.NotificationTypeSystem
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return err
	}

	s.push(n)
	s.mail(ctx, n)
	return nil
}

// NotifyGrade notifies a student that a submission was graded
func (s *NotificationService) NotifyGrade(ctx context.Context, userID int64, assignmentTitle string, score float64) error {
	return s.Create(ctx, &models.Notification{
		UserID:   userID,
		Title:    "Assignment graded",
		Message:  fmt.Sprintf("Your submission for %q was graded: %.1f", assignmentTitle, score),
		Type:     models.NotificationTypeGrade,
		Priority: models.PriorityHigh,
	})
}

// NotifyAssignment notifies a student about a new assignment in a course
func (s *NotificationService) NotifyAssignment(ctx context.Context, userID int64, courseName, assignmentTitle string) error {
	return s.Create(ctx, &models.Notification{
		UserID:   userID,
		Title:    "New assignment",
		Message:  fmt.Sprintf("%s: %s", courseName, assignmentTitle),
		Type:     models.NotificationTypeAssignment,
		Priority: models.PriorityMedium,
	})
}

// NotifyMessage notifies a user about a new direct message
func (s *NotificationService) NotifyMessage(ctx context.Context, userID int64, senderName string) error {
	return s.Create(ctx, &models.Notification{
		UserID:   userID,
		Title:    "New message",
		Message:  fmt.Sprintf("You have a new message from %s", senderName),
		Type:     models.NotificationTypeMessage,
		Priority: models.PriorityLow,
	})
}

// GetUnreadCount returns the number of unread notifications for a user
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}

// push delivers the notification over the hub. Offline recipients still
// see it on their next fetch, so delivery failures are not errors.
func (s *NotificationService) push(n *models.Notification) {
	ts := time.Now()
	if n.CreatedAt != nil {
		ts = *n.CreatedAt
	}

	s.hub.SendToUser(&websocket.Message{
		Type:        "notification",
		ReceiverID:  n.UserID,
		MessageText: n.Title + ": " + n.Message,
		Timestamp:   ts,
	})

	s.logger.Debug().
		Int64("userID", n.UserID).
		Str("type", n.Type).
		Msg("Notification pushed to hub")
}

// mail sends an email copy when the recipient has email notifications on.
// Mail failures are logged, never surfaced to the caller.
func (s *NotificationService) mail(ctx context.Context, n *models.Notification) {
	if s.emailService == nil {
		return
	}

	settings, err := s.settingsRepo.GetByUserID(ctx, n.UserID)
	if err != nil || settings == nil || !settings.EmailNotifications {
		return
	}

	user, err := s.userRepo.GetByID(ctx, n.UserID)
	if err != nil || user == nil {
		return
	}

	if err := s.emailService.SendNotificationEmail(user.Email, user.Username, n.Title, n.Message); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("userID", n.UserID).
			Msg("Failed to send notification email")
	}
}
