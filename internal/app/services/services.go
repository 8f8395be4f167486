// Package services contains the business logic layered between controllers
// and repositories.
package services

import (
	"github.com/rs/zerolog"

	appauth "github.com/campushub/campushub/internal/app/auth"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/config"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/email"
	"github.com/campushub/campushub/internal/pkg/websocket"
)

// Services aggregates every service for dependency injection
type Services struct {
	Auth         *AuthService
	StudyPlan    *StudyPlanService
	Notification *NotificationService
	Message      *MessageService
	Deadline     *DeadlineService
}

// NewServices wires the services with their shared dependencies.
// emailService may be nil when no SMTP server is configured.
func NewServices(
	repos *repositories.Repositories,
	roleResolver *appauth.RoleResolver,
	jwtService *auth.JWTService,
	hub *websocket.Hub,
	emailService email.EmailService,
	plannerCfg config.PlannerConfig,
	logger zerolog.Logger,
) *Services {
	notificationService := NewNotificationService(
		repos.NotificationRepository,
		repos.UserSettingsRepository,
		repos.UserRepository,
		emailService,
		hub,
		logger,
	)

	return &Services{
		Auth:         NewAuthService(repos, roleResolver, jwtService, emailService, logger),
		StudyPlan:    NewStudyPlanService(repos, plannerCfg, logger),
		Notification: notificationService,
		Deadline:     NewDeadlineService(repos, notificationService, logger),
		Message: NewMessageService(
			repos.MessageRepository,
			repos.UserRepository,
			notificationService,
			hub,
			logger,
		),
	}
}
