package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// UserController handles user profile and settings operations
type UserController struct {
	userRepo     *repositories.UserRepository
	studentRepo  *repositories.StudentRepository
	settingsRepo *repositories.UserSettingsRepository
	logger       zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	settingsRepo *repositories.UserSettingsRepository,
	logger zerolog.Logger,
) *UserController {
	return &UserController{
		userRepo:     userRepo,
		studentRepo:  studentRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetUser returns a user's public profile
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		notFound(ctx, "User")
		return
	}

	userMap := user.ToMap()
	delete(userMap, "Password_Hash")
	respond(ctx, http.StatusOK, userMap, "User retrieved")
}

// GetStudentProfile returns the student profile for the authenticated user
func (c *UserController) GetStudentProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	student, err := c.studentRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if student == nil {
		notFound(ctx, "Student profile")
		return
	}

	respond(ctx, http.StatusOK, student.ToMap(), "Student profile retrieved")
}

// GetSettings returns the authenticated user's settings, creating the
// default row on first access
func (c *UserController) GetSettings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	settings, err := c.settingsRepo.GetOrCreate(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, settings.ToMap(), "Settings retrieved")
}

// UpdateSettings applies a partial settings update. Omitted sections and
// fields keep their stored values.
func (c *UserController) UpdateSettings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateSettingsRequest](ctx)
	if !ok {
		return
	}

	settings, err := c.settingsRepo.GetOrCreate(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if n := req.Notifications; n != nil {
		if n.Email != nil {
			settings.EmailNotifications = *n.Email
		}
		if n.Push != nil {
			settings.PushNotifications = *n.Push
		}
		if n.CalendarReminders != nil {
			settings.CalendarReminders = *n.CalendarReminders
		}
		if n.AssignmentDeadlines != nil {
			settings.AssignmentDeadlines = *n.AssignmentDeadlines
		}
	}
	if cal := req.Calendar; cal != nil {
		if cal.SyncGoogle != nil {
			settings.SyncGoogleCalendar = *cal.SyncGoogle
		}
		if cal.DefaultView != nil {
			settings.CalendarDefaultView = *cal.DefaultView
		}
		if cal.Timezone != nil {
			settings.Timezone = *cal.Timezone
		}
	}
	if a := req.Appearance; a != nil {
		if a.Theme != nil {
			settings.Theme = *a.Theme
		}
		if a.Language != nil {
			settings.Language = *a.Language
		}
		if a.ColorblindMode != nil {
			settings.ColorblindMode = *a.ColorblindMode
		}
		if a.DyslexiaFont != nil {
			settings.DyslexiaFont = *a.DyslexiaFont
		}
	}
	if p := req.Privacy; p != nil {
		if p.ProfileVisibility != nil {
			settings.ProfileVisibility = *p.ProfileVisibility
		}
		if p.ShareSchedule != nil {
			settings.ShareSchedule = *p.ShareSchedule
		}
	}

	updated, err := c.settingsRepo.Update(ctx.Request.Context(), settings)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !updated {
		notFound(ctx, "Settings")
		return
	}

	respond(ctx, http.StatusOK, settings.ToMap(), "Settings updated")
}
