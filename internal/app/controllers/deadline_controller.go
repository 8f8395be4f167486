package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// DeadlineController exposes the tracked-deadline endpoints. Deadlines are
// per-user; every handler scopes to the authenticated caller.
type DeadlineController struct {
	deadlineService *services.DeadlineService
	deadlineRepo    *repositories.DeadlineNotificationRepository
	logger          zerolog.Logger
}

// NewDeadlineController creates a new DeadlineController
func NewDeadlineController(
	deadlineService *services.DeadlineService,
	deadlineRepo *repositories.DeadlineNotificationRepository,
	logger zerolog.Logger,
) *DeadlineController {
	return &DeadlineController{
		deadlineService: deadlineService,
		deadlineRepo:    deadlineRepo,
		logger:          logger,
	}
}

// ListDeadlines returns the caller's deadlines, optionally filtered by
// ?status=
func (c *DeadlineController) ListDeadlines(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	status := ctx.Query("status")
	switch status {
	case "", models.DeadlineStatusActive, models.DeadlineStatusCompleted,
		models.DeadlineStatusOverdue, models.DeadlineStatusCancelled:
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status parameter")))
		return
	}

	deadlines, err := c.deadlineRepo.GetByUser(ctx.Request.Context(), userID, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(deadlines), "Deadlines retrieved")
}

// ListUpcoming returns the caller's next active deadlines, default 10
func (c *DeadlineController) ListUpcoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	limit := 10
	if limitParam := ctx.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit parameter")))
			return
		}
		limit = parsed
	}

	deadlines, err := c.deadlineRepo.GetUpcoming(ctx.Request.Context(), userID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(deadlines), "Upcoming deadlines retrieved")
}

// ListUrgent returns the caller's active deadlines falling due within
// ?hours= (default 24)
func (c *DeadlineController) ListUrgent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	hours := 24
	if hoursParam := ctx.Query("hours"); hoursParam != "" {
		parsed, err := strconv.Atoi(hoursParam)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hours parameter")))
			return
		}
		hours = parsed
	}

	deadlines, err := c.deadlineRepo.GetUrgent(ctx.Request.Context(), userID, hours)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(deadlines), "Urgent deadlines retrieved")
}

// SyncDeadlines scans the caller's tasks and calendar events for untracked
// future due dates
func (c *DeadlineController) SyncDeadlines(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	result, err := c.deadlineService.SyncDeadlines(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, result, "Deadlines synced")
}

// CompleteDeadline marks one of the caller's deadlines completed
func (c *DeadlineController) CompleteDeadline(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	completed, err := c.deadlineService.MarkCompleted(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !completed {
		notFound(ctx, "Deadline")
		return
	}

	respond(ctx, http.StatusOK, nil, "Deadline completed")
}

// DeleteDeadline removes one of the caller's deadlines
func (c *DeadlineController) DeleteDeadline(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	deadline, err := c.deadlineRepo.GetByID(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if deadline == nil || deadline.UserID != userID {
		notFound(ctx, "Deadline")
		return
	}

	deleted, err := c.deadlineRepo.Delete(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Deadline")
		return
	}

	respond(ctx, http.StatusOK, nil, "Deadline deleted")
}
