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

// NotificationController handles notification endpoints
type NotificationController struct {
	notificationRepo    *repositories.NotificationRepository
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(
	notificationRepo *repositories.NotificationRepository,
	notificationService *services.NotificationService,
	logger zerolog.Logger,
) *NotificationController {
	return &NotificationController{
		notificationRepo:    notificationRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications returns the user's notifications. Query parameters:
// unreadOnly=true limits to unread, limit caps the result count.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	unreadOnly := ctx.Query("unreadOnly") == "true"
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit parameter")))
			return
		}
		limit = parsed
	}

	notifications, err := c.notificationRepo.GetByUser(ctx.Request.Context(), userID, unreadOnly, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(notifications), "Notifications retrieved")
}

// CreateNotification creates a notification addressed to a user
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CreateNotificationRequest](ctx)
	if !ok {
		return
	}

	notification := &models.Notification{
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Priority:  req.Priority,
		ActionURL: req.ActionURL,
	}
	if err := c.notificationService.Create(ctx.Request.Context(), notification); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, notification.ToMap(), "Notification created")
}

// GetUnreadCount returns the number of unread notifications
func (c *NotificationController) GetUnreadCount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	count, err := c.notificationService.GetUnreadCount(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, gin.H{"unreadCount": count}, "Unread count retrieved")
}

// MarkAsRead marks one notification as read
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationRepo.MarkAsRead(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllAsRead marks every unread notification for the user as read
func (c *NotificationController) MarkAllAsRead(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	count, err := c.notificationRepo.MarkAllAsRead(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, gin.H{"markedCount": count}, "Notifications marked as read")
}

// DeleteNotification removes a notification
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.notificationRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Notification")
		return
	}

	respond(ctx, http.StatusOK, nil, "Notification deleted")
}
