package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// MessageController handles direct messaging endpoints
type MessageController struct {
	messageService *services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// SendMessage sends a direct message to another user
func (c *MessageController) SendMessage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.SendMessageRequest](ctx)
	if !ok {
		return
	}

	msg, err := c.messageService.Send(ctx.Request.Context(), userID, req.ReceiverID, req.MessageText)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, msg.ToMap(), "Message sent")
}

// ListConversations lists the user's conversations, most recent first
func (c *MessageController) ListConversations(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	conversations, err := c.messageService.GetConversations(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, conversations, "Conversations retrieved")
}

// GetConversation returns the exchange with one peer and marks it read
func (c *MessageController) GetConversation(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	peerID, ok := pathID(ctx, "peerId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetConversation(ctx.Request.Context(), userID, peerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(messages), "Conversation retrieved")
}

// GetUnreadCount returns the number of unread messages
func (c *MessageController) GetUnreadCount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	count, err := c.messageService.GetUnreadCount(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, gin.H{"unreadCount": count}, "Unread count retrieved")
}
