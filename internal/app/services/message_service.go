package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/websocket"
)

// MessageService handles direct messages between users, combining
// persistence with real-time delivery through the hub.
type MessageService struct {
	messageRepo         *repositories.MessageRepository
	userRepo            *repositories.UserRepository
	notificationService *NotificationService
	hub                 *websocket.Hub
	logger              zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo *repositories.MessageRepository,
	userRepo *repositories.UserRepository,
	notificationService *NotificationService,
	hub *websocket.Hub,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		hub:                 hub,
		logger:              logger,
	}
}

// Send persists a direct message and delivers it to the receiver. If the
// receiver has no open connection a notification is created instead.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, text string) (*models.Message, error) {
	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperrors.ErrUserNotFound
	}

	now := time.Now()
	msg := &models.Message{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageText: text,
		Timestamp:   &now,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	wire := &websocket.Message{
		Type:        "text",
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageText: text,
		Timestamp:   now,
	}
	if msg.MessageID != nil {
		// Carrying the ID tells the hub listener the message is already stored
		wire.MessageID = *msg.MessageID
	}
	s.hub.SendToUser(wire)

	if !s.hub.IsUserOnline(receiverID) {
		senderName := "another user"
		if sender, err := s.userRepo.GetByID(ctx, senderID); err == nil && sender != nil {
			senderName = sender.Username
		}
		if err := s.notificationService.NotifyMessage(ctx, receiverID, senderName); err != nil {
			s.logger.Warn().
				Err(err).
				Int64("receiverID", receiverID).
				Msg("Failed to create message notification")
		}
	}

	return msg, nil
}

// GetConversation returns the full exchange between two users, oldest first,
// and marks the peer's messages as read.
func (s *MessageService) GetConversation(ctx context.Context, userID, peerID int64) ([]*models.Message, error) {
	messages, err := s.messageRepo.GetConversation(ctx, userID, peerID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkConversationAsRead(ctx, userID, peerID); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("userID", userID).
			Int64("peerID", peerID).
			Msg("Failed to mark conversation as read")
	}

	return messages, nil
}

// GetConversations lists the user's conversations, most recent first
func (s *MessageService) GetConversations(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	return s.messageRepo.GetUserConversations(ctx, userID)
}

// GetUnreadCount returns the number of unread messages for a user
func (s *MessageService) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.messageRepo.GetUnreadCount(ctx, userID)
}
