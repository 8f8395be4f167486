package websocket

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/repositories"
)

// MessageHandler persists messages delivered through the hub
type MessageHandler struct {
	messageRepo *repositories.MessageRepository
	hub         *Hub
	logger      zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	messageRepo *repositories.MessageRepository,
	hub *Hub,
	logger zerolog.Logger,
) *MessageHandler {
	return &MessageHandler{
		messageRepo: messageRepo,
		hub:         hub,
		logger:      logger,
	}
}

// Start begins processing messages from the hub
func (h *MessageHandler) Start() {
	go h.processMessages()
}

// processMessages listens for delivered messages and saves them
func (h *MessageHandler) processMessages() {
	messageChan := make(chan *Message, 64)
	h.hub.AddMessageListener(messageChan)

	for message := range messageChan {
		// Messages that already carry an ID were persisted by the REST path
		if message.Type == "text" && message.MessageID == 0 {
			h.persistMessage(message)
		}
	}
}

// persistMessage saves a direct message to the database
func (h *MessageHandler) persistMessage(message *Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := &models.Message{
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
		MessageText: message.MessageText,
		Timestamp:   &message.Timestamp,
	}

	if err := h.messageRepo.Create(ctx, record); err != nil {
		h.logger.Error().
			Err(err).
			Int64("senderID", message.SenderID).
			Int64("receiverID", message.ReceiverID).
			Msg("Failed to save WebSocket message to database")
		return
	}

	if record.MessageID != nil {
		message.MessageID = *record.MessageID
	}

	h.logger.Debug().
		Int64("messageID", message.MessageID).
		Int64("receiverID", message.ReceiverID).
		Msg("WebSocket message saved to database")
}
