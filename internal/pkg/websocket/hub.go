package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Message is the wire format exchanged over a messaging WebSocket.
type Message struct {
	Type        string    `json:"type"`
	MessageID   int64     `json:"messageId,omitempty"`
	SenderID    int64     `json:"senderId"`
	ReceiverID  int64     `json:"receiverId"`
	MessageText string    `json:"messageText,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients keyed by user ID and routes
// direct messages to their recipients.
type Hub struct {
	// Registered clients, keyed by user ID. A user may hold several
	// connections (multiple tabs or devices).
	clients map[int64]map[*Client]bool

	// Inbound messages from clients
	deliver chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Listeners that receive a copy of every delivered message
	messageListeners []chan *Message

	// Mutex for messageListeners
	listenersMutex sync.RWMutex

	// Logger instance
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:          make(map[int64]map[*Client]bool),
		deliver:          make(chan *Message),
		register:         make(chan *Client),
		unregister:       make(chan *Client),
		messageListeners: make([]chan *Message, 0),
		logger:           logger,
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case message := <-h.deliver:
			h.deliverMessage(message)
		}
	}
}

// registerClient adds a client to the hub
func (h *Hub) registerClient(client *Client) {
	connections, ok := h.clients[client.userID]
	if !ok {
		connections = make(map[*Client]bool)
		h.clients[client.userID] = connections
	}
	connections[client] = true

	h.logger.Debug().
		Int64("userID", client.userID).
		Int("connections", len(connections)).
		Msg("Client registered with hub")
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	connections, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := connections[client]; !ok {
		return
	}

	delete(connections, client)
	close(client.send)

	if len(connections) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Debug().
		Int64("userID", client.userID).
		Msg("Client unregistered from hub")
}

// deliverMessage routes a message to the receiver's connections and echoes
// it back to the sender's other connections.
func (h *Hub) deliverMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("senderID", message.SenderID).
			Int64("receiverID", message.ReceiverID).
			Msg("Failed to marshal message for delivery")
		return
	}

	h.sendToConnections(message.ReceiverID, data)
	if message.SenderID != message.ReceiverID {
		h.sendToConnections(message.SenderID, data)
	}

	h.notifyMessageListeners(message)
}

// sendToConnections writes data to every open connection of a user
func (h *Hub) sendToConnections(userID int64, data []byte) {
	connections, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range connections {
		select {
		case client.send <- data:
		default:
			// Slow consumer, drop the connection
			close(client.send)
			delete(connections, client)
		}
	}

	if len(connections) == 0 {
		delete(h.clients, userID)
	}
}

// notifyMessageListeners sends the message to all registered listeners
func (h *Hub) notifyMessageListeners(message *Message) {
	h.listenersMutex.RLock()
	defer h.listenersMutex.RUnlock()

	for _, listener := range h.messageListeners {
		select {
		case listener <- message:
		default:
			// Listener is not keeping up, skip it
		}
	}
}

// SendToUser queues a message for routing through the hub
func (h *Hub) SendToUser(message *Message) {
	h.deliver <- message
}

// IsUserOnline reports whether a user has at least one open connection.
// Approximate: the client map is owned by the hub goroutine.
func (h *Hub) IsUserOnline(userID int64) bool {
	connections, ok := h.clients[userID]
	return ok && len(connections) > 0
}

// GetClientsCount returns the number of open connections for a user
func (h *Hub) GetClientsCount(userID int64) int {
	return len(h.clients[userID])
}

// AddMessageListener registers a channel to receive delivered messages
func (h *Hub) AddMessageListener(listener chan *Message) {
	h.listenersMutex.Lock()
	defer h.listenersMutex.Unlock()

	h.messageListeners = append(h.messageListeners, listener)
}

// RemoveMessageListener removes a previously registered listener channel
func (h *Hub) RemoveMessageListener(listener chan *Message) {
	h.listenersMutex.Lock()
	defer h.listenersMutex.Unlock()

	for i, l := range h.messageListeners {
		if l == listener {
			h.messageListeners = append(h.messageListeners[:i], h.messageListeners[i+1:]...)
			break
		}
	}
}
