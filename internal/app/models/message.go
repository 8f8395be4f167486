package models

import "time"

// Message is a direct message between two users.
type Message struct {
	MessageID   *int64     `json:"Message_ID" db:"message_id"`
	SenderID    int64      `json:"Sender_ID" db:"sender_id"`
	ReceiverID  int64      `json:"Receiver_ID" db:"receiver_id"`
	MessageText string     `json:"Message_Text" db:"message_text"`
	Timestamp   *time.Time `json:"Timestamp" db:"timestamp"`
	// IsRead is tracked for unread counts but not part of the projection.
	IsRead bool `json:"-" db:"is_read"`

	Extra map[string]any `json:"-"`
}

// ToMap converts the message to its JSON projection.
func (m *Message) ToMap() map[string]any {
	return map[string]any{
		"Message_ID":   m.MessageID,
		"Sender_ID":    m.SenderID,
		"Receiver_ID":  m.ReceiverID,
		"Message_Text": m.MessageText,
		"Timestamp":    m.Timestamp,
	}
}

// Conversation summarizes the latest exchange with one peer, as produced by
// the message repository's conversation listing.
type Conversation struct {
	PeerID      int64      `json:"Peer_ID"`
	PeerName    string     `json:"Peer_Name"`
	LastMessage string     `json:"Last_Message"`
	LastTime    *time.Time `json:"Last_Time"`
	UnreadCount int        `json:"Unread_Count"`
}
