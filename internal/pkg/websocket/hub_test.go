package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageJSONShape(t *testing.T) {
	msg := &Message{
		Type:        "text",
		MessageID:   12,
		SenderID:    1,
		ReceiverID:  2,
		MessageText: "hello",
		Timestamp:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "text", decoded["type"])
	assert.Equal(t, float64(12), decoded["messageId"])
	assert.Equal(t, float64(1), decoded["senderId"])
	assert.Equal(t, float64(2), decoded["receiverId"])
	assert.Equal(t, "hello", decoded["messageText"])
	assert.Contains(t, decoded, "timestamp")
}

func TestHubUserPresence(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	assert.False(t, hub.IsUserOnline(7))
	assert.Equal(t, 0, hub.GetClientsCount(7))

	client := &Client{hub: hub, userID: 7, send: make(chan []byte, 8)}
	hub.register <- client

	require.Eventually(t, func() bool {
		return hub.IsUserOnline(7)
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.GetClientsCount(7))

	hub.unregister <- client
	require.Eventually(t, func() bool {
		return !hub.IsUserOnline(7)
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.GetClientsCount(7))
}

func TestHubDeliversToReceiverAndSender(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	sender := &Client{hub: hub, userID: 1, send: make(chan []byte, 8)}
	receiver := &Client{hub: hub, userID: 2, send: make(chan []byte, 8)}
	hub.register <- sender
	hub.register <- receiver
	require.Eventually(t, func() bool {
		return hub.IsUserOnline(1) && hub.IsUserOnline(2)
	}, time.Second, 10*time.Millisecond)

	hub.SendToUser(&Message{
		Type:        "text",
		SenderID:    1,
		ReceiverID:  2,
		MessageText: "hi",
		Timestamp:   time.Now(),
	})

	for _, c := range []*Client{receiver, sender} {
		select {
		case raw := <-c.send:
			var msg Message
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, "hi", msg.MessageText)
		case <-time.After(time.Second):
			t.Fatalf("user %d did not receive the message", c.userID)
		}
	}
}

func TestHubNotifiesMessageListeners(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	listener := make(chan *Message, 1)
	hub.AddMessageListener(listener)
	defer hub.RemoveMessageListener(listener)

	hub.SendToUser(&Message{
		Type:        "text",
		SenderID:    1,
		ReceiverID:  2,
		MessageText: "persist me",
		Timestamp:   time.Now(),
	})

	select {
	case msg := <-listener:
		assert.Equal(t, "persist me", msg.MessageText)
		assert.Equal(t, int64(2), msg.ReceiverID)
	case <-time.After(time.Second):
		t.Fatal("listener was not notified")
	}
}
