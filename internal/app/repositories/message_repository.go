package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

func scanMessages(rows pgx.Rows) ([]*models.Message, error) {
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(
			&msg.MessageID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.MessageText,
			&msg.Timestamp,
			&msg.IsRead,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// GetAll retrieves all messages ordered by send time
func (r *MessageRepository) GetAll(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, message_text, timestamp, is_read
		FROM messages
		ORDER BY timestamp
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// GetByID retrieves a message by ID. Returns (nil, nil) when no row matches.
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, message_text, timestamp, is_read
		FROM messages
		WHERE message_id = $1
	`

	var msg models.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.MessageID,
		&msg.SenderID,
		&msg.ReceiverID,
		&msg.MessageText,
		&msg.Timestamp,
		&msg.IsRead,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return &msg, nil
}

// GetConversation retrieves the full message history between two users,
// oldest first, regardless of direction.
func (r *MessageRepository) GetConversation(ctx context.Context, userID, peerID int64) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, message_text, timestamp, is_read
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY timestamp
	`

	rows, err := r.db.Query(ctx, query, userID, peerID)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// GetByReceiver retrieves all messages addressed to a user, newest first
func (r *MessageRepository) GetByReceiver(ctx context.Context, receiverID int64) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, message_text, timestamp, is_read
		FROM messages
		WHERE receiver_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// GetUserConversations lists one summary row per peer the user has exchanged
// messages with: the latest message, its time and the unread count, most
// recent conversation first.
func (r *MessageRepository) GetUserConversations(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	query := `
		SELECT peer_id, peer_name, last_message, last_time, unread_count
		FROM (
			SELECT DISTINCT ON (peer_id)
				peer_id,
				u.username AS peer_name,
				m.message_text AS last_message,
				m.timestamp AS last_time,
				(
					SELECT COUNT(*) FROM messages
					WHERE sender_id = peer_id AND receiver_id = $1 AND is_read = FALSE
				) AS unread_count
			FROM (
				SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS peer_id
				FROM messages
				WHERE sender_id = $1 OR receiver_id = $1
			) m
			JOIN users u ON u.user_id = m.peer_id
			ORDER BY peer_id, m.timestamp DESC
		) c
		ORDER BY last_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		var conv models.Conversation
		if err := rows.Scan(
			&conv.PeerID,
			&conv.PeerName,
			&conv.LastMessage,
			&conv.LastTime,
			&conv.UnreadCount,
		); err != nil {
			return nil, err
		}
		conversations = append(conversations, &conv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

// GetUnreadCount counts messages addressed to the user that are still unread
func (r *MessageRepository) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAsRead marks a single message as read
func (r *MessageRepository) MarkAsRead(ctx context.Context, messageID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE message_id = $1`, messageID)
	return err
}

// MarkConversationAsRead marks every message from the peer to the user as read
func (r *MessageRepository) MarkConversationAsRead(ctx context.Context, userID, peerID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE sender_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`, peerID, userID)
	return err
}

// Create inserts a new message and assigns the generated ID onto the input
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, message_text, timestamp, is_read)
		VALUES ($1, $2, $3, COALESCE($4, now()), $5)
		RETURNING message_id, timestamp
	`

	return r.db.QueryRow(ctx, query,
		msg.SenderID,
		msg.ReceiverID,
		msg.MessageText,
		msg.Timestamp,
		msg.IsRead,
	).Scan(&msg.MessageID, &msg.Timestamp)
}

// Update updates an existing message keyed by ID. Last write wins.
func (r *MessageRepository) Update(ctx context.Context, msg *models.Message) error {
	query := `
		UPDATE messages
		SET message_text = $1, is_read = $2
		WHERE message_id = $3
	`

	_, err := r.db.Exec(ctx, query,
		msg.MessageText,
		msg.IsRead,
		msg.MessageID,
	)
	return err
}

// Delete removes a message by ID and reports whether a row was affected
func (r *MessageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE message_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
