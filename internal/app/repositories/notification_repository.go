package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func scanNotifications(rows pgx.Rows) ([]*models.Notification, error) {
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.NotificationID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Priority,
			&n.IsRead,
			&n.ActionURL,
			&n.CreatedAt,
			&n.ReadAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// GetAll retrieves all notifications, newest first
func (r *NotificationRepository) GetAll(ctx context.Context) ([]*models.Notification, error) {
	query := `
		SELECT notification_id, user_id, title, message, type, priority,
		       is_read, action_url, created_at, read_at
		FROM notifications
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanNotifications(rows)
}

// GetByID retrieves a notification by ID. Returns (nil, nil) when no row matches.
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	query := `
		SELECT notification_id, user_id, title, message, type, priority,
		       is_read, action_url, created_at, read_at
		FROM notifications
		WHERE notification_id = $1
	`

	var n models.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.NotificationID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.Priority,
		&n.IsRead,
		&n.ActionURL,
		&n.CreatedAt,
		&n.ReadAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}

	return &n, nil
}

// GetByUser retrieves a user's notifications with optional filters, newest
// first. A limit of 0 means no limit.
func (r *NotificationRepository) GetByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error) {
	queryBuilder := squirrel.Select(
		"notification_id", "user_id", "title", "message", "type", "priority",
		"is_read", "action_url", "created_at", "read_at",
	).
		From("notifications").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if unreadOnly {
		queryBuilder = queryBuilder.Where("is_read = FALSE")
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return scanNotifications(rows)
}

// GetUnreadCount counts a user's unread notifications
func (r *NotificationRepository) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAsRead marks one notification as read and stamps the read time
func (r *NotificationRepository) MarkAsRead(ctx context.Context, notificationID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = now()
		WHERE notification_id = $1
	`, notificationID)
	return err
}

// MarkAllAsRead marks all of a user's notifications as read and returns the
// number of rows touched
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = now()
		WHERE user_id = $1 AND is_read = FALSE
	`, userID)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// Create inserts a new notification and assigns the generated ID onto the input
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, priority,
		                           is_read, action_url, read_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING notification_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		n.Priority,
		n.IsRead,
		n.ActionURL,
		n.ReadAt,
	).Scan(&n.NotificationID, &n.CreatedAt)
}

// Update updates an existing notification keyed by ID. Last write wins.
func (r *NotificationRepository) Update(ctx context.Context, n *models.Notification) error {
	query := `
		UPDATE notifications
		SET title = $1, message = $2, type = $3, priority = $4, is_read = $5,
		    action_url = $6, read_at = $7
		WHERE notification_id = $8
	`

	_, err := r.db.Exec(ctx, query,
		n.Title,
		n.Message,
		n.Type,
		n.Priority,
		n.IsRead,
		n.ActionURL,
		n.ReadAt,
		n.NotificationID,
	)
	return err
}

// Delete removes a notification by ID and reports whether a row was affected
func (r *NotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
