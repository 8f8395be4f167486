package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

var deadlineColumns = []string{
	"notification_id", "user_id", "deadline_type", "source_id", "source_type",
	"deadline_date", "title", "description", "priority", "status", "created_at",
}

// DeadlineNotificationRepository handles database operations for tracked
// deadlines
type DeadlineNotificationRepository struct {
	db *pgxpool.Pool
}

// NewDeadlineNotificationRepository creates a new deadline repository
func NewDeadlineNotificationRepository(db *pgxpool.Pool) *DeadlineNotificationRepository {
	return &DeadlineNotificationRepository{db: db}
}

func scanDeadline(row pgx.Row, d *models.DeadlineNotification) error {
	return row.Scan(
		&d.NotificationID,
		&d.UserID,
		&d.DeadlineType,
		&d.SourceID,
		&d.SourceType,
		&d.DeadlineDate,
		&d.Title,
		&d.Description,
		&d.Priority,
		&d.Status,
		&d.CreatedAt,
	)
}

func scanDeadlines(rows pgx.Rows) ([]*models.DeadlineNotification, error) {
	defer rows.Close()

	var deadlines []*models.DeadlineNotification
	for rows.Next() {
		var d models.DeadlineNotification
		if err := scanDeadline(rows, &d); err != nil {
			return nil, err
		}
		deadlines = append(deadlines, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deadlines, nil
}

func (r *DeadlineNotificationRepository) queryDeadlines(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.DeadlineNotification, error) {
	sql, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building deadline query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return scanDeadlines(rows)
}

// GetAll retrieves every tracked deadline, soonest first
func (r *DeadlineNotificationRepository) GetAll(ctx context.Context) ([]*models.DeadlineNotification, error) {
	return r.queryDeadlines(ctx, squirrel.Select(deadlineColumns...).
		From("deadline_notifications").
		OrderBy("deadline_date ASC"))
}

// GetByID retrieves a deadline by ID. Returns (nil, nil) when no row matches.
func (r *DeadlineNotificationRepository) GetByID(ctx context.Context, id int64) (*models.DeadlineNotification, error) {
	query := `
		SELECT notification_id, user_id, deadline_type, source_id, source_type,
		       deadline_date, title, description, priority, status, created_at
		FROM deadline_notifications
		WHERE notification_id = $1
	`

	var d models.DeadlineNotification
	err := scanDeadline(r.db.QueryRow(ctx, query, id), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving deadline: %w", err)
	}

	return &d, nil
}

// GetByUser retrieves a user's deadlines, soonest first. An empty status
// means no status filter.
func (r *DeadlineNotificationRepository) GetByUser(ctx context.Context, userID int64, status string) ([]*models.DeadlineNotification, error) {
	builder := squirrel.Select(deadlineColumns...).
		From("deadline_notifications").
		Where("user_id = ?", userID).
		OrderBy("deadline_date ASC")

	if status != "" {
		builder = builder.Where("status = ?", status)
	}

	return r.queryDeadlines(ctx, builder)
}

// GetBySource retrieves the deadline synced from one source entity, if any
func (r *DeadlineNotificationRepository) GetBySource(ctx context.Context, sourceType string, sourceID int64) (*models.DeadlineNotification, error) {
	query := `
		SELECT notification_id, user_id, deadline_type, source_id, source_type,
		       deadline_date, title, description, priority, status, created_at
		FROM deadline_notifications
		WHERE source_type = $1 AND source_id = $2
	`

	var d models.DeadlineNotification
	err := scanDeadline(r.db.QueryRow(ctx, query, sourceType, sourceID), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving deadline by source: %w", err)
	}

	return &d, nil
}

// GetUpcoming retrieves a user's next active deadlines. A limit of 0 means
// no limit.
func (r *DeadlineNotificationRepository) GetUpcoming(ctx context.Context, userID int64, limit int) ([]*models.DeadlineNotification, error) {
	builder := squirrel.Select(deadlineColumns...).
		From("deadline_notifications").
		Where("user_id = ?", userID).
		Where("status = ?", models.DeadlineStatusActive).
		Where("deadline_date >= now()").
		OrderBy("deadline_date ASC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return r.queryDeadlines(ctx, builder)
}

// GetUrgent retrieves a user's active deadlines falling due within the
// given number of hours, soonest first.
func (r *DeadlineNotificationRepository) GetUrgent(ctx context.Context, userID int64, hours int) ([]*models.DeadlineNotification, error) {
	cutoff := time.Now().Add(time.Duration(hours) * time.Hour)

	return r.queryDeadlines(ctx, squirrel.Select(deadlineColumns...).
		From("deadline_notifications").
		Where("user_id = ?", userID).
		Where("status = ?", models.DeadlineStatusActive).
		Where("deadline_date >= now()").
		Where("deadline_date <= ?", cutoff).
		OrderBy("deadline_date ASC"))
}

// Create inserts a new deadline and assigns the generated ID and creation
// time onto the input
func (r *DeadlineNotificationRepository) Create(ctx context.Context, d *models.DeadlineNotification) error {
	query := `
		INSERT INTO deadline_notifications (user_id, deadline_type, source_id,
			source_type, deadline_date, title, description, priority, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		RETURNING notification_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		d.UserID,
		d.DeadlineType,
		d.SourceID,
		d.SourceType,
		d.DeadlineDate,
		d.Title,
		d.Description,
		d.Priority,
		d.Status,
		d.CreatedAt,
	).Scan(&d.NotificationID, &d.CreatedAt)
}

// UpdateStatus sets a deadline's status and reports whether a row was
// affected
func (r *DeadlineNotificationRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE deadline_notifications SET status = $1 WHERE notification_id = $2`, status, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// MarkOverdue flags active deadlines whose date has passed and returns the
// number of rows flagged
func (r *DeadlineNotificationRepository) MarkOverdue(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE deadline_notifications
		SET status = $1
		WHERE status = $2 AND deadline_date < now()
	`, models.DeadlineStatusOverdue, models.DeadlineStatusActive)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteCompletedBefore removes completed deadlines older than the cutoff
// and returns the number of rows removed
func (r *DeadlineNotificationRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM deadline_notifications
		WHERE status = $1 AND deadline_date < $2
	`, models.DeadlineStatusCompleted, cutoff)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a deadline by ID and reports whether a row was affected
func (r *DeadlineNotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM deadline_notifications WHERE notification_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
