package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// ReminderRepository handles database operations for event reminders
type ReminderRepository struct {
	db *pgxpool.Pool
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func scanReminders(rows pgx.Rows) ([]*models.Reminder, error) {
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(
			&reminder.ReminderID,
			&reminder.StudentID,
			&reminder.EventID,
			&reminder.ReminderTime,
			&reminder.Status,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}

// GetAll retrieves all reminders
func (r *ReminderRepository) GetAll(ctx context.Context) ([]*models.Reminder, error) {
	query := `
		SELECT reminder_id, student_id, event_id, reminder_time, status
		FROM reminders
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

// GetByID retrieves a reminder by ID. Returns (nil, nil) when no row matches.
func (r *ReminderRepository) GetByID(ctx context.Context, id int64) (*models.Reminder, error) {
	query := `
		SELECT reminder_id, student_id, event_id, reminder_time, status
		FROM reminders
		WHERE reminder_id = $1
	`

	var reminder models.Reminder
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reminder.ReminderID,
		&reminder.StudentID,
		&reminder.EventID,
		&reminder.ReminderTime,
		&reminder.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving reminder: %w", err)
	}

	return &reminder, nil
}

// GetByStudent retrieves a student's reminders ordered by fire time
func (r *ReminderRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Reminder, error) {
	query := `
		SELECT reminder_id, student_id, event_id, reminder_time, status
		FROM reminders
		WHERE student_id = $1
		ORDER BY reminder_time
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

// GetPending retrieves reminders still pending whose fire time has passed
func (r *ReminderRepository) GetPending(ctx context.Context, before time.Time) ([]*models.Reminder, error) {
	query := `
		SELECT reminder_id, student_id, event_id, reminder_time, status
		FROM reminders
		WHERE status = 'pending' AND reminder_time <= $1
		ORDER BY reminder_time
	`

	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

// Create inserts a new reminder and assigns the generated ID onto the input
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (student_id, event_id, reminder_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING reminder_id
	`

	return r.db.QueryRow(ctx, query,
		reminder.StudentID,
		reminder.EventID,
		reminder.ReminderTime,
		reminder.Status,
	).Scan(&reminder.ReminderID)
}

// Update updates an existing reminder keyed by ID. Last write wins.
func (r *ReminderRepository) Update(ctx context.Context, reminder *models.Reminder) error {
	query := `
		UPDATE reminders
		SET reminder_time = $1, status = $2
		WHERE reminder_id = $3
	`

	_, err := r.db.Exec(ctx, query,
		reminder.ReminderTime,
		reminder.Status,
		reminder.ReminderID,
	)
	return err
}

// Delete removes a reminder by ID and reports whether a row was affected
func (r *ReminderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
