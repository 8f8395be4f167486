package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// CalendarEventRepository handles database operations for calendar entries
type CalendarEventRepository struct {
	db *pgxpool.Pool
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *pgxpool.Pool) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

func scanCalendarEvents(rows pgx.Rows) ([]*models.CalendarEvent, error) {
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		var event models.CalendarEvent
		if err := rows.Scan(
			&event.EventID,
			&event.StudentID,
			&event.Title,
			&event.Date,
			&event.EventTime,
			&event.Source,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetAll retrieves all calendar events
func (r *CalendarEventRepository) GetAll(ctx context.Context) ([]*models.CalendarEvent, error) {
	query := `
		SELECT event_id, student_id, title, event_date, event_time, source
		FROM calendar_events
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanCalendarEvents(rows)
}

// GetByID retrieves a calendar event by ID. Returns (nil, nil) when no row matches.
func (r *CalendarEventRepository) GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	query := `
		SELECT event_id, student_id, title, event_date, event_time, source
		FROM calendar_events
		WHERE event_id = $1
	`

	var event models.CalendarEvent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.EventID,
		&event.StudentID,
		&event.Title,
		&event.Date,
		&event.EventTime,
		&event.Source,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving calendar event: %w", err)
	}

	return &event, nil
}

// GetByStudent retrieves a student's calendar events in date order
func (r *CalendarEventRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.CalendarEvent, error) {
	query := `
		SELECT event_id, student_id, title, event_date, event_time, source
		FROM calendar_events
		WHERE student_id = $1
		ORDER BY event_date, event_time
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanCalendarEvents(rows)
}

// Create inserts a new calendar event and assigns the generated ID onto the input
func (r *CalendarEventRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (student_id, title, event_date, event_time, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING event_id
	`

	return r.db.QueryRow(ctx, query,
		event.StudentID,
		event.Title,
		event.Date,
		event.EventTime,
		event.Source,
	).Scan(&event.EventID)
}

// Update updates an existing calendar event keyed by ID. Last write wins.
func (r *CalendarEventRepository) Update(ctx context.Context, event *models.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $1, event_date = $2, event_time = $3, source = $4
		WHERE event_id = $5
	`

	_, err := r.db.Exec(ctx, query,
		event.Title,
		event.Date,
		event.EventTime,
		event.Source,
		event.EventID,
	)
	return err
}

// Delete removes a calendar event by ID and reports whether a row was affected
func (r *CalendarEventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM calendar_events WHERE event_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
