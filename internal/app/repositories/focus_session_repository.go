package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// FocusSessionRepository handles database operations for focus sessions
type FocusSessionRepository struct {
	db *pgxpool.Pool
}

// NewFocusSessionRepository creates a new focus session repository
func NewFocusSessionRepository(db *pgxpool.Pool) *FocusSessionRepository {
	return &FocusSessionRepository{db: db}
}

func scanFocusSessions(rows pgx.Rows) ([]*models.FocusSession, error) {
	defer rows.Close()

	var sessions []*models.FocusSession
	for rows.Next() {
		var session models.FocusSession
		if err := rows.Scan(
			&session.SessionID,
			&session.StudentID,
			&session.Duration,
			&session.StartTime,
			&session.EndTime,
			&session.Completed,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetAll retrieves all focus sessions
func (r *FocusSessionRepository) GetAll(ctx context.Context) ([]*models.FocusSession, error) {
	query := `
		SELECT session_id, student_id, duration, start_time, end_time, completed
		FROM focus_sessions
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanFocusSessions(rows)
}

// GetByID retrieves a focus session by ID. Returns (nil, nil) when no row matches.
func (r *FocusSessionRepository) GetByID(ctx context.Context, id int64) (*models.FocusSession, error) {
	query := `
		SELECT session_id, student_id, duration, start_time, end_time, completed
		FROM focus_sessions
		WHERE session_id = $1
	`

	var session models.FocusSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.SessionID,
		&session.StudentID,
		&session.Duration,
		&session.StartTime,
		&session.EndTime,
		&session.Completed,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving focus session: %w", err)
	}

	return &session, nil
}

// GetByStudent retrieves a student's focus sessions, most recent first
func (r *FocusSessionRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.FocusSession, error) {
	query := `
		SELECT session_id, student_id, duration, start_time, end_time, completed
		FROM focus_sessions
		WHERE student_id = $1
		ORDER BY start_time DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanFocusSessions(rows)
}

// Create inserts a new focus session and assigns the generated ID onto the input
func (r *FocusSessionRepository) Create(ctx context.Context, session *models.FocusSession) error {
	query := `
		INSERT INTO focus_sessions (student_id, duration, start_time, end_time, completed)
		VALUES ($1, $2, COALESCE($3, now()), $4, $5)
		RETURNING session_id, start_time
	`

	return r.db.QueryRow(ctx, query,
		session.StudentID,
		session.Duration,
		session.StartTime,
		session.EndTime,
		session.Completed,
	).Scan(&session.SessionID, &session.StartTime)
}

// Update updates an existing focus session keyed by ID. Last write wins.
func (r *FocusSessionRepository) Update(ctx context.Context, session *models.FocusSession) error {
	query := `
		UPDATE focus_sessions
		SET duration = $1, end_time = $2, completed = $3
		WHERE session_id = $4
	`

	_, err := r.db.Exec(ctx, query,
		session.Duration,
		session.EndTime,
		session.Completed,
		session.SessionID,
	)
	return err
}

// Delete removes a focus session by ID and reports whether a row was affected
func (r *FocusSessionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM focus_sessions WHERE session_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
