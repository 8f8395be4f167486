package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// TeachingAssistantRepository handles database operations for TA records
type TeachingAssistantRepository struct {
	db *pgxpool.Pool
}

// NewTeachingAssistantRepository creates a new teaching assistant repository
func NewTeachingAssistantRepository(db *pgxpool.Pool) *TeachingAssistantRepository {
	return &TeachingAssistantRepository{db: db}
}

// GetAll retrieves all teaching assistants
func (r *TeachingAssistantRepository) GetAll(ctx context.Context) ([]*models.TeachingAssistant, error) {
	query := `
		SELECT ta_id, user_id, assigned_course_id, role, hours_per_week
		FROM teaching_assistants
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tas []*models.TeachingAssistant
	for rows.Next() {
		var ta models.TeachingAssistant
		if err := rows.Scan(
			&ta.TAID,
			&ta.UserID,
			&ta.AssignedCourseID,
			&ta.Role,
			&ta.HoursPerWeek,
		); err != nil {
			return nil, err
		}
		tas = append(tas, &ta)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tas, nil
}

// GetByID retrieves a TA by ID. Returns (nil, nil) when no row matches.
func (r *TeachingAssistantRepository) GetByID(ctx context.Context, id int64) (*models.TeachingAssistant, error) {
	query := `
		SELECT ta_id, user_id, assigned_course_id, role, hours_per_week
		FROM teaching_assistants
		WHERE ta_id = $1
	`

	var ta models.TeachingAssistant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ta.TAID,
		&ta.UserID,
		&ta.AssignedCourseID,
		&ta.Role,
		&ta.HoursPerWeek,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teaching assistant: %w", err)
	}

	return &ta, nil
}

// GetByUserID retrieves the TA row for a user account, if any.
// The role resolver probes this after instructors.
func (r *TeachingAssistantRepository) GetByUserID(ctx context.Context, userID int64) (*models.TeachingAssistant, error) {
	query := `
		SELECT ta_id, user_id, assigned_course_id, role, hours_per_week
		FROM teaching_assistants
		WHERE user_id = $1
	`

	var ta models.TeachingAssistant
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&ta.TAID,
		&ta.UserID,
		&ta.AssignedCourseID,
		&ta.Role,
		&ta.HoursPerWeek,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teaching assistant by user: %w", err)
	}

	return &ta, nil
}

// GetByCourse retrieves all TAs assigned to a course
func (r *TeachingAssistantRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.TeachingAssistant, error) {
	query := `
		SELECT ta_id, user_id, assigned_course_id, role, hours_per_week
		FROM teaching_assistants
		WHERE assigned_course_id = $1
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tas []*models.TeachingAssistant
	for rows.Next() {
		var ta models.TeachingAssistant
		if err := rows.Scan(
			&ta.TAID,
			&ta.UserID,
			&ta.AssignedCourseID,
			&ta.Role,
			&ta.HoursPerWeek,
		); err != nil {
			return nil, err
		}
		tas = append(tas, &ta)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tas, nil
}

// Create inserts a new TA and assigns the generated ID onto the input
func (r *TeachingAssistantRepository) Create(ctx context.Context, ta *models.TeachingAssistant) error {
	query := `
		INSERT INTO teaching_assistants (user_id, assigned_course_id, role, hours_per_week)
		VALUES ($1, $2, $3, $4)
		RETURNING ta_id
	`

	return r.db.QueryRow(ctx, query,
		ta.UserID,
		ta.AssignedCourseID,
		ta.Role,
		ta.HoursPerWeek,
	).Scan(&ta.TAID)
}

// Update updates an existing TA keyed by ID. Last write wins.
func (r *TeachingAssistantRepository) Update(ctx context.Context, ta *models.TeachingAssistant) error {
	query := `
		UPDATE teaching_assistants
		SET assigned_course_id = $1, role = $2, hours_per_week = $3
		WHERE ta_id = $4
	`

	_, err := r.db.Exec(ctx, query,
		ta.AssignedCourseID,
		ta.Role,
		ta.HoursPerWeek,
		ta.TAID,
	)
	return err
}

// Delete removes a TA by ID and reports whether a row was affected
func (r *TeachingAssistantRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teaching_assistants WHERE ta_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
