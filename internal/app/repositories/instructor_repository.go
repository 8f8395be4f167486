package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// InstructorRepository handles database operations for instructor records
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// GetAll retrieves all instructors
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	query := `
		SELECT instructor_id, user_id, department, office, email
		FROM instructors
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(
			&instructor.InstructorID,
			&instructor.UserID,
			&instructor.Department,
			&instructor.Office,
			&instructor.Email,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// GetByID retrieves an instructor by ID. Returns (nil, nil) when no row matches.
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT instructor_id, user_id, department, office, email
		FROM instructors
		WHERE instructor_id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.InstructorID,
		&instructor.UserID,
		&instructor.Department,
		&instructor.Office,
		&instructor.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return &instructor, nil
}

// GetByUserID retrieves the instructor row for a user account, if any.
// The role resolver probes this first.
func (r *InstructorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error) {
	query := `
		SELECT instructor_id, user_id, department, office, email
		FROM instructors
		WHERE user_id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&instructor.InstructorID,
		&instructor.UserID,
		&instructor.Department,
		&instructor.Office,
		&instructor.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving instructor by user: %w", err)
	}

	return &instructor, nil
}

// Create inserts a new instructor and assigns the generated ID onto the input
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (user_id, department, office, email)
		VALUES ($1, $2, $3, $4)
		RETURNING instructor_id
	`

	return r.db.QueryRow(ctx, query,
		instructor.UserID,
		instructor.Department,
		instructor.Office,
		instructor.Email,
	).Scan(&instructor.InstructorID)
}

// Update updates an existing instructor keyed by ID. Last write wins.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET department = $1, office = $2, email = $3
		WHERE instructor_id = $4
	`

	_, err := r.db.Exec(ctx, query,
		instructor.Department,
		instructor.Office,
		instructor.Email,
		instructor.InstructorID,
	)
	return err
}

// Delete removes an instructor by ID and reports whether a row was affected
func (r *InstructorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE instructor_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
