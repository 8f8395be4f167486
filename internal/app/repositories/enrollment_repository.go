package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.EnrollmentID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Status,
		&enrollment.Grade,
		&enrollment.Semester,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, status, grade, semester
		FROM enrollments
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment by ID. Returns (nil, nil) when no row matches.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, status, grade, semester
		FROM enrollments
		WHERE enrollment_id = $1
	`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetByStudent retrieves all enrollments for a student
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, status, grade, semester
		FROM enrollments
		WHERE student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByCourse retrieves all enrollments for a course
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, status, grade, semester
		FROM enrollments
		WHERE course_id = $1
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Create inserts a new enrollment and assigns the generated ID onto the input
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, status, grade, semester)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING enrollment_id
	`

	return r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.Status,
		enrollment.Grade,
		enrollment.Semester,
	).Scan(&enrollment.EnrollmentID)
}

// Update updates status, grade and semester keyed by ID. Last write wins.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET status = $1, grade = $2, semester = $3
		WHERE enrollment_id = $4
	`

	_, err := r.db.Exec(ctx, query,
		enrollment.Status,
		enrollment.Grade,
		enrollment.Semester,
		enrollment.EnrollmentID,
	)
	return err
}

// Delete removes an enrollment by ID and reports whether a row was affected
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
