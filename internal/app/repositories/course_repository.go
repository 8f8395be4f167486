package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, instructor_id, schedule
		FROM courses
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.CourseID,
			&course.CourseName,
			&course.Credits,
			&course.InstructorID,
			&course.Schedule,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID. Returns (nil, nil) when no row matches.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, instructor_id, schedule
		FROM courses
		WHERE course_id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.CourseID,
		&course.CourseName,
		&course.Credits,
		&course.InstructorID,
		&course.Schedule,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByInstructor retrieves all courses taught by an instructor
func (r *CourseRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, instructor_id, schedule
		FROM courses
		WHERE instructor_id = $1
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.CourseID,
			&course.CourseName,
			&course.Credits,
			&course.InstructorID,
			&course.Schedule,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course and assigns the generated ID onto the input
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_name, credits, instructor_id, schedule)
		VALUES ($1, $2, $3, $4)
		RETURNING course_id
	`

	return r.db.QueryRow(ctx, query,
		course.CourseName,
		course.Credits,
		course.InstructorID,
		course.Schedule,
	).Scan(&course.CourseID)
}

// Update updates an existing course keyed by ID. Last write wins.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_name = $1, credits = $2, instructor_id = $3, schedule = $4
		WHERE course_id = $5
	`

	_, err := r.db.Exec(ctx, query,
		course.CourseName,
		course.Credits,
		course.InstructorID,
		course.Schedule,
		course.CourseID,
	)
	return err
}

// Delete removes a course by ID and reports whether a row was affected
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
