package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT student_id, user_id, department, year_level, gpa
		FROM students
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.StudentID,
			&student.UserID,
			&student.Department,
			&student.YearLevel,
			&student.GPA,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID. Returns (nil, nil) when no row matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, user_id, department, year_level, gpa
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.StudentID,
		&student.UserID,
		&student.Department,
		&student.YearLevel,
		&student.GPA,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByUserID retrieves the student row for a user account, if any.
// The role resolver probes this.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT student_id, user_id, department, year_level, gpa
		FROM students
		WHERE user_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&student.StudentID,
		&student.UserID,
		&student.Department,
		&student.YearLevel,
		&student.GPA,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	return &student, nil
}

// Create inserts a new student and assigns the generated ID onto the input
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, department, year_level, gpa)
		VALUES ($1, $2, $3, $4)
		RETURNING student_id
	`

	return r.db.QueryRow(ctx, query,
		student.UserID,
		student.Department,
		student.YearLevel,
		student.GPA,
	).Scan(&student.StudentID)
}

// Update updates an existing student keyed by ID. Last write wins.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET department = $1, year_level = $2, gpa = $3
		WHERE student_id = $4
	`

	_, err := r.db.Exec(ctx, query,
		student.Department,
		student.YearLevel,
		student.GPA,
		student.StudentID,
	)
	return err
}

// Delete removes a student by ID and reports whether a row was affected
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
