package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

const assignmentColumns = `assignment_id, course_id, title, description, instructions,
	due_date, max_score, assignment_type, allowed_file_types, max_file_size_mb,
	created_by, created_at, solution_path, solution_file_name, correct_answer,
	is_auto_graded`

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func scanAssignment(row pgx.Row, a *models.Assignment) error {
	return row.Scan(
		&a.AssignmentID,
		&a.CourseID,
		&a.Title,
		&a.Description,
		&a.Instructions,
		&a.DueDate,
		&a.MaxScore,
		&a.AssignmentType,
		&a.AllowedFileTypes,
		&a.MaxFileSizeMB,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.SolutionPath,
		&a.SolutionFileName,
		&a.CorrectAnswer,
		&a.IsAutoGraded,
	)
}

func scanAssignments(rows pgx.Rows) ([]*models.Assignment, error) {
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := scanAssignment(rows, &a); err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetAll retrieves all assignments ordered by due date
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	return scanAssignments(rows)
}

// GetByID retrieves an assignment by ID. Returns (nil, nil) when no row matches.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	var a models.Assignment
	err := scanAssignment(
		r.db.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE assignment_id = $1`, id),
		&a,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return &a, nil
}

// GetByCourse retrieves a course's assignments ordered by due date
func (r *AssignmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE course_id = $1 ORDER BY due_date`,
		courseID,
	)
	if err != nil {
		return nil, err
	}
	return scanAssignments(rows)
}

// GetByCreator retrieves assignments created by a user, newest first
func (r *AssignmentRepository) GetByCreator(ctx context.Context, userID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE created_by = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return scanAssignments(rows)
}

// Create inserts a new assignment and assigns the generated ID onto the input
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) error {
	query := `
		INSERT INTO assignments (course_id, title, description, instructions, due_date,
		                         max_score, assignment_type, allowed_file_types,
		                         max_file_size_mb, created_by, solution_path,
		                         solution_file_name, correct_answer, is_auto_graded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING assignment_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		a.CourseID,
		a.Title,
		a.Description,
		a.Instructions,
		a.DueDate,
		a.MaxScore,
		a.AssignmentType,
		a.AllowedFileTypes,
		a.MaxFileSizeMB,
		a.CreatedBy,
		a.SolutionPath,
		a.SolutionFileName,
		a.CorrectAnswer,
		a.IsAutoGraded,
	).Scan(&a.AssignmentID, &a.CreatedAt)
}

// Update updates an existing assignment keyed by ID. Last write wins.
func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, description = $2, instructions = $3, due_date = $4,
		    max_score = $5, assignment_type = $6, allowed_file_types = $7,
		    max_file_size_mb = $8, solution_path = $9, solution_file_name = $10,
		    correct_answer = $11, is_auto_graded = $12
		WHERE assignment_id = $13
	`

	_, err := r.db.Exec(ctx, query,
		a.Title,
		a.Description,
		a.Instructions,
		a.DueDate,
		a.MaxScore,
		a.AssignmentType,
		a.AllowedFileTypes,
		a.MaxFileSizeMB,
		a.SolutionPath,
		a.SolutionFileName,
		a.CorrectAnswer,
		a.IsAutoGraded,
		a.AssignmentID,
	)
	return err
}

// Delete removes an assignment by ID and reports whether a row was affected
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE assignment_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
