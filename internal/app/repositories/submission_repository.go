package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

const submissionColumns = `submission_id, assignment_id, student_id, file_path,
	file_name, submitted_at, status, grade, feedback, graded_by, graded_at,
	submission_text, review_requested, review_comment, is_ai_graded`

// SubmissionRepository handles database operations for assignment submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func scanSubmission(row pgx.Row, s *models.Submission) error {
	return row.Scan(
		&s.SubmissionID,
		&s.AssignmentID,
		&s.StudentID,
		&s.FilePath,
		&s.FileName,
		&s.SubmittedAt,
		&s.Status,
		&s.Grade,
		&s.Feedback,
		&s.GradedBy,
		&s.GradedAt,
		&s.SubmissionText,
		&s.ReviewRequested,
		&s.ReviewComment,
		&s.IsAIGraded,
	)
}

func scanSubmissions(rows pgx.Rows) ([]*models.Submission, error) {
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		var s models.Submission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, err
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// GetAll retrieves all submissions, newest first
func (r *SubmissionRepository) GetAll(ctx context.Context) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

// GetByID retrieves a submission by ID. Returns (nil, nil) when no row matches.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	var s models.Submission
	err := scanSubmission(
		r.db.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE submission_id = $1`, id),
		&s,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &s, nil
}

// GetByAssignment retrieves all submissions for an assignment, newest first
func (r *SubmissionRepository) GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE assignment_id = $1 ORDER BY submitted_at DESC`,
		assignmentID,
	)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

// GetByStudent retrieves all submissions by a student, newest first
func (r *SubmissionRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE student_id = $1 ORDER BY submitted_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

// GetByStudentAndAssignment retrieves the student's submission for one
// assignment. Returns (nil, nil) when the student has not submitted.
func (r *SubmissionRepository) GetByStudentAndAssignment(ctx context.Context, studentID, assignmentID int64) (*models.Submission, error) {
	var s models.Submission
	err := scanSubmission(
		r.db.QueryRow(ctx,
			`SELECT `+submissionColumns+` FROM submissions WHERE student_id = $1 AND assignment_id = $2`,
			studentID, assignmentID,
		),
		&s,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &s, nil
}

// Create inserts a new submission and assigns the generated ID onto the input
func (r *SubmissionRepository) Create(ctx context.Context, s *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, file_path, file_name,
		                         submitted_at, status, grade, feedback, graded_by,
		                         graded_at, submission_text, review_requested,
		                         review_comment, is_ai_graded)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING submission_id, submitted_at
	`

	return r.db.QueryRow(ctx, query,
		s.AssignmentID,
		s.StudentID,
		s.FilePath,
		s.FileName,
		s.SubmittedAt,
		s.Status,
		s.Grade,
		s.Feedback,
		s.GradedBy,
		s.GradedAt,
		s.SubmissionText,
		s.ReviewRequested,
		s.ReviewComment,
		s.IsAIGraded,
	).Scan(&s.SubmissionID, &s.SubmittedAt)
}

// Update updates an existing submission keyed by ID. Last write wins.
func (r *SubmissionRepository) Update(ctx context.Context, s *models.Submission) error {
	query := `
		UPDATE submissions
		SET file_path = $1, file_name = $2, status = $3, grade = $4, feedback = $5,
		    graded_by = $6, graded_at = $7, submission_text = $8,
		    review_requested = $9, review_comment = $10, is_ai_graded = $11
		WHERE submission_id = $12
	`

	_, err := r.db.Exec(ctx, query,
		s.FilePath,
		s.FileName,
		s.Status,
		s.Grade,
		s.Feedback,
		s.GradedBy,
		s.GradedAt,
		s.SubmissionText,
		s.ReviewRequested,
		s.ReviewComment,
		s.IsAIGraded,
		s.SubmissionID,
	)
	return err
}

// Delete removes a submission by ID and reports whether a row was affected
func (r *SubmissionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE submission_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
