package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// TranscriptRepository handles database operations for issued transcripts
type TranscriptRepository struct {
	db *pgxpool.Pool
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *pgxpool.Pool) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// GetAll retrieves all transcripts
func (r *TranscriptRepository) GetAll(ctx context.Context) ([]*models.Transcript, error) {
	query := `
		SELECT transcript_id, student_id, gpa, pdf_path, issue_date
		FROM transcripts
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []*models.Transcript
	for rows.Next() {
		var tr models.Transcript
		if err := rows.Scan(
			&tr.TranscriptID,
			&tr.StudentID,
			&tr.GPA,
			&tr.PDFPath,
			&tr.IssueDate,
		); err != nil {
			return nil, err
		}
		transcripts = append(transcripts, &tr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transcripts, nil
}

// GetByID retrieves a transcript by ID. Returns (nil, nil) when no row matches.
func (r *TranscriptRepository) GetByID(ctx context.Context, id int64) (*models.Transcript, error) {
	query := `
		SELECT transcript_id, student_id, gpa, pdf_path, issue_date
		FROM transcripts
		WHERE transcript_id = $1
	`

	var tr models.Transcript
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tr.TranscriptID,
		&tr.StudentID,
		&tr.GPA,
		&tr.PDFPath,
		&tr.IssueDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving transcript: %w", err)
	}

	return &tr, nil
}

// GetByStudent retrieves all transcripts issued for a student, newest first
func (r *TranscriptRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Transcript, error) {
	query := `
		SELECT transcript_id, student_id, gpa, pdf_path, issue_date
		FROM transcripts
		WHERE student_id = $1
		ORDER BY issue_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []*models.Transcript
	for rows.Next() {
		var tr models.Transcript
		if err := rows.Scan(
			&tr.TranscriptID,
			&tr.StudentID,
			&tr.GPA,
			&tr.PDFPath,
			&tr.IssueDate,
		); err != nil {
			return nil, err
		}
		transcripts = append(transcripts, &tr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transcripts, nil
}

// Create inserts a new transcript and assigns the generated ID onto the input
func (r *TranscriptRepository) Create(ctx context.Context, tr *models.Transcript) error {
	query := `
		INSERT INTO transcripts (student_id, gpa, pdf_path, issue_date)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING transcript_id, issue_date
	`

	return r.db.QueryRow(ctx, query,
		tr.StudentID,
		tr.GPA,
		tr.PDFPath,
		tr.IssueDate,
	).Scan(&tr.TranscriptID, &tr.IssueDate)
}

// Update updates an existing transcript keyed by ID. Last write wins.
func (r *TranscriptRepository) Update(ctx context.Context, tr *models.Transcript) error {
	query := `
		UPDATE transcripts
		SET gpa = $1, pdf_path = $2
		WHERE transcript_id = $3
	`

	_, err := r.db.Exec(ctx, query,
		tr.GPA,
		tr.PDFPath,
		tr.TranscriptID,
	)
	return err
}

// Delete removes a transcript by ID and reports whether a row was affected
func (r *TranscriptRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transcripts WHERE transcript_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
