package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// NoteRepository handles database operations for uploaded notes
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

// GetAll retrieves all notes
func (r *NoteRepository) GetAll(ctx context.Context) ([]*models.Note, error) {
	query := `
		SELECT note_id, student_id, original_file, summary_text, upload_date
		FROM notes
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.NoteID,
			&note.StudentID,
			&note.OriginalFile,
			&note.SummaryText,
			&note.UploadDate,
		); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetByID retrieves a note by ID. Returns (nil, nil) when no row matches.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		SELECT note_id, student_id, original_file, summary_text, upload_date
		FROM notes
		WHERE note_id = $1
	`

	var note models.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&note.NoteID,
		&note.StudentID,
		&note.OriginalFile,
		&note.SummaryText,
		&note.UploadDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}

	return &note, nil
}

// GetByStudent retrieves all notes uploaded by a student
func (r *NoteRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Note, error) {
	query := `
		SELECT note_id, student_id, original_file, summary_text, upload_date
		FROM notes
		WHERE student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.NoteID,
			&note.StudentID,
			&note.OriginalFile,
			&note.SummaryText,
			&note.UploadDate,
		); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// Create inserts a new note and assigns the generated ID onto the input.
// upload_date falls back to the database default when unset.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (student_id, original_file, summary_text, upload_date)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING note_id, upload_date
	`

	return r.db.QueryRow(ctx, query,
		note.StudentID,
		note.OriginalFile,
		note.SummaryText,
		note.UploadDate,
	).Scan(&note.NoteID, &note.UploadDate)
}

// Update updates an existing note keyed by ID. Last write wins.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET original_file = $1, summary_text = $2
		WHERE note_id = $3
	`

	_, err := r.db.Exec(ctx, query,
		note.OriginalFile,
		note.SummaryText,
		note.NoteID,
	)
	return err
}

// Delete removes a note by ID and reports whether a row was affected
func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE note_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
