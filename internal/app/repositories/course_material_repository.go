package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

const courseMaterialColumns = `material_id, course_id, instructor_id, material_title,
	       material_type, file_path, link_url, description, week_number, topic,
	       upload_date, file_size, download_count, is_active`

// CourseMaterialRepository handles database operations for course materials.
// Reads only return active rows; Delete deactivates instead of removing.
type CourseMaterialRepository struct {
	db *pgxpool.Pool
}

// NewCourseMaterialRepository creates a new course material repository
func NewCourseMaterialRepository(db *pgxpool.Pool) *CourseMaterialRepository {
	return &CourseMaterialRepository{db: db}
}

func scanCourseMaterial(row pgx.Row, m *models.CourseMaterial) error {
	return row.Scan(
		&m.MaterialID,
		&m.CourseID,
		&m.InstructorID,
		&m.MaterialTitle,
		&m.MaterialType,
		&m.FilePath,
		&m.LinkURL,
		&m.Description,
		&m.WeekNumber,
		&m.Topic,
		&m.UploadDate,
		&m.FileSize,
		&m.DownloadCount,
		&m.IsActive,
	)
}

func scanCourseMaterials(rows pgx.Rows) ([]*models.CourseMaterial, error) {
	defer rows.Close()

	var materials []*models.CourseMaterial
	for rows.Next() {
		var m models.CourseMaterial
		if err := scanCourseMaterial(rows, &m); err != nil {
			return nil, err
		}
		materials = append(materials, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// GetAll retrieves all active materials, newest first
func (r *CourseMaterialRepository) GetAll(ctx context.Context) ([]*models.CourseMaterial, error) {
	query := `
		SELECT ` + courseMaterialColumns + `
		FROM course_materials
		WHERE is_active = TRUE
		ORDER BY upload_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanCourseMaterials(rows)
}

// GetByID retrieves a material by ID regardless of active state. Returns
// (nil, nil) when no row matches.
func (r *CourseMaterialRepository) GetByID(ctx context.Context, id int64) (*models.CourseMaterial, error) {
	query := `
		SELECT ` + courseMaterialColumns + `
		FROM course_materials
		WHERE material_id = $1
	`

	var m models.CourseMaterial
	err := scanCourseMaterial(r.db.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course material: %w", err)
	}

	return &m, nil
}

// GetByCourse retrieves a course's active materials ordered by week, then
// newest first within a week.
func (r *CourseMaterialRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.CourseMaterial, error) {
	query := `
		SELECT ` + courseMaterialColumns + `
		FROM course_materials
		WHERE course_id = $1 AND is_active = TRUE
		ORDER BY week_number ASC, upload_date DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	return scanCourseMaterials(rows)
}

// GetByCourseAndWeek retrieves a course's active materials for one week
func (r *CourseMaterialRepository) GetByCourseAndWeek(ctx context.Context, courseID int64, week int) ([]*models.CourseMaterial, error) {
	query := `
		SELECT ` + courseMaterialColumns + `
		FROM course_materials
		WHERE course_id = $1 AND week_number = $2 AND is_active = TRUE
		ORDER BY upload_date DESC
	`

	rows, err := r.db.Query(ctx, query, courseID, week)
	if err != nil {
		return nil, err
	}
	return scanCourseMaterials(rows)
}

// GetByInstructor retrieves an instructor's active materials, newest first
func (r *CourseMaterialRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.CourseMaterial, error) {
	query := `
		SELECT ` + courseMaterialColumns + `
		FROM course_materials
		WHERE instructor_id = $1 AND is_active = TRUE
		ORDER BY upload_date DESC
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	return scanCourseMaterials(rows)
}

// Create inserts a new material and assigns the generated ID and upload
// date onto the input.
func (r *CourseMaterialRepository) Create(ctx context.Context, m *models.CourseMaterial) error {
	query := `
		INSERT INTO course_materials (course_id, instructor_id, material_title,
			material_type, file_path, link_url, description, week_number, topic,
			upload_date, file_size, download_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()), $11, $12, $13)
		RETURNING material_id, upload_date
	`

	return r.db.QueryRow(ctx, query,
		m.CourseID,
		m.InstructorID,
		m.MaterialTitle,
		m.MaterialType,
		m.FilePath,
		m.LinkURL,
		m.Description,
		m.WeekNumber,
		m.Topic,
		m.UploadDate,
		m.FileSize,
		m.DownloadCount,
		m.IsActive,
	).Scan(&m.MaterialID, &m.UploadDate)
}

// Update updates an existing material keyed by ID. Last write wins.
func (r *CourseMaterialRepository) Update(ctx context.Context, m *models.CourseMaterial) error {
	query := `
		UPDATE course_materials
		SET material_title = $1, material_type = $2, file_path = $3,
		    link_url = $4, description = $5, week_number = $6, topic = $7
		WHERE material_id = $8
	`

	_, err := r.db.Exec(ctx, query,
		m.MaterialTitle,
		m.MaterialType,
		m.FilePath,
		m.LinkURL,
		m.Description,
		m.WeekNumber,
		m.Topic,
		m.MaterialID,
	)
	return err
}

// Delete deactivates a material and reports whether a row was affected.
// The row and its file stay in place for audit.
func (r *CourseMaterialRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE course_materials SET is_active = FALSE WHERE material_id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// IncrementDownloadCount bumps the download counter for a material
func (r *CourseMaterialRepository) IncrementDownloadCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE course_materials SET download_count = download_count + 1 WHERE material_id = $1`, id)
	return err
}
