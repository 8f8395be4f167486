package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// ScheduleRepository handles database operations for saved schedules
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetAll retrieves all schedules
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	query := `
		SELECT schedule_id, student_id, course_list, optimized
		FROM schedules
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ScheduleID,
			&schedule.StudentID,
			&schedule.CourseList,
			&schedule.Optimized,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetByID retrieves a schedule by ID. Returns (nil, nil) when no row matches.
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := `
		SELECT schedule_id, student_id, course_list, optimized
		FROM schedules
		WHERE schedule_id = $1
	`

	var schedule models.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ScheduleID,
		&schedule.StudentID,
		&schedule.CourseList,
		&schedule.Optimized,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	return &schedule, nil
}

// GetByStudent retrieves all schedules saved by a student
func (r *ScheduleRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Schedule, error) {
	query := `
		SELECT schedule_id, student_id, course_list, optimized
		FROM schedules
		WHERE student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ScheduleID,
			&schedule.StudentID,
			&schedule.CourseList,
			&schedule.Optimized,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Create inserts a new schedule and assigns the generated ID onto the input
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (student_id, course_list, optimized)
		VALUES ($1, $2, $3)
		RETURNING schedule_id
	`

	return r.db.QueryRow(ctx, query,
		schedule.StudentID,
		schedule.CourseList,
		schedule.Optimized,
	).Scan(&schedule.ScheduleID)
}

// Update updates an existing schedule keyed by ID. Last write wins.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	query := `
		UPDATE schedules
		SET course_list = $1, optimized = $2
		WHERE schedule_id = $3
	`

	_, err := r.db.Exec(ctx, query,
		schedule.CourseList,
		schedule.Optimized,
		schedule.ScheduleID,
	)
	return err
}

// Delete removes a schedule by ID and reports whether a row was affected
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE schedule_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
