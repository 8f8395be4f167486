package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

const slotColumns = `slot_id, course_id, course_code, section, day, start_time,
	end_time, slot_type, sub_type, academic_year, term`

// CourseScheduleSlotRepository handles database operations for imported
// timetable slots
type CourseScheduleSlotRepository struct {
	db *pgxpool.Pool
}

// NewCourseScheduleSlotRepository creates a new schedule slot repository
func NewCourseScheduleSlotRepository(db *pgxpool.Pool) *CourseScheduleSlotRepository {
	return &CourseScheduleSlotRepository{db: db}
}

func scanSlots(rows pgx.Rows) ([]*models.CourseScheduleSlot, error) {
	defer rows.Close()

	var slots []*models.CourseScheduleSlot
	for rows.Next() {
		var slot models.CourseScheduleSlot
		if err := rows.Scan(
			&slot.SlotID,
			&slot.CourseID,
			&slot.CourseCode,
			&slot.Section,
			&slot.Day,
			&slot.StartTime,
			&slot.EndTime,
			&slot.SlotType,
			&slot.SubType,
			&slot.AcademicYear,
			&slot.Term,
		); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// GetAll retrieves all schedule slots in timetable order
func (r *CourseScheduleSlotRepository) GetAll(ctx context.Context) ([]*models.CourseScheduleSlot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+slotColumns+` FROM course_schedule_slots ORDER BY course_code, section, day, start_time`)
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

// GetByID retrieves a slot by ID. Returns (nil, nil) when no row matches.
func (r *CourseScheduleSlotRepository) GetByID(ctx context.Context, id int64) (*models.CourseScheduleSlot, error) {
	var slot models.CourseScheduleSlot
	err := r.db.QueryRow(ctx,
		`SELECT `+slotColumns+` FROM course_schedule_slots WHERE slot_id = $1`, id,
	).Scan(
		&slot.SlotID,
		&slot.CourseID,
		&slot.CourseCode,
		&slot.Section,
		&slot.Day,
		&slot.StartTime,
		&slot.EndTime,
		&slot.SlotType,
		&slot.SubType,
		&slot.AcademicYear,
		&slot.Term,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving schedule slot: %w", err)
	}

	return &slot, nil
}

// GetByCourseCode retrieves a course's slots with optional year and term
// filters
func (r *CourseScheduleSlotRepository) GetByCourseCode(ctx context.Context, courseCode string, academicYear *int, term *string) ([]*models.CourseScheduleSlot, error) {
	queryBuilder := squirrel.Select(
		"slot_id", "course_id", "course_code", "section", "day", "start_time",
		"end_time", "slot_type", "sub_type", "academic_year", "term",
	).
		From("course_schedule_slots").
		Where("course_code = ?", courseCode).
		OrderBy("section", "day", "start_time").
		PlaceholderFormat(squirrel.Dollar)

	if academicYear != nil {
		queryBuilder = queryBuilder.Where("academic_year = ?", *academicYear)
	}

	if term != nil {
		queryBuilder = queryBuilder.Where("term = ?", *term)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

// Create inserts a new slot and assigns the generated ID onto the input
func (r *CourseScheduleSlotRepository) Create(ctx context.Context, slot *models.CourseScheduleSlot) error {
	query := `
		INSERT INTO course_schedule_slots (course_id, course_code, section, day,
		                                   start_time, end_time, slot_type,
		                                   sub_type, academic_year, term)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING slot_id
	`

	return r.db.QueryRow(ctx, query,
		slot.CourseID,
		slot.CourseCode,
		slot.Section,
		slot.Day,
		slot.StartTime,
		slot.EndTime,
		slot.SlotType,
		slot.SubType,
		slot.AcademicYear,
		slot.Term,
	).Scan(&slot.SlotID)
}

// CreateBatch inserts a set of slots in one transaction, assigning generated
// IDs onto the inputs. All or nothing.
func (r *CourseScheduleSlotRepository) CreateBatch(ctx context.Context, slots []*models.CourseScheduleSlot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO course_schedule_slots (course_id, course_code, section, day,
		                                   start_time, end_time, slot_type,
		                                   sub_type, academic_year, term)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING slot_id
	`

	for _, slot := range slots {
		err := tx.QueryRow(ctx, query,
			slot.CourseID,
			slot.CourseCode,
			slot.Section,
			slot.Day,
			slot.StartTime,
			slot.EndTime,
			slot.SlotType,
			slot.SubType,
			slot.AcademicYear,
			slot.Term,
		).Scan(&slot.SlotID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteByCourseCode removes all slots of a course and returns the number of
// rows removed
func (r *CourseScheduleSlotRepository) DeleteByCourseCode(ctx context.Context, courseCode string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_schedule_slots WHERE course_code = $1`, courseCode)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a slot by ID and reports whether a row was affected
func (r *CourseScheduleSlotRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_schedule_slots WHERE slot_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
