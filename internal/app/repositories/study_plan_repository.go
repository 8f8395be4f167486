package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// StudyPlanRepository handles database operations for study plans
type StudyPlanRepository struct {
	db *pgxpool.Pool
}

// NewStudyPlanRepository creates a new study plan repository
func NewStudyPlanRepository(db *pgxpool.Pool) *StudyPlanRepository {
	return &StudyPlanRepository{db: db}
}

func scanStudyPlans(rows pgx.Rows) ([]*models.StudyPlan, error) {
	defer rows.Close()

	var plans []*models.StudyPlan
	for rows.Next() {
		var plan models.StudyPlan
		if err := rows.Scan(
			&plan.PlanID,
			&plan.StudentID,
			&plan.CourseID,
			&plan.PlanName,
			&plan.StartDate,
			&plan.EndDate,
			&plan.Status,
			&plan.CompletionPercentage,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// GetAll retrieves all study plans
func (r *StudyPlanRepository) GetAll(ctx context.Context) ([]*models.StudyPlan, error) {
	query := `
		SELECT plan_id, student_id, course_id, plan_name, start_date, end_date,
		       status, completion_percentage, created_at
		FROM study_plans
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanStudyPlans(rows)
}

// GetByID retrieves a study plan by ID. Returns (nil, nil) when no row matches.
func (r *StudyPlanRepository) GetByID(ctx context.Context, id int64) (*models.StudyPlan, error) {
	query := `
		SELECT plan_id, student_id, course_id, plan_name, start_date, end_date,
		       status, completion_percentage, created_at
		FROM study_plans
		WHERE plan_id = $1
	`

	var plan models.StudyPlan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.PlanID,
		&plan.StudentID,
		&plan.CourseID,
		&plan.PlanName,
		&plan.StartDate,
		&plan.EndDate,
		&plan.Status,
		&plan.CompletionPercentage,
		&plan.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving study plan: %w", err)
	}

	return &plan, nil
}

// GetByStudent retrieves a student's study plans, newest first
func (r *StudyPlanRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.StudyPlan, error) {
	query := `
		SELECT plan_id, student_id, course_id, plan_name, start_date, end_date,
		       status, completion_percentage, created_at
		FROM study_plans
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanStudyPlans(rows)
}

// Create inserts a new study plan and assigns the generated ID onto the input
func (r *StudyPlanRepository) Create(ctx context.Context, plan *models.StudyPlan) error {
	query := `
		INSERT INTO study_plans (student_id, course_id, plan_name, start_date, end_date,
		                         status, completion_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING plan_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		plan.StudentID,
		plan.CourseID,
		plan.PlanName,
		plan.StartDate,
		plan.EndDate,
		plan.Status,
		plan.CompletionPercentage,
	).Scan(&plan.PlanID, &plan.CreatedAt)
}

// Update updates an existing study plan keyed by ID. Last write wins.
func (r *StudyPlanRepository) Update(ctx context.Context, plan *models.StudyPlan) error {
	query := `
		UPDATE study_plans
		SET plan_name = $1, start_date = $2, end_date = $3, status = $4,
		    completion_percentage = $5
		WHERE plan_id = $6
	`

	_, err := r.db.Exec(ctx, query,
		plan.PlanName,
		plan.StartDate,
		plan.EndDate,
		plan.Status,
		plan.CompletionPercentage,
		plan.PlanID,
	)
	return err
}

// Delete removes a study plan by ID and reports whether a row was affected.
// Tasks under the plan go with it via the foreign key cascade.
func (r *StudyPlanRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM study_plans WHERE plan_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
