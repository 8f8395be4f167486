package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// StudyTaskRepository handles database operations for study plan tasks
type StudyTaskRepository struct {
	db *pgxpool.Pool
}

// NewStudyTaskRepository creates a new study task repository
func NewStudyTaskRepository(db *pgxpool.Pool) *StudyTaskRepository {
	return &StudyTaskRepository{db: db}
}

func scanStudyTasks(rows pgx.Rows) ([]*models.StudyTask, error) {
	defer rows.Close()

	var tasks []*models.StudyTask
	for rows.Next() {
		var task models.StudyTask
		if err := rows.Scan(
			&task.TaskID,
			&task.PlanID,
			&task.ParentTaskID,
			&task.TaskTitle,
			&task.Description,
			&task.EstimatedHours,
			&task.ActualHours,
			&task.DueDate,
			&task.Priority,
			&task.Status,
			&task.SuggestedResources,
			&task.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetAll retrieves all study tasks
func (r *StudyTaskRepository) GetAll(ctx context.Context) ([]*models.StudyTask, error) {
	query := `
		SELECT task_id, plan_id, parent_task_id, task_title, description,
		       estimated_hours, actual_hours, due_date, priority, status,
		       suggested_resources, created_at
		FROM study_tasks
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanStudyTasks(rows)
}

// GetByID retrieves a study task by ID. Returns (nil, nil) when no row matches.
func (r *StudyTaskRepository) GetByID(ctx context.Context, id int64) (*models.StudyTask, error) {
	query := `
		SELECT task_id, plan_id, parent_task_id, task_title, description,
		       estimated_hours, actual_hours, due_date, priority, status,
		       suggested_resources, created_at
		FROM study_tasks
		WHERE task_id = $1
	`

	var task models.StudyTask
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.TaskID,
		&task.PlanID,
		&task.ParentTaskID,
		&task.TaskTitle,
		&task.Description,
		&task.EstimatedHours,
		&task.ActualHours,
		&task.DueDate,
		&task.Priority,
		&task.Status,
		&task.SuggestedResources,
		&task.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving study task: %w", err)
	}

	return &task, nil
}

// GetByPlan retrieves all tasks in a plan ordered by due date
func (r *StudyTaskRepository) GetByPlan(ctx context.Context, planID int64) ([]*models.StudyTask, error) {
	query := `
		SELECT task_id, plan_id, parent_task_id, task_title, description,
		       estimated_hours, actual_hours, due_date, priority, status,
		       suggested_resources, created_at
		FROM study_tasks
		WHERE plan_id = $1
		ORDER BY due_date
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	return scanStudyTasks(rows)
}

// Create inserts a new study task and assigns the generated ID onto the input
func (r *StudyTaskRepository) Create(ctx context.Context, task *models.StudyTask) error {
	query := `
		INSERT INTO study_tasks (plan_id, parent_task_id, task_title, description,
		                         estimated_hours, actual_hours, due_date, priority,
		                         status, suggested_resources)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING task_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		task.PlanID,
		task.ParentTaskID,
		task.TaskTitle,
		task.Description,
		task.EstimatedHours,
		task.ActualHours,
		task.DueDate,
		task.Priority,
		task.Status,
		task.SuggestedResources,
	).Scan(&task.TaskID, &task.CreatedAt)
}

// Update updates an existing study task keyed by ID. Last write wins.
func (r *StudyTaskRepository) Update(ctx context.Context, task *models.StudyTask) error {
	query := `
		UPDATE study_tasks
		SET task_title = $1, description = $2, estimated_hours = $3,
		    actual_hours = $4, due_date = $5, priority = $6, status = $7,
		    suggested_resources = $8
		WHERE task_id = $9
	`

	_, err := r.db.Exec(ctx, query,
		task.TaskTitle,
		task.Description,
		task.EstimatedHours,
		task.ActualHours,
		task.DueDate,
		task.Priority,
		task.Status,
		task.SuggestedResources,
		task.TaskID,
	)
	return err
}

// Delete removes a study task by ID and reports whether a row was affected
func (r *StudyTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM study_tasks WHERE task_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
