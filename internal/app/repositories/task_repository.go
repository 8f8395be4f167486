package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// TaskRepository handles database operations for personal tasks
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// GetAll retrieves all tasks ordered by due date
func (r *TaskRepository) GetAll(ctx context.Context) ([]*models.Task, error) {
	query := `
		SELECT task_id, student_id, task_title, due_date, priority, status
		FROM tasks
		ORDER BY due_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.TaskID,
			&task.StudentID,
			&task.TaskTitle,
			&task.DueDate,
			&task.Priority,
			&task.Status,
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

// GetByID retrieves a task by ID. Returns (nil, nil) when no row matches.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `
		SELECT task_id, student_id, task_title, due_date, priority, status
		FROM tasks
		WHERE task_id = $1
	`

	var task models.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.TaskID,
		&task.StudentID,
		&task.TaskTitle,
		&task.DueDate,
		&task.Priority,
		&task.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving task: %w", err)
	}

	return &task, nil
}

// GetByStudent retrieves all tasks for a student ordered by due date
func (r *TaskRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Task, error) {
	query := `
		SELECT task_id, student_id, task_title, due_date, priority, status
		FROM tasks
		WHERE student_id = $1
		ORDER BY due_date
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.TaskID,
			&task.StudentID,
			&task.TaskTitle,
			&task.DueDate,
			&task.Priority,
			&task.Status,
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

// Create inserts a new task and assigns the generated ID onto the input
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (student_id, task_title, due_date, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING task_id
	`

	return r.db.QueryRow(ctx, query,
		task.StudentID,
		task.TaskTitle,
		task.DueDate,
		task.Priority,
		task.Status,
	).Scan(&task.TaskID)
}

// Update updates an existing task keyed by ID. Last write wins.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET task_title = $1, due_date = $2, priority = $3, status = $4
		WHERE task_id = $5
	`

	_, err := r.db.Exec(ctx, query,
		task.TaskTitle,
		task.DueDate,
		task.Priority,
		task.Status,
		task.TaskID,
	)
	return err
}

// Delete removes a task by ID and reports whether a row was affected
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
