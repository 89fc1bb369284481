package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/projectdesk/projectdesk/internal/models"
)

// PostgresTaskRepository implements task persistence against a PostgreSQL
// database.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the
// provided *sql.DB.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// ListTasks fetches all tasks of a project for the given owner, oldest first.
func (r *PostgresTaskRepository) ListTasks(ctx context.Context, ownerID, projectID string) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, project_id, title, description, deadline, created_at, updated_at
		  FROM tasks WHERE project_id = $1 AND owner_id = $2 ORDER BY created_at
	`, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.ProjectID, &t.Title, &t.Description, &t.Deadline, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a task with a generated identifier and returns it.
func (r *PostgresTaskRepository) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t.ID = uuid.NewString()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (id, owner_id, project_id, title, description, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.OwnerID, t.ProjectID, t.Title, t.Description, t.Deadline, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// UpdateTask overwrites a task's title, description and deadline and returns
// the updated record. Matching is by (id, owner) only; the project id is not
// part of the lookup. Returns models.ErrNotFound when no row matches.
func (r *PostgresTaskRepository) UpdateTask(ctx context.Context, ownerID, id, title, description, deadline string) (*models.Task, error) {
	var t models.Task
	err := r.DB.QueryRowContext(ctx, `
		UPDATE tasks
		   SET title = $1, description = $2, deadline = $3, updated_at = now()
		 WHERE id = $4 AND owner_id = $5
		RETURNING id, owner_id, project_id, title, description, deadline, created_at, updated_at
	`, title, description, deadline, id, ownerID).
		Scan(&t.ID, &t.OwnerID, &t.ProjectID, &t.Title, &t.Description, &t.Deadline, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &t, nil
}

// DeleteTask removes a task by ID for the given owner. Deleting an absent
// task is not an error.
func (r *PostgresTaskRepository) DeleteTask(ctx context.Context, ownerID, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM tasks WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
