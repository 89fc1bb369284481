package service

import (
	"context"
	"fmt"

	"github.com/projectdesk/projectdesk/internal/models"
)

// TaskRepository defines the persistence operations required by the task
// service.
type TaskRepository interface {
	// ListTasks fetches a project's tasks for the given owner.
	ListTasks(ctx context.Context, ownerID, projectID string) ([]models.Task, error)
	// CreateTask stores a task and returns it with generated id and
	// timestamps.
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	// UpdateTask overwrites a task matched by (id, owner) and returns the
	// updated record; models.ErrNotFound when no row matches.
	UpdateTask(ctx context.Context, ownerID, id, title, description, deadline string) (*models.Task, error)
	// DeleteTask removes a task; absent ids are not an error.
	DeleteTask(ctx context.Context, ownerID, id string) error
}

// TaskService implements task CRUD scoped to an owner and a project.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService constructs a new TaskService using the provided repository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the project's tasks. The result is never nil.
func (s *TaskService) List(ctx context.Context, ownerID, projectID string) ([]models.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Create stores a new task. The title is required; deadline stays free text.
func (s *TaskService) Create(ctx context.Context, ownerID, projectID, title, description, deadline string) (models.Task, error) {
	if title == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	return s.repo.CreateTask(ctx, models.Task{
		OwnerID:     ownerID,
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Deadline:    deadline,
	})
}

// Update overwrites a task's title, description and deadline. The task is
// matched by (id, owner); the project id in the request path plays no part.
func (s *TaskService) Update(ctx context.Context, ownerID, id, title, description, deadline string) (*models.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	return s.repo.UpdateTask(ctx, ownerID, id, title, description, deadline)
}

// Delete removes a task. Succeeds even when nothing matched.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteTask(ctx, ownerID, id)
}
