package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/projectdesk/projectdesk/internal/middleware"
	"github.com/projectdesk/projectdesk/internal/models"
)

// TaskService defines the interface for task operations required by the
// HTTP handlers.
type TaskService interface {
	List(ctx context.Context, ownerID, projectID string) ([]models.Task, error)
	Create(ctx context.Context, ownerID, projectID, title, description, deadline string) (models.Task, error)
	Update(ctx context.Context, ownerID, id, title, description, deadline string) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// TasksHandler handles HTTP requests for task CRUD within a project.
type TasksHandler struct {
	// TaskService performs the underlying task operations.
	TaskService TaskService
}

// TaskRequest represents the JSON payload for creating or updating a task.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Deadline is free text; the server does not parse it.
	Deadline string `json:"deadline"`
}

// List responds with the project's tasks for the authenticated owner.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	tasks, err := h.TaskService.List(r.Context(), ownerID, projectID)
	if err != nil {
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tasks)
}

// Create stores a new task and responds with the persisted record. A
// missing title responds 400.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	task, err := h.TaskService.Create(r.Context(), ownerID, projectID, req.Title, req.Description, req.Deadline)
	if errors.Is(err, models.ErrValidation) {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "failed to create task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(task)
}

// Update overwrites a task and responds with the updated record. The task
// is matched by (owner, taskId); a miss responds 404.
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	task, err := h.TaskService.Update(r.Context(), ownerID, taskID, req.Title, req.Description, req.Deadline)
	if errors.Is(err, models.ErrValidation) {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to update task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(task)
}

// Delete removes a task and responds {"success":true}, also when nothing
// matched. The client's "complete" action calls this endpoint.
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	if err := h.TaskService.Delete(r.Context(), ownerID, taskID); err != nil {
		http.Error(w, "failed to delete task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
