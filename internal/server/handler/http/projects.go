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

// ProjectService defines the interface for project operations required by
// the HTTP handlers.
type ProjectService interface {
	Create(ctx context.Context, ownerID, name, description string, custom map[string]any, specifications []models.Specification) (models.Project, error)
	Get(ctx context.Context, ownerID, id string) (*models.Project, error)
	List(ctx context.Context, ownerID string) ([]models.Project, error)
	Update(ctx context.Context, ownerID, id, name, description string, custom map[string]any, specifications []models.Specification) error
	Delete(ctx context.Context, ownerID, id string) error
}

// ProjectsHandler handles HTTP requests for project CRUD.
type ProjectsHandler struct {
	// ProjectService performs the underlying project operations.
	ProjectService ProjectService
}

// ProjectRequest represents the JSON payload for creating or updating a
// project. The custom map is filtered against the owner's project-field
// keys before it is stored; specifications are stored as given.
type ProjectRequest struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Custom         map[string]any         `json:"custom"`
	Specifications []models.Specification `json:"specifications"`
}

// List responds with all projects of the authenticated owner.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	projects, err := h.ProjectService.List(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "failed to list projects", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projects)
}

// Create stores a new project and responds with the persisted record,
// custom map already filtered.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	project, err := h.ProjectService.Create(r.Context(), ownerID, req.Name, req.Description, req.Custom, req.Specifications)
	if err != nil {
		http.Error(w, "failed to create project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(project)
}

// Get responds with a single project, or 404 when it does not exist or
// belongs to another owner.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "projectID")

	project, err := h.ProjectService.Get(r.Context(), ownerID, id)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to get project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(project)
}

// Update overwrites the project and responds 200 with an empty body. The
// custom map is re-filtered on every update, so values of since-deleted
// field definitions are dropped here.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "projectID")

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err := h.ProjectService.Update(r.Context(), ownerID, id, req.Name, req.Description, req.Custom, req.Specifications)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to update project", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete removes the project and responds 204, also when nothing matched.
// Tasks of the project are not cascaded.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "projectID")

	if err := h.ProjectService.Delete(r.Context(), ownerID, id); err != nil {
		http.Error(w, "failed to delete project", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
