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

// FieldService defines the interface for field-registry operations required
// by the HTTP handlers.
type FieldService interface {
	ListFields(ctx context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error)
	CreateField(ctx context.Context, ownerID string, schema models.FieldSchema, name, key string, fieldType models.FieldType) (models.FieldDef, error)
	DeleteField(ctx context.Context, ownerID string, schema models.FieldSchema, id string) error
}

// FieldsHandler serves one field registry. The same handler type backs both
// the project-field and the specification-field routes, bound to different
// schemas.
type FieldsHandler struct {
	// FieldService performs the underlying registry operations.
	FieldService FieldService
	// Schema selects which registry this handler instance serves.
	Schema models.FieldSchema
}

// CreateFieldRequest represents the JSON payload for creating a definition.
type CreateFieldRequest struct {
	Name string           `json:"name"`
	Key  string           `json:"key"`
	Type models.FieldType `json:"type"`
}

// List responds with the owner's field definitions in insertion order.
func (h *FieldsHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	fields, err := h.FieldService.ListFields(r.Context(), ownerID, h.Schema)
	if err != nil {
		http.Error(w, "failed to list fields", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fields)
}

// Create stores a new definition and responds 201 with it. Invalid payloads
// and duplicate project-field keys respond 400.
func (h *FieldsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())

	var req CreateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	field, err := h.FieldService.CreateField(r.Context(), ownerID, h.Schema, req.Name, req.Key, req.Type)
	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrDuplicateKey) {
		http.Error(w, "failed to create field", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(field)
}

// Delete removes a definition by id and responds 204 whether or not it
// existed.
func (h *FieldsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.FieldService.DeleteField(r.Context(), ownerID, h.Schema, id); err != nil {
		http.Error(w, "failed to delete field", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
