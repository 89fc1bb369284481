package service

import (
	"context"
	"fmt"

	"github.com/projectdesk/projectdesk/internal/models"
)

// FieldRepository defines the persistence operations required by the field
// registry service.
type FieldRepository interface {
	// ListFields returns an owner's field definitions for one schema,
	// in insertion order.
	ListFields(ctx context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error)
	// CreateField creates a definition and returns it. For the project
	// schema a key collision returns models.ErrDuplicateKey.
	CreateField(ctx context.Context, ownerID string, schema models.FieldSchema, name, key string, fieldType models.FieldType) (models.FieldDef, error)
	// DeleteField removes a definition by id; absent ids are not an error.
	DeleteField(ctx context.Context, ownerID string, schema models.FieldSchema, id string) error
}

// FieldService implements the field registry on top of a FieldRepository.
type FieldService struct {
	repo FieldRepository
}

// NewFieldService constructs a new FieldService using the provided repository.
func NewFieldService(repo FieldRepository) *FieldService {
	return &FieldService{repo: repo}
}

// ListFields returns the owner's definitions for the given schema. The
// result is never nil.
func (s *FieldService) ListFields(ctx context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error) {
	fields, err := s.repo.ListFields(ctx, ownerID, schema)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []models.FieldDef{}
	}
	return fields, nil
}

// CreateField validates and stores a new definition. Project fields with an
// empty type default to string; specification fields must declare one.
// Definitions are immutable once created — there is no update operation.
func (s *FieldService) CreateField(ctx context.Context, ownerID string, schema models.FieldSchema, name, key string, fieldType models.FieldType) (models.FieldDef, error) {
	if name == "" || key == "" {
		return models.FieldDef{}, fmt.Errorf("%w: name and key are required", models.ErrValidation)
	}
	if fieldType == "" && schema == models.SchemaProject {
		fieldType = models.FieldString
	}
	if !fieldType.Valid() {
		return models.FieldDef{}, fmt.Errorf("%w: unknown field type %q", models.ErrValidation, fieldType)
	}
	return s.repo.CreateField(ctx, ownerID, schema, name, key, fieldType)
}

// DeleteField removes a definition. It is idempotent and never strips the
// key from documents that already carry it.
func (s *FieldService) DeleteField(ctx context.Context, ownerID string, schema models.FieldSchema, id string) error {
	return s.repo.DeleteField(ctx, ownerID, schema, id)
}
