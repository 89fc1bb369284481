package service

import (
	"context"

	"github.com/projectdesk/projectdesk/internal/models"
)

// ProjectRepository defines the persistence operations required by the
// project service.
type ProjectRepository interface {
	// CreateProject stores a project and returns it with its generated id.
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	// GetProject fetches one project; models.ErrNotFound when absent or
	// owned by someone else.
	GetProject(ctx context.Context, ownerID, id string) (*models.Project, error)
	// ListProjects fetches all of an owner's projects.
	ListProjects(ctx context.Context, ownerID string) ([]models.Project, error)
	// UpdateProject overwrites a project; models.ErrNotFound when no row
	// matches the (id, owner) pair.
	UpdateProject(ctx context.Context, p models.Project) error
	// DeleteProject removes a project; absent ids are not an error.
	DeleteProject(ctx context.Context, ownerID, id string) error
}

// FieldLister is the slice of the field registry the project service needs
// to resolve the current allowlist.
type FieldLister interface {
	ListFields(ctx context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error)
}

// ProjectService implements project CRUD with custom-data filtering on every
// write.
type ProjectService struct {
	repo   ProjectRepository
	fields FieldLister
}

// NewProjectService constructs a new ProjectService using the provided
// repositories.
func NewProjectService(repo ProjectRepository, fields FieldLister) *ProjectService {
	return &ProjectService{repo: repo, fields: fields}
}

// allowedKeys resolves the owner's current project-field keys. The registry
// is read at call time, so a concurrent field deletion can win or lose
// against a project write.
func (s *ProjectService) allowedKeys(ctx context.Context, ownerID string) ([]string, error) {
	fields, err := s.fields.ListFields(ctx, ownerID, models.SchemaProject)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys, nil
}

// Create filters the custom map against the owner's project-field keys and
// stores the project. Specification entries are stored as given; their spec
// maps are not filtered against the specification-field registry.
func (s *ProjectService) Create(ctx context.Context, ownerID, name, description string, custom map[string]any, specifications []models.Specification) (models.Project, error) {
	keys, err := s.allowedKeys(ctx, ownerID)
	if err != nil {
		return models.Project{}, err
	}

	return s.repo.CreateProject(ctx, models.Project{
		OwnerID:        ownerID,
		Name:           name,
		Description:    description,
		Custom:         FilterCustom(keys, custom),
		Specifications: specifications,
	})
}

// Get returns one project of the owner.
func (s *ProjectService) Get(ctx context.Context, ownerID, id string) (*models.Project, error) {
	return s.repo.GetProject(ctx, ownerID, id)
}

// List returns all projects of the owner. The result is never nil.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Update overwrites the project, re-applying the filter to the submitted
// custom map. A value whose field definition was deleted since the last
// save is dropped here. Returns models.ErrNotFound when the project is not
// the owner's.
func (s *ProjectService) Update(ctx context.Context, ownerID, id, name, description string, custom map[string]any, specifications []models.Specification) error {
	keys, err := s.allowedKeys(ctx, ownerID)
	if err != nil {
		return err
	}

	return s.repo.UpdateProject(ctx, models.Project{
		ID:             id,
		OwnerID:        ownerID,
		Name:           name,
		Description:    description,
		Custom:         FilterCustom(keys, custom),
		Specifications: specifications,
	})
}

// Delete removes the project. Succeeds even when nothing matched.
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteProject(ctx, ownerID, id)
}
