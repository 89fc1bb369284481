package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectdesk/projectdesk/internal/models"
)

// PostgresProjectRepository implements project persistence against a
// PostgreSQL database. The custom map and the specification list are stored
// as JSONB documents.
type PostgresProjectRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository using
// the provided *sql.DB.
func NewPostgresProjectRepository(db *sql.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{DB: db}
}

func marshalDocs(p *models.Project) (custom, specs []byte, err error) {
	if p.Custom == nil {
		p.Custom = map[string]any{}
	}
	if p.Specifications == nil {
		p.Specifications = []models.Specification{}
	}
	custom, err = json.Marshal(p.Custom)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal custom: %w", err)
	}
	specs, err = json.Marshal(p.Specifications)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal specifications: %w", err)
	}
	return custom, specs, nil
}

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var (
		p      models.Project
		custom []byte
		specs  []byte
	)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &custom, &specs); err != nil {
		return models.Project{}, err
	}
	if err := json.Unmarshal(custom, &p.Custom); err != nil {
		return models.Project{}, fmt.Errorf("unmarshal custom: %w", err)
	}
	if err := json.Unmarshal(specs, &p.Specifications); err != nil {
		return models.Project{}, fmt.Errorf("unmarshal specifications: %w", err)
	}
	return p, nil
}

// CreateProject inserts a project with a generated identifier and returns it.
func (r *PostgresProjectRepository) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = uuid.NewString()
	custom, specs, err := marshalDocs(&p)
	if err != nil {
		return models.Project{}, err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, name, description, custom, specifications)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.OwnerID, p.Name, p.Description, custom, specs)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// GetProject fetches a single project by ID for the given owner.
// Returns models.ErrNotFound when the project does not exist or belongs to
// another owner.
func (r *PostgresProjectRepository) GetProject(ctx context.Context, ownerID, id string) (*models.Project, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, custom, specifications
		  FROM projects WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ListProjects fetches all projects belonging to the given owner.
func (r *PostgresProjectRepository) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, name, description, custom, specifications
		  FROM projects WHERE owner_id = $1 ORDER BY ctid
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject overwrites the project's name, description, custom map and
// specification list. Returns models.ErrNotFound when no row matches the
// (id, owner) pair.
func (r *PostgresProjectRepository) UpdateProject(ctx context.Context, p models.Project) error {
	custom, specs, err := marshalDocs(&p)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE projects
		   SET name = $1, description = $2, custom = $3, specifications = $4
		 WHERE id = $5 AND owner_id = $6
	`, p.Name, p.Description, custom, specs, p.ID, p.OwnerID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project by ID for the given owner. Deleting an
// absent project is not an error. Tasks of the project are left in place.
func (r *PostgresProjectRepository) DeleteProject(ctx context.Context, ownerID, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM projects WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
