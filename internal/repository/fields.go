package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectdesk/projectdesk/internal/models"
)

// PostgresFieldRepository implements the field registry against a PostgreSQL
// database. The two schemas live in separate tables; only the project table
// carries the (owner_id, key) unique constraint.
type PostgresFieldRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresFieldRepository creates a new PostgresFieldRepository using the
// provided *sql.DB.
func NewPostgresFieldRepository(db *sql.DB) *PostgresFieldRepository {
	return &PostgresFieldRepository{DB: db}
}

// tableFor maps a schema to its table. The schema value never reaches SQL
// as text; anything unrecognized is rejected here.
func tableFor(schema models.FieldSchema) (string, error) {
	switch schema {
	case models.SchemaProject:
		return "project_fields", nil
	case models.SchemaSpecification:
		return "specification_fields", nil
	}
	return "", fmt.Errorf("unknown field schema %q", schema)
}

// ListFields fetches all field definitions of the given schema for an owner,
// ordered by insertion.
func (r *PostgresFieldRepository) ListFields(ctx context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error) {
	table, err := tableFor(schema)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, owner_id, name, key, type FROM %s WHERE owner_id = $1 ORDER BY ctid
	`, table), ownerID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var fields []models.FieldDef
	for rows.Next() {
		var f models.FieldDef
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Key, &f.Type); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// CreateField inserts a field definition with a generated identifier and
// returns it. For the project schema a key collision for the same owner
// returns models.ErrDuplicateKey; the specification table has no such
// constraint and accepts duplicates.
func (r *PostgresFieldRepository) CreateField(ctx context.Context, ownerID string, schema models.FieldSchema, name, key string, fieldType models.FieldType) (models.FieldDef, error) {
	table, err := tableFor(schema)
	if err != nil {
		return models.FieldDef{}, err
	}

	field := models.FieldDef{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    name,
		Key:     key,
		Type:    fieldType,
	}

	_, err = r.DB.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, owner_id, name, key, type) VALUES ($1, $2, $3, $4, $5)
	`, table), field.ID, field.OwnerID, field.Name, field.Key, field.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return models.FieldDef{}, models.ErrDuplicateKey
		}
		return models.FieldDef{}, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

// DeleteField removes a field definition by ID for the given owner. Deleting
// an absent definition is not an error. Existing project documents keep any
// values stored under the deleted key; they are only dropped on the next
// project update.
func (r *PostgresFieldRepository) DeleteField(ctx context.Context, ownerID string, schema models.FieldSchema, id string) error {
	table, err := tableFor(schema)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1 AND owner_id = $2
	`, table), id, ownerID)
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}
