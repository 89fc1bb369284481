// Package models defines the core data structures for users, field
// definitions, projects and tasks, plus the domain error sentinels shared
// across layers.
package models

import (
	"errors"
	"time"
)

// Domain errors returned by repositories and services. Handlers map these
// to HTTP statuses with errors.Is.
var (
	// ErrNotFound indicates the entity does not exist or belongs to
	// another owner (the two cases are indistinguishable on purpose).
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey indicates an (owner, key) collision in the
	// project-field registry.
	ErrDuplicateKey = errors.New("duplicate field key")
	// ErrEmailTaken indicates a registration attempt with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation indicates a request that fails a required-field or
	// enum check. Wrapped with detail at the point of failure.
	ErrValidation = errors.New("validation failed")
)

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Email is the login email, unique across all users.
	Email string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// FieldType defines the set of valid custom-field value types.
type FieldType string

const (
	// FieldString represents a free-text field.
	FieldString FieldType = "string"
	// FieldNumber represents a numeric field.
	FieldNumber FieldType = "number"
	// FieldDate represents a date field.
	FieldDate FieldType = "date"
)

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldString, FieldNumber, FieldDate:
		return true
	}
	return false
}

// FieldSchema selects which registry a field definition belongs to.
type FieldSchema string

const (
	// SchemaProject is the registry driving project custom fields.
	SchemaProject FieldSchema = "project"
	// SchemaSpecification is the registry driving specification fields.
	SchemaSpecification FieldSchema = "specification"
)

// FieldDef is an admin-declared custom-field definition scoped to an owner.
type FieldDef struct {
	// ID is the unique identifier for the definition.
	ID string `json:"id"`
	// OwnerID identifies the user the definition belongs to.
	OwnerID string `json:"-"`
	// Name is the human-readable label rendered by the UI.
	Name string `json:"name"`
	// Key is the map key the definition allows in custom data.
	Key string `json:"key"`
	// Type is the declared value type of the field.
	Type FieldType `json:"type"`
}

// Specification is a named sub-record embedded in a Project. Specifications
// have no identity of their own; order within the project is preserved.
type Specification struct {
	// Name is the specification's label.
	Name string `json:"name"`
	// Spec holds the specification's free-form field values.
	Spec map[string]string `json:"spec"`
}

// Project is an owner-scoped record carrying free-form custom data and an
// ordered list of embedded specifications.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`
	// OwnerID identifies the owning user.
	OwnerID string `json:"-"`
	// Name is the project name.
	Name string `json:"name"`
	// Description is an optional free-text description.
	Description string `json:"description"`
	// Custom holds the filtered custom-field values, keyed by field key.
	Custom map[string]any `json:"custom"`
	// Specifications is the ordered list of embedded sub-records.
	Specifications []Specification `json:"specifications"`
}

// Task is a unit of work scoped to an owner and a project.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`
	// OwnerID identifies the owning user.
	OwnerID string `json:"-"`
	// ProjectID identifies the project the task belongs to.
	ProjectID string `json:"project_id"`
	// Title is the task title, required.
	Title string `json:"title"`
	// Description is an optional free-text description.
	Description string `json:"description"`
	// Deadline is a free-text date supplied by the client.
	Deadline string `json:"deadline"`
	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}
