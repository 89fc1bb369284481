package repository

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/projectdesk/projectdesk/internal/models"
)

func setupProjectMock(t *testing.T) (*PostgresProjectRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresProjectRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCreateProject_MarshalsDocuments(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO projects (id, owner_id, name, description, custom, specifications)`)).
		WithArgs(sqlmock.AnyArg(), "u1", "Site", "desc",
			[]byte(`{"budget":"500"}`), []byte(`[{"name":"rev A","spec":{"material":"steel"}}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateProject(context.Background(), models.Project{
		OwnerID:     "u1",
		Name:        "Site",
		Description: "desc",
		Custom:      map[string]any{"budget": "500"},
		Specifications: []models.Specification{
			{Name: "rev A", Spec: map[string]string{"material": "steel"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated project id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateProject_NilMapsBecomeEmptyDocuments(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO projects`)).
		WithArgs(sqlmock.AnyArg(), "u1", "Bare", "", []byte(`{}`), []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.CreateProject(context.Background(), models.Project{OwnerID: "u1", Name: "Bare"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetProject_RoundTrip(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, owner_id, name, description, custom, specifications`)).
		WithArgs("p1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "custom", "specifications"}).
			AddRow("p1", "u1", "Site", "desc",
				[]byte(`{"budget":"500"}`),
				[]byte(`[{"name":"rev A","spec":{"material":"steel"}}]`)))

	project, err := repo.GetProject(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(project.Custom, map[string]any{"budget": "500"}) {
		t.Errorf("custom = %v", project.Custom)
	}
	wantSpecs := []models.Specification{{Name: "rev A", Spec: map[string]string{"material": "steel"}}}
	if !reflect.DeepEqual(project.Specifications, wantSpecs) {
		t.Errorf("specifications = %v; want %v", project.Specifications, wantSpecs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetProject_WrongOwnerIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	// The query scopes by owner, so another owner's id yields no rows.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, owner_id, name, description, custom, specifications`)).
		WithArgs("project-of-a", "owner-b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "custom", "specifications"}))

	_, err := repo.GetProject(context.Background(), "owner-b", "project-of-a")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("GetProject error = %v; want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdateProject_NoMatchIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects`)).
		WithArgs("Site", "", []byte(`{}`), []byte(`[]`), "p1", "owner-b").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProject(context.Background(), models.Project{
		ID: "p1", OwnerID: "owner-b", Name: "Site",
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("UpdateProject error = %v; want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDeleteProject_AbsentIsNoError(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1 AND owner_id = $2`)).
		WithArgs("gone", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteProject(context.Background(), "u1", "gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListProjects_Scans(t *testing.T) {
	repo, mock, cleanup := setupProjectMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, owner_id, name, description, custom, specifications`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "custom", "specifications"}).
			AddRow("p1", "u1", "A", "", []byte(`{}`), []byte(`[]`)).
			AddRow("p2", "u1", "B", "", []byte(`{"x":1}`), []byte(`[]`)))

	projects, err := repo.ListProjects(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
