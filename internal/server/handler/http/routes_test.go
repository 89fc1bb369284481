package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/auth"
	"github.com/projectdesk/projectdesk/internal/models"
)

func testRouter() http.Handler {
	return NewRouter(
		&AuthHandler{AuthService: &fakeAuthService{}},
		&FieldsHandler{FieldService: &fakeFieldService{}, Schema: models.SchemaProject},
		&FieldsHandler{FieldService: &fakeFieldService{}, Schema: models.SchemaSpecification},
		&ProjectsHandler{ProjectService: &fakeProjectService{}},
		&TasksHandler{TaskService: &fakeTaskService{}},
		zap.NewNop(),
	)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	if err := auth.Init("test-secret"); err != nil {
		t.Fatal(err)
	}
	router := testRouter()

	protected := []struct{ method, path string }{
		{"GET", "/api/settings/fields"},
		{"POST", "/api/settings/fields"},
		{"DELETE", "/api/settings/fields/f1"},
		{"GET", "/api/settings/specification-fields"},
		{"POST", "/api/settings/specification-fields"},
		{"DELETE", "/api/settings/specification-fields/f1"},
		{"GET", "/api/projects"},
		{"POST", "/api/projects"},
		{"GET", "/api/projects/p1"},
		{"PUT", "/api/projects/p1"},
		{"DELETE", "/api/projects/p1"},
		{"GET", "/api/projects/p1/tasks"},
		{"POST", "/api/projects/p1/tasks"},
		{"PUT", "/api/projects/p1/tasks/t1"},
		{"DELETE", "/api/projects/p1/tasks/t1"},
	}

	for _, route := range protected {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusForbidden, rec.Code, "%s %s without token", route.method, route.path)
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	if err := auth.Init("test-secret"); err != nil {
		t.Fatal(err)
	}
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/register", nil)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	// Reaches the handler without a token; only the empty body fails it.
	assert.NotEqual(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AuthenticatedRequestReachesHandler(t *testing.T) {
	if err := auth.Init("test-secret"); err != nil {
		t.Fatal(err)
	}
	token, err := auth.GenerateToken("u1")
	if err != nil {
		t.Fatal(err)
	}
	router := testRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
