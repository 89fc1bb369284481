package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdesk/projectdesk/internal/middleware"
	"github.com/projectdesk/projectdesk/internal/models"
)

// fakeFieldService implements FieldService for testing.
type fakeFieldService struct {
	fields    []models.FieldDef
	listErr   error
	created   models.FieldDef
	createErr error
	deleteErr error

	gotSchema models.FieldSchema
	gotOwner  string
}

func (f *fakeFieldService) ListFields(_ context.Context, ownerID string, schema models.FieldSchema) ([]models.FieldDef, error) {
	f.gotOwner, f.gotSchema = ownerID, schema
	return f.fields, f.listErr
}

func (f *fakeFieldService) CreateField(_ context.Context, ownerID string, schema models.FieldSchema, name, key string, fieldType models.FieldType) (models.FieldDef, error) {
	f.gotOwner, f.gotSchema = ownerID, schema
	return f.created, f.createErr
}

func (f *fakeFieldService) DeleteField(_ context.Context, ownerID string, schema models.FieldSchema, id string) error {
	f.gotOwner, f.gotSchema = ownerID, schema
	return f.deleteErr
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return req.WithContext(middleware.WithUserID(req.Context(), "u1"))
}

func TestFieldsHandler_List(t *testing.T) {
	svc := &fakeFieldService{fields: []models.FieldDef{
		{ID: "f1", Name: "Budget", Key: "budget", Type: models.FieldNumber},
	}}
	h := &FieldsHandler{FieldService: svc, Schema: models.SchemaProject}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest("GET", "/api/settings/fields", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.gotOwner)
	assert.Equal(t, models.SchemaProject, svc.gotSchema)

	var fields []models.FieldDef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "budget", fields[0].Key)
}

func TestFieldsHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeFieldService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `not a json`,
			service:      &fakeFieldService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "validation failure",
			body:         `{"name":"","key":""}`,
			service:      &fakeFieldService{createErr: models.ErrValidation},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "duplicate key",
			body:         `{"name":"Budget","key":"budget","type":"number"}`,
			service:      &fakeFieldService{createErr: models.ErrDuplicateKey},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "created",
			body: `{"name":"Budget","key":"budget","type":"number"}`,
			service: &fakeFieldService{created: models.FieldDef{
				ID: "f1", Name: "Budget", Key: "budget", Type: models.FieldNumber,
			}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &FieldsHandler{FieldService: tt.service, Schema: models.SchemaProject}
			rec := httptest.NewRecorder()
			h.Create(rec, authedRequest("POST", "/api/settings/fields", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusCreated {
				var field models.FieldDef
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &field))
				assert.Equal(t, "f1", field.ID)
			}
		})
	}
}

func TestFieldsHandler_Delete_AlwaysNoContent(t *testing.T) {
	// Deleting an absent field succeeds the same way: the service reports
	// no error either way.
	h := &FieldsHandler{FieldService: &fakeFieldService{}, Schema: models.SchemaSpecification}
	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest("DELETE", "/api/settings/specification-fields/gone", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
