package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/services"
)

// stubProjectService returns canned results per method
type stubProjectService struct {
	project *models.Project
	page    *models.ProjectPage
	err     error
}

func (s *stubProjectService) Save(_ context.Context, _ *services.SaveProjectRequest) (*models.Project, error) {
	return s.project, s.err
}

func (s *stubProjectService) Update(_ context.Context, _ string, _ *services.SaveProjectRequest) (*models.Project, error) {
	return s.project, s.err
}

func (s *stubProjectService) Get(_ context.Context, _ string) (*models.Project, error) {
	return s.project, s.err
}

func (s *stubProjectService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubProjectService) List(_ context.Context, _, _ int) (*models.ProjectPage, error) {
	return s.page, s.err
}

func newTestMux(svc services.ProjectService) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProjectHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("POST /api/projects", h.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.DeleteProject)
	return mux
}

func TestProjectHandlerStatusCodes(t *testing.T) {
	sample := &models.Project{
		ID:        "p1",
		Name:      "Folheto",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		svc        *stubProjectService
		wantStatus int
	}{
		{
			name:       "create returns 201",
			method:     http.MethodPost,
			target:     "/api/projects",
			body:       `{"name":"Folheto","config":{},"groups":[]}`,
			svc:        &stubProjectService{project: sample},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "create with invalid json returns 400",
			method:     http.MethodPost,
			target:     "/api/projects",
			body:       `{`,
			svc:        &stubProjectService{project: sample},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failure returns 400",
			method:     http.MethodPost,
			target:     "/api/projects",
			body:       `{"name":""}`,
			svc:        &stubProjectService{err: fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "get missing project returns 404",
			method:     http.MethodGet,
			target:     "/api/projects/missing",
			svc:        &stubProjectService{err: fmt.Errorf("project missing: %w", domain.ErrNotFound)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "delete missing project returns 404",
			method:     http.MethodDelete,
			target:     "/api/projects/missing",
			svc:        &stubProjectService{err: fmt.Errorf("project missing: %w", domain.ErrNotFound)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "delete returns 204",
			method:     http.MethodDelete,
			target:     "/api/projects/p1",
			svc:        &stubProjectService{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "list with bad page returns 400",
			method:     http.MethodGet,
			target:     "/api/projects?page=abc",
			svc:        &stubProjectService{page: &models.ProjectPage{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "list returns 200",
			method:     http.MethodGet,
			target:     "/api/projects?page=0&size=5",
			svc:        &stubProjectService{page: &models.ProjectPage{Projects: []models.ProjectSummary{}}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestMux(tt.svc)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestProjectHandlerListResponseShape(t *testing.T) {
	page := &models.ProjectPage{
		Projects:      []models.ProjectSummary{{ID: "p1", Name: "Folheto"}},
		CurrentPage:   0,
		TotalPages:    3,
		TotalElements: 12,
		Size:          5,
		HasNext:       true,
	}
	mux := newTestMux(&stubProjectService{page: page})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}

	for _, key := range []string{"projects", "currentPage", "totalPages", "totalElements", "size", "hasNext", "hasPrevious"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("response missing field %q", key)
		}
	}
}
