package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/usecase"
)

type testResponse struct {
	Success bool                 `json:"success"`
	Data    json.RawMessage      `json:"data"`
	Error   string               `json:"error"`
	Details []FieldErrorResponse `json:"details"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func sampleProject(id int64) *entity.Project {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	p := entity.NewProject("Office renovation", nil, now, nil, "", now)
	p.ID = id
	return p
}

func TestProjectHandler_HandleCreate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		createErr   error
		wantStatus  int
		wantSuccess bool
		wantDetails int
	}{
		{
			name:        "正常系: プロジェクト登録",
			body:        `{"name":"Office renovation","start_date":"2024-01-01T00:00:00Z"}`,
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
		},
		{
			name:       "異常系: 不正なJSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 検証エラー",
			body: `{"name":"","start_date":"2024-01-01T00:00:00Z"}`,
			createErr: &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "name", Message: "must not be empty"},
			}},
			wantStatus:  http.StatusBadRequest,
			wantDetails: 1,
		},
		{
			name:       "異常系: ストレージ障害",
			body:       `{"name":"Office renovation","start_date":"2024-01-01T00:00:00Z"}`,
			createErr:  domain.NewInfrastructureError("insert project", errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got usecase.CreateProjectInput
			mock := &MockProjectUseCase{
				CreateProjectFunc: func(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
					got = input
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					return sampleProject(1), nil
				},
			}
			h := NewProjectHandler(mock)
			rec := httptest.NewRecorder()

			h.HandleCreate(rec, newRequest(http.MethodPost, "/api/v1/projects", "", tt.body))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status code = %d, want %d", rec.Code, tt.wantStatus)
			}
			resp := decodeResponse(t, rec)
			if resp.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", resp.Success, tt.wantSuccess)
			}
			if !tt.wantSuccess && resp.Error == "" {
				t.Error("error message should not be empty")
			}
			if len(resp.Details) != tt.wantDetails {
				t.Errorf("details = %d, want %d", len(resp.Details), tt.wantDetails)
			}
			if tt.wantStatus == http.StatusCreated && got.Name != "Office renovation" {
				t.Errorf("input.Name = %q, want Office renovation", got.Name)
			}
		})
	}
}

func TestProjectHandler_InfrastructureErrorHidesCause(t *testing.T) {
	mock := &MockProjectUseCase{
		ListProjectsFunc: func(ctx context.Context) ([]*entity.Project, error) {
			return nil, domain.NewInfrastructureError("list projects", errors.New("dial tcp 10.0.0.5:3306: secret-host"))
		},
	}
	h := NewProjectHandler(mock)
	rec := httptest.NewRecorder()

	h.HandleList(rec, newRequest(http.MethodGet, "/api/v1/projects", "", ""))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if strings.Contains(rec.Body.String(), "secret-host") {
		t.Errorf("response leaks storage detail: %s", rec.Body.String())
	}
}

func TestProjectHandler_HandleGet(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		getErr     error
		wantStatus int
	}{
		{
			name:       "正常系: 取得成功",
			id:         "1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: 存在しないID",
			id:         "999999",
			getErr:     domain.NewNotFoundError("project", 999999),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "異常系: 数値でないID",
			id:         "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "境界値: ID 0",
			id:         "0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: 想定外のエラー",
			id:         "1",
			getErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "異常系: キャンセル",
			id:         "1",
			getErr:     context.Canceled,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProjectUseCase{
				GetProjectFunc: func(ctx context.Context, id int64) (*entity.Project, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return sampleProject(id), nil
				},
			}
			h := NewProjectHandler(mock)
			rec := httptest.NewRecorder()

			h.HandleGet(rec, newRequest(http.MethodGet, "/api/v1/projects/"+tt.id, tt.id, ""))

			if rec.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Content-Type = %s, want application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestProjectHandler_HandleGet_NotFoundMessage(t *testing.T) {
	mock := &MockProjectUseCase{
		GetProjectFunc: func(ctx context.Context, id int64) (*entity.Project, error) {
			return nil, domain.NewNotFoundError("project", id)
		},
	}
	h := NewProjectHandler(mock)
	rec := httptest.NewRecorder()

	h.HandleGet(rec, newRequest(http.MethodGet, "/api/v1/projects/999999", "999999", ""))

	resp := decodeResponse(t, rec)
	if resp.Success {
		t.Error("success should be false")
	}
	if !strings.Contains(resp.Error, "999999") {
		t.Errorf("error = %q, want to contain the id", resp.Error)
	}
}

func TestProjectHandler_HandleUpdate(t *testing.T) {
	var got entity.ProjectPatch
	mock := &MockProjectUseCase{
		UpdateProjectFunc: func(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error) {
			got = patch
			p := sampleProject(id)
			p.Status = entity.ProjectStatusInProgress
			return p, nil
		},
	}
	h := NewProjectHandler(mock)
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, newRequest(http.MethodPatch, "/api/v1/projects/1", "1", `{"status":"in_progress","end_date":null}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}
	if !got.Status.Set || got.Status.Value == nil || *got.Status.Value != entity.ProjectStatusInProgress {
		t.Errorf("patch.Status = %+v, want in_progress", got.Status)
	}
	if !got.EndDate.IsNull() {
		t.Error("patch.EndDate should be null")
	}
	if got.Name.Set {
		t.Error("patch.Name should be absent")
	}

	var project entity.Project
	if err := json.Unmarshal(decodeResponse(t, rec).Data, &project); err != nil {
		t.Fatalf("Failed to decode project: %v", err)
	}
	if project.Status != entity.ProjectStatusInProgress {
		t.Errorf("status = %s, want in_progress", project.Status)
	}
}

func TestProjectHandler_HandleProgress(t *testing.T) {
	mock := &MockProjectUseCase{
		GetProgressFunc: func(ctx context.Context, id int64) (*entity.ProjectProgress, error) {
			return entity.NewProjectProgress(id, nil), nil
		},
	}
	h := NewProjectHandler(mock)
	rec := httptest.NewRecorder()

	h.HandleProgress(rec, newRequest(http.MethodGet, "/api/v1/projects/3/progress", "3", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}
	var progress entity.ProjectProgress
	if err := json.Unmarshal(decodeResponse(t, rec).Data, &progress); err != nil {
		t.Fatalf("Failed to decode progress: %v", err)
	}
	if progress.ProjectID != 3 || progress.TotalTasks != 0 {
		t.Errorf("progress = %+v", progress)
	}
}
