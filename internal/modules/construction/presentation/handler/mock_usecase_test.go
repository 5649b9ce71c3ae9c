package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/usecase"
)

// MockProjectUseCase テスト用のモックProjectUseCase
type MockProjectUseCase struct {
	ProjectUseCaseInterface
	CreateProjectFunc func(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error)
	ListProjectsFunc  func(ctx context.Context) ([]*entity.Project, error)
	GetProjectFunc    func(ctx context.Context, id int64) (*entity.Project, error)
	UpdateProjectFunc func(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error)
	GetProgressFunc   func(ctx context.Context, id int64) (*entity.ProjectProgress, error)
}

func (m *MockProjectUseCase) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	return m.CreateProjectFunc(ctx, input)
}

func (m *MockProjectUseCase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return m.ListProjectsFunc(ctx)
}

func (m *MockProjectUseCase) GetProject(ctx context.Context, id int64) (*entity.Project, error) {
	return m.GetProjectFunc(ctx, id)
}

func (m *MockProjectUseCase) UpdateProject(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error) {
	return m.UpdateProjectFunc(ctx, id, patch)
}

func (m *MockProjectUseCase) GetProgress(ctx context.Context, id int64) (*entity.ProjectProgress, error) {
	return m.GetProgressFunc(ctx, id)
}

// MockCostSummaryUseCase テスト用のモックCostSummaryUseCase
type MockCostSummaryUseCase struct {
	ComputeCostSummaryFunc func(ctx context.Context, projectID int64, asOf *time.Time) (*entity.ProjectCostSummary, error)
}

func (m *MockCostSummaryUseCase) ComputeCostSummary(ctx context.Context, projectID int64, asOf *time.Time) (*entity.ProjectCostSummary, error) {
	return m.ComputeCostSummaryFunc(ctx, projectID, asOf)
}

// MockReceiptUseCase テスト用のモックReceiptUseCase
type MockReceiptUseCase struct {
	GenerateReceiptFunc func(ctx context.Context, projectID int64) (*entity.Receipt, error)
}

func (m *MockReceiptUseCase) GenerateReceipt(ctx context.Context, projectID int64) (*entity.Receipt, error) {
	return m.GenerateReceiptFunc(ctx, projectID)
}

// newRequest パスパラメータ{id}付きのテスト用リクエストを作成
func newRequest(method, target, id, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != "" {
		req.SetPathValue("id", id)
	}
	return req
}
