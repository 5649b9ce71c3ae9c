package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/shared/infrastructure/memory"
)

// MockMaterialRepository モック資材リポジトリ
type MockMaterialRepository struct {
	repository.MaterialRepository
	FindByProjectIDFunc func(ctx context.Context, projectID int64) ([]*entity.Material, error)
}

func (m *MockMaterialRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Material, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return m.MaterialRepository.FindByProjectID(ctx, projectID)
}

// MockWorkerRepository モック作業員リポジトリ
type MockWorkerRepository struct {
	repository.WorkerRepository
	FindByProjectIDFunc func(ctx context.Context, projectID int64) ([]*entity.Worker, error)
}

func (m *MockWorkerRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Worker, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return m.WorkerRepository.FindByProjectID(ctx, projectID)
}

// MockProjectRepository モックプロジェクトリポジトリ
type MockProjectRepository struct {
	repository.ProjectRepository
	FindByIDFunc func(ctx context.Context, id int64) (*entity.Project, error)
	CreateFunc   func(ctx context.Context, project *entity.Project) error
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return m.ProjectRepository.FindByID(ctx, id)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return m.ProjectRepository.Create(ctx, project)
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedScenario 資材・作業員・その他経費を1件ずつ持つプロジェクトを作成
func seedScenario(ctx context.Context, s *memory.Store) (*entity.Project, error) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	project := entity.NewProject("キッチン改装", nil, *date(2024, 1, 1), nil, "", now)
	if err := s.Projects().Create(ctx, project); err != nil {
		return nil, err
	}
	if err := s.Materials().Create(ctx, entity.NewMaterial(project.ID, "タイル", dec("10.5"), "m2", dec("25.50"), date(2024, 1, 5), now)); err != nil {
		return nil, err
	}
	if err := s.Workers().Create(ctx, entity.NewWorker(project.ID, "大工", dec("100"), 5, date(2024, 1, 2), nil, now)); err != nil {
		return nil, err
	}
	if err := s.OtherExpenses().Create(ctx, entity.NewOtherExpense(project.ID, "廃材処分", nil, dec("50"), date(2024, 1, 6), now)); err != nil {
		return nil, err
	}
	return project, nil
}
