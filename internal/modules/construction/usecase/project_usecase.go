package usecase

import (
	"context"
	"fmt"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/construction/domain/service"
)

// CreateProjectInput プロジェクト作成の入力
type CreateProjectInput struct {
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
	Status      entity.ProjectStatus `json:"status"`
}

// ProjectUseCase プロジェクト管理のユースケース
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	now         func() time.Time
}

// NewProjectUseCase 新しいProjectUseCaseを作成
func NewProjectUseCase(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		now:         time.Now,
	}
}

// CreateProject プロジェクトを作成
func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	project := entity.NewProject(input.Name, input.Description, input.StartDate, input.EndDate, input.Status, uc.now())
	if err := service.ValidateProject(project); err != nil {
		return nil, err
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects プロジェクト一覧を作成日時の新しい順に取得
func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject プロジェクトを取得
func (uc *ProjectUseCase) GetProject(ctx context.Context, id int64) (*entity.Project, error) {
	return uc.projectRepo.FindByID(ctx, id)
}

// UpdateProject 指定されたフィールドだけを更新
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error) {
	if err := service.ValidateProjectPatch(patch); err != nil {
		return nil, err
	}
	return uc.projectRepo.Update(ctx, id, func(p *entity.Project) error {
		p.Apply(patch, uc.now())
		return service.ValidateProject(p)
	})
}

// GetProgress タスクの所要日数で重み付けした進捗を取得
func (uc *ProjectUseCase) GetProgress(ctx context.Context, id int64) (*entity.ProjectProgress, error) {
	if _, err := uc.projectRepo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	tasks, err := uc.taskRepo.FindByProjectID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return entity.NewProjectProgress(id, tasks), nil
}
