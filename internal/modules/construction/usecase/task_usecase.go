package usecase

import (
	"context"
	"fmt"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/construction/domain/service"
)

// CreateTaskInput タスク作成の入力
type CreateTaskInput struct {
	Description  string            `json:"description"`
	DurationDays int               `json:"duration_days"`
	Status       entity.TaskStatus `json:"status"`
}

// TaskUseCase 工程タスクのユースケース
type TaskUseCase struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	now         func() time.Time
}

// NewTaskUseCase 新しいTaskUseCaseを作成
func NewTaskUseCase(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{projectRepo: projectRepo, taskRepo: taskRepo, now: time.Now}
}

// CreateTask プロジェクトにタスクを追加
func (uc *TaskUseCase) CreateTask(ctx context.Context, projectID int64, input CreateTaskInput) (*entity.Task, error) {
	task := entity.NewTask(projectID, input.Description, input.DurationDays, input.Status, uc.now())
	if err := service.ValidateTask(task); err != nil {
		return nil, err
	}
	if _, err := uc.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListTasks プロジェクトのタスク一覧を取得
func (uc *TaskUseCase) ListTasks(ctx context.Context, projectID int64) ([]*entity.Task, error) {
	tasks, err := uc.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask 指定されたフィールドだけを更新
func (uc *TaskUseCase) UpdateTask(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	if err := service.ValidateTaskPatch(patch); err != nil {
		return nil, err
	}
	return uc.taskRepo.Update(ctx, id, func(t *entity.Task) error {
		t.Apply(patch, uc.now())
		return service.ValidateTask(t)
	})
}
