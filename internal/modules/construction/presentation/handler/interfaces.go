package handler

import (
	"context"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/usecase"
)

// ProjectUseCaseInterface はプロジェクトユースケースのインターフェース
type ProjectUseCaseInterface interface {
	CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetProject(ctx context.Context, id int64) (*entity.Project, error)
	UpdateProject(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error)
	GetProgress(ctx context.Context, id int64) (*entity.ProjectProgress, error)
}

// TaskUseCaseInterface はタスクユースケースのインターフェース
type TaskUseCaseInterface interface {
	CreateTask(ctx context.Context, projectID int64, input usecase.CreateTaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, projectID int64) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error)
}

// LineItemUseCaseInterface は明細（資材・作業員・その他経費）ユースケースのインターフェース
type LineItemUseCaseInterface interface {
	CreateMaterial(ctx context.Context, projectID int64, input usecase.CreateMaterialInput) (*entity.Material, error)
	ListMaterials(ctx context.Context, projectID int64) ([]*entity.Material, error)
	UpdateMaterial(ctx context.Context, id int64, patch entity.MaterialPatch) (*entity.Material, error)
	CreateWorker(ctx context.Context, projectID int64, input usecase.CreateWorkerInput) (*entity.Worker, error)
	ListWorkers(ctx context.Context, projectID int64) ([]*entity.Worker, error)
	UpdateWorker(ctx context.Context, id int64, patch entity.WorkerPatch) (*entity.Worker, error)
	CreateOtherExpense(ctx context.Context, projectID int64, input usecase.CreateOtherExpenseInput) (*entity.OtherExpense, error)
	ListOtherExpenses(ctx context.Context, projectID int64) ([]*entity.OtherExpense, error)
	UpdateOtherExpense(ctx context.Context, id int64, patch entity.OtherExpensePatch) (*entity.OtherExpense, error)
}

// PhotoUseCaseInterface は写真メタデータユースケースのインターフェース
type PhotoUseCaseInterface interface {
	CreatePhoto(ctx context.Context, projectID int64, input usecase.CreatePhotoInput) (*entity.ProjectPhoto, error)
	ListPhotos(ctx context.Context, projectID int64) ([]*entity.ProjectPhoto, error)
}

// CostSummaryUseCaseInterface は原価集計ユースケースのインターフェース
type CostSummaryUseCaseInterface interface {
	ComputeCostSummary(ctx context.Context, projectID int64, asOf *time.Time) (*entity.ProjectCostSummary, error)
}

// ReceiptUseCaseInterface は明細書生成ユースケースのインターフェース
type ReceiptUseCaseInterface interface {
	GenerateReceipt(ctx context.Context, projectID int64) (*entity.Receipt, error)
}
