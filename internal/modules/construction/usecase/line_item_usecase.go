package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/construction/domain/service"
)

// CreateMaterialInput 資材登録の入力
type CreateMaterialInput struct {
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	PurchaseDate *time.Time      `json:"purchase_date"`
}

// CreateWorkerInput 作業員登録の入力
type CreateWorkerInput struct {
	Name         string          `json:"name"`
	DailyPayRate decimal.Decimal `json:"daily_pay_rate"`
	DaysWorked   int             `json:"days_worked"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
}

// CreateOtherExpenseInput その他経費登録の入力
type CreateOtherExpenseInput struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ExpenseDate *time.Time      `json:"expense_date"`
}

// LineItemUseCase 原価明細（資材・作業員・その他経費）のユースケース
type LineItemUseCase struct {
	projectRepo  repository.ProjectRepository
	materialRepo repository.MaterialRepository
	workerRepo   repository.WorkerRepository
	expenseRepo  repository.OtherExpenseRepository
	now          func() time.Time
}

// NewLineItemUseCase 新しいLineItemUseCaseを作成
func NewLineItemUseCase(
	projectRepo repository.ProjectRepository,
	materialRepo repository.MaterialRepository,
	workerRepo repository.WorkerRepository,
	expenseRepo repository.OtherExpenseRepository,
) *LineItemUseCase {
	return &LineItemUseCase{
		projectRepo:  projectRepo,
		materialRepo: materialRepo,
		workerRepo:   workerRepo,
		expenseRepo:  expenseRepo,
		now:          time.Now,
	}
}

func (uc *LineItemUseCase) requireProject(ctx context.Context, projectID int64) error {
	if _, err := uc.projectRepo.FindByID(ctx, projectID); err != nil {
		return fmt.Errorf("failed to find project: %w", err)
	}
	return nil
}

// CreateMaterial 資材を登録
func (uc *LineItemUseCase) CreateMaterial(ctx context.Context, projectID int64, input CreateMaterialInput) (*entity.Material, error) {
	material := entity.NewMaterial(projectID, input.Name, input.Quantity, input.Unit, input.PricePerUnit, input.PurchaseDate, uc.now())
	if err := service.ValidateMaterial(material); err != nil {
		return nil, err
	}
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	return material, nil
}

// ListMaterials プロジェクトの資材一覧を取得
func (uc *LineItemUseCase) ListMaterials(ctx context.Context, projectID int64) ([]*entity.Material, error) {
	materials, err := uc.materialRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

// UpdateMaterial 指定されたフィールドだけを更新
func (uc *LineItemUseCase) UpdateMaterial(ctx context.Context, id int64, patch entity.MaterialPatch) (*entity.Material, error) {
	if err := service.ValidateMaterialPatch(patch); err != nil {
		return nil, err
	}
	return uc.materialRepo.Update(ctx, id, func(m *entity.Material) error {
		m.Apply(patch, uc.now())
		return service.ValidateMaterial(m)
	})
}

// CreateWorker 作業員を登録
func (uc *LineItemUseCase) CreateWorker(ctx context.Context, projectID int64, input CreateWorkerInput) (*entity.Worker, error) {
	worker := entity.NewWorker(projectID, input.Name, input.DailyPayRate, input.DaysWorked, input.StartDate, input.EndDate, uc.now())
	if err := service.ValidateWorker(worker); err != nil {
		return nil, err
	}
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := uc.workerRepo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker, nil
}

// ListWorkers プロジェクトの作業員一覧を取得
func (uc *LineItemUseCase) ListWorkers(ctx context.Context, projectID int64) ([]*entity.Worker, error) {
	workers, err := uc.workerRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// UpdateWorker 指定されたフィールドだけを更新
func (uc *LineItemUseCase) UpdateWorker(ctx context.Context, id int64, patch entity.WorkerPatch) (*entity.Worker, error) {
	if err := service.ValidateWorkerPatch(patch); err != nil {
		return nil, err
	}
	return uc.workerRepo.Update(ctx, id, func(w *entity.Worker) error {
		w.Apply(patch, uc.now())
		return service.ValidateWorker(w)
	})
}

// CreateOtherExpense その他経費を登録
func (uc *LineItemUseCase) CreateOtherExpense(ctx context.Context, projectID int64, input CreateOtherExpenseInput) (*entity.OtherExpense, error) {
	expense := entity.NewOtherExpense(projectID, input.Name, input.Description, input.Price, input.ExpenseDate, uc.now())
	if err := service.ValidateOtherExpense(expense); err != nil {
		return nil, err
	}
	if err := uc.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create other expense: %w", err)
	}
	return expense, nil
}

// ListOtherExpenses プロジェクトのその他経費一覧を取得
func (uc *LineItemUseCase) ListOtherExpenses(ctx context.Context, projectID int64) ([]*entity.OtherExpense, error) {
	expenses, err := uc.expenseRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list other expenses: %w", err)
	}
	return expenses, nil
}

// UpdateOtherExpense 指定されたフィールドだけを更新
func (uc *LineItemUseCase) UpdateOtherExpense(ctx context.Context, id int64, patch entity.OtherExpensePatch) (*entity.OtherExpense, error) {
	if err := service.ValidateOtherExpensePatch(patch); err != nil {
		return nil, err
	}
	return uc.expenseRepo.Update(ctx, id, func(e *entity.OtherExpense) error {
		e.Apply(patch, uc.now())
		return service.ValidateOtherExpense(e)
	})
}
