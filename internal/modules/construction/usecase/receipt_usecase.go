package usecase

import (
	"context"
	"fmt"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/shared/logging"
)

// ReceiptUseCase 工事明細書のユースケース
type ReceiptUseCase struct {
	projectRepo repository.ProjectRepository
	items       *lineItemReader
	now         func() time.Time
}

// NewReceiptUseCase 新しいReceiptUseCaseを作成
func NewReceiptUseCase(
	projectRepo repository.ProjectRepository,
	materialRepo repository.MaterialRepository,
	workerRepo repository.WorkerRepository,
	expenseRepo repository.OtherExpenseRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		projectRepo: projectRepo,
		items:       &lineItemReader{materialRepo: materialRepo, workerRepo: workerRepo, expenseRepo: expenseRepo},
		now:         time.Now,
	}
}

// WithClock generated_atに使う時計を差し替える
func (uc *ReceiptUseCase) WithClock(now func() time.Time) *ReceiptUseCase {
	uc.now = now
	return uc
}

// GenerateReceipt プロジェクトの全期間の明細書を作成
//
// 集計は明細書に含める一覧そのものから計算するため、
// ComputeCostSummary(projectID, nil) と常に一致する。
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, projectID int64) (*entity.Receipt, error) {
	project, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	items, err := uc.items.load(ctx, projectID)
	if err != nil {
		logging.FromContext(ctx).Error("receipt generation failed", "project_id", projectID, "error", err)
		return nil, err
	}

	return &entity.Receipt{
		Project:       project,
		CostSummary:   SummarizeCosts(projectID, items.materials, items.workers, items.expenses, nil),
		Materials:     items.materials,
		Workers:       items.workers,
		OtherExpenses: items.expenses,
		GeneratedAt:   entity.NormalizeTime(uc.now()),
	}, nil
}
