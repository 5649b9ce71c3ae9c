package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/shared/logging"
)

// CostSummaryUseCase 原価集計のユースケース
type CostSummaryUseCase struct {
	projectRepo repository.ProjectRepository
	items       *lineItemReader
}

// NewCostSummaryUseCase 新しいCostSummaryUseCaseを作成
func NewCostSummaryUseCase(
	projectRepo repository.ProjectRepository,
	materialRepo repository.MaterialRepository,
	workerRepo repository.WorkerRepository,
	expenseRepo repository.OtherExpenseRepository,
) *CostSummaryUseCase {
	return &CostSummaryUseCase{
		projectRepo: projectRepo,
		items:       &lineItemReader{materialRepo: materialRepo, workerRepo: workerRepo, expenseRepo: expenseRepo},
	}
}

// ComputeCostSummary プロジェクトの原価を集計
//
// asOfがnilなら全期間、指定されていれば日付がasOf以前の明細のみを対象にする。
// 日付が未設定の明細はasOf指定時には含めない。
func (uc *CostSummaryUseCase) ComputeCostSummary(ctx context.Context, projectID int64, asOf *time.Time) (*entity.ProjectCostSummary, error) {
	if _, err := uc.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	items, err := uc.items.load(ctx, projectID)
	if err != nil {
		logging.FromContext(ctx).Error("cost summary failed", "project_id", projectID, "error", err)
		return nil, err
	}

	return SummarizeCosts(projectID, items.materials, items.workers, items.expenses, asOf), nil
}

// SummarizeCosts 明細一覧から原価集計を作成する純粋関数
func SummarizeCosts(projectID int64, materials []*entity.Material, workers []*entity.Worker, expenses []*entity.OtherExpense, asOf *time.Time) *entity.ProjectCostSummary {
	var cutoff *time.Time
	if asOf != nil {
		c := entity.NormalizeTime(*asOf)
		cutoff = &c
	}

	materialsCost := decimal.Zero
	for _, m := range materials {
		if includedAt(m.PurchaseDate, cutoff) {
			materialsCost = materialsCost.Add(m.LineCost())
		}
	}

	workersCost := decimal.Zero
	for _, w := range workers {
		if includedAt(w.StartDate, cutoff) {
			workersCost = workersCost.Add(w.LineCost())
		}
	}

	expensesCost := decimal.Zero
	for _, e := range expenses {
		if includedAt(e.ExpenseDate, cutoff) {
			expensesCost = expensesCost.Add(e.LineCost())
		}
	}

	return entity.NewProjectCostSummary(projectID, materialsCost, workersCost, expensesCost, cutoff)
}

func includedAt(date, cutoff *time.Time) bool {
	if cutoff == nil {
		return true
	}
	return date != nil && !date.After(*cutoff)
}

type lineItems struct {
	materials []*entity.Material
	workers   []*entity.Worker
	expenses  []*entity.OtherExpense
}

// lineItemReader 3種類の明細を並行して読み込む
type lineItemReader struct {
	materialRepo repository.MaterialRepository
	workerRepo   repository.WorkerRepository
	expenseRepo  repository.OtherExpenseRepository
}

func (r *lineItemReader) load(ctx context.Context, projectID int64) (*lineItems, error) {
	items := &lineItems{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		materials, err := r.materialRepo.FindByProjectID(gctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to list materials: %w", err)
		}
		items.materials = materials
		return nil
	})
	g.Go(func() error {
		workers, err := r.workerRepo.FindByProjectID(gctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}
		items.workers = workers
		return nil
	})
	g.Go(func() error {
		expenses, err := r.expenseRepo.FindByProjectID(gctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to list other expenses: %w", err)
		}
		items.expenses = expenses
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if items.materials == nil {
		items.materials = []*entity.Material{}
	}
	if items.workers == nil {
		items.workers = []*entity.Worker{}
	}
	if items.expenses == nil {
		items.expenses = []*entity.OtherExpense{}
	}
	return items, nil
}
