package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/shared/infrastructure/memory"
)

func newReceiptUseCase(s *memory.Store) *ReceiptUseCase {
	return NewReceiptUseCase(s.Projects(), s.Materials(), s.Workers(), s.OtherExpenses())
}

func TestReceiptUseCase_GenerateReceipt(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	project, err := seedScenario(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	fixed := time.Date(2024, 2, 1, 12, 30, 0, 123456789, time.UTC)
	uc := newReceiptUseCase(s).WithClock(func() time.Time { return fixed })

	receipt, err := uc.GenerateReceipt(ctx, project.ID)
	if err != nil {
		t.Fatalf("GenerateReceipt() error = %v", err)
	}

	if receipt.Project.ID != project.ID || receipt.Project.Name != "キッチン改装" {
		t.Errorf("Project = %+v", receipt.Project)
	}
	if len(receipt.Materials) != 1 || len(receipt.Workers) != 1 || len(receipt.OtherExpenses) != 1 {
		t.Errorf("LineItemCount() = %d, want 3", receipt.LineItemCount())
	}
	if !receipt.CostSummary.TotalCost.Equal(dec("817.75")) {
		t.Errorf("TotalCost = %v, want 817.75", receipt.CostSummary.TotalCost)
	}
	if receipt.CostSummary.AsOfDate != nil {
		t.Errorf("AsOfDate = %v, want nil", receipt.CostSummary.AsOfDate)
	}
	if !receipt.GeneratedAt.Equal(fixed.Truncate(time.Microsecond)) {
		t.Errorf("GeneratedAt = %v, want %v", receipt.GeneratedAt, fixed)
	}
}

func TestReceiptUseCase_SummaryMatchesAggregator(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	project, err := seedScenario(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	// 日付なしの明細も全期間の明細書には含まれる
	_ = s.Materials().Create(ctx, entity.NewMaterial(project.ID, "ビス", dec("3"), "箱", dec("0.99"), nil, time.Now()))

	direct, err := newCostSummaryUseCase(s).ComputeCostSummary(ctx, project.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	receipt, err := newReceiptUseCase(s).GenerateReceipt(ctx, project.ID)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := json.Marshal(direct)
	got, _ := json.Marshal(receipt.CostSummary)
	if string(got) != string(want) {
		t.Errorf("receipt summary = %s, want %s", got, want)
	}
	if len(receipt.Materials) != 2 {
		t.Errorf("len(Materials) = %d, want 2", len(receipt.Materials))
	}
}

func TestReceiptUseCase_ProjectNotFound(t *testing.T) {
	_, err := newReceiptUseCase(memory.NewStore()).GenerateReceipt(context.Background(), 999999)

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.ID != 999999 {
		t.Errorf("error = %v, want NotFoundError(999999)", err)
	}
}

func TestReceiptUseCase_EmptyListsAreNonNil(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	project := entity.NewProject("P", nil, *date(2024, 1, 1), nil, "", time.Now())
	_ = s.Projects().Create(ctx, project)

	receipt, err := newReceiptUseCase(s).GenerateReceipt(ctx, project.ID)
	if err != nil {
		t.Fatal(err)
	}

	body, _ := json.Marshal(receipt)
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	for _, key := range []string{"materials", "workers", "other_expenses"} {
		if _, ok := decoded[key].([]any); !ok {
			t.Errorf("%s = %v, want []", key, decoded[key])
		}
	}
}

func TestReceiptUseCase_StoreError(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	project, err := seedScenario(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	workers := &MockWorkerRepository{
		WorkerRepository: s.Workers(),
		FindByProjectIDFunc: func(ctx context.Context, projectID int64) ([]*entity.Worker, error) {
			return nil, domain.NewInfrastructureError("list workers", errors.New("database is locked"))
		},
	}
	uc := NewReceiptUseCase(s.Projects(), s.Materials(), workers, s.OtherExpenses())

	receipt, err := uc.GenerateReceipt(ctx, project.ID)
	if receipt != nil || !domain.IsInfrastructure(err) {
		t.Errorf("GenerateReceipt() = %v, %v, want nil, InfrastructureError", receipt, err)
	}
}
