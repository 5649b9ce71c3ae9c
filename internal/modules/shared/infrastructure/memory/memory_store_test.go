package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/construction/domain/entity"
)

func TestStore_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := entity.NewProject("A", nil, base, nil, "", base)
	second := entity.NewProject("B", nil, base, nil, "", base.Add(time.Hour))
	if err := s.Projects().Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Projects().Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", first.ID, second.ID)
	}

	all, err := s.Projects().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 || all[0].Name != "B" {
		t.Errorf("FindAll() should return newest first, got %+v", all)
	}

	got, err := s.Projects().FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	got.Name = "mutated"
	again, _ := s.Projects().FindByID(ctx, first.ID)
	if again.Name != "A" {
		t.Error("FindByID() must return a copy")
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Projects().FindByID(ctx, 999999)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.ID != 999999 {
		t.Errorf("FindByID() error = %v, want NotFoundError(999999)", err)
	}

	_, err = s.Materials().Update(ctx, 42, func(*entity.Material) error { return nil })
	if !domain.IsNotFound(err) {
		t.Errorf("Update() error = %v, want NotFoundError", err)
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now()
	m := entity.NewMaterial(1, "セメント", decimal.NewFromInt(1), "袋", decimal.NewFromInt(10), nil, now)
	if err := s.Materials().Create(ctx, m); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("正常系: 更新結果を返して保存", func(t *testing.T) {
		updated, err := s.Materials().Update(ctx, m.ID, func(m *entity.Material) error {
			m.Quantity = decimal.NewFromInt(3)
			return nil
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if !updated.Quantity.Equal(decimal.NewFromInt(3)) {
			t.Errorf("Quantity = %v, want 3", updated.Quantity)
		}
		stored, _ := s.Materials().FindByID(ctx, m.ID)
		if !stored.Quantity.Equal(decimal.NewFromInt(3)) {
			t.Errorf("stored Quantity = %v, want 3", stored.Quantity)
		}
	})

	t.Run("異常系: コールバックのエラーでは保存しない", func(t *testing.T) {
		_, err := s.Materials().Update(ctx, m.ID, func(m *entity.Material) error {
			m.Quantity = decimal.NewFromInt(99)
			return errors.New("rejected")
		})
		if err == nil {
			t.Fatal("expected error")
		}
		stored, _ := s.Materials().FindByID(ctx, m.ID)
		if !stored.Quantity.Equal(decimal.NewFromInt(3)) {
			t.Errorf("stored Quantity = %v, want 3", stored.Quantity)
		}
	})
}

func TestStore_FindByProjectID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now()
	for _, pid := range []int64{1, 2, 1} {
		if err := s.Workers().Create(ctx, entity.NewWorker(pid, "w", decimal.NewFromInt(100), 1, nil, nil, now)); err != nil {
			t.Fatal(err)
		}
	}

	workers, err := s.Workers().FindByProjectID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByProjectID() error = %v", err)
	}
	if len(workers) != 2 || workers[0].ID != 1 || workers[1].ID != 3 {
		t.Errorf("unexpected workers: %+v", workers)
	}

	none, err := s.Workers().FindByProjectID(ctx, 3)
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("FindByProjectID() = %v, %v, want empty non-nil slice", none, err)
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	w := entity.NewWorker(1, "w", decimal.NewFromInt(100), 0, nil, nil, time.Now())
	if err := s.Workers().Create(ctx, w); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Workers().Update(ctx, w.ID, func(w *entity.Worker) error {
				w.DaysWorked++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Workers().FindByID(ctx, w.ID)
	if got.DaysWorked != 50 {
		t.Errorf("DaysWorked = %d, want 50", got.DaysWorked)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore()

	_, err := s.OtherExpenses().FindByProjectID(ctx, 1)
	if !domain.IsInfrastructure(err) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want InfrastructureError wrapping context.Canceled", err)
	}
}

func TestStore_PointerFieldsAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	desc := "搬入費"
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	expense := entity.NewOtherExpense(1, "運搬", &desc, decimal.NewFromInt(50), &day, day)
	if err := s.OtherExpenses().Create(ctx, expense); err != nil {
		t.Fatal(err)
	}

	*expense.Description = "変更"
	*expense.ExpenseDate = day.AddDate(0, 0, 10)

	listed, err := s.OtherExpenses().FindByProjectID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	*listed[0].ExpenseDate = day.AddDate(0, 1, 0)

	updated, err := s.OtherExpenses().Update(ctx, expense.ID, func(e *entity.OtherExpense) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	*updated.Description = "更新後に変更"

	got, err := s.OtherExpenses().FindByID(ctx, expense.ID)
	if err != nil {
		t.Fatal(err)
	}
	if *got.Description != "搬入費" {
		t.Errorf("Description = %q, want 搬入費", *got.Description)
	}
	if !got.ExpenseDate.Equal(day) {
		t.Errorf("ExpenseDate = %v, want %v", got.ExpenseDate, day)
	}
}
