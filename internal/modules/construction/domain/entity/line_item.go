package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material 資材エンティティ
type Material struct {
	ID           int64           `json:"id"`
	ProjectID    int64           `json:"project_id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	PurchaseDate *time.Time      `json:"purchase_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MaterialPatch 資材の部分更新
type MaterialPatch struct {
	Name         Optional[string]          `json:"name"`
	Quantity     Optional[decimal.Decimal] `json:"quantity"`
	Unit         Optional[string]          `json:"unit"`
	PricePerUnit Optional[decimal.Decimal] `json:"price_per_unit"`
	PurchaseDate Optional[time.Time]       `json:"purchase_date"`
}

// NewMaterial 新しいMaterialを作成
func NewMaterial(projectID int64, name string, quantity decimal.Decimal, unit string, pricePerUnit decimal.Decimal, purchaseDate *time.Time, now time.Time) *Material {
	now = NormalizeTime(now)
	return &Material{
		ProjectID:    projectID,
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
		PurchaseDate: normalizeDate(purchaseDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// LineCost 数量×単価
func (m *Material) LineCost() decimal.Decimal {
	return m.Quantity.Mul(m.PricePerUnit)
}

// Apply 指定されたフィールドだけを書き換え、updated_atを更新
func (m *Material) Apply(patch MaterialPatch, now time.Time) {
	applyValue(&m.Name, patch.Name)
	applyValue(&m.Quantity, patch.Quantity)
	applyValue(&m.Unit, patch.Unit)
	applyValue(&m.PricePerUnit, patch.PricePerUnit)
	applyNullable(&m.PurchaseDate, patch.PurchaseDate)
	m.PurchaseDate = normalizeDate(m.PurchaseDate)
	m.UpdatedAt = nextUpdatedAt(m.UpdatedAt, now)
}

// Worker 作業員エンティティ
type Worker struct {
	ID           int64           `json:"id"`
	ProjectID    int64           `json:"project_id"`
	Name         string          `json:"name"`
	DailyPayRate decimal.Decimal `json:"daily_pay_rate"`
	DaysWorked   int             `json:"days_worked"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WorkerPatch 作業員の部分更新
type WorkerPatch struct {
	Name         Optional[string]          `json:"name"`
	DailyPayRate Optional[decimal.Decimal] `json:"daily_pay_rate"`
	DaysWorked   Optional[int]             `json:"days_worked"`
	StartDate    Optional[time.Time]       `json:"start_date"`
	EndDate      Optional[time.Time]       `json:"end_date"`
}

// NewWorker 新しいWorkerを作成
func NewWorker(projectID int64, name string, dailyPayRate decimal.Decimal, daysWorked int, startDate, endDate *time.Time, now time.Time) *Worker {
	now = NormalizeTime(now)
	return &Worker{
		ProjectID:    projectID,
		Name:         name,
		DailyPayRate: dailyPayRate,
		DaysWorked:   daysWorked,
		StartDate:    normalizeDate(startDate),
		EndDate:      normalizeDate(endDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// LineCost 稼働日数×日当
func (w *Worker) LineCost() decimal.Decimal {
	return decimal.NewFromInt(int64(w.DaysWorked)).Mul(w.DailyPayRate)
}

// Apply 指定されたフィールドだけを書き換え、updated_atを更新
func (w *Worker) Apply(patch WorkerPatch, now time.Time) {
	applyValue(&w.Name, patch.Name)
	applyValue(&w.DailyPayRate, patch.DailyPayRate)
	applyValue(&w.DaysWorked, patch.DaysWorked)
	applyNullable(&w.StartDate, patch.StartDate)
	applyNullable(&w.EndDate, patch.EndDate)
	w.StartDate = normalizeDate(w.StartDate)
	w.EndDate = normalizeDate(w.EndDate)
	w.UpdatedAt = nextUpdatedAt(w.UpdatedAt, now)
}

// OtherExpense その他経費エンティティ
type OtherExpense struct {
	ID          int64           `json:"id"`
	ProjectID   int64           `json:"project_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ExpenseDate *time.Time      `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OtherExpensePatch その他経費の部分更新
type OtherExpensePatch struct {
	Name        Optional[string]          `json:"name"`
	Description Optional[string]          `json:"description"`
	Price       Optional[decimal.Decimal] `json:"price"`
	ExpenseDate Optional[time.Time]       `json:"expense_date"`
}

// NewOtherExpense 新しいOtherExpenseを作成
func NewOtherExpense(projectID int64, name string, description *string, price decimal.Decimal, expenseDate *time.Time, now time.Time) *OtherExpense {
	now = NormalizeTime(now)
	return &OtherExpense{
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Price:       price,
		ExpenseDate: normalizeDate(expenseDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LineCost 金額そのもの
func (e *OtherExpense) LineCost() decimal.Decimal {
	return e.Price
}

// Apply 指定されたフィールドだけを書き換え、updated_atを更新
func (e *OtherExpense) Apply(patch OtherExpensePatch, now time.Time) {
	applyValue(&e.Name, patch.Name)
	applyNullable(&e.Description, patch.Description)
	applyValue(&e.Price, patch.Price)
	applyNullable(&e.ExpenseDate, patch.ExpenseDate)
	e.ExpenseDate = normalizeDate(e.ExpenseDate)
	e.UpdatedAt = nextUpdatedAt(e.UpdatedAt, now)
}
