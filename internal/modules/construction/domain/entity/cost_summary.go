package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProjectCostSummary プロジェクトの原価集計（永続化しない）
type ProjectCostSummary struct {
	ProjectID         int64           `json:"project_id"`
	MaterialsCost     decimal.Decimal `json:"materials_cost"`
	WorkersCost       decimal.Decimal `json:"workers_cost"`
	OtherExpensesCost decimal.Decimal `json:"other_expenses_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	AsOfDate          *time.Time      `json:"as_of_date"`
}

// NewProjectCostSummary 小計から集計を作成（合計は常に小計の和）
func NewProjectCostSummary(projectID int64, materials, workers, others decimal.Decimal, asOf *time.Time) *ProjectCostSummary {
	return &ProjectCostSummary{
		ProjectID:         projectID,
		MaterialsCost:     materials,
		WorkersCost:       workers,
		OtherExpensesCost: others,
		TotalCost:         materials.Add(workers).Add(others),
		AsOfDate:          asOf,
	}
}

// CostBreakdown 費目ごとの構成比（%）
type CostBreakdown struct {
	MaterialsShare     decimal.Decimal `json:"materials_share"`
	WorkersShare       decimal.Decimal `json:"workers_share"`
	OtherExpensesShare decimal.Decimal `json:"other_expenses_share"`
}

// Breakdown 構成比を小数点以下1桁で返す。合計が0なら全て0
func (s *ProjectCostSummary) Breakdown() CostBreakdown {
	if s.TotalCost.IsZero() {
		return CostBreakdown{
			MaterialsShare:     decimal.Zero,
			WorkersShare:       decimal.Zero,
			OtherExpensesShare: decimal.Zero,
		}
	}
	share := func(part decimal.Decimal) decimal.Decimal {
		return part.Mul(hundred).DivRound(s.TotalCost, 1)
	}
	return CostBreakdown{
		MaterialsShare:     share(s.MaterialsCost),
		WorkersShare:       share(s.WorkersCost),
		OtherExpensesShare: share(s.OtherExpensesCost),
	}
}

// Receipt 工事明細書（生成時点のスナップショット）
type Receipt struct {
	Project       *Project            `json:"project"`
	CostSummary   *ProjectCostSummary `json:"cost_summary"`
	Materials     []*Material         `json:"materials"`
	Workers       []*Worker           `json:"workers"`
	OtherExpenses []*OtherExpense     `json:"other_expenses"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// LineItemCount 明細行の総数
func (r *Receipt) LineItemCount() int {
	return len(r.Materials) + len(r.Workers) + len(r.OtherExpenses)
}

// ProjectProgress タスクの所要日数で重み付けした進捗
type ProjectProgress struct {
	ProjectID             int64           `json:"project_id"`
	TotalTasks            int             `json:"total_tasks"`
	PendingTasks          int             `json:"pending_tasks"`
	InProgressTasks       int             `json:"in_progress_tasks"`
	CompletedTasks        int             `json:"completed_tasks"`
	TotalDurationDays     int             `json:"total_duration_days"`
	CompletedDurationDays int             `json:"completed_duration_days"`
	Percentage            decimal.Decimal `json:"percentage"`
}

// NewProjectProgress タスク一覧から進捗を計算
func NewProjectProgress(projectID int64, tasks []*Task) *ProjectProgress {
	p := &ProjectProgress{ProjectID: projectID, Percentage: decimal.Zero}
	for _, t := range tasks {
		p.TotalTasks++
		p.TotalDurationDays += t.DurationDays
		switch t.Status {
		case TaskStatusCompleted:
			p.CompletedTasks++
			p.CompletedDurationDays += t.DurationDays
		case TaskStatusInProgress:
			p.InProgressTasks++
		default:
			p.PendingTasks++
		}
	}
	if p.TotalDurationDays > 0 {
		p.Percentage = decimal.NewFromInt(int64(p.CompletedDurationDays)).
			Mul(hundred).
			DivRound(decimal.NewFromInt(int64(p.TotalDurationDays)), 2)
	}
	return p
}
