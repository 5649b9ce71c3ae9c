package handler

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"construction-cost-app/internal/modules/construction/domain/entity"
)

// receiptItemHeader 明細行のヘッダー
var receiptItemHeader = []string{"Category", "Name", "Quantity", "Unit", "Unit Price", "Date", "Amount"}

// WriteReceiptCSV 明細書をCSVで書き出す
func WriteReceiptCSV(out io.Writer, receipt *entity.Receipt) error {
	w := csv.NewWriter(out)

	project := receipt.Project
	summary := receipt.CostSummary
	breakdown := summary.Breakdown()

	rows := [][]string{
		{"Receipt", cell(project.Name)},
		{"Project ID", strconv.FormatInt(project.ID, 10)},
		{"Status", string(project.Status)},
		{"Start Date", formatDate(&project.StartDate)},
		{"End Date", formatDate(project.EndDate)},
		{"Generated At", receipt.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
		receiptItemHeader,
	}

	for _, m := range receipt.Materials {
		rows = append(rows, []string{
			"Material", cell(m.Name), m.Quantity.String(), cell(m.Unit),
			money(m.PricePerUnit), formatDate(m.PurchaseDate), money(m.LineCost()),
		})
	}
	for _, wk := range receipt.Workers {
		rows = append(rows, []string{
			"Worker", cell(wk.Name), strconv.Itoa(wk.DaysWorked), "day",
			money(wk.DailyPayRate), formatDate(wk.StartDate), money(wk.LineCost()),
		})
	}
	for _, e := range receipt.OtherExpenses {
		rows = append(rows, []string{
			"Other Expense", cell(e.Name), "1", "",
			money(e.Price), formatDate(e.ExpenseDate), money(e.LineCost()),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Materials Subtotal", money(summary.MaterialsCost)},
		[]string{"Workers Subtotal", money(summary.WorkersCost)},
		[]string{"Other Expenses Subtotal", money(summary.OtherExpensesCost)},
		[]string{"Total", money(summary.TotalCost)},
		[]string{},
		[]string{"Materials Share (%)", breakdown.MaterialsShare.StringFixed(1)},
		[]string{"Workers Share (%)", breakdown.WorkersShare.StringFixed(1)},
		[]string{"Other Expenses Share (%)", breakdown.OtherExpensesShare.StringFixed(1)},
	)

	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// cell 表計算ソフトで数式として解釈される先頭文字をエスケープ
func cell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}
