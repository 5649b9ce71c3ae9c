package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/construction/domain/entity"
)

const (
	msgRequired    = "is required"
	msgNotNull     = "must not be null"
	msgPositive    = "must be greater than 0"
	msgNonNegative = "must be 0 or greater"
	msgInvalidEnum = "has an invalid value"
	msgScale       = "must have at most 2 decimal places"
	msgTooLarge    = "must be at most 99999999.99"
)

// 金額・数量カラムはdecimal(10,2)
var maxAmount = decimal.RequireFromString("99999999.99")

// ValidateProject プロジェクトを検証
func ValidateProject(p *entity.Project) error {
	v := &domain.ValidationError{}
	requireText(v, "name", p.Name)
	if p.StartDate.IsZero() {
		v.Add("start_date", msgRequired)
	}
	if !p.Status.IsValid() {
		v.Add("status", msgInvalidEnum)
	}
	return v.OrNil()
}

// ValidateProjectPatch 必須フィールドへのnull指定を拒否
func ValidateProjectPatch(patch entity.ProjectPatch) error {
	v := &domain.ValidationError{}
	rejectNull(v, "name", patch.Name.IsNull())
	rejectNull(v, "start_date", patch.StartDate.IsNull())
	rejectNull(v, "status", patch.Status.IsNull())
	return v.OrNil()
}

// ValidateTask タスクを検証
func ValidateTask(t *entity.Task) error {
	v := &domain.ValidationError{}
	requireText(v, "description", t.Description)
	if t.DurationDays <= 0 {
		v.Add("duration_days", msgPositive)
	}
	if !t.Status.IsValid() {
		v.Add("status", msgInvalidEnum)
	}
	return v.OrNil()
}

// ValidateTaskPatch 必須フィールドへのnull指定を拒否
func ValidateTaskPatch(patch entity.TaskPatch) error {
	v := &domain.ValidationError{}
	rejectNull(v, "description", patch.Description.IsNull())
	rejectNull(v, "duration_days", patch.DurationDays.IsNull())
	rejectNull(v, "status", patch.Status.IsNull())
	return v.OrNil()
}

// ValidateMaterial 資材を検証
func ValidateMaterial(m *entity.Material) error {
	v := &domain.ValidationError{}
	requireText(v, "name", m.Name)
	requirePositive(v, "quantity", m.Quantity)
	requireText(v, "unit", m.Unit)
	requirePositive(v, "price_per_unit", m.PricePerUnit)
	return v.OrNil()
}

// ValidateMaterialPatch 必須フィールドへのnull指定を拒否
func ValidateMaterialPatch(patch entity.MaterialPatch) error {
	v := &domain.ValidationError{}
	rejectNull(v, "name", patch.Name.IsNull())
	rejectNull(v, "quantity", patch.Quantity.IsNull())
	rejectNull(v, "unit", patch.Unit.IsNull())
	rejectNull(v, "price_per_unit", patch.PricePerUnit.IsNull())
	return v.OrNil()
}

// ValidateWorker 作業員を検証
func ValidateWorker(w *entity.Worker) error {
	v := &domain.ValidationError{}
	requireText(v, "name", w.Name)
	requirePositive(v, "daily_pay_rate", w.DailyPayRate)
	if w.DaysWorked < 0 {
		v.Add("days_worked", msgNonNegative)
	}
	return v.OrNil()
}

// ValidateWorkerPatch 必須フィールドへのnull指定を拒否
func ValidateWorkerPatch(patch entity.WorkerPatch) error {
	v := &domain.ValidationError{}
	rejectNull(v, "name", patch.Name.IsNull())
	rejectNull(v, "daily_pay_rate", patch.DailyPayRate.IsNull())
	rejectNull(v, "days_worked", patch.DaysWorked.IsNull())
	return v.OrNil()
}

// ValidateOtherExpense その他経費を検証
func ValidateOtherExpense(e *entity.OtherExpense) error {
	v := &domain.ValidationError{}
	requireText(v, "name", e.Name)
	requirePositive(v, "price", e.Price)
	return v.OrNil()
}

// ValidateOtherExpensePatch 必須フィールドへのnull指定を拒否
func ValidateOtherExpensePatch(patch entity.OtherExpensePatch) error {
	v := &domain.ValidationError{}
	rejectNull(v, "name", patch.Name.IsNull())
	rejectNull(v, "price", patch.Price.IsNull())
	return v.OrNil()
}

// ValidateProjectPhoto 写真メタデータを検証
func ValidateProjectPhoto(p *entity.ProjectPhoto) error {
	v := &domain.ValidationError{}
	requireText(v, "filename", p.Filename)
	requireText(v, "original_name", p.OriginalName)
	requireText(v, "file_path", p.FilePath)
	requireText(v, "mime_type", p.MimeType)
	if p.FileSize <= 0 {
		v.Add("file_size", msgPositive)
	}
	if !p.PhotoType.IsValid() {
		v.Add("photo_type", msgInvalidEnum)
	}
	return v.OrNil()
}

func requireText(v *domain.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, msgRequired)
	}
}

func requirePositive(v *domain.ValidationError, field string, value decimal.Decimal) {
	switch {
	case !value.IsPositive():
		v.Add(field, msgPositive)
	case !value.Equal(value.Round(2)):
		v.Add(field, msgScale)
	case value.GreaterThan(maxAmount):
		v.Add(field, msgTooLarge)
	}
}

func rejectNull(v *domain.ValidationError, field string, isNull bool) {
	if isNull {
		v.Add(field, msgNotNull)
	}
}
