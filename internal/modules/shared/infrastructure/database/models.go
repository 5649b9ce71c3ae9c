package database

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"construction-cost-app/internal/modules/construction/domain/entity"
)

// Project BUNモデル
type Project struct {
	bun.BaseModel `bun:"table:projects"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Name        string     `bun:"name,notnull,type:varchar(255)"`
	Description *string    `bun:"description,type:text"`
	StartDate   time.Time  `bun:"start_date,notnull,type:datetime(6)"`
	EndDate     *time.Time `bun:"end_date,type:datetime(6)"`
	Status      string     `bun:"status,notnull,type:varchar(20),default:'planning'"`
	CreatedAt   time.Time  `bun:"created_at,notnull,type:datetime(6)"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,type:datetime(6)"`
}

// Task BUNモデル
type Task struct {
	bun.BaseModel `bun:"table:tasks"`

	ID           int64     `bun:"id,pk,autoincrement"`
	ProjectID    int64     `bun:"project_id,notnull"`
	Description  string    `bun:"description,notnull,type:text"`
	DurationDays int       `bun:"duration_days,notnull"`
	Status       string    `bun:"status,notnull,type:varchar(20),default:'pending'"`
	CreatedAt    time.Time `bun:"created_at,notnull,type:datetime(6)"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,type:datetime(6)"`
}

// Material BUNモデル
type Material struct {
	bun.BaseModel `bun:"table:materials"`

	ID           int64           `bun:"id,pk,autoincrement"`
	ProjectID    int64           `bun:"project_id,notnull"`
	Name         string          `bun:"name,notnull,type:varchar(255)"`
	Quantity     decimal.Decimal `bun:"quantity,notnull,type:decimal(10,2)"`
	Unit         string          `bun:"unit,notnull,type:varchar(50)"`
	PricePerUnit decimal.Decimal `bun:"price_per_unit,notnull,type:decimal(10,2)"`
	PurchaseDate *time.Time      `bun:"purchase_date,type:datetime(6)"`
	CreatedAt    time.Time       `bun:"created_at,notnull,type:datetime(6)"`
	UpdatedAt    time.Time       `bun:"updated_at,notnull,type:datetime(6)"`
}

// Worker BUNモデル
type Worker struct {
	bun.BaseModel `bun:"table:workers"`

	ID           int64           `bun:"id,pk,autoincrement"`
	ProjectID    int64           `bun:"project_id,notnull"`
	Name         string          `bun:"name,notnull,type:varchar(255)"`
	DailyPayRate decimal.Decimal `bun:"daily_pay_rate,notnull,type:decimal(10,2)"`
	DaysWorked   int             `bun:"days_worked,notnull,default:0"`
	StartDate    *time.Time      `bun:"start_date,type:datetime(6)"`
	EndDate      *time.Time      `bun:"end_date,type:datetime(6)"`
	CreatedAt    time.Time       `bun:"created_at,notnull,type:datetime(6)"`
	UpdatedAt    time.Time       `bun:"updated_at,notnull,type:datetime(6)"`
}

// OtherExpense BUNモデル
type OtherExpense struct {
	bun.BaseModel `bun:"table:other_expenses"`

	ID          int64           `bun:"id,pk,autoincrement"`
	ProjectID   int64           `bun:"project_id,notnull"`
	Name        string          `bun:"name,notnull,type:varchar(255)"`
	Description *string         `bun:"description,type:text"`
	Price       decimal.Decimal `bun:"price,notnull,type:decimal(10,2)"`
	ExpenseDate *time.Time      `bun:"expense_date,type:datetime(6)"`
	CreatedAt   time.Time       `bun:"created_at,notnull,type:datetime(6)"`
	UpdatedAt   time.Time       `bun:"updated_at,notnull,type:datetime(6)"`
}

// ProjectPhoto BUNモデル
type ProjectPhoto struct {
	bun.BaseModel `bun:"table:project_photos"`

	ID           int64     `bun:"id,pk,autoincrement"`
	ProjectID    int64     `bun:"project_id,notnull"`
	Filename     string    `bun:"filename,notnull,type:varchar(255)"`
	OriginalName string    `bun:"original_name,notnull,type:varchar(255)"`
	FilePath     string    `bun:"file_path,notnull,type:text"`
	FileSize     int64     `bun:"file_size,notnull"`
	MimeType     string    `bun:"mime_type,notnull,type:varchar(100)"`
	Description  *string   `bun:"description,type:text"`
	PhotoType    string    `bun:"photo_type,notnull,type:varchar(20),default:'other'"`
	CreatedAt    time.Time `bun:"created_at,notnull,type:datetime(6)"`
}

func normalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := entity.NormalizeTime(*t)
	return &n
}

func projectToModel(p *entity.Project) *Project {
	return &Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func projectToEntity(m *Project) *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   entity.NormalizeTime(m.StartDate),
		EndDate:     normalizePtr(m.EndDate),
		Status:      entity.ProjectStatus(m.Status),
		CreatedAt:   entity.NormalizeTime(m.CreatedAt),
		UpdatedAt:   entity.NormalizeTime(m.UpdatedAt),
	}
}

func taskToModel(t *entity.Task) *Task {
	return &Task{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Description:  t.Description,
		DurationDays: t.DurationDays,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func taskToEntity(m *Task) *entity.Task {
	return &entity.Task{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Description:  m.Description,
		DurationDays: m.DurationDays,
		Status:       entity.TaskStatus(m.Status),
		CreatedAt:    entity.NormalizeTime(m.CreatedAt),
		UpdatedAt:    entity.NormalizeTime(m.UpdatedAt),
	}
}

func materialToModel(e *entity.Material) *Material {
	return &Material{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		Name:         e.Name,
		Quantity:     e.Quantity,
		Unit:         e.Unit,
		PricePerUnit: e.PricePerUnit,
		PurchaseDate: e.PurchaseDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func materialToEntity(m *Material) *entity.Material {
	return &entity.Material{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		PricePerUnit: m.PricePerUnit,
		PurchaseDate: normalizePtr(m.PurchaseDate),
		CreatedAt:    entity.NormalizeTime(m.CreatedAt),
		UpdatedAt:    entity.NormalizeTime(m.UpdatedAt),
	}
}

func workerToModel(e *entity.Worker) *Worker {
	return &Worker{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		Name:         e.Name,
		DailyPayRate: e.DailyPayRate,
		DaysWorked:   e.DaysWorked,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func workerToEntity(m *Worker) *entity.Worker {
	return &entity.Worker{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		DailyPayRate: m.DailyPayRate,
		DaysWorked:   m.DaysWorked,
		StartDate:    normalizePtr(m.StartDate),
		EndDate:      normalizePtr(m.EndDate),
		CreatedAt:    entity.NormalizeTime(m.CreatedAt),
		UpdatedAt:    entity.NormalizeTime(m.UpdatedAt),
	}
}

func otherExpenseToModel(e *entity.OtherExpense) *OtherExpense {
	return &OtherExpense{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func otherExpenseToEntity(m *OtherExpense) *entity.OtherExpense {
	return &entity.OtherExpense{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ExpenseDate: normalizePtr(m.ExpenseDate),
		CreatedAt:   entity.NormalizeTime(m.CreatedAt),
		UpdatedAt:   entity.NormalizeTime(m.UpdatedAt),
	}
}

func photoToModel(e *entity.ProjectPhoto) *ProjectPhoto {
	return &ProjectPhoto{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		Filename:     e.Filename,
		OriginalName: e.OriginalName,
		FilePath:     e.FilePath,
		FileSize:     e.FileSize,
		MimeType:     e.MimeType,
		Description:  e.Description,
		PhotoType:    string(e.PhotoType),
		CreatedAt:    e.CreatedAt,
	}
}

func photoToEntity(m *ProjectPhoto) *entity.ProjectPhoto {
	return &entity.ProjectPhoto{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		Description:  m.Description,
		PhotoType:    entity.PhotoType(m.PhotoType),
		CreatedAt:    entity.NormalizeTime(m.CreatedAt),
	}
}
