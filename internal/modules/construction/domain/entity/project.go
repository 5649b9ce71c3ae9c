package entity

import "time"

// ProjectStatus プロジェクトの状態
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

// IsValid 定義済みの状態かチェック
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

// TaskStatus タスクの状態
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid 定義済みの状態かチェック
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Project 工事プロジェクトエンティティ
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectPatch プロジェクトの部分更新
type ProjectPatch struct {
	Name        Optional[string]        `json:"name"`
	Description Optional[string]        `json:"description"`
	StartDate   Optional[time.Time]     `json:"start_date"`
	EndDate     Optional[time.Time]     `json:"end_date"`
	Status      Optional[ProjectStatus] `json:"status"`
}

// NewProject 新しいProjectを作成（statusが空ならplanning）
func NewProject(name string, description *string, startDate time.Time, endDate *time.Time, status ProjectStatus, now time.Time) *Project {
	if status == "" {
		status = ProjectStatusPlanning
	}
	now = NormalizeTime(now)
	return &Project{
		Name:        name,
		Description: description,
		StartDate:   NormalizeTime(startDate),
		EndDate:     normalizeDate(endDate),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply 指定されたフィールドだけを書き換え、updated_atを更新
func (p *Project) Apply(patch ProjectPatch, now time.Time) {
	applyValue(&p.Name, patch.Name)
	applyNullable(&p.Description, patch.Description)
	applyValue(&p.StartDate, patch.StartDate)
	applyNullable(&p.EndDate, patch.EndDate)
	p.StartDate = NormalizeTime(p.StartDate)
	p.EndDate = normalizeDate(p.EndDate)
	applyValue(&p.Status, patch.Status)
	p.UpdatedAt = nextUpdatedAt(p.UpdatedAt, now)
}

// Task 工程タスクエンティティ
type Task struct {
	ID           int64      `json:"id"`
	ProjectID    int64      `json:"project_id"`
	Description  string     `json:"description"`
	DurationDays int        `json:"duration_days"`
	Status       TaskStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TaskPatch タスクの部分更新
type TaskPatch struct {
	Description  Optional[string]     `json:"description"`
	DurationDays Optional[int]        `json:"duration_days"`
	Status       Optional[TaskStatus] `json:"status"`
}

// NewTask 新しいTaskを作成（statusが空ならpending）
func NewTask(projectID int64, description string, durationDays int, status TaskStatus, now time.Time) *Task {
	if status == "" {
		status = TaskStatusPending
	}
	now = NormalizeTime(now)
	return &Task{
		ProjectID:    projectID,
		Description:  description,
		DurationDays: durationDays,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply 指定されたフィールドだけを書き換え、updated_atを更新
func (t *Task) Apply(patch TaskPatch, now time.Time) {
	applyValue(&t.Description, patch.Description)
	applyValue(&t.DurationDays, patch.DurationDays)
	applyValue(&t.Status, patch.Status)
	t.UpdatedAt = nextUpdatedAt(t.UpdatedAt, now)
}
