package repository

import (
	"context"

	"construction-cost-app/internal/modules/construction/domain/entity"
)

// ProjectRepository プロジェクトリポジトリのインターフェース
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id int64) (*entity.Project, error)
	// FindAll 作成日時の新しい順
	FindAll(ctx context.Context) ([]*entity.Project, error)
	// Update 読み込み・変更・書き込みを1単位で実行し、更新後の値を返す
	Update(ctx context.Context, id int64, fn func(*entity.Project) error) (*entity.Project, error)
}

// TaskRepository タスクリポジトリのインターフェース
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Task, error)
	Update(ctx context.Context, id int64, fn func(*entity.Task) error) (*entity.Task, error)
}

// MaterialRepository 資材リポジトリのインターフェース
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	FindByID(ctx context.Context, id int64) (*entity.Material, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Material, error)
	Update(ctx context.Context, id int64, fn func(*entity.Material) error) (*entity.Material, error)
}

// WorkerRepository 作業員リポジトリのインターフェース
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	FindByID(ctx context.Context, id int64) (*entity.Worker, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Worker, error)
	Update(ctx context.Context, id int64, fn func(*entity.Worker) error) (*entity.Worker, error)
}

// OtherExpenseRepository その他経費リポジトリのインターフェース
type OtherExpenseRepository interface {
	Create(ctx context.Context, expense *entity.OtherExpense) error
	FindByID(ctx context.Context, id int64) (*entity.OtherExpense, error)
	FindByProjectID(ctx context.Context, projectID int64) ([]*entity.OtherExpense, error)
	Update(ctx context.Context, id int64, fn func(*entity.OtherExpense) error) (*entity.OtherExpense, error)
}

// PhotoRepository 工事写真（メタデータのみ）リポジトリのインターフェース
type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.ProjectPhoto) error
	FindByProjectID(ctx context.Context, projectID int64) ([]*entity.ProjectPhoto, error)
}

// Store 全リポジトリをまとめたストア
type Store interface {
	Projects() ProjectRepository
	Tasks() TaskRepository
	Materials() MaterialRepository
	Workers() WorkerRepository
	OtherExpenses() OtherExpenseRepository
	Photos() PhotoRepository
	Ping(ctx context.Context) error
	Close() error
}
