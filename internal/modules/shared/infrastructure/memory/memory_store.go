package memory

import (
	"context"
	"sort"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
)

// Store プロセス内にデータを保持するストア（開発・テスト用）
type Store struct {
	projects *projectRepository
	tasks    *taskRepository
	material *materialRepository
	workers  *workerRepository
	expenses *otherExpenseRepository
	photos   *photoRepository
}

var _ repository.Store = (*Store)(nil)

// NewStore 空のストアを作成
func NewStore() *Store {
	return &Store{
		projects: &projectRepository{t: newTable("project",
			func(p *entity.Project, id int64) { p.ID = id },
			func(p *entity.Project) int64 { return p.ID },
			cloneProject,
		)},
		tasks: &taskRepository{t: newTable("task",
			func(t *entity.Task, id int64) { t.ID = id },
			func(t *entity.Task) int64 { return t.ProjectID },
			cloneTask,
		)},
		material: &materialRepository{t: newTable("material",
			func(m *entity.Material, id int64) { m.ID = id },
			func(m *entity.Material) int64 { return m.ProjectID },
			cloneMaterial,
		)},
		workers: &workerRepository{t: newTable("worker",
			func(w *entity.Worker, id int64) { w.ID = id },
			func(w *entity.Worker) int64 { return w.ProjectID },
			cloneWorker,
		)},
		expenses: &otherExpenseRepository{t: newTable("other expense",
			func(e *entity.OtherExpense, id int64) { e.ID = id },
			func(e *entity.OtherExpense) int64 { return e.ProjectID },
			cloneOtherExpense,
		)},
		photos: &photoRepository{t: newTable("project photo",
			func(p *entity.ProjectPhoto, id int64) { p.ID = id },
			func(p *entity.ProjectPhoto) int64 { return p.ProjectID },
			clonePhoto,
		)},
	}
}

func (s *Store) Projects() repository.ProjectRepository           { return s.projects }
func (s *Store) Tasks() repository.TaskRepository                 { return s.tasks }
func (s *Store) Materials() repository.MaterialRepository         { return s.material }
func (s *Store) Workers() repository.WorkerRepository             { return s.workers }
func (s *Store) OtherExpenses() repository.OtherExpenseRepository { return s.expenses }
func (s *Store) Photos() repository.PhotoRepository               { return s.photos }

// Ping 常に成功
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close 何もしない
func (s *Store) Close() error { return nil }

type projectRepository struct{ t *table[entity.Project] }

func (r *projectRepository) Create(ctx context.Context, p *entity.Project) error {
	return r.t.create(ctx, p)
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	return r.t.findByID(ctx, id)
}

func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	projects, err := r.t.all(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id int64, fn func(*entity.Project) error) (*entity.Project, error) {
	return r.t.update(ctx, id, fn)
}

type taskRepository struct{ t *table[entity.Task] }

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.t.create(ctx, task)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	return r.t.findByID(ctx, id)
}

func (r *taskRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Task, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *taskRepository) Update(ctx context.Context, id int64, fn func(*entity.Task) error) (*entity.Task, error) {
	return r.t.update(ctx, id, fn)
}

type materialRepository struct{ t *table[entity.Material] }

func (r *materialRepository) Create(ctx context.Context, m *entity.Material) error {
	return r.t.create(ctx, m)
}

func (r *materialRepository) FindByID(ctx context.Context, id int64) (*entity.Material, error) {
	return r.t.findByID(ctx, id)
}

func (r *materialRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Material, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *materialRepository) Update(ctx context.Context, id int64, fn func(*entity.Material) error) (*entity.Material, error) {
	return r.t.update(ctx, id, fn)
}

type workerRepository struct{ t *table[entity.Worker] }

func (r *workerRepository) Create(ctx context.Context, w *entity.Worker) error {
	return r.t.create(ctx, w)
}

func (r *workerRepository) FindByID(ctx context.Context, id int64) (*entity.Worker, error) {
	return r.t.findByID(ctx, id)
}

func (r *workerRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Worker, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *workerRepository) Update(ctx context.Context, id int64, fn func(*entity.Worker) error) (*entity.Worker, error) {
	return r.t.update(ctx, id, fn)
}

type otherExpenseRepository struct{ t *table[entity.OtherExpense] }

func (r *otherExpenseRepository) Create(ctx context.Context, e *entity.OtherExpense) error {
	return r.t.create(ctx, e)
}

func (r *otherExpenseRepository) FindByID(ctx context.Context, id int64) (*entity.OtherExpense, error) {
	return r.t.findByID(ctx, id)
}

func (r *otherExpenseRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.OtherExpense, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *otherExpenseRepository) Update(ctx context.Context, id int64, fn func(*entity.OtherExpense) error) (*entity.OtherExpense, error) {
	return r.t.update(ctx, id, fn)
}

type photoRepository struct{ t *table[entity.ProjectPhoto] }

func (r *photoRepository) Create(ctx context.Context, p *entity.ProjectPhoto) error {
	return r.t.create(ctx, p)
}

func (r *photoRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.ProjectPhoto, error) {
	return r.t.findByProjectID(ctx, projectID)
}
