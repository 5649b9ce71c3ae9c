package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"construction-cost-app/internal/config"
	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
)

// BunStore BUN実装（MySQL / SQLite）
type BunStore struct {
	db       *bun.DB
	projects *bunProjectRepository
	tasks    *bunTaskRepository
	material *bunMaterialRepository
	workers  *bunWorkerRepository
	expenses *bunOtherExpenseRepository
	photos   *bunPhotoRepository
}

var _ repository.Store = (*BunStore)(nil)

// NewBunStore 設定に従ってDBへ接続しBunStoreを作成
func NewBunStore(cfg *config.Config) (*BunStore, error) {
	var db *bun.DB
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		sqldb, err := sql.Open("mysql", cfg.MySQL.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.DriverSQLite:
		sqldb, err := OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	// 接続確認
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := NewBunStoreWithDB(db)
	if cfg.Database.AutoMigrate {
		if err := store.CreateSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return store, nil
}

// OpenSQLite SQLiteを開く。書き込みの競合を避けるため接続は1本に制限
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	return sqldb, nil
}

// NewBunStoreWithDB DBインスタンスから作成（テスト用）
func NewBunStoreWithDB(db *bun.DB) *BunStore {
	return &BunStore{
		db: db,
		projects: &bunProjectRepository{t: &bunTable[entity.Project, Project]{
			db: db, resource: "project", toModel: projectToModel, toEntity: projectToEntity,
		}},
		tasks: &bunTaskRepository{t: &bunTable[entity.Task, Task]{
			db: db, resource: "task", toModel: taskToModel, toEntity: taskToEntity,
		}},
		material: &bunMaterialRepository{t: &bunTable[entity.Material, Material]{
			db: db, resource: "material", toModel: materialToModel, toEntity: materialToEntity,
		}},
		workers: &bunWorkerRepository{t: &bunTable[entity.Worker, Worker]{
			db: db, resource: "worker", toModel: workerToModel, toEntity: workerToEntity,
		}},
		expenses: &bunOtherExpenseRepository{t: &bunTable[entity.OtherExpense, OtherExpense]{
			db: db, resource: "other expense", toModel: otherExpenseToModel, toEntity: otherExpenseToEntity,
		}},
		photos: &bunPhotoRepository{t: &bunTable[entity.ProjectPhoto, ProjectPhoto]{
			db: db, resource: "project photo", toModel: photoToModel, toEntity: photoToEntity,
		}},
	}
}

// CreateSchema テーブルが無ければ作成
func (s *BunStore) CreateSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*Project)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}

	children := []struct {
		table string
		model any
	}{
		{"tasks", (*Task)(nil)},
		{"materials", (*Material)(nil)},
		{"workers", (*Worker)(nil)},
		{"other_expenses", (*OtherExpense)(nil)},
		{"project_photos", (*ProjectPhoto)(nil)},
	}
	for _, c := range children {
		_, err := s.db.NewCreateTable().
			Model(c.model).
			IfNotExists().
			ForeignKey("(project_id) REFERENCES projects (id) ON DELETE CASCADE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create %s table: %w", c.table, err)
		}

		// MySQLは外部キーに自動でインデックスを作る
		if s.db.Dialect().Name() == dialect.SQLite {
			_, err := s.db.NewCreateIndex().
				Model(c.model).
				Index("idx_" + c.table + "_project_id").
				Column("project_id").
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create %s index: %w", c.table, err)
			}
		}
	}
	return nil
}

func (s *BunStore) Projects() repository.ProjectRepository           { return s.projects }
func (s *BunStore) Tasks() repository.TaskRepository                 { return s.tasks }
func (s *BunStore) Materials() repository.MaterialRepository         { return s.material }
func (s *BunStore) Workers() repository.WorkerRepository             { return s.workers }
func (s *BunStore) OtherExpenses() repository.OtherExpenseRepository { return s.expenses }
func (s *BunStore) Photos() repository.PhotoRepository               { return s.photos }

// Ping 接続確認
func (s *BunStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return domain.NewInfrastructureError("ping database", err)
	}
	return nil
}

// Close データベース接続を閉じる
func (s *BunStore) Close() error {
	return s.db.Close()
}

// bunTable エンティティEとBUNモデルMの変換を伴う共通操作
type bunTable[E any, M any] struct {
	db       *bun.DB
	resource string
	toModel  func(*E) *M
	toEntity func(*M) *E
}

// wrapError ドメインエラー以外をInfrastructureErrorに包む
func wrapError(op string, err error) error {
	if err == nil || domain.IsNotFound(err) || domain.IsValidation(err) || domain.IsInfrastructure(err) {
		return err
	}
	return domain.NewInfrastructureError(op, err)
}

func (t *bunTable[E, M]) create(ctx context.Context, e *E) error {
	model := t.toModel(e)
	if _, err := t.db.NewInsert().Model(model).Exec(ctx); err != nil {
		return wrapError("create "+t.resource, err)
	}
	// 採番されたIDを反映
	*e = *t.toEntity(model)
	return nil
}

func (t *bunTable[E, M]) findByID(ctx context.Context, id int64) (*E, error) {
	return t.selectByID(ctx, t.db, id, false)
}

func (t *bunTable[E, M]) selectByID(ctx context.Context, db bun.IDB, id int64, forUpdate bool) (*E, error) {
	model := new(M)
	q := db.NewSelect().
		Model(model).
		Where("id = ?", id)
	if forUpdate && t.db.Dialect().Name() == dialect.MySQL {
		q = q.For("UPDATE")
	}

	err := q.Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(t.resource, id)
	}
	if err != nil {
		return nil, wrapError("find "+t.resource, err)
	}
	return t.toEntity(model), nil
}

func (t *bunTable[E, M]) list(ctx context.Context, query func(*bun.SelectQuery) *bun.SelectQuery) ([]*E, error) {
	var models []M
	if err := query(t.db.NewSelect().Model(&models)).Scan(ctx); err != nil {
		return nil, wrapError("list "+t.resource, err)
	}

	entities := make([]*E, len(models))
	for i := range models {
		entities[i] = t.toEntity(&models[i])
	}
	return entities, nil
}

func (t *bunTable[E, M]) findByProjectID(ctx context.Context, projectID int64) ([]*E, error) {
	return t.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("project_id = ?", projectID).Order("id ASC")
	})
}

// update トランザクション内で読み込み・変更・書き込みを行う
func (t *bunTable[E, M]) update(ctx context.Context, id int64, fn func(*E) error) (*E, error) {
	var updated *E
	err := t.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		current, err := t.selectByID(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := fn(current); err != nil {
			return err
		}
		if _, err := tx.NewUpdate().Model(t.toModel(current)).WherePK().Exec(ctx); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, wrapError("update "+t.resource, err)
	}
	return updated, nil
}

type bunProjectRepository struct {
	t *bunTable[entity.Project, Project]
}

func (r *bunProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	return r.t.create(ctx, p)
}

func (r *bunProjectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	return r.t.findByID(ctx, id)
}

// FindAll 作成日時の新しい順
func (r *bunProjectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	return r.t.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC", "id DESC")
	})
}

func (r *bunProjectRepository) Update(ctx context.Context, id int64, fn func(*entity.Project) error) (*entity.Project, error) {
	return r.t.update(ctx, id, fn)
}

type bunTaskRepository struct {
	t *bunTable[entity.Task, Task]
}

func (r *bunTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.t.create(ctx, task)
}

func (r *bunTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	return r.t.findByID(ctx, id)
}

func (r *bunTaskRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Task, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *bunTaskRepository) Update(ctx context.Context, id int64, fn func(*entity.Task) error) (*entity.Task, error) {
	return r.t.update(ctx, id, fn)
}

type bunMaterialRepository struct {
	t *bunTable[entity.Material, Material]
}

func (r *bunMaterialRepository) Create(ctx context.Context, m *entity.Material) error {
	return r.t.create(ctx, m)
}

func (r *bunMaterialRepository) FindByID(ctx context.Context, id int64) (*entity.Material, error) {
	return r.t.findByID(ctx, id)
}

func (r *bunMaterialRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Material, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *bunMaterialRepository) Update(ctx context.Context, id int64, fn func(*entity.Material) error) (*entity.Material, error) {
	return r.t.update(ctx, id, fn)
}

type bunWorkerRepository struct {
	t *bunTable[entity.Worker, Worker]
}

func (r *bunWorkerRepository) Create(ctx context.Context, w *entity.Worker) error {
	return r.t.create(ctx, w)
}

func (r *bunWorkerRepository) FindByID(ctx context.Context, id int64) (*entity.Worker, error) {
	return r.t.findByID(ctx, id)
}

func (r *bunWorkerRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.Worker, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *bunWorkerRepository) Update(ctx context.Context, id int64, fn func(*entity.Worker) error) (*entity.Worker, error) {
	return r.t.update(ctx, id, fn)
}

type bunOtherExpenseRepository struct {
	t *bunTable[entity.OtherExpense, OtherExpense]
}

func (r *bunOtherExpenseRepository) Create(ctx context.Context, e *entity.OtherExpense) error {
	return r.t.create(ctx, e)
}

func (r *bunOtherExpenseRepository) FindByID(ctx context.Context, id int64) (*entity.OtherExpense, error) {
	return r.t.findByID(ctx, id)
}

func (r *bunOtherExpenseRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.OtherExpense, error) {
	return r.t.findByProjectID(ctx, projectID)
}

func (r *bunOtherExpenseRepository) Update(ctx context.Context, id int64, fn func(*entity.OtherExpense) error) (*entity.OtherExpense, error) {
	return r.t.update(ctx, id, fn)
}

type bunPhotoRepository struct {
	t *bunTable[entity.ProjectPhoto, ProjectPhoto]
}

func (r *bunPhotoRepository) Create(ctx context.Context, p *entity.ProjectPhoto) error {
	return r.t.create(ctx, p)
}

func (r *bunPhotoRepository) FindByProjectID(ctx context.Context, projectID int64) ([]*entity.ProjectPhoto, error) {
	return r.t.findByProjectID(ctx, projectID)
}
