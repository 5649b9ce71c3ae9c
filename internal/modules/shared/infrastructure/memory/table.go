package memory

import (
	"context"
	"sync"

	"construction-cost-app/internal/modules/construction/domain"
)

// table 1種類のエンティティをIDの採番順に保持する
type table[T any] struct {
	mu        sync.RWMutex
	resource  string
	nextID    int64
	rows      map[int64]T
	order     []int64
	setID     func(*T, int64)
	projectID func(*T) int64
	clone     func(T) T
}

// newTable cloneはポインタフィールドを複製し、保持している行と返却値が値を共有しないようにする
func newTable[T any](resource string, setID func(*T, int64), projectID func(*T) int64, clone func(T) T) *table[T] {
	return &table[T]{
		resource:  resource,
		rows:      make(map[int64]T),
		setID:     setID,
		projectID: projectID,
		clone:     clone,
	}
}

func (t *table[T]) create(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return domain.NewInfrastructureError("create "+t.resource, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	t.setID(row, t.nextID)
	t.rows[t.nextID] = t.clone(*row)
	t.order = append(t.order, t.nextID)
	return nil
}

func (t *table[T]) findByID(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewInfrastructureError("find "+t.resource, err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, domain.NewNotFoundError(t.resource, id)
	}
	row = t.clone(row)
	return &row, nil
}

func (t *table[T]) all(ctx context.Context) ([]*T, error) {
	return t.filter(ctx, func(*T) bool { return true })
}

func (t *table[T]) findByProjectID(ctx context.Context, projectID int64) ([]*T, error) {
	return t.filter(ctx, func(row *T) bool { return t.projectID(row) == projectID })
}

func (t *table[T]) filter(ctx context.Context, keep func(*T) bool) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewInfrastructureError("list "+t.resource, err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		row := t.clone(t.rows[id])
		if keep(&row) {
			res = append(res, &row)
		}
	}
	return res, nil
}

// update 書き込みロックを保持したまま読み込み・変更・書き込みを行う
func (t *table[T]) update(ctx context.Context, id int64, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewInfrastructureError("update "+t.resource, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	stored, ok := t.rows[id]
	if !ok {
		return nil, domain.NewNotFoundError(t.resource, id)
	}
	row := t.clone(stored)
	if err := fn(&row); err != nil {
		return nil, err
	}
	t.setID(&row, id)
	t.rows[id] = t.clone(row)
	return &row, nil
}
