package repositories

import (
	"context"
	"errors"

	"github.com/karolisstonys/PROJECT-CA23/pkg/contextkeys"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
)

// Predicate narrows a query to the rows of interest. A zero Predicate
// matches everything.
type Predicate struct {
	Query string
	Args  []any
}

// Where builds a predicate from a gorm condition string.
func Where(query string, args ...any) Predicate {
	return Predicate{Query: query, Args: args}
}

// All matches every row.
func All() Predicate {
	return Predicate{}
}

// Repository is the uniform per-entity data access contract. Get returns
// (nil, nil) when no row matches; the caller decides whether that is a
// NotFound. The caller must ensure a Get predicate selects at most one
// logical record; the repository does not enforce it.
type Repository[T any] interface {
	Get(ctx context.Context, pred Predicate, include ...string) (*T, error)
	GetAll(ctx context.Context, pred Predicate, include ...string) ([]T, error)
	Exist(ctx context.Context, pred Predicate) (bool, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}

// GormRepository implements Repository once against gorm; entity-specific
// repositories embed it and add custom queries only where needed.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// conn returns the pool handle, or a transaction injected via the context
// (the test helpers use this to run a whole case inside one transaction).
func (r *GormRepository[T]) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.DBContextKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *GormRepository[T]) scoped(ctx context.Context, pred Predicate, include ...string) *gorm.DB {
	tx := r.conn(ctx).WithContext(ctx)
	for _, relation := range include {
		tx = tx.Preload(relation)
	}
	if pred.Query != "" {
		tx = tx.Where(pred.Query, pred.Args...)
	}
	return tx
}

func (r *GormRepository[T]) Get(ctx context.Context, pred Predicate, include ...string) (*T, error) {
	var entity T
	err := r.scoped(ctx, pred, include...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context, pred Predicate, include ...string) ([]T, error) {
	var entities []T
	err := r.scoped(ctx, pred, include...).Find(&entities).Error
	return entities, err
}

func (r *GormRepository[T]) Exist(ctx context.Context, pred Predicate) (bool, error) {
	var count int64
	var entity T
	err := r.scoped(ctx, pred).Model(&entity).Count(&count).Error
	return count > 0, err
}

func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	err := r.conn(ctx).WithContext(ctx).Create(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Update has full-record replace semantics for the row itself; associations
// are never written through here.
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	res := r.conn(ctx).WithContext(ctx).Omit(clause.Associations).Save(entity)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository[T]) Remove(ctx context.Context, entity *T) error {
	res := r.conn(ctx).WithContext(ctx).Delete(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
