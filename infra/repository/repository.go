package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository implements repository.Repository for any entity on top of a
// session. Reads hit the database immediately; writes are staged.
type gormRepository[T repository.Entity, K repository.Key] struct {
	s     *session
	table string
}

func newRepository[T repository.Entity, K repository.Key](s *session) *gormRepository[T, K] {
	var zero T
	return &gormRepository[T, K]{s: s, table: zero.TableName()}
}

// Get retrieves an entity by primary key.
func (r *gormRepository[T, K]) Get(ctx context.Context, id K) (*T, error) {
	if r.s.closed {
		return nil, repository.ErrSessionClosed
	}
	var entity T
	err := WrapError(func() error {
		return r.s.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Find retrieves every entity matching opts.
func (r *gormRepository[T, K]) Find(ctx context.Context, opts ...repository.QueryOption) ([]*T, error) {
	if r.s.closed {
		return nil, repository.ErrSessionClosed
	}
	q := repository.NewQuery(opts...)
	if err := q.Validate(); err != nil {
		return nil, err
	}

	db := r.s.db.WithContext(ctx)
	for _, c := range q.Conditions {
		db = db.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	for _, o := range q.Orders {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	for _, rel := range q.Includes {
		db = db.Preload(rel)
	}

	var entities []*T
	if err := WrapError(func() error { return db.Find(&entities).Error }); err != nil {
		return nil, err
	}
	return entities, nil
}

// Insert stages a create. GORM writes the generated key back into entity
// when the unit of work commits.
func (r *gormRepository[T, K]) Insert(entity *T) (*T, error) {
	err := r.s.stage(opInsert, r.table, func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Update stages an overwrite of every column. Associations are left alone.
func (r *gormRepository[T, K]) Update(entity *T) error {
	return r.s.stage(opUpdate, r.table, func(tx *gorm.DB) error {
		return requireRows(tx.Model(entity).Select("*").Omit(clause.Associations).Updates(entity))
	})
}

// Delete stages removal by primary key.
func (r *gormRepository[T, K]) Delete(entity *T) error {
	return r.s.stage(opDelete, r.table, func(tx *gorm.DB) error {
		return requireRows(tx.Delete(entity))
	})
}

// DeleteRange stages one removal per entity.
func (r *gormRepository[T, K]) DeleteRange(entities []*T) error {
	for _, entity := range entities {
		if err := r.Delete(entity); err != nil {
			return err
		}
	}
	return nil
}
