// Package adapters provides the gorm-backed catalog repositories.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/pagination"
)

// store holds the CRUD plumbing shared by the catalog repositories.
// update writes exactly columns, zero values included. duplicate, when
// set, replaces unique index violations on create and update.
type store[T any] struct {
	db        *gorm.DB
	notFound  error
	duplicate error
	columns   []string
	preloads  []string
}

func (s store[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	for _, rel := range s.preloads {
		q = q.Preload(rel)
	}
	return q
}

func (s store[T]) list(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.query(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, db.Translate(err, nil)
	}
	return items, nil
}

func (s store[T]) page(ctx context.Context, p pagination.Params) (pagination.Page[T], error) {
	page, err := db.Paginate[T](s.db.WithContext(ctx).Model(new(T)), p, db.PageQuery{
		FilterColumns: []string{"name"},
		Order:         "id",
		Preloads:      s.preloads,
	})
	return page, db.Translate(err, nil)
}

func (s store[T]) find(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := s.query(ctx).First(&item, id).Error; err != nil {
		return nil, db.Translate(err, s.notFound)
	}
	return &item, nil
}

// create inserts v without touching associations. onForeignKey is
// returned when a referenced row is missing.
func (s store[T]) create(ctx context.Context, v *T, onForeignKey error) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	switch {
	case err == nil:
		return nil
	case onForeignKey != nil && db.IsForeignKeyViolation(err):
		return onForeignKey
	case s.duplicate != nil && db.IsDuplicateKey(err):
		return s.duplicate
	default:
		return db.Translate(err, nil)
	}
}

// update writes the configured columns of v, matched by primary key.
func (s store[T]) update(ctx context.Context, v *T, onForeignKey error) error {
	res := s.db.WithContext(ctx).Model(v).Select(s.columns).Updates(v)
	switch {
	case res.Error == nil && res.RowsAffected == 0:
		return s.notFound
	case res.Error == nil:
		return nil
	case onForeignKey != nil && db.IsForeignKeyViolation(res.Error):
		return onForeignKey
	case s.duplicate != nil && db.IsDuplicateKey(res.Error):
		return s.duplicate
	default:
		return db.Translate(res.Error, nil)
	}
}

// remove deletes by id. onRestrict is returned when a restricting
// foreign key blocks the delete.
func (s store[T]) remove(ctx context.Context, id uint, onRestrict error) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	switch {
	case res.Error == nil && res.RowsAffected == 0:
		return s.notFound
	case res.Error == nil:
		return nil
	case onRestrict != nil && db.IsForeignKeyViolation(res.Error):
		return onRestrict
	default:
		return db.Translate(res.Error, nil)
	}
}
