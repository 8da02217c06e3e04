package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/pagination"
)

type brandRepository struct {
	store store[entity.Brand]
}

var _ usecase.BrandRepository = (*brandRepository)(nil)

// NewBrandRepository returns the gorm brand repository. Names are unique
// case-insensitively through the index created by db.Migrate.
func NewBrandRepository(gdb *gorm.DB) *brandRepository {
	return &brandRepository{store: store[entity.Brand]{
		db:        gdb,
		notFound:  usecase.ErrBrandNotFound,
		duplicate: usecase.ErrBrandNameTaken,
		columns:   []string{"name", "country_id"},
		preloads:  []string{"Country"},
	}}
}

// List returns every brand ordered by id.
func (r *brandRepository) List(ctx context.Context) ([]entity.Brand, error) {
	return r.store.list(ctx)
}

// ListPage filters brands by name.
func (r *brandRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Brand], error) {
	return r.store.page(ctx, p)
}

// FindByID returns the brand or ErrBrandNotFound.
func (r *brandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	return r.store.find(ctx, id)
}

// NameExists compares trimmed names case-insensitively, ignoring excludeID.
func (r *brandRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var n int64
	err := r.store.db.WithContext(ctx).Model(&entity.Brand{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(name)), excludeID).
		Count(&n).Error
	if err != nil {
		return false, db.Translate(err, nil)
	}
	return n > 0, nil
}

// Create inserts the brand.
func (r *brandRepository) Create(ctx context.Context, b *entity.Brand) error {
	return r.store.create(ctx, b, usecase.ErrCountryNotFound)
}

// Update overwrites the stored brand.
func (r *brandRepository) Update(ctx context.Context, b *entity.Brand) error {
	return r.store.update(ctx, b, usecase.ErrCountryNotFound)
}

// Delete cascades to products and category_brands.
func (r *brandRepository) Delete(ctx context.Context, id uint) error {
	return r.store.remove(ctx, id, nil)
}
