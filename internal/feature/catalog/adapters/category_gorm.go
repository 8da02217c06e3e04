package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/pagination"
)

type categoryRepository struct {
	store store[entity.Category]
}

var _ usecase.CategoryRepository = (*categoryRepository)(nil)

// NewCategoryRepository returns the category gorm repository.
func NewCategoryRepository(gdb *gorm.DB) *categoryRepository {
	return &categoryRepository{store: store[entity.Category]{
		db:       gdb,
		notFound: usecase.ErrCategoryNotFound,
		columns:  []string{"name"},
	}}
}

// List returns every category ordered by id.
func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return r.store.list(ctx)
}

// ListPage filters categories by name.
func (r *categoryRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Category], error) {
	return r.store.page(ctx, p)
}

// FindByID returns the category or ErrCategoryNotFound.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	return r.store.find(ctx, id)
}

// Create inserts the category.
func (r *categoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return r.store.create(ctx, c, nil)
}

// Update overwrites the stored category.
func (r *categoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return r.store.update(ctx, c, nil)
}

// Delete cascades to products and category_brands.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.store.remove(ctx, id, nil)
}
