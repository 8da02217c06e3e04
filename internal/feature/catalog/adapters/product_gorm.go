package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/pagination"
)

type productRepository struct {
	store store[entity.Product]
}

var _ usecase.ProductRepository = (*productRepository)(nil)

// NewProductRepository returns the product gorm repository.
func NewProductRepository(gdb *gorm.DB) *productRepository {
	return &productRepository{store: store[entity.Product]{
		db:       gdb,
		notFound: usecase.ErrProductNotFound,
		columns:  []string{"name", "price", "description", "category_id", "brand_id", "stock", "image_url", "updated_at"},
		preloads: []string{"Category", "Brand"},
	}}
}

// List returns every product ordered by id.
func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.store.list(ctx)
}

// ListPage filters products by name.
func (r *productRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Product], error) {
	return r.store.page(ctx, p)
}

// FindByID returns the product or ErrProductNotFound.
func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return r.store.find(ctx, id)
}

// Create inserts the product.
func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.store.create(ctx, p, usecase.ErrReferenceNotFound)
}

// Update overwrites the stored product.
func (r *productRepository) Update(ctx context.Context, p *entity.Product) error {
	return r.store.update(ctx, p, usecase.ErrReferenceNotFound)
}

// Delete removes the product by id.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.store.remove(ctx, id, nil)
}
