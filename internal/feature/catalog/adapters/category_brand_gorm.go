package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/db"
)

type categoryBrandRepository struct {
	store store[entity.CategoryBrand]
}

var _ usecase.CategoryBrandRepository = (*categoryBrandRepository)(nil)

// NewCategoryBrandRepository returns the category-brand association gorm repository.
func NewCategoryBrandRepository(gdb *gorm.DB) *categoryBrandRepository {
	return &categoryBrandRepository{store: store[entity.CategoryBrand]{
		db:       gdb,
		notFound: usecase.ErrCategoryBrandNotFound,
		preloads: []string{"Category", "Brand"},
	}}
}

// List returns every category-brand association ordered by id.
func (r *categoryBrandRepository) List(ctx context.Context) ([]entity.CategoryBrand, error) {
	return r.store.list(ctx)
}

// FindByID returns the category-brand association or ErrCategoryBrandNotFound.
func (r *categoryBrandRepository) FindByID(ctx context.Context, id uint) (*entity.CategoryBrand, error) {
	return r.store.find(ctx, id)
}

// Create maps the unique (category_id, brand_id) index to ErrCategoryBrandExists.
func (r *categoryBrandRepository) Create(ctx context.Context, cb *entity.CategoryBrand) error {
	err := r.store.create(ctx, cb, usecase.ErrReferenceNotFound)
	if err != nil && db.IsDuplicateKey(err) {
		return usecase.ErrCategoryBrandExists
	}
	return err
}

// Delete removes the category-brand association by id.
func (r *categoryBrandRepository) Delete(ctx context.Context, id uint) error {
	return r.store.remove(ctx, id, nil)
}

// BrandsByCategory returns the brands linked to categoryID.
func (r *categoryBrandRepository) BrandsByCategory(ctx context.Context, categoryID uint) ([]entity.Brand, error) {
	var brands []entity.Brand
	err := r.store.db.WithContext(ctx).Preload("Country").
		Joins("JOIN category_brands ON category_brands.brand_id = brands.id").
		Where("category_brands.category_id = ?", categoryID).
		Order("brands.id").
		Find(&brands).Error
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return brands, nil
}

// CategoriesByBrand returns the categories linked to brandID.
func (r *categoryBrandRepository) CategoriesByBrand(ctx context.Context, brandID uint) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.store.db.WithContext(ctx).
		Joins("JOIN category_brands ON category_brands.category_id = categories.id").
		Where("category_brands.brand_id = ?", brandID).
		Order("categories.id").
		Find(&categories).Error
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return categories, nil
}
