package usecase

import (
	"context"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/validation"
)

type categoryBrandUsecase struct {
	links      CategoryBrandRepository
	categories CategoryRepository
	brands     BrandRepository
}

// NewCategoryBrandUsecase returns the category-brand association usecase.
func NewCategoryBrandUsecase(links CategoryBrandRepository, categories CategoryRepository, brands BrandRepository) *categoryBrandUsecase {
	return &categoryBrandUsecase{links: links, categories: categories, brands: brands}
}

// List returns every category-brand association.
func (u *categoryBrandUsecase) List(ctx context.Context) ([]entity.CategoryBrand, error) {
	return u.links.List(ctx)
}

// Get returns the category-brand association or ErrCategoryBrandNotFound.
func (u *categoryBrandUsecase) Get(ctx context.Context, id uint) (*entity.CategoryBrand, error) {
	return u.links.FindByID(ctx, id)
}

// Create associates an existing category with an existing brand.
// A repeated pair yields ErrCategoryBrandExists.
func (u *categoryBrandUsecase) Create(ctx context.Context, categoryID, brandID uint) (*entity.CategoryBrand, error) {
	var v validation.Errors
	v.ID("category_id", categoryID)
	v.ID("brand_id", brandID)
	if err := v.Err(); err != nil {
		return nil, err
	}
	if _, err := u.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	if _, err := u.brands.FindByID(ctx, brandID); err != nil {
		return nil, err
	}

	cb := &entity.CategoryBrand{CategoryID: categoryID, BrandID: brandID}
	if err := u.links.Create(ctx, cb); err != nil {
		return nil, err
	}
	return u.links.FindByID(ctx, cb.ID)
}

// Delete removes one association.
func (u *categoryBrandUsecase) Delete(ctx context.Context, id uint) error {
	return u.links.Delete(ctx, id)
}

// BrandsByCategory fails with ErrCategoryNotFound for an unknown category,
// and returns an empty list for a category without brands.
func (u *categoryBrandUsecase) BrandsByCategory(ctx context.Context, categoryID uint) ([]entity.Brand, error) {
	if _, err := u.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return u.links.BrandsByCategory(ctx, categoryID)
}

// CategoriesByBrand lists the categories linked to brandID.
func (u *categoryBrandUsecase) CategoriesByBrand(ctx context.Context, brandID uint) ([]entity.Category, error) {
	if _, err := u.brands.FindByID(ctx, brandID); err != nil {
		return nil, err
	}
	return u.links.CategoriesByBrand(ctx, brandID)
}
