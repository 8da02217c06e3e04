package usecase

import (
	"context"
	"strings"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
)

type categoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase returns the category usecase.
func NewCategoryUsecase(categories CategoryRepository) *categoryUsecase {
	return &categoryUsecase{categories: categories}
}

// List returns every category.
func (u *categoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.categories.List(ctx)
}

// ListPage returns one page of categories, optionally filtered by name.
func (u *categoryUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Category], error) {
	return u.categories.ListPage(ctx, p.Normalize())
}

// Get returns the category or ErrCategoryNotFound.
func (u *categoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.categories.FindByID(ctx, id)
}

// Create validates the input and stores a new category.
func (u *categoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	var v validation.Errors
	validateName(&v, name, maxNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	c := &entity.Category{Name: strings.TrimSpace(name)}
	if err := u.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update validates the input and overwrites an existing category.
func (u *categoryUsecase) Update(ctx context.Context, id uint, name string) (*entity.Category, error) {
	var v validation.Errors
	validateName(&v, name, maxNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	c := &entity.Category{ID: id, Name: strings.TrimSpace(name)}
	if err := u.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the category together with its products and brand associations.
func (u *categoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.categories.Delete(ctx, id)
}
