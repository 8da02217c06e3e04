// Package usecase implements the catalog operations on countries,
// categories, brands, products and category-brand associations.
package usecase

import (
	"context"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
)

// CountryRepository persists countries. Delete returns ErrCountryInUse
// while brands reference the country.
type CountryRepository interface {
	List(ctx context.Context) ([]entity.Country, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error)
	FindByID(ctx context.Context, id uint) (*entity.Country, error)
	Create(ctx context.Context, c *entity.Country) error
	Update(ctx context.Context, c *entity.Country) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository persists categories. Deleting a category deletes its
// products and brand associations.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Category], error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id uint) error
}

// BrandRepository persists brands with their country loaded on reads.
type BrandRepository interface {
	List(ctx context.Context) ([]entity.Brand, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Brand], error)
	FindByID(ctx context.Context, id uint) (*entity.Brand, error)
	// NameExists matches name case-insensitively, ignoring the brand excludeID.
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	Create(ctx context.Context, b *entity.Brand) error
	Update(ctx context.Context, b *entity.Brand) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository persists products with category and brand loaded on reads.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Product], error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id uint) error
}

// CategoryBrandRepository persists category-brand associations.
type CategoryBrandRepository interface {
	List(ctx context.Context) ([]entity.CategoryBrand, error)
	FindByID(ctx context.Context, id uint) (*entity.CategoryBrand, error)
	Create(ctx context.Context, cb *entity.CategoryBrand) error
	Delete(ctx context.Context, id uint) error
	BrandsByCategory(ctx context.Context, categoryID uint) ([]entity.Brand, error)
	CategoriesByBrand(ctx context.Context, brandID uint) ([]entity.Category, error)
}
