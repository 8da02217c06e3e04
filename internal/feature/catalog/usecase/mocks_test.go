package usecase

import (
	"context"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
)

type mockCountryRepository struct {
	ListFunc     func(ctx context.Context) ([]entity.Country, error)
	ListPageFunc func(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Country, error)
	CreateFunc   func(ctx context.Context, c *entity.Country) error
	UpdateFunc   func(ctx context.Context, c *entity.Country) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockCountryRepository) List(ctx context.Context) ([]entity.Country, error) {
	return m.ListFunc(ctx)
}

func (m *mockCountryRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error) {
	return m.ListPageFunc(ctx, p)
}

func (m *mockCountryRepository) FindByID(ctx context.Context, id uint) (*entity.Country, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCountryRepository) Create(ctx context.Context, c *entity.Country) error {
	return m.CreateFunc(ctx, c)
}

func (m *mockCountryRepository) Update(ctx context.Context, c *entity.Country) error {
	return m.UpdateFunc(ctx, c)
}

func (m *mockCountryRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

type mockCategoryRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Category, error)
	CreateFunc   func(ctx context.Context, c *entity.Category) error
	UpdateFunc   func(ctx context.Context, c *entity.Category) error
}

func (m *mockCategoryRepository) List(context.Context) ([]entity.Category, error) { return nil, nil }

func (m *mockCategoryRepository) ListPage(_ context.Context, p pagination.Params) (pagination.Page[entity.Category], error) {
	return pagination.Page[entity.Category]{Page: p.Page, Size: p.Size}, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return m.CreateFunc(ctx, c)
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return m.UpdateFunc(ctx, c)
}

func (m *mockCategoryRepository) Delete(context.Context, uint) error { return nil }

type mockBrandRepository struct {
	FindByIDFunc   func(ctx context.Context, id uint) (*entity.Brand, error)
	NameExistsFunc func(ctx context.Context, name string, excludeID uint) (bool, error)
	CreateFunc     func(ctx context.Context, b *entity.Brand) error
	UpdateFunc     func(ctx context.Context, b *entity.Brand) error
}

func (m *mockBrandRepository) List(context.Context) ([]entity.Brand, error) { return nil, nil }

func (m *mockBrandRepository) ListPage(_ context.Context, p pagination.Params) (pagination.Page[entity.Brand], error) {
	return pagination.Page[entity.Brand]{Page: p.Page, Size: p.Size}, nil
}

func (m *mockBrandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBrandRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return m.NameExistsFunc(ctx, name, excludeID)
}

func (m *mockBrandRepository) Create(ctx context.Context, b *entity.Brand) error {
	return m.CreateFunc(ctx, b)
}

func (m *mockBrandRepository) Update(ctx context.Context, b *entity.Brand) error {
	return m.UpdateFunc(ctx, b)
}

func (m *mockBrandRepository) Delete(context.Context, uint) error { return nil }

type mockProductRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Product, error)
	CreateFunc   func(ctx context.Context, p *entity.Product) error
	UpdateFunc   func(ctx context.Context, p *entity.Product) error
}

func (m *mockProductRepository) List(context.Context) ([]entity.Product, error) { return nil, nil }

func (m *mockProductRepository) ListPage(_ context.Context, p pagination.Params) (pagination.Page[entity.Product], error) {
	return pagination.Page[entity.Product]{Page: p.Page, Size: p.Size}, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.CreateFunc(ctx, p)
}

func (m *mockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockProductRepository) Delete(context.Context, uint) error { return nil }

type mockCategoryBrandRepository struct {
	FindByIDFunc          func(ctx context.Context, id uint) (*entity.CategoryBrand, error)
	CreateFunc            func(ctx context.Context, cb *entity.CategoryBrand) error
	BrandsByCategoryFunc  func(ctx context.Context, categoryID uint) ([]entity.Brand, error)
	CategoriesByBrandFunc func(ctx context.Context, brandID uint) ([]entity.Category, error)
}

func (m *mockCategoryBrandRepository) List(context.Context) ([]entity.CategoryBrand, error) {
	return nil, nil
}

func (m *mockCategoryBrandRepository) FindByID(ctx context.Context, id uint) (*entity.CategoryBrand, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryBrandRepository) Create(ctx context.Context, cb *entity.CategoryBrand) error {
	return m.CreateFunc(ctx, cb)
}

func (m *mockCategoryBrandRepository) Delete(context.Context, uint) error { return nil }

func (m *mockCategoryBrandRepository) BrandsByCategory(ctx context.Context, categoryID uint) ([]entity.Brand, error) {
	return m.BrandsByCategoryFunc(ctx, categoryID)
}

func (m *mockCategoryBrandRepository) CategoriesByBrand(ctx context.Context, brandID uint) ([]entity.Category, error) {
	return m.CategoriesByBrandFunc(ctx, brandID)
}

// Finders that resolve only the listed ids.

func countriesWith(ids ...uint) *mockCountryRepository {
	return &mockCountryRepository{FindByIDFunc: func(_ context.Context, id uint) (*entity.Country, error) {
		for _, known := range ids {
			if id == known {
				return &entity.Country{ID: id, Name: "Colombia"}, nil
			}
		}
		return nil, ErrCountryNotFound
	}}
}

func categoriesWith(ids ...uint) *mockCategoryRepository {
	return &mockCategoryRepository{FindByIDFunc: func(_ context.Context, id uint) (*entity.Category, error) {
		for _, known := range ids {
			if id == known {
				return &entity.Category{ID: id, Name: "Sports"}, nil
			}
		}
		return nil, ErrCategoryNotFound
	}}
}

func brandFinder(ids ...uint) func(context.Context, uint) (*entity.Brand, error) {
	return func(_ context.Context, id uint) (*entity.Brand, error) {
		for _, known := range ids {
			if id == known {
				return &entity.Brand{ID: id, Name: "Acme", CountryID: 1, Country: &entity.Country{ID: 1, Name: "Colombia"}}, nil
			}
		}
		return nil, ErrBrandNotFound
	}
}
