package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/pagination"
)

type countryRepository struct {
	store store[entity.Country]
}

var _ usecase.CountryRepository = (*countryRepository)(nil)

// NewCountryRepository returns the country gorm repository.
func NewCountryRepository(gdb *gorm.DB) *countryRepository {
	return &countryRepository{store: store[entity.Country]{
		db:       gdb,
		notFound: usecase.ErrCountryNotFound,
		columns:  []string{"name"},
	}}
}

// List returns every country ordered by id.
func (r *countryRepository) List(ctx context.Context) ([]entity.Country, error) {
	return r.store.list(ctx)
}

// ListPage filters countries by name.
func (r *countryRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error) {
	return r.store.page(ctx, p)
}

// FindByID returns the country or ErrCountryNotFound.
func (r *countryRepository) FindByID(ctx context.Context, id uint) (*entity.Country, error) {
	return r.store.find(ctx, id)
}

// Create inserts the country.
func (r *countryRepository) Create(ctx context.Context, c *entity.Country) error {
	return r.store.create(ctx, c, nil)
}

// Update overwrites the stored country.
func (r *countryRepository) Update(ctx context.Context, c *entity.Country) error {
	return r.store.update(ctx, c, nil)
}

// Delete is restricted by brands.country_id.
func (r *countryRepository) Delete(ctx context.Context, id uint) error {
	return r.store.remove(ctx, id, usecase.ErrCountryInUse)
}
