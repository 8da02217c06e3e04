package usecase

import (
	"context"
	"strings"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
)

const (
	minNameLength        = 2
	maxNameLength        = 100
	maxProductNameLength = 150
)

func validateName(v *validation.Errors, name string, max int) {
	if v.Required("name", name) {
		v.Length("name", name, minNameLength, max)
	}
}

type countryUsecase struct {
	countries CountryRepository
}

// NewCountryUsecase returns the country usecase.
func NewCountryUsecase(countries CountryRepository) *countryUsecase {
	return &countryUsecase{countries: countries}
}

// List returns every country.
func (u *countryUsecase) List(ctx context.Context) ([]entity.Country, error) {
	return u.countries.List(ctx)
}

// ListPage returns one page of countries, optionally filtered by name.
func (u *countryUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error) {
	return u.countries.ListPage(ctx, p.Normalize())
}

// Get returns the country or ErrCountryNotFound.
func (u *countryUsecase) Get(ctx context.Context, id uint) (*entity.Country, error) {
	return u.countries.FindByID(ctx, id)
}

// Create validates the input and stores a new country.
func (u *countryUsecase) Create(ctx context.Context, name string) (*entity.Country, error) {
	var v validation.Errors
	validateName(&v, name, maxNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	c := &entity.Country{Name: strings.TrimSpace(name)}
	if err := u.countries.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update validates the input and overwrites an existing country.
func (u *countryUsecase) Update(ctx context.Context, id uint, name string) (*entity.Country, error) {
	var v validation.Errors
	validateName(&v, name, maxNameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	c := &entity.Country{ID: id, Name: strings.TrimSpace(name)}
	if err := u.countries.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete fails with ErrCountryInUse while any brand references the country.
func (u *countryUsecase) Delete(ctx context.Context, id uint) error {
	return u.countries.Delete(ctx, id)
}
