package usecase

import (
	"context"
	"strings"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
)

// BrandInput carries the writable brand fields.
type BrandInput struct {
	Name      string
	CountryID uint
}

type brandUsecase struct {
	brands    BrandRepository
	countries CountryRepository
}

// NewBrandUsecase returns the brand usecase.
func NewBrandUsecase(brands BrandRepository, countries CountryRepository) *brandUsecase {
	return &brandUsecase{brands: brands, countries: countries}
}

// List returns every brand.
func (u *brandUsecase) List(ctx context.Context) ([]entity.Brand, error) {
	return u.brands.List(ctx)
}

// ListPage returns one page of brands, optionally filtered by name.
func (u *brandUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Brand], error) {
	return u.brands.ListPage(ctx, p.Normalize())
}

// Get returns the brand or ErrBrandNotFound.
func (u *brandUsecase) Get(ctx context.Context, id uint) (*entity.Brand, error) {
	return u.brands.FindByID(ctx, id)
}

// Create validates the input and stores a new brand.
func (u *brandUsecase) Create(ctx context.Context, in BrandInput) (*entity.Brand, error) {
	if err := u.check(ctx, 0, in); err != nil {
		return nil, err
	}

	b := &entity.Brand{Name: strings.TrimSpace(in.Name), CountryID: in.CountryID}
	if err := u.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return u.brands.FindByID(ctx, b.ID)
}

// Update validates the input and overwrites an existing brand.
func (u *brandUsecase) Update(ctx context.Context, id uint, in BrandInput) (*entity.Brand, error) {
	if _, err := u.brands.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := u.check(ctx, id, in); err != nil {
		return nil, err
	}

	b := &entity.Brand{ID: id, Name: strings.TrimSpace(in.Name), CountryID: in.CountryID}
	if err := u.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return u.brands.FindByID(ctx, id)
}

// Delete removes the brand together with its products and category associations.
func (u *brandUsecase) Delete(ctx context.Context, id uint) error {
	return u.brands.Delete(ctx, id)
}

// check validates in, then verifies the country exists and the name is free.
func (u *brandUsecase) check(ctx context.Context, selfID uint, in BrandInput) error {
	var v validation.Errors
	validateName(&v, in.Name, maxNameLength)
	v.ID("country_id", in.CountryID)
	if err := v.Err(); err != nil {
		return err
	}

	if _, err := u.countries.FindByID(ctx, in.CountryID); err != nil {
		return err
	}
	taken, err := u.brands.NameExists(ctx, strings.TrimSpace(in.Name), selfID)
	if err != nil {
		return err
	}
	if taken {
		return ErrBrandNameTaken
	}
	return nil
}
