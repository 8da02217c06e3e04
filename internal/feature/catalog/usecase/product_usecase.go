package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
)

const (
	maxDescriptionLength = 1000
	maxImageURLLength    = 500
)

// MaxPrice is the largest price a decimal(12,2) column accepts for a product.
var MaxPrice = decimal.RequireFromString("9999999.99")

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	CategoryID  uint
	BrandID     uint
	Stock       int
	ImageURL    string
}

func (in ProductInput) validate() error {
	var v validation.Errors
	validateName(&v, in.Name, maxProductNameLength)
	v.Amount("price", in.Price, MaxPrice)
	v.MaxLength("description", in.Description, maxDescriptionLength)
	v.ID("category_id", in.CategoryID)
	v.ID("brand_id", in.BrandID)
	v.NonNegative("stock", in.Stock)
	v.MaxLength("image_url", in.ImageURL, maxImageURLLength)
	v.URL("image_url", in.ImageURL)
	return v.Err()
}

func (in ProductInput) entity(id uint) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price.Round(2),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		Stock:       in.Stock,
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
}

type productUsecase struct {
	products   ProductRepository
	categories CategoryRepository
	brands     BrandRepository
}

// NewProductUsecase returns the product usecase.
func NewProductUsecase(products ProductRepository, categories CategoryRepository, brands BrandRepository) *productUsecase {
	return &productUsecase{products: products, categories: categories, brands: brands}
}

// List returns every product.
func (u *productUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.products.List(ctx)
}

// ListPage returns one page of products, optionally filtered by name.
func (u *productUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Product], error) {
	return u.products.ListPage(ctx, p.Normalize())
}

// Get returns the product or ErrProductNotFound.
func (u *productUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// Create validates the input and stores a new product.
func (u *productUsecase) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if err := u.check(ctx, in); err != nil {
		return nil, err
	}

	p := in.entity(0)
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return u.products.FindByID(ctx, p.ID)
}

// Update validates the input and overwrites an existing product.
func (u *productUsecase) Update(ctx context.Context, id uint, in ProductInput) (*entity.Product, error) {
	if _, err := u.products.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := u.check(ctx, in); err != nil {
		return nil, err
	}

	if err := u.products.Update(ctx, in.entity(id)); err != nil {
		return nil, err
	}
	return u.products.FindByID(ctx, id)
}

// Delete removes the product.
func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	return u.products.Delete(ctx, id)
}

func (u *productUsecase) check(ctx context.Context, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		return err
	}
	if _, err := u.brands.FindByID(ctx, in.BrandID); err != nil {
		return err
	}
	return nil
}
