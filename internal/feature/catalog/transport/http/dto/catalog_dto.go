// Package dto defines the catalog request bodies and the entity to
// response mappers. Mappers resolve foreign keys to display labels.
package dto

import (
	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// NameReq is the body for countries and categories.
type NameReq struct {
	Name string `json:"name"`
}

// BrandReq is the body of brand writes.
type BrandReq struct {
	Name      string `json:"name"`
	CountryID uint   `json:"country_id"`
}

// Input converts the request to usecase input.
func (r BrandReq) Input() usecase.BrandInput {
	return usecase.BrandInput{Name: r.Name, CountryID: r.CountryID}
}

// ProductReq accepts price as a JSON number or string.
type ProductReq struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"category_id"`
	BrandID     uint            `json:"brand_id"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

// Input converts the request; image_url is optional.
func (r ProductReq) Input() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		BrandID:     r.BrandID,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

// CategoryBrandReq links a category to a brand.
type CategoryBrandReq struct {
	CategoryID uint `json:"category_id"`
	BrandID    uint `json:"brand_id"`
}

// CountryRes is the JSON view of a country.
type CountryRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryRes is the JSON view of a category.
type CategoryRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BrandRes is the JSON view of a brand.
type BrandRes struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CountryID uint   `json:"country_id"`
	Country   string `json:"country"`
}

// ProductRes is the JSON view of a product.
type ProductRes struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id"`
	Category    string `json:"category"`
	BrandID     uint   `json:"brand_id"`
	Brand       string `json:"brand"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CategoryBrandRes is the JSON view of a category-brand association.
type CategoryBrandRes struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Category   string `json:"category"`
	BrandID    uint   `json:"brand_id"`
	Brand      string `json:"brand"`
}

// ToCountryRes maps a country to its response.
func ToCountryRes(c entity.Country) CountryRes {
	return CountryRes{ID: c.ID, Name: c.Name}
}

// ToCategoryRes maps a category to its response.
func ToCategoryRes(c entity.Category) CategoryRes {
	return CategoryRes{ID: c.ID, Name: c.Name}
}

// ToBrandRes maps a brand to its response.
func ToBrandRes(b entity.Brand) BrandRes {
	return BrandRes{ID: b.ID, Name: b.Name, CountryID: b.CountryID, Country: b.CountryName()}
}

// ToProductRes maps a product to its response.
func ToProductRes(p entity.Product) ProductRes {
	res := ProductRes{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
	if p.Category != nil {
		res.Category = p.Category.Name
	}
	if p.Brand != nil {
		res.Brand = p.Brand.Name
	}
	return res
}

// ToCategoryBrandRes maps a category-brand association to its response.
func ToCategoryBrandRes(cb entity.CategoryBrand) CategoryBrandRes {
	res := CategoryBrandRes{ID: cb.ID, CategoryID: cb.CategoryID, BrandID: cb.BrandID}
	if cb.Category != nil {
		res.Category = cb.Category.Name
	}
	if cb.Brand != nil {
		res.Brand = cb.Brand.Name
	}
	return res
}

// MapList applies fn to every item, never returning nil.
func MapList[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
