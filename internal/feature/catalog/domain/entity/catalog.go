// Package entity defines the catalog entities: countries, brands,
// categories, their association and products.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Country is a brand's country of origin.
type Country struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

// Brand belongs to a country. A country cannot be deleted while brands reference it.
type Brand struct {
	ID        uint     `gorm:"primaryKey"`
	Name      string   `gorm:"size:100;not null"`
	CountryID uint     `gorm:"not null;index"`
	Country   *Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// Category groups products.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

// CategoryBrand associates a brand with a category. The pair is unique.
type CategoryBrand struct {
	ID         uint      `gorm:"primaryKey"`
	CategoryID uint      `gorm:"not null;uniqueIndex:idx_category_brand"`
	BrandID    uint      `gorm:"not null;uniqueIndex:idx_category_brand"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Brand      *Brand    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Product is a sellable item. Deleting its brand or category deletes it.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:150;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"size:1000"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    *Category       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	BrandID     uint            `gorm:"not null;index"`
	Brand       *Brand          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Stock       int             `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	ImageURL    string          `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CountryName returns the brand's country label, or "" when not loaded.
func (b *Brand) CountryName() string {
	if b.Country == nil {
		return ""
	}
	return b.Country.Name
}
