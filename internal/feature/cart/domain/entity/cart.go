// Package entity defines the shopping cart entities.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
)

// Cart is the single cart a user owns. It is created on the first add.
type Cart struct {
	ID          uint             `gorm:"primaryKey"`
	UserID      uint             `gorm:"not null;uniqueIndex"`
	User        *authentity.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	LastUpdated time.Time        `gorm:"not null"`
	Lines       []CartLine       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CartLine holds one product in a cart. At most one line exists per product.
type CartLine struct {
	ID        uint                   `gorm:"primaryKey"`
	CartID    uint                   `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint                   `gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   *catalogentity.Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Quantity  int                    `gorm:"not null;default:1;check:chk_cart_lines_quantity,quantity >= 1"`
}

// Subtotal is quantity times the product's current price. It is zero when
// the product is not loaded.
func (l *CartLine) Subtotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lines {
		total = total.Add(c.Lines[i].Subtotal())
	}
	return total
}
