// Package entity defines orders, their lines and the status state machine.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	authentity "shop_backend/internal/feature/auth/domain/entity"
)

// Order is a placed purchase. Total always equals the sum of line subtotals.
type Order struct {
	ID              uint             `gorm:"primaryKey"`
	UserID          uint             `gorm:"not null;index"`
	User            *authentity.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PlacedAt        time.Time        `gorm:"not null"`
	Total           decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	Status          Status           `gorm:"type:varchar(20);not null;index"`
	ShippingAddress string           `gorm:"size:500;not null"`
	Lines           []OrderLine      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// OrderLine is a snapshot of a product at the time it was ordered. It keeps
// no foreign key to the product so the history survives catalog deletes.
type OrderLine struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	ProductName string          `gorm:"size:150"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// NewLine builds a line and fixes its subtotal.
func NewLine(productID uint, productName string, quantity int, unitPrice decimal.Decimal) OrderLine {
	return OrderLine{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// SumLines returns the order total for lines.
func SumLines(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Recalculate sets Total from the current lines.
func (o *Order) Recalculate() {
	o.Total = SumLines(o.Lines)
}
