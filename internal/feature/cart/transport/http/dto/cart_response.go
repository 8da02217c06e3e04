// Package dto maps carts to their JSON representation.
package dto

import (
	"time"

	"shop_backend/internal/feature/cart/domain/entity"
)

// CartLineRes is one cart line with its product labels.
type CartLineRes struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Product   string `json:"product"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url,omitempty"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartRes is the JSON view of a cart.
type CartRes struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"user_id"`
	LastUpdated time.Time     `json:"last_updated"`
	Lines       []CartLineRes `json:"lines"`
	Total       string        `json:"total"`
}

// ToCartRes formats prices and totals with two decimals.
func ToCartRes(c *entity.Cart) CartRes {
	lines := make([]CartLineRes, 0, len(c.Lines))
	for i := range c.Lines {
		lines = append(lines, toCartLineRes(&c.Lines[i]))
	}
	return CartRes{
		ID:          c.ID,
		UserID:      c.UserID,
		LastUpdated: c.LastUpdated,
		Lines:       lines,
		Total:       c.Total().StringFixed(2),
	}
}

func toCartLineRes(l *entity.CartLine) CartLineRes {
	res := CartLineRes{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Subtotal:  l.Subtotal().StringFixed(2),
	}
	if p := l.Product; p != nil {
		res.Product = p.Name
		res.ImageURL = p.ImageURL
		res.UnitPrice = p.Price.StringFixed(2)
		if p.Brand != nil {
			res.Brand = p.Brand.Name
		}
		if p.Category != nil {
			res.Category = p.Category.Name
		}
	}
	return res
}
