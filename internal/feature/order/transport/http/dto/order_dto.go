// Package dto defines the order request bodies and response mapping.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/feature/order/usecase"
)

// LineReq accepts price as a JSON number or string.
type LineReq struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Input converts the line to usecase input.
func (r LineReq) Input() usecase.LineInput {
	return usecase.LineInput{ProductID: r.ProductID, Quantity: r.Quantity, Price: r.Price}
}

// OrderReq is the body of create and update. UserID is only honored for
// administrators placing an order on behalf of someone else.
type OrderReq struct {
	UserID          uint      `json:"user_id,omitempty"`
	ShippingAddress string    `json:"shipping_address"`
	Lines           []LineReq `json:"lines"`
}

// LineInputs converts every requested line.
func (r OrderReq) LineInputs() []usecase.LineInput {
	lines := make([]usecase.LineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, l.Input())
	}
	return lines
}

// StatusReq is the body of PATCH /pedidos/:id/estado.
type StatusReq struct {
	Status string `json:"status"`
}

// OrderLineRes is one ordered line with its price snapshot.
type OrderLineRes struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// OrderRes is the JSON view of an order.
type OrderRes struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	PlacedAt        time.Time      `json:"placed_at"`
	Status          string         `json:"status"`
	ShippingAddress string         `json:"shipping_address"`
	Total           string         `json:"total"`
	Lines           []OrderLineRes `json:"lines"`
}

// ToOrderRes formats amounts with two decimals.
func ToOrderRes(o entity.Order) OrderRes {
	lines := make([]OrderLineRes, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineRes{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Subtotal:    l.Subtotal.StringFixed(2),
		})
	}
	return OrderRes{
		ID:              o.ID,
		UserID:          o.UserID,
		PlacedAt:        o.PlacedAt,
		Status:          o.Status.String(),
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total.StringFixed(2),
		Lines:           lines,
	}
}

// ToOrderResList maps a slice of orders.
func ToOrderResList(orders []entity.Order) []OrderRes {
	res := make([]OrderRes, 0, len(orders))
	for _, o := range orders {
		res = append(res, ToOrderRes(o))
	}
	return res
}
